package suimsig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iov-one/suimsig"
)

func TestVersion(t *testing.T) {
	suimsig.GitCommit = ""
	assert.Equal(t, "v0.1.0", suimsig.Version())

	suimsig.GitCommit = "12345678"
	assert.Equal(t, "v0.1.0 12345678", suimsig.Version())
	suimsig.GitCommit = ""
}

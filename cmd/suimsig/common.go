package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/iov-one/suimsig/client"
	"github.com/iov-one/suimsig/x/multisig"
	"github.com/tendermint/tendermint/libs/log"
)

// maxLineSize is the longest input line accepted. A signed envelope of the
// largest transaction the ledger accepts fits in it.
const maxLineSize = 1 << 20

// commonFlags are the flags shared by most commands.
type commonFlags struct {
	config   *string
	rpc      *string
	logLevel *string
}

func registerCommonFlags(fl *flag.FlagSet) commonFlags {
	return commonFlags{
		config: fl.String("config", env("SUIMSIG_CONFIG", "multisig.json"),
			"Path to the multisig account configuration file. You can use SUIMSIG_CONFIG environment variable to set it."),
		rpc: fl.String("rpc", env("SUIMSIG_RPC", "https://fullnode.devnet.sui.io:443"),
			"Sui full node JSON-RPC address. You can use SUIMSIG_RPC environment variable to set it."),
		logLevel: fl.String("log-level", env("SUIMSIG_LOG_LEVEL", "info"),
			"Messages of this and higher level are written to stderr: debug, info, error or none."),
	}
}

// newLogger returns a logger writing to stderr messages of given level and
// above.
func newLogger(level string) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stderr))
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %s", err)
	}
	return log.NewFilter(logger, opt), nil
}

// coordinator returns the coordinator of the multisig account declared in
// the configuration file. A ledger is attached only if withLedger is true.
func (f commonFlags) coordinator(ctx context.Context, withLedger bool) (*multisig.Coordinator, *client.Client, error) {
	logger, err := newLogger(*f.logLevel)
	if err != nil {
		return nil, nil, err
	}
	conf, err := multisig.LoadConfig(*f.config)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load configuration: %s", err)
	}
	set, err := conf.ParticipantSet()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration %q: %s", *f.config, err)
	}

	var (
		ledger multisig.Ledger
		cli    *client.Client
	)
	if withLedger {
		cli, err = client.Dial(ctx, *f.rpc, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot connect to %s: %s", *f.rpc, err)
		}
		ledger = cli
	}
	coord, err := multisig.NewCoordinator(set, ledger, logger)
	if err != nil {
		if cli != nil {
			cli.Close()
		}
		return nil, nil, err
	}
	return coord, cli, nil
}

// readInput returns the whole input with surrounding white space removed.
func readInput(input io.Reader) (string, error) {
	raw, err := ioutil.ReadAll(input)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

// readLines returns all non empty lines of given input.
func readLines(input io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(input)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, s.Err()
}

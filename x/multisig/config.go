package multisig

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/iov-one/suimsig/codec"
	"github.com/iov-one/suimsig/crypto"
	"github.com/iov-one/suimsig/errors"
)

// Config is the file representation of a multisig account.
//
//	{
//	  "threshold": 2,
//	  "participants": [
//	    {"scheme": "ED25519", "public_key": "<base64>", "weight": 1},
//	    {"scheme": "Secp256k1", "private_key": "suiprivkey1...", "weight": 1}
//	  ],
//	  "keystore": "/home/alice/.sui/sui_config/sui.keystore"
//	}
type Config struct {
	Threshold    Threshold           `json:"threshold"`
	Participants []ParticipantConfig `json:"participants"`
	// Keystore is an optional path to a keystore file. Keys found there
	// give signing capability to participants with a matching public key.
	Keystore string `json:"keystore,omitempty"`
}

// ParticipantConfig declares a single participant. Either a public key or
// a private key must be given. When both are set they must match.
type ParticipantConfig struct {
	Scheme     crypto.Scheme `json:"scheme"`
	PublicKey  string        `json:"public_key,omitempty"`
	PrivateKey string        `json:"private_key,omitempty"`
	Weight     Weight        `json:"weight"`
}

// LoadConfig reads a JSON encoded configuration file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrConfig, "cannot read %q: %s", path, err)
	}
	var c Config
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, errors.Wrapf(errors.ErrConfig, "cannot decode %q: %s", path, err)
	}
	return &c, nil
}

// Validate returns all configuration problems at once, each as a field
// error.
func (c *Config) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "threshold", c.Threshold.Validate())

	switch n := len(c.Participants); {
	case n == 0:
		errs = errors.AppendField(errs, "participants", errors.Wrap(errors.ErrConfig, "no participants"))
	case n > maxParticipantsAllowed:
		errs = errors.AppendField(errs, "participants",
			errors.Wrapf(errors.ErrConfig, "too many participants: %d > %d", n, maxParticipantsAllowed))
	}

	var total Weight
	seen := make(map[string]int, len(c.Participants))
	for i, p := range c.Participants {
		field := fmt.Sprintf("participants.%d", i)
		errs = errors.AppendField(errs, field+".weight", p.Weight.Validate())
		total += p.Weight

		cred, err := p.credential()
		if err != nil {
			name := field + ".public_key"
			if p.PrivateKey != "" {
				name = field + ".private_key"
			}
			errs = errors.AppendField(errs, name, err)
			continue
		}
		key := string(cred.Raw())
		if j, ok := seen[key]; ok {
			errs = errors.AppendField(errs, field+".public_key",
				errors.Wrapf(errors.ErrConfig, "already listed as participant %d", j))
		}
		seen[key] = i
	}

	if len(c.Participants) != 0 && Weight(c.Threshold) > total {
		errs = errors.AppendField(errs, "threshold",
			errors.Wrapf(errors.ErrConfig, "threshold %d greater than total weight %d", c.Threshold, total))
	}
	return errs
}

func (p ParticipantConfig) credential() (*Credential, error) {
	switch {
	case p.PrivateKey != "":
		cred, err := FromPrivateKeyString(p.Scheme, p.PrivateKey, p.Weight)
		if err != nil {
			return nil, err
		}
		if p.PublicKey != "" {
			pub, err := crypto.ParsePublicKey(p.Scheme, p.PublicKey)
			if err != nil {
				return nil, err
			}
			if !pub.Equals(cred.pub) {
				return nil, errors.Wrap(errors.ErrConfig, "private key does not match public key")
			}
		}
		return cred, nil
	case p.PublicKey != "":
		return FromPublicKeyString(p.Scheme, p.PublicKey, p.Weight)
	default:
		return nil, errors.Wrap(errors.ErrConfig, "public or private key required")
	}
}

// ParticipantSet returns the participant set declared by this configuration.
// Participants declared only by a public key can sign if a matching key is
// found in the keystore.
func (c *Config) ParticipantSet() (*ParticipantSet, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var keystore []*crypto.PrivateKey
	if c.Keystore != "" {
		ks, err := LoadKeystore(c.Keystore)
		if err != nil {
			return nil, err
		}
		keystore = ks
	}

	participants := make([]*Credential, 0, len(c.Participants))
	for i, p := range c.Participants {
		cred, err := p.credential()
		if err != nil {
			return nil, errors.Wrapf(err, "participant %d", i)
		}
		if !cred.HasSigningCapability() {
			for _, key := range keystore {
				if key.PublicKey().Equals(cred.pub) {
					if cred, err = cred.WithSigner(key); err != nil {
						return nil, errors.Wrapf(err, "participant %d", i)
					}
					break
				}
			}
		}
		participants = append(participants, cred)
	}
	return NewParticipantSet(participants, c.Threshold)
}

// LoadKeystore reads a keystore file: a JSON list of base64 encoded
// flag || private key entries.
func LoadKeystore(path string) ([]*crypto.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrConfig, "cannot read keystore %q: %s", path, err)
	}
	var entries []string
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrapf(errors.ErrConfig, "cannot decode keystore %q: %s", path, err)
	}
	keys := make([]*crypto.PrivateKey, 0, len(entries))
	for i, e := range entries {
		// Keystores may hold secp256r1 keys, those cannot be
		// participants and are skipped.
		if raw, err := codec.DecodeBase64(e); err == nil && len(raw) > 0 && crypto.Scheme(raw[0]) == crypto.Secp256r1 {
			continue
		}
		key, err := crypto.ParseKeystoreEntry(e)
		if err != nil {
			return nil, errors.Wrapf(err, "keystore %q entry %d", path, i)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/iov-one/suimsig/crypto"
)

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate a new private key and append it to a keystore file.

The keystore file uses the Sui client format, a JSON list of base64 encoded
keys, so it can be shared with the sui binary. The file is created if it does
not exist. Public key and the single key account address are printed out.
Use the public key in the multisig account configuration.
`)
		fl.PrintDefaults()
	}
	var (
		keystoreFl = fl.String("keystore", env("SUIMSIG_KEYSTORE", suiConfigPath("sui.keystore")),
			"Path to the keystore file. You can use SUIMSIG_KEYSTORE environment variable to set it.")
		schemeFl = fl.String("scheme", "ED25519", "Signature scheme of the key: ED25519 or Secp256k1.")
	)
	fl.Parse(args)

	scheme, err := crypto.ParseScheme(*schemeFl)
	if err != nil {
		flagDie("invalid -scheme: %s", err)
	}

	var entries []string
	switch raw, err := ioutil.ReadFile(*keystoreFl); {
	case os.IsNotExist(err):
	case err != nil:
		return fmt.Errorf("cannot read keystore: %s", err)
	default:
		if err := json.Unmarshal(raw, &entries); err != nil {
			return fmt.Errorf("cannot decode keystore %q: %s", *keystoreFl, err)
		}
	}

	key, err := crypto.GenPrivateKey(scheme)
	if err != nil {
		return fmt.Errorf("cannot generate %s key: %s", scheme, err)
	}
	entries = append(entries, key.KeystoreEntry())

	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot serialize keystore: %s", err)
	}
	if err := ioutil.WriteFile(*keystoreFl, raw, 0600); err != nil {
		return fmt.Errorf("cannot write keystore: %s", err)
	}

	_, err = fmt.Fprintf(output, "%s\t%s\t%s\n", scheme, key.PublicKey(), key.PublicKey().Address())
	return err
}

// flagDie terminates the program when a command flag is invalid.
func flagDie(description string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, description, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(2)
}

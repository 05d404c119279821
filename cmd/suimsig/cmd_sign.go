package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/suimsig/x/multisig"
)

func cmdSign(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read base64 encoded transaction bytes from standard input and sign them as one
of the multisig account participants.

The participant is selected either by its position in the configuration file
or by its public key. The participant must have a private key configured,
directly or through the keystore.

A partial signature is written out as a single line signed envelope.
`)
		fl.PrintDefaults()
	}
	var (
		common        = registerCommonFlags(fl)
		participantFl = fl.Int("participant", -1, "Position of the signing participant, starting with 0.")
		keyFl         = fl.String("key", "", "Base64 encoded public key of the signing participant.")
	)
	fl.Parse(args)

	var sel multisig.Selector
	switch {
	case *participantFl >= 0 && *keyFl != "":
		flagDie("use either -participant or -key")
	case *participantFl >= 0:
		sel = multisig.ByIndex(*participantFl)
	case *keyFl != "":
		sel = multisig.ByKey(*keyFl)
	default:
		flagDie("-participant or -key is required")
	}

	raw, err := readInput(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}
	tx, err := multisig.ParseUnsignedTransaction(raw)
	if err != nil {
		return fmt.Errorf("cannot decode transaction: %s", err)
	}

	coord, _, err := common.coordinator(context.Background(), false)
	if err != nil {
		return err
	}
	partial, err := coord.RequestPartialSignature(tx, sel)
	if err != nil {
		return fmt.Errorf("cannot sign: %s", err)
	}
	env, err := partial.Envelope()
	if err != nil {
		return fmt.Errorf("cannot serialize partial signature: %s", err)
	}
	_, err = fmt.Fprintln(output, env)
	return err
}

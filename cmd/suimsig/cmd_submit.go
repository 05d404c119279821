package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/iov-one/suimsig/codec"
	"github.com/iov-one/suimsig/x/multisig"
)

func cmdSubmit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a signed envelope with a combined signature from standard input and
execute the transaction.

The combined signature is verified against the configured multisig account
before it is sent. Execution receipt is written out as JSON. Use -dry-run to
execute the transaction without committing it.
`)
		fl.PrintDefaults()
	}
	var (
		common    = registerCommonFlags(fl)
		dryRunFl  = fl.Bool("dry-run", false, "Execute the transaction without committing it.")
		timeoutFl = fl.Duration("timeout", time.Minute, "Node request timeout.")
	)
	fl.Parse(args)

	raw, err := readInput(input)
	if err != nil {
		return fmt.Errorf("cannot read signed transaction: %s", err)
	}
	txBytes, rawSig, err := codec.DecodeSignedEnvelope(raw)
	if err != nil {
		return fmt.Errorf("cannot decode signed transaction: %s", err)
	}
	sig, err := multisig.ParseRawCombinedSignature(rawSig)
	if err != nil {
		return fmt.Errorf("cannot decode combined signature: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFl)
	defer cancel()

	coord, cli, err := common.coordinator(ctx, true)
	if err != nil {
		return err
	}
	defer cli.Close()

	if err := coord.Verify(txBytes, sig); err != nil {
		return fmt.Errorf("combined signature does not authorize this transaction: %s", err)
	}

	var receipt *multisig.Receipt
	if *dryRunFl {
		receipt, err = cli.DryRun(ctx, txBytes)
	} else {
		tx := &multisig.UnsignedTransaction{Sender: coord.Address(), Bytes: txBytes}
		receipt, err = coord.Execute(ctx, tx, sig)
	}
	if err != nil {
		return fmt.Errorf("cannot execute transaction: %s", err)
	}

	pretty, err := json.MarshalIndent(receipt, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot serialize receipt: %s", err)
	}
	_, err = fmt.Fprintln(output, string(pretty))
	return err
}

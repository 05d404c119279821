package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/iov-one/suimsig/x/multisig"
)

func cmdBuild(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a transaction template from standard input and build a transaction of the
multisig account using the full node transaction builder.

A template is a JSON object with a name of an unsafe_* builder method and its
params. The sender address must not be included, it is always the multisig
account:

	{"method": "unsafe_paySui", "params": [["0x<coin>"], ["0x<recipient>"], ["1000"], "2000000"]}

Base64 encoded transaction bytes are written out.
`)
		fl.PrintDefaults()
	}
	var (
		common    = registerCommonFlags(fl)
		timeoutFl = fl.Duration("timeout", 30*time.Second, "Node request timeout.")
	)
	fl.Parse(args)

	raw, err := readInput(input)
	if err != nil {
		return fmt.Errorf("cannot read template: %s", err)
	}
	var tmpl multisig.TxTemplate
	if err := json.Unmarshal([]byte(raw), &tmpl); err != nil {
		return fmt.Errorf("cannot decode template: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFl)
	defer cancel()

	coord, cli, err := common.coordinator(ctx, true)
	if err != nil {
		return err
	}
	defer cli.Close()

	tx, err := coord.BuildUnsignedTransaction(ctx, tmpl)
	if err != nil {
		return fmt.Errorf("cannot build transaction: %s", err)
	}
	_, err = fmt.Fprintln(output, tx)
	return err
}

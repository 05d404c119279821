package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/suimsig/codec"
	"github.com/iov-one/suimsig/x/multisig"
)

func cmdCombine(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read partial signatures, one signed envelope per line, from standard input
and combine them into a multisig signature.

All partial signatures must sign the same transaction and each participant
can sign only once. Combination fails if the weight of the signers is lower
than the threshold.

The transaction together with the combined signature is written out as
a signed envelope, ready to be submitted.
`)
		fl.PrintDefaults()
	}
	common := registerCommonFlags(fl)
	fl.Parse(args)

	lines, err := readLines(input)
	if err != nil {
		return fmt.Errorf("cannot read partial signatures: %s", err)
	}
	if len(lines) == 0 {
		return fmt.Errorf("no partial signatures")
	}

	coord, _, err := common.coordinator(context.Background(), false)
	if err != nil {
		return err
	}

	var collector *multisig.Collector
	for i, line := range lines {
		partial, err := multisig.ParsePartialSignature(line)
		if err != nil {
			return fmt.Errorf("cannot decode partial signature %d: %s", i, err)
		}
		if collector == nil {
			collector, err = coord.NewCollector(&multisig.UnsignedTransaction{Bytes: partial.TxBytes})
			if err != nil {
				return fmt.Errorf("cannot collect signatures: %s", err)
			}
		}
		if _, err := collector.Add(partial); err != nil {
			return fmt.Errorf("invalid partial signature %d: %s", i, err)
		}
	}

	combined, err := collector.Combine()
	if err != nil {
		return fmt.Errorf("cannot combine signatures: %s", err)
	}
	env, err := codec.EncodeSignedEnvelope(collector.Transaction().Bytes, combined.Serialize())
	if err != nil {
		return fmt.Errorf("cannot serialize signed transaction: %s", err)
	}
	_, err = fmt.Fprintln(output, env)
	return err
}

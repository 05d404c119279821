package main

import (
	"context"
	"flag"
	"fmt"
	"io"
)

func cmdAddress(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the address of the multisig account declared in the configuration
file.

The address depends on every participant key, weight, their order and the
threshold. Use -participants to list them together with the information
whether this host can sign for each of them.
`)
		fl.PrintDefaults()
	}
	var (
		common         = registerCommonFlags(fl)
		participantsFl = fl.Bool("participants", false, "List participants.")
	)
	fl.Parse(args)

	coord, _, err := common.coordinator(context.Background(), false)
	if err != nil {
		return err
	}
	fmt.Fprintln(output, coord.Address())

	if *participantsFl {
		set := coord.Participants()
		for i, p := range set.Participants() {
			sign := "-"
			if p.HasSigningCapability() {
				sign = "can sign"
			}
			fmt.Fprintf(output, "%d\t%s\t%d\t%s\n", i, p.PublicKey(), p.Weight(), sign)
		}
		fmt.Fprintf(output, "threshold %d of %d\n", set.Threshold(), set.TotalWeight())
	}
	return nil
}

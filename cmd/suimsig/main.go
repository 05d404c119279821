package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/iov-one/suimsig"
)

// commands is a register of all availables commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// A command function is an independent runable that is taking input and output
// being stdin and stdout. Given args are the command line arguments, without
// the program name, that should be parsed using the flag package. Log
// messages are written to os.Stderr.
//
// Commands can be combined into a pipeline. Partial signatures are
// exchanged as single line signed envelopes, so any channel that can carry
// text can be used to collect them:
//
//	$ echo '{"method": "unsafe_paySui", "params": [...]}' \
//	    | suimsig build > tx.b64
//	$ suimsig sign -participant 0 < tx.b64 >> partials
//	$ suimsig sign -participant 2 < tx.b64 >> partials
//	$ suimsig combine < partials | suimsig submit
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"address": cmdAddress,
	"build":   cmdBuild,
	"combine": cmdCombine,
	"keygen":  cmdKeygen,
	"sign":    cmdSign,
	"submit":  cmdSubmit,
	"version": cmdVersion,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s coordinates weighted threshold multisig accounts on the Sui ledger.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	// Skip two first arguments. Second argument is the command name that
	// we just consumed.
	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	_, err := fmt.Fprintln(out, suimsig.Version())
	return err
}

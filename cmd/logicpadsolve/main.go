// Command logicpadsolve reads one puzzle request (spec section 6's wire
// schema) from stdin and writes the solved response to stdout. It stands in
// for the FFI shim the core specification keeps out of scope: a host
// embeds package logicpad directly; this binary is the stdio-driven
// equivalent for scripting and manual testing.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	logicpad "github.com/semiexp/logicpad-solver"
)

func main() {
	underclued := flag.Bool("underclued", false, "return irrefutable facts instead of one decided solution")
	verbose := flag.Bool("verbose", false, "log compile/solve lifecycle events to stderr")
	flag.Parse()

	req, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logicpadsolve: reading request:", err)
		os.Exit(1)
	}

	var opts []logicpad.Option
	if *verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		opts = append(opts, logicpad.WithLogger(logger), logicpad.WithAnswerKeyLogging(true))
	}

	out := logicpad.Solve(context.Background(), req, *underclued, opts...)
	os.Stdout.Write(out)
	fmt.Println()
}

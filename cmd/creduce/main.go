// Command creduce is a C-aware program reducer: given an oracle script
// and a C source file, it repeatedly applies small syntactic
// transformations to shrink the source while preserving whatever
// property the oracle checks for.
package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"creduce/internal/cli"
)

func main() {
	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	exitCode := cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args, env, sigCh, cli.NewProductionRunner)

	os.Exit(exitCode)
}

// Package cli implements the creduce command-line surface: global flags,
// dynamic per-method flags sourced from the reduction engine's registry,
// and the signal-aware run loop, adapted from the teacher's
// internal/cli Run/Command pattern.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"creduce/internal/config"
	"creduce/internal/reduce"
	"creduce/internal/reduce/rexec"
	"creduce/internal/rfs"
)

// RunnerFactory builds the [rexec.Runner] used to invoke the oracle and
// pretty-printer. cmd/creduce passes one that optionally wraps the real
// runner with interactive stepping; tests pass one that returns a fake.
type RunnerFactory func(interactive bool) rexec.Runner

// Run is the process entry point's logic: parse flags, load
// configuration, drive a reduction to a fixpoint, and report the result.
// Returns the process exit code. sigCh may be nil (no signal handling,
// as in tests).
func Run(_ io.Reader, out, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal, newRunner RunnerFactory) int {
	flags := flag.NewFlagSet("creduce", flag.ContinueOnError)
	flags.SetInterspersed(true)
	flags.Usage = func() {}
	flags.SetOutput(&strings.Builder{})

	flagHelp := flags.BoolP("help", "h", false, "Show help")
	flagVerbose := flags.BoolP("verbose", "v", false, "Print one line per trial to stderr")
	flagCwd := flags.StringP("cwd", "C", "", "Run as if started in `dir`")
	flagConfig := flags.StringP("config", "c", "", "Use specified config `file`")
	flagDebug := flags.Bool("debug", false, "Write delta_tmp_<trial>.c for every trial")
	flagStatsJSON := flags.String("stats-json", "", "Write final statistics as JSON to `path`")
	flagInteractive := flags.Bool("interactive", false, "Prompt accept/reject/auto on each oracle verdict")
	flagAll := flags.Bool("all", false, "Enable every registered method")

	registry := reduce.NewRegistry()
	methodFlags := make(map[string]*bool, len(reduce.AllMethodNames()))

	for _, name := range reduce.AllMethodNames() {
		methodFlags[name] = flags.Bool(name, false, fmt.Sprintf("Enable the %s method", name))
	}

	if err := flags.Parse(args[1:]); err != nil {
		fprintln(errOut, "error:", err)
		printUsage(errOut, flags)

		return 1
	}

	if *flagHelp {
		printUsage(out, flags)

		return 0
	}

	positional := flags.Args()
	if len(positional) != 2 {
		fprintln(errOut, "error: expected exactly <oracle_script> <cfile>")
		printUsage(errOut, flags)

		return 1
	}

	oracleScript, cfile := positional[0], positional[1]

	workDir := *flagCwd
	if workDir == "" {
		workDir = filepath.Dir(cfile)
	}

	cfg, err := config.Load(config.LoadInput{WorkDir: workDir, ConfigPath: *flagConfig, Env: env})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	methodNames := selectedMethods(flags, *flagAll, methodFlags, cfg.DefaultMethods)
	if len(methodNames) == 0 {
		fprintln(errOut, "error:", reduce.ErrNoMethodsEnabled)
		printUsage(errOut, flags)

		return 1
	}

	methods, err := registry.Enabled(methodNames)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	runner := newRunner(*flagInteractive)
	if closer, ok := runner.(io.Closer); ok {
		defer closer.Close()
	}

	if err := runner.CheckExecutable(oracleScript); err != nil {
		fprintln(errOut, "error:", err)
		printUsage(errOut, flags)

		return 1
	}

	reporter := reduce.Reporter(reduce.NullReporter{})
	if *flagVerbose {
		reporter = &reduce.TextReporter{W: errOut}
	}

	dirBase := filepath.Dir(cfile)
	if dirBase == "" {
		dirBase = "."
	}

	engine, err := reduce.NewEngine(reduce.EngineConfig{
		FS:     rfs.NewReal(),
		Runner: runner,
		Paths: reduce.Paths{
			CFile:   cfile,
			Backup:  cfile + ".bak",
			Orig:    cfile + ".orig",
			DirBase: dirBase,
		},
		OracleScript: oracleScript,
		IndentPath:   cfg.IndentPath,
		Reporter:     reporter,
		Debug:        cfg.Debug || *flagDebug,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	driver := reduce.NewDriver(engine, methods)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)

	go func() { done <- driver.Run(ctx) }()

	var runErr error

	select {
	case runErr = <-done:
	case <-sigCh:
		fprintln(errOut, "shutting down after in-flight trial...")
		cancel()

		select {
		case runErr = <-done:
		case <-time.After(5 * time.Second):
			fprintln(errOut, "graceful shutdown timed out, forced exit (130)")

			return 130
		case <-sigCh:
			fprintln(errOut, "graceful shutdown interrupted, forced exit (130)")

			return 130
		}
	}

	reporter.Finished(engine.Stats(), engine.Buffer().Len())

	if *flagStatsJSON != "" {
		if err := writeStatsJSON(*flagStatsJSON, engine.Stats(), engine.Buffer().Len()); err != nil {
			fprintln(errOut, "error:", err)

			return 1
		}
	}

	if runErr != nil {
		fprintln(errOut, "error:", runErr)

		return 1
	}

	fmt.Fprintln(out, "done:", cfile)

	return 0
}

// selectedMethods resolves the enabled method set: --all beats any
// individual --<method> flag, which beats the config file's
// default_methods.
func selectedMethods(flags *flag.FlagSet, all bool, methodFlags map[string]*bool, defaults []string) []string {
	if all {
		return reduce.AllMethodNames()
	}

	var names []string

	for name, enabled := range methodFlags {
		if *enabled {
			names = append(names, name)
		}
	}

	if len(names) > 0 {
		sort.Strings(names)

		return names
	}

	return defaults
}

func writeStatsJSON(path string, stats *reduce.Stats, finalLength int) error {
	data, err := json.MarshalIndent(stats.Snapshot(finalLength), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling stats: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

const usageHeader = `creduce - a C-aware delta-debugging source reducer

Usage: creduce [flags] <oracle_script> <cfile> (--all | --<method>)+

Flags:`

func printUsage(w io.Writer, flags *flag.FlagSet) {
	fprintln(w, usageHeader)

	var buf strings.Builder
	flags.SetOutput(&buf)
	flags.PrintDefaults()
	fmt.Fprint(w, buf.String())
}

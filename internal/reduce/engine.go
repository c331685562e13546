package reduce

import (
	"context"
	"fmt"

	"creduce/internal/rfs"
	"creduce/internal/reduce/rexec"
)

// Paths bundles the file paths the engine owns exclusively for the
// duration of a run.
type Paths struct {
	CFile   string // the working file under trial
	Backup  string // <cfile>.bak
	Orig    string // <cfile>.orig
	DirBase string // directory for delta_backup_<pass>.c / delta_tmp_<trial>.c
}

// Engine bundles everything a [Method]'s tryAt function needs: the
// Buffer, the oracle harness protocol, and the funcs-seen/position
// bookkeeping a handful of methods require. It is the explicit reducer
// context passed to every method, in place of process-wide global state.
type Engine struct {
	buf      *Buffer
	fsys     rfs.FS
	runner   rexec.Runner
	cache    *trialCache
	stats    *Stats
	reporter Reporter
	paths    Paths

	oracleScript string
	indentPath   string
	indentArgs   []string

	oldLength int
	debug     bool
	outerPass int
	trialNum  int

	// funcsSeen is del_args' "once per function name" bookkeeping.
	funcsSeen map[string]bool

	// lastFatal carries a fatal error out of a [Method.tryAt] call, whose
	// signature returns only a bool. The driver checks it after every
	// position and stops the run.
	lastFatal error
}

// EngineConfig configures a new [Engine].
type EngineConfig struct {
	FS           rfs.FS
	Runner       rexec.Runner
	Paths        Paths
	OracleScript string
	IndentPath   string
	IndentArgs   []string
	Reporter     Reporter
	Debug        bool
}

// NewEngine loads cfile through fsys and returns an [Engine] ready to
// drive reductions against it. The loaded content also becomes the
// initial backup and orig snapshots.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	buf, err := LoadBuffer(cfg.FS, cfg.Paths.CFile)
	if err != nil {
		return nil, fatalf("loading %s: %w", cfg.Paths.CFile, err)
	}

	if err := cfg.FS.WriteFileAtomic(cfg.Paths.Orig, buf.Bytes(), 0o644); err != nil {
		return nil, fatalf("writing %s: %w", cfg.Paths.Orig, err)
	}

	if err := cfg.FS.WriteFileAtomic(cfg.Paths.Backup, buf.Bytes(), 0o644); err != nil {
		return nil, fatalf("writing %s: %w", cfg.Paths.Backup, err)
	}

	reporter := cfg.Reporter
	if reporter == nil {
		reporter = NullReporter{}
	}

	return &Engine{
		buf:          buf,
		fsys:         cfg.FS,
		runner:       cfg.Runner,
		cache:        newTrialCache(),
		stats:        NewStats(buf.Len()),
		reporter:     reporter,
		paths:        cfg.Paths,
		oracleScript: cfg.OracleScript,
		indentPath:   cfg.IndentPath,
		indentArgs:   cfg.IndentArgs,
		oldLength:    buf.Len(),
		debug:        cfg.Debug,
		funcsSeen:    map[string]bool{},
	}, nil
}

// Buffer returns the engine's live buffer. Methods mutate it directly via
// [Buffer.Splice] before calling [Engine.Trial].
func (e *Engine) Buffer() *Buffer { return e.buf }

// IndentPath and IndentArgs expose the configured pretty-printer
// invocation. The indent method uses IndentPath with its own fixed
// option set; it does not read IndentArgs.
func (e *Engine) IndentPath() string   { return e.indentPath }
func (e *Engine) IndentArgs() []string { return e.indentArgs }

// CFilePath returns the path of the working file under trial, for methods
// (indent) that need to hand it to an external tool directly.
func (e *Engine) CFilePath() string { return e.paths.CFile }

// FS returns the engine's filesystem abstraction.
func (e *Engine) FS() rfs.FS { return e.fsys }

// Runner returns the engine's external-process runner.
func (e *Engine) Runner() rexec.Runner { return e.runner }

// Stats returns the run's statistics accumulator, with the trial cache's
// hit count folded in.
func (e *Engine) Stats() *Stats {
	e.stats.SetCacheHits(e.cache.hitCount())
	return e.stats
}

// ResetFuncsSeen clears the once-per-function bookkeeping; called once at
// the start of every method pass.
func (e *Engine) ResetFuncsSeen() {
	e.funcsSeen = map[string]bool{}
}

// FuncSeen reports whether name has already been recorded this pass, and
// records it if not. Used by del_args.
func (e *Engine) FuncSeen(name string) bool {
	if e.funcsSeen[name] {
		return true
	}

	e.funcsSeen[name] = true

	return false
}

// SanityCheck runs the oracle on the current backup file. It is called
// at the start of each per-method pass; a failure here is fatal.
func (e *Engine) SanityCheck(ctx context.Context) error {
	ok, err := e.runner.RunOracle(ctx, e.paths.Backup)
	if err != nil {
		return fatal(err)
	}

	if !ok {
		return fatal(ErrSanityCheckFailed)
	}

	return nil
}

// SnapshotPass writes delta_backup_<pass>.c, the per-outer-pass snapshot
// of the buffer as committed so far.
func (e *Engine) SnapshotPass(outerPass int) error {
	e.outerPass = outerPass
	path := fmt.Sprintf("%s/delta_backup_%d.c", e.paths.DirBase, outerPass)

	if err := e.fsys.WriteFileAtomic(path, e.buf.Bytes(), 0o644); err != nil {
		return fatal(err)
	}

	return nil
}

// Trial implements the oracle harness protocol against whatever edit the
// caller already applied in place via
// [Buffer.Splice]. method names the calling method for statistics and
// progress reporting; pos is the buffer position the caller is trying,
// used only for the progress line; okToEnlarge documents whether this
// particular edit is allowed to grow the buffer.
//
// On return the buffer reflects either the committed new state (accept)
// or the prior committed state (reject) -- callers never need to revert
// manually.
func (e *Engine) Trial(ctx context.Context, method string, pos int, okToEnlarge bool) (accepted bool, err error) {
	e.trialNum++

	text := e.buf.String()

	if verdict, found := e.cache.lookup(text); found {
		// Cache hits, success or failure, both count as rejects: a
		// repeated success yields no progress, and reverting keeps the
		// driver moving forward.
		_ = verdict

		if err := e.restoreFromBackup(); err != nil {
			return false, fatal(err)
		}

		e.stats.RecordMethod(method, false)
		e.reporter.Trial(e.outerPass, method, pos, e.buf.Len(), e.stats.MethodSuccesses(method), e.stats.MethodFailures(method), false, 0)

		return false, nil
	}

	if err := e.buf.Save(e.fsys, e.paths.CFile); err != nil {
		return false, fatal(err)
	}

	if e.debug {
		tmpPath := fmt.Sprintf("%s/delta_tmp_%d.c", e.paths.DirBase, e.trialNum)
		_ = e.fsys.WriteFile(tmpPath, e.buf.Bytes(), 0o644)
	}

	interesting, err := e.runner.RunOracle(ctx, e.paths.CFile)
	if err != nil {
		return false, fatal(err)
	}

	e.cache.record(text, interesting)

	if !interesting {
		if err := e.restoreFromBackup(); err != nil {
			return false, fatal(err)
		}

		e.stats.RecordMethod(method, false)
		e.reporter.Trial(e.outerPass, method, pos, e.buf.Len(), e.stats.MethodSuccesses(method), e.stats.MethodFailures(method), false, 0)

		return false, nil
	}

	data, err := e.fsys.ReadFile(e.paths.CFile)
	if err != nil {
		return false, fatal(err)
	}

	if err := e.fsys.WriteFileAtomic(e.paths.Backup, data, 0o644); err != nil {
		return false, fatal(err)
	}

	newLength := e.buf.Len()

	if newLength > e.oldLength && !okToEnlarge {
		return false, fatalf("%w: method=%s old=%d new=%d", ErrContractViolation, method, e.oldLength, newLength)
	}

	if newLength < e.oldLength {
		e.cache.clear()
	}

	e.oldLength = newLength

	e.stats.RecordMethod(method, true)
	percent := e.stats.PercentReduction(newLength)
	e.reporter.Trial(e.outerPass, method, pos, newLength, e.stats.MethodSuccesses(method), e.stats.MethodFailures(method), true, percent)

	return true, nil
}

// restoreFromBackup copies the backup file over the working file and
// reloads the in-memory buffer from it.
func (e *Engine) restoreFromBackup() error {
	data, err := e.fsys.ReadFile(e.paths.Backup)
	if err != nil {
		return err
	}

	if err := e.fsys.WriteFile(e.paths.CFile, data, 0o644); err != nil {
		return err
	}

	e.buf.Reset(data)

	return nil
}

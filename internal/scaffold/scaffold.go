// Package scaffold creates the per-day directory skeleton for an
// advent-of-code style solutions repository.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/aockit/aocgen/internal/config"
	"github.com/aockit/aocgen/internal/logger"
)

const (
	dirMode  = 0o755
	fileMode = 0o644

	// InputFileName is the placeholder for the real puzzle input.
	InputFileName = "input.txt"
	// TestInputFileName is the placeholder for the example input.
	TestInputFileName = "test_input.txt"
)

// OpKind discriminates the two filesystem operations a scaffold performs.
type OpKind int

const (
	OpMkdir OpKind = iota
	OpTouch
)

func (k OpKind) String() string {
	switch k {
	case OpMkdir:
		return "mkdir"
	case OpTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// Op describes one step in the fixed scaffold sequence.
type Op struct {
	Kind OpKind
	Path string
}

// StepError records a failed step. Failed steps never abort the sequence.
type StepError struct {
	Op  Op
	Err error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op.Kind, e.Op.Path, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Report lists what a run produced.
type Report struct {
	// Dirs are the directories that exist after the run.
	Dirs []string
	// Files are the files that exist after the run.
	Files []string
	// Created are the files this run created (as opposed to found).
	Created []string
	// Failures are the steps that could not be completed.
	Failures []*StepError
}

// Failed reports whether any step failed.
func (r *Report) Failed() bool { return len(r.Failures) > 0 }

// CreatedFresh reports whether path was created by this run.
func (r *Report) CreatedFresh(path string) bool {
	return slices.Contains(r.Created, path)
}

// Scaffolder performs the filesystem operations for one day of the
// exercise series. All paths are resolved against baseDir.
type Scaffolder struct {
	layout  *config.Layout
	baseDir string
}

// New creates a Scaffolder for the given layout rooted at baseDir.
// An empty baseDir means the current working directory.
func New(layout *config.Layout, baseDir string) *Scaffolder {
	if baseDir == "" {
		baseDir = "."
	}
	return &Scaffolder{layout: layout, baseDir: baseDir}
}

func (s *Scaffolder) dayName(day string) string {
	return s.layout.DirPrefix + day
}

// DataDir returns the per-day input data directory.
func (s *Scaffolder) DataDir(day string) string {
	return filepath.Join(s.baseDir, s.layout.DataRoot, s.dayName(day))
}

// SolutionDir returns the per-day solution source directory.
func (s *Scaffolder) SolutionDir(day string) string {
	return filepath.Join(s.baseDir, s.layout.SolutionsRoot, s.dayName(day))
}

// SolutionFile returns the path of the solution source file for day,
// with base used verbatim as the file stem.
func (s *Scaffolder) SolutionFile(day, base string) string {
	return filepath.Join(s.SolutionDir(day), base+"."+s.layout.Extension)
}

// Plan returns the fixed operation sequence for day/base, in the order
// Run would execute it.
func (s *Scaffolder) Plan(day, base string) []Op {
	dataDir := s.DataDir(day)
	return []Op{
		{Kind: OpMkdir, Path: dataDir},
		{Kind: OpTouch, Path: filepath.Join(dataDir, InputFileName)},
		{Kind: OpTouch, Path: filepath.Join(dataDir, TestInputFileName)},
		{Kind: OpMkdir, Path: s.SolutionDir(day)},
		{Kind: OpTouch, Path: s.SolutionFile(day, base)},
	}
}

// Run executes the scaffold sequence. A failed step is recorded in the
// report and the remaining steps still run. Touched files that already
// exist are left unmodified.
func (s *Scaffolder) Run(day, base string) *Report {
	report := &Report{}

	for _, op := range s.Plan(day, base) {
		var (
			created bool
			err     error
		)
		switch op.Kind {
		case OpMkdir:
			err = os.MkdirAll(op.Path, dirMode)
		case OpTouch:
			created, err = touch(op.Path)
		}

		if err != nil {
			logger.Warn().Err(err).Str("path", op.Path).Msg("scaffold step failed")
			report.Failures = append(report.Failures, &StepError{Op: op, Err: err})
			continue
		}

		switch op.Kind {
		case OpMkdir:
			report.Dirs = append(report.Dirs, op.Path)
		case OpTouch:
			report.Files = append(report.Files, op.Path)
			if created {
				report.Created = append(report.Created, op.Path)
			}
		}
	}

	return report
}

// touch ensures the file at path exists without truncating existing
// content. Returns whether this call created the file.
func touch(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if err == nil {
		return true, f.Close()
	}
	if os.IsExist(err) {
		return false, nil
	}
	return false, err
}

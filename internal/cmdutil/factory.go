package cmdutil

import (
	"github.com/aockit/aocgen/internal/config"
	"github.com/aockit/aocgen/internal/iostreams"
)

// Factory provides shared dependencies for CLI commands.
// It is a dependency injection container: the struct defines what
// dependencies exist (the contract), while internal/cmd/factory
// wires the real implementations.
//
// Closure fields are set by the factory constructor and use lazy
// initialization internally. Commands extract only the fields they
// need into per-command Options structs.
type Factory struct {
	// WorkDir is the directory scaffolded paths are resolved against.
	WorkDir string
	Debug   bool

	// Version info (set at build time via ldflags)
	Version   string
	BuildDate string

	// IO streams for input/output (for testability)
	IOStreams *iostreams.IOStreams

	// Dependency providers (closures wired by factory constructor)
	LayoutResolver func() *config.Resolver
	Layout         func() (*config.Layout, error)
	ResetLayout    func()
}

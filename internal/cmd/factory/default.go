package factory

import (
	"os"
	"sync"

	"github.com/aockit/aocgen/internal/cmdutil"
	"github.com/aockit/aocgen/internal/config"
	"github.com/aockit/aocgen/internal/iostreams"
)

// New creates a fully-wired Factory with lazy-initialized dependency
// closures. Called exactly once at the CLI entry point. Tests should NOT
// import this package — construct &cmdutil.Factory{} directly.
func New(version, buildDate string) *cmdutil.Factory {
	ios := iostreams.NewIOStreams()

	// Auto-detect color support
	if ios.IsOutputTTY() {
		// Respect NO_COLOR environment variable
		if os.Getenv("NO_COLOR") != "" {
			ios.SetColorEnabled(false)
		}
	} else {
		ios.SetColorEnabled(false)
	}

	f := &cmdutil.Factory{
		WorkDir:   ".",
		Version:   version,
		BuildDate: buildDate,
		IOStreams: ios,
	}

	// --- Lazy dependency closures ---

	var (
		resolverOnce sync.Once
		resolver     *config.Resolver
	)
	f.LayoutResolver = func() *config.Resolver {
		resolverOnce.Do(func() {
			resolver = config.NewResolver()
		})
		return resolver
	}

	var (
		layout    *config.Layout
		layoutErr error
	)
	f.Layout = func() (*config.Layout, error) {
		if layout != nil || layoutErr != nil {
			return layout, layoutErr
		}
		layout, layoutErr = f.LayoutResolver().Resolve()
		return layout, layoutErr
	}
	f.ResetLayout = func() {
		layout = nil
		layoutErr = nil
	}

	return f
}

// Package config resolves the directory layout the scaffolder targets.
package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultDataRoot is the directory that holds per-day puzzle inputs.
	DefaultDataRoot = "data"
	// DefaultSolutionsRoot is the directory that holds per-day solution sources.
	DefaultSolutionsRoot = "advent_of_code_2023"
	// DefaultExtension is the extension of created solution files.
	DefaultExtension = "py"
	// DayDirPrefix prefixes every per-day directory name.
	DayDirPrefix = "day_"

	// EnvPrefix namespaces environment overrides (AOCGEN_DATA_ROOT, ...).
	EnvPrefix = "AOCGEN"
)

// Layout names the directories and file extension the scaffolder targets.
// The defaults reproduce the advent-of-code repository layout this tool
// was written for: inputs under data/day_<n>/, solutions under
// advent_of_code_2023/day_<n>/<name>.py.
type Layout struct {
	DataRoot      string `mapstructure:"data_root" yaml:"data_root"`
	SolutionsRoot string `mapstructure:"solutions_root" yaml:"solutions_root"`
	Extension     string `mapstructure:"ext" yaml:"ext"`
	DirPrefix     string `mapstructure:"dir_prefix" yaml:"dir_prefix"`
}

// DefaultLayout returns the baked-in layout.
func DefaultLayout() *Layout {
	return &Layout{
		DataRoot:      DefaultDataRoot,
		SolutionsRoot: DefaultSolutionsRoot,
		Extension:     DefaultExtension,
		DirPrefix:     DayDirPrefix,
	}
}

// Resolver resolves the effective layout from defaults, AOCGEN_* environment
// variables, and bound command-line flags, in increasing precedence.
// No configuration file is read; the layout is invocation-scoped.
type Resolver struct {
	viper *viper.Viper
}

// NewResolver creates a resolver seeded with the default layout.
func NewResolver() *Resolver {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultLayout()
	v.SetDefault("data_root", defaults.DataRoot)
	v.SetDefault("solutions_root", defaults.SolutionsRoot)
	v.SetDefault("ext", defaults.Extension)
	v.SetDefault("dir_prefix", defaults.DirPrefix)

	return &Resolver{viper: v}
}

// BindFlags binds the layout override flags so that explicitly set flags win
// over environment variables. Flags not registered on fs are skipped, which
// lets subcommands without override flags share the resolver.
func (r *Resolver) BindFlags(fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"data_root":      "data-root",
		"solutions_root": "solutions-root",
		"ext":            "ext",
	}
	for key, name := range bindings {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := r.viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}
	return nil
}

// Resolve unmarshals the effective layout.
func (r *Resolver) Resolve() (*Layout, error) {
	var layout Layout
	if err := r.viper.Unmarshal(&layout, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to resolve layout: %w", err)
	}
	return &layout, nil
}

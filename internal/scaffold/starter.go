package scaffold

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed starter.tmpl
var starterTemplate string

// starterData feeds the starter template.
type starterData struct {
	Day       string
	InputPath string
}

// SupportsStarter reports whether the layout's extension has a starter
// template. Only Python solution files are seeded.
func (s *Scaffolder) SupportsStarter() bool {
	return s.layout.Extension == "py"
}

// WriteStarter renders the starter stub into the solution file for
// day/base. Callers must only target files freshly created by Run; an
// existing user file is never meant to be rewritten.
func (s *Scaffolder) WriteStarter(day, base string) error {
	if !s.SupportsStarter() {
		return fmt.Errorf("no starter template for .%s files", s.layout.Extension)
	}

	tmpl, err := template.New("starter").Parse(starterTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse starter template: %w", err)
	}

	data := starterData{
		Day: day,
		// The stub is run from the repository root, so the input path is
		// relative to it regardless of baseDir.
		InputPath: filepath.ToSlash(filepath.Join(s.layout.DataRoot, s.dayName(day), InputFileName)),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render starter template: %w", err)
	}

	if err := os.WriteFile(s.SolutionFile(day, base), buf.Bytes(), fileMode); err != nil {
		return fmt.Errorf("failed to write starter stub: %w", err)
	}
	return nil
}

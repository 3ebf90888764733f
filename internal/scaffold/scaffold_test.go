package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aockit/aocgen/internal/config"
)

func requireEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err, "expected %s to exist", path)
	require.Zero(t, info.Size(), "expected %s to be empty", path)
}

func TestPlan(t *testing.T) {
	s := New(config.DefaultLayout(), "base")

	ops := s.Plan("5", "solution")
	require.Equal(t, []Op{
		{Kind: OpMkdir, Path: filepath.Join("base", "data", "day_5")},
		{Kind: OpTouch, Path: filepath.Join("base", "data", "day_5", "input.txt")},
		{Kind: OpTouch, Path: filepath.Join("base", "data", "day_5", "test_input.txt")},
		{Kind: OpMkdir, Path: filepath.Join("base", "advent_of_code_2023", "day_5")},
		{Kind: OpTouch, Path: filepath.Join("base", "advent_of_code_2023", "day_5", "solution.py")},
	}, ops)
}

func TestSolutionFile_TokensVerbatim(t *testing.T) {
	s := New(config.DefaultLayout(), "base")

	got := s.SolutionFile("05b", "my file")
	require.Equal(t, filepath.Join("base", "advent_of_code_2023", "day_05b", "my file.py"), got)
}

func TestRun_CreatesSkeleton(t *testing.T) {
	base := t.TempDir()
	s := New(config.DefaultLayout(), base)

	report := s.Run("5", "solution")
	require.False(t, report.Failed())
	require.Len(t, report.Dirs, 2)
	require.Len(t, report.Files, 3)
	require.Len(t, report.Created, 3)

	requireEmptyFile(t, filepath.Join(base, "data", "day_5", "input.txt"))
	requireEmptyFile(t, filepath.Join(base, "data", "day_5", "test_input.txt"))
	requireEmptyFile(t, filepath.Join(base, "advent_of_code_2023", "day_5", "solution.py"))
}

func TestRun_TouchPreservesContent(t *testing.T) {
	base := t.TempDir()
	s := New(config.DefaultLayout(), base)

	report := s.Run("5", "solution")
	require.False(t, report.Failed())

	inputPath := filepath.Join(base, "data", "day_5", "input.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("199\n200\n"), 0o644))
	siblingPath := filepath.Join(base, "data", "day_5", "scratch.txt")
	require.NoError(t, os.WriteFile(siblingPath, []byte("notes"), 0o644))

	report = s.Run("5", "solution")
	require.False(t, report.Failed())
	require.Empty(t, report.Created, "rerun must not report existing files as created")
	require.Len(t, report.Files, 3)

	content, err := os.ReadFile(inputPath)
	require.NoError(t, err)
	require.Equal(t, "199\n200\n", string(content))

	_, err = os.Stat(siblingPath)
	require.NoError(t, err, "rerun must not disturb sibling files")
}

func TestRun_ContinuesAfterFailure(t *testing.T) {
	base := t.TempDir()

	// A regular file at the data root makes every data-side step fail.
	require.NoError(t, os.WriteFile(filepath.Join(base, "data"), []byte("occupied"), 0o644))

	s := New(config.DefaultLayout(), base)
	report := s.Run("5", "solution")

	require.True(t, report.Failed())
	require.Len(t, report.Failures, 3)
	for _, failure := range report.Failures {
		require.Error(t, failure.Err)
		require.Contains(t, failure.Error(), failure.Op.Path)
	}

	// The solutions side of the fixed sequence still ran to completion.
	requireEmptyFile(t, filepath.Join(base, "advent_of_code_2023", "day_5", "solution.py"))
}

func TestRun_CreatedFresh(t *testing.T) {
	base := t.TempDir()
	s := New(config.DefaultLayout(), base)

	report := s.Run("7", "solution")
	require.True(t, report.CreatedFresh(s.SolutionFile("7", "solution")))

	report = s.Run("7", "solution")
	require.False(t, report.CreatedFresh(s.SolutionFile("7", "solution")))
}

func TestRun_CustomLayout(t *testing.T) {
	base := t.TempDir()
	layout := &config.Layout{
		DataRoot:      "inputs",
		SolutionsRoot: "src",
		Extension:     "go",
		DirPrefix:     "day_",
	}

	report := New(layout, base).Run("12", "main")
	require.False(t, report.Failed())

	requireEmptyFile(t, filepath.Join(base, "inputs", "day_12", "input.txt"))
	requireEmptyFile(t, filepath.Join(base, "src", "day_12", "main.go"))
}

func TestOpKindString(t *testing.T) {
	require.Equal(t, "mkdir", OpMkdir.String())
	require.Equal(t, "touch", OpTouch.String())
}

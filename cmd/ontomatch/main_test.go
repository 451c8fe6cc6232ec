package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/ontomatch/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestAppArguments(t *testing.T) {
	t.Run("missing positional arguments", func(t *testing.T) {
		err := newApp().Run([]string{"ontomatch"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vocab-file")
	})

	t.Run("one positional argument", func(t *testing.T) {
		err := newApp().Run([]string{"ontomatch", "vocab.obo"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "got 1")
	})

	t.Run("malformed condition fails before loading", func(t *testing.T) {
		err := newApp().Run([]string{
			"ontomatch", "-c", "nocolon", "vocab.obo", "queries.txt",
		})
		assert.ErrorIs(t, err, match.ErrInvalidCondition)
	})

	t.Run("missing vocabulary file", func(t *testing.T) {
		err := newApp().Run([]string{
			"ontomatch",
			filepath.Join(t.TempDir(), "absent.obo"),
			"queries.txt",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load vocabulary")
	})
}

func TestAppEndToEnd(t *testing.T) {
	dir := t.TempDir()

	vocabPath := filepath.Join(dir, "vocab.obo")
	require.NoError(t, os.WriteFile(vocabPath, []byte(`[Term]
id: DOID:1612
name: breast cancer
synonym: "mammary cancer" EXACT []
`), 0644))

	queryPath := filepath.Join(dir, "queries.txt")
	require.NoError(t, os.WriteFile(queryPath, []byte("breast cancer\n\nno such thing\n"), 0644))

	// Output goes to the process stdout; this exercises the full pipeline
	// and only asserts that the run succeeds.
	err := newApp().Run([]string{"ontomatch", vocabPath, queryPath})
	require.NoError(t, err)
}

func TestAppFlags(t *testing.T) {
	app := newApp()

	flagByName := func(name string) cli.Flag {
		for _, f := range app.Flags {
			for _, n := range f.Names() {
				if n == name {
					return f
				}
			}
		}
		return nil
	}

	t.Run("condition has alias -c", func(t *testing.T) {
		f, ok := flagByName("condition").(*cli.StringFlag)
		require.True(t, ok)
		assert.Contains(t, f.Aliases, "c")
	})

	t.Run("batch-size default", func(t *testing.T) {
		f, ok := flagByName("batch-size").(*cli.IntFlag)
		require.True(t, ok)
		assert.Equal(t, 100, f.Value)
	})

	t.Run("log-level default is warn", func(t *testing.T) {
		f, ok := flagByName("log-level").(*cli.StringFlag)
		require.True(t, ok)
		assert.Equal(t, "warn", f.Value)
	})
}

func TestSetupLogger(t *testing.T) {
	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "WARN", "Info"} {
			t.Run(level, func(t *testing.T) {
				app := &cli.App{
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "log-level", Value: "warn"},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error { return nil },
				}
				require.NoError(t, app.Run([]string{"test", "--log-level", level}))
			})
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		app := &cli.App{
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "log-level", Value: "warn"},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}
		err := app.Run([]string{"test", "--log-level", "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

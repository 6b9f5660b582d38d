package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/tsconv/internal/app"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want *app.Config
	}{
		{
			name: "No arguments leaves everything to defaults",
			args: nil,
			want: &app.Config{LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "Positional input directory",
			args: []string{"raw"},
			want: &app.Config{InputDir: "raw", LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "Input flag wins over positional",
			args: []string{"-input", "flagged", "raw"},
			want: &app.Config{InputDir: "flagged", LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "Config shorthand",
			args: []string{"-c", "tsconv.hcl"},
			want: &app.Config{ConfigPath: "tsconv.hcl", LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "All options",
			args: []string{
				"-config", "a.hcl",
				"-output", "out",
				"-extension", ".dat",
				"-workers", "4",
				"-summary", "s.yaml",
				"-healthcheck-port", "8080",
				"-log-format", "JSON",
				"-log-level", "Debug",
				"in",
			},
			want: &app.Config{
				ConfigPath:      "a.hcl",
				InputDir:        "in",
				OutputDir:       "out",
				Extension:       ".dat",
				Workers:         4,
				Summary:         "s.yaml",
				HealthcheckPort: 8080,
				LogFormat:       "json",
				LogLevel:        "debug",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			got, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			// --- Assert ---
			require.NoError(t, err)
			require.False(t, shouldExit)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "Unknown flag", args: []string{"-nope"}, wantMsg: "flag provided but not defined"},
		{name: "Bad log format", args: []string{"-log-format", "xml"}, wantMsg: "invalid log-format"},
		{name: "Bad log level", args: []string{"-log-level", "loud"}, wantMsg: "invalid log-level"},
		{name: "Negative workers", args: []string{"-workers", "-2"}, wantMsg: "workers must not be negative"},
		{name: "Extension without dot", args: []string{"-extension", "txt"}, wantMsg: "must start with a dot"},
		{name: "Two positional arguments", args: []string{"a", "b"}, wantMsg: "at most one INPUT_DIR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Parse(tc.args, &bytes.Buffer{})

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "-workers")
}

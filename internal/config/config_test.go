package config

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/home/me/Screenshots", "/home/me/Screenshots"},
		{"single trailing slash", "/home/me/Screenshots/", "/home/me/Screenshots"},
		{"multiple trailing slashes", "/home/me/Screenshots///", "/home/me/Screenshots"},
		{"root path", "/", "/"},
		{"relative path", "shots", "shots"},
		{"relative with slash", "shots/", "shots"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDirArg(tt.in))
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare tilde", "~", home},
		{"tilde slash", "~/Pictures", filepath.Join(home, "Pictures")},
		{"other user untouched", "~bob/x", "~bob/x"},
		{"absolute untouched", "/tmp/x", "/tmp/x"},
		{"relative untouched", "shots", "shots"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}

func TestDefaultConfig_UsesHomeScreenshots(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(home, "Screenshots"), cfg.Dir)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.False(t, cfg.DryRun)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_RequiresDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dir = "  "
	assert.ErrorIs(t, cfg.Validate(), ErrEmptyDir)
}

// parse runs a throwaway cobra command with the real flag bindings.
func parse(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	cfg := DefaultConfig()
	cmd := &cobra.Command{
		Use:  "shotrename",
		Args: cobra.MaximumNArgs(1),
	}
	flags := BindFlags(cmd, &cfg)
	cmd.RunE = func(_ *cobra.Command, args []string) error {
		ApplyFlags(&cfg, flags, args)
		return nil
	}
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return cfg, err
}

func TestFlags_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Screenshots"), cfg.Dir)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.CheckOnly)
	assert.Empty(t, cfg.LogFile)
}

func TestFlags_AllSet(t *testing.T) {
	cfg, err := parse(t, "-d", "-v", "-c", "--log", "/tmp/shot.log", "--no-color", "/data/shots/")
	require.NoError(t, err)
	assert.True(t, cfg.DryRun)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.CheckOnly)
	assert.Equal(t, "/tmp/shot.log", cfg.LogFile)
	assert.Equal(t, ColorNever, cfg.ColorMode)
	assert.Equal(t, "/data/shots", cfg.Dir)
}

func TestFlags_ForceColor(t *testing.T) {
	cfg, err := parse(t, "--color")
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, cfg.ColorMode)
}

func TestFlags_ColorConflict(t *testing.T) {
	_, err := parse(t, "--color", "--no-color")
	assert.Error(t, err)
}

func TestFlags_TildeDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := parse(t, "~/Desktop/Screenshots/")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Desktop", "Screenshots"), cfg.Dir)
}

func TestFlags_TooManyArgs(t *testing.T) {
	_, err := parse(t, "a", "b")
	assert.Error(t, err)
}

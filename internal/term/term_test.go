package term

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/shotrename/internal/config"
)

func TestConfigure_Never(t *testing.T) {
	Configure(config.ColorNever)
	assert.False(t, Enabled())
	assert.Equal(t, "[INFO]", Paint(Blue, "[INFO]"))
}

func TestConfigure_Always(t *testing.T) {
	Configure(config.ColorAlways)
	t.Cleanup(func() { Configure(config.ColorNever) })

	assert.True(t, Enabled())
	out := Paint(Red, "[ERROR]")
	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "\x1b[")
}

func TestConfigure_AutoRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	Configure(config.ColorAuto)
	assert.False(t, Enabled())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(nil))

	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}

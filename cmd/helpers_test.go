package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logshort-launcher/internal/config"
	"logshort-launcher/internal/launcher"
)

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("LOGSHORT_TEST_KEY", "set")
	assert.Equal(t, "set", getEnvWithDefault("LOGSHORT_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnvWithDefault("LOGSHORT_TEST_UNSET", "fallback"))
}

func TestGetEnvIntWithDefault(t *testing.T) {
	t.Setenv("LOGSHORT_TEST_INT", "5")
	t.Setenv("LOGSHORT_TEST_BAD", "five")
	assert.Equal(t, 5, getEnvIntWithDefault("LOGSHORT_TEST_INT", 3))
	assert.Equal(t, 3, getEnvIntWithDefault("LOGSHORT_TEST_BAD", 3))
	assert.Equal(t, 3, getEnvIntWithDefault("LOGSHORT_TEST_INT_UNSET", 3))
}

func TestBootstrapEnviron(t *testing.T) {
	t.Run("overlays credentials and extras", func(t *testing.T) {
		dir := t.TempDir()
		content := "BYBIT_API_KEY=abc123\nTRACE_LEVEL=1\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

		got := bootstrapEnviron([]string{"HOME=/home/op"}, dir,
			config.Entry{Key: "DEBUG_TRACE", Value: "1"},
			config.Entry{Key: "TRACE_LEVEL", Value: "4"},
		)

		assert.Equal(t, []string{
			"HOME=/home/op",
			"BYBIT_API_KEY=abc123",
			"TRACE_LEVEL=4", // extras win over the credentials file
			"DEBUG_TRACE=1",
		}, got)
	})

	t.Run("no credentials file keeps base", func(t *testing.T) {
		got := bootstrapEnviron([]string{"HOME=/home/op"}, t.TempDir())
		assert.Equal(t, []string{"HOME=/home/op"}, got)
	})
}

func TestRunLaunchSkipsBannerWhenScannerNeverStarted(t *testing.T) {
	dir := t.TempDir()
	setLaunchDir(t, dir)

	oldNoPause := noPause
	noPause = true
	t.Cleanup(func() { noPause = oldNoPause })

	held := flock.New(filepath.Join(dir, launcher.LockFileName))
	locked, err := held.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer held.Unlock()

	var out bytes.Buffer
	code := runLaunch(&out, "Bybit SHORT Scanner", "main.py")

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "launching main.py")
	assert.NotContains(t, out.String(), "Scanner finished")
}

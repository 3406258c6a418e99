package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_SetEnabled(t *testing.T) {
	settings := New(true, decimal.RequireFromString("0.3"), "kr")

	assert.True(t, settings.IsEnabled())
	settings.SetEnabled(false)
	assert.False(t, settings.IsEnabled())
	settings.SetEnabled(true)
	assert.True(t, settings.IsEnabled())
}

func TestLoad_MissingFile(t *testing.T) {
	file, err := Load(filepath.Join(t.TempDir(), "settings.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultFile(), file)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("enabled = what"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "settings.toml")
	want := File{Enabled: false, Rate: "0.25", Currency: "eur"}

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFromFile(t *testing.T) {
	settings := FromFile(File{Enabled: true, Rate: "0.25", Currency: "eur"})
	assert.True(t, settings.IsEnabled())
	assert.True(t, settings.Rate().Equal(decimal.RequireFromString("0.25")))
	assert.Equal(t, "eur", settings.Currency())
}

func TestFromFile_MalformedRate(t *testing.T) {
	settings := FromFile(File{Enabled: true, Rate: "not-a-number"})
	assert.True(t, settings.Rate().Equal(decimal.RequireFromString(DefaultRate)))
	assert.Equal(t, DefaultCurrency, settings.Currency())
}

func TestWatcher_ReappliesEnabledFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	require.NoError(t, Save(path, DefaultFile()))

	settings := FromFile(DefaultFile())
	watcher, err := NewWatcher(settings, path, log.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, watcher.Start())
	defer watcher.Stop()

	file := DefaultFile()
	file.Enabled = false
	require.NoError(t, Save(path, file))

	assert.Eventually(t, func() bool {
		return !settings.IsEnabled()
	}, 2*time.Second, 10*time.Millisecond)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, time.Sunday, cfg.FirstWeekday())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
theme: dark
calendar:
  first_weekday: monday
transition:
  duration: 120ms
  frames: 4
  reduced_motion: true
notify:
  on_all_done: true
log:
  file: /tmp/dailyhub.log
  level: DEBUG
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, time.Monday, cfg.FirstWeekday())
	assert.Equal(t, 120*time.Millisecond, cfg.Transition.Duration)
	assert.Equal(t, 4, cfg.Transition.Frames)
	assert.True(t, cfg.Transition.ReducedMotion)
	assert.True(t, cfg.Notify.OnAllDone)
	assert.Equal(t, "/tmp/dailyhub.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadNormalizesInvalidValues(t *testing.T) {
	path := writeConfig(t, `
calendar:
  first_weekday: someday
transition:
  frames: 0
  duration: -1s
log:
  level: "  "
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	def := Default()
	assert.Equal(t, def.Calendar.FirstWeekday, cfg.Calendar.FirstWeekday)
	assert.Equal(t, def.Transition.Frames, cfg.Transition.Frames)
	assert.Equal(t, def.Transition.Duration, cfg.Transition.Duration)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DAILYHUB_CALENDAR_FIRST_WEEKDAY", "Sat")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, cfg.FirstWeekday())
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "theme: [unterminated\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultPathHonoursXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "dailyhub", "config.yaml"), p)
}

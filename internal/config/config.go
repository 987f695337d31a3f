package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type CalendarConfig struct {
	FirstWeekday string `mapstructure:"first_weekday"` // "Sun" | "Mon" | ...
}

type TransitionConfig struct {
	Duration      time.Duration `mapstructure:"duration"`
	Frames        int           `mapstructure:"frames"`
	ReducedMotion bool          `mapstructure:"reduced_motion"`
}

type NotifyConfig struct {
	OnAllDone bool `mapstructure:"on_all_done"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"` // zerolog level name
}

type Config struct {
	Theme      string           `mapstructure:"theme"`
	Calendar   CalendarConfig   `mapstructure:"calendar"`
	Transition TransitionConfig `mapstructure:"transition"`
	Notify     NotifyConfig     `mapstructure:"notify"`
	Log        LogConfig        `mapstructure:"log"`
}

func Default() Config {
	return Config{
		Theme:    "default",
		Calendar: CalendarConfig{FirstWeekday: "Sun"},
		Transition: TransitionConfig{
			Duration: 300 * time.Millisecond,
			Frames:   6,
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/dailyhub/config.yaml, falling back to
// ~/.config/dailyhub/config.yaml.
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "dailyhub", "config.yaml"), nil
}

// Load reads the config at path, or DefaultPath when path is empty. A
// missing file yields the defaults; DAILYHUB_* env vars override keys.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix("dailyhub")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("calendar.first_weekday", cfg.Calendar.FirstWeekday)
	v.SetDefault("transition.duration", cfg.Transition.Duration)
	v.SetDefault("transition.frames", cfg.Transition.Frames)
	v.SetDefault("transition.reduced_motion", cfg.Transition.ReducedMotion)
	v.SetDefault("notify.on_all_done", cfg.Notify.OnAllDone)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("log.level", cfg.Log.Level)

	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("config read %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	def := Default()
	if _, ok := parseWeekday(c.Calendar.FirstWeekday); !ok {
		c.Calendar.FirstWeekday = def.Calendar.FirstWeekday
	}
	if c.Transition.Duration < 0 {
		c.Transition.Duration = def.Transition.Duration
	}
	if c.Transition.Frames <= 0 {
		c.Transition.Frames = def.Transition.Frames
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// FirstWeekday is the configured start of the calendar week.
func (c Config) FirstWeekday() time.Weekday {
	wd, _ := parseWeekday(c.Calendar.FirstWeekday)
	return wd
}

func parseWeekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return time.Sunday, false
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.ToLower(wd.String()[:3]) == s[:3] {
			return wd, true
		}
	}
	return time.Sunday, false
}

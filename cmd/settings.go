package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/sumwatshade/textwatch/cmd/face"
	"github.com/sumwatshade/textwatch/cmd/screen"
	"github.com/sumwatshade/textwatch/cmd/words"
)

// Settings is the decoded configuration. Every key has a default, see
// setDefaults.
type Settings struct {
	Locale     string             `mapstructure:"locale"`
	MinuteZero string             `mapstructure:"minute_zero"`
	ASCII      bool               `mapstructure:"ascii"`
	Debug      bool               `mapstructure:"debug"`
	Display    DisplaySettings    `mapstructure:"display"`
	Transition TransitionSettings `mapstructure:"transition"`
	Log        LogSettings        `mapstructure:"log"`
}

type DisplaySettings struct {
	Width int `mapstructure:"width"`
}

type TransitionSettings struct {
	Duration time.Duration `mapstructure:"duration"`
}

type LogSettings struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("locale", "en")
	v.SetDefault("minute_zero", words.ZeroExplicit.String())
	v.SetDefault("ascii", false)
	v.SetDefault("debug", true)
	v.SetDefault("display.width", screen.DefaultWidth)
	v.SetDefault("transition.duration", face.DefaultDuration)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// loadSettings decodes and validates the configuration held by v.
func loadSettings(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	if _, err := words.ParseLocale(s.Locale); err != nil {
		return Settings{}, fmt.Errorf("locale: %w", err)
	}
	if _, err := words.ParseZeroPolicy(s.MinuteZero); err != nil {
		return Settings{}, fmt.Errorf("minute_zero: %w", err)
	}
	if s.Display.Width < 8 {
		return Settings{}, fmt.Errorf("display.width must be at least 8, got %d", s.Display.Width)
	}
	if s.Transition.Duration <= 0 {
		return Settings{}, fmt.Errorf("transition.duration must be positive, got %s", s.Transition.Duration)
	}
	return s, nil
}

// storeSettings copies s back into v, ready to be written out.
func storeSettings(v *viper.Viper, s Settings) {
	v.Set("locale", s.Locale)
	v.Set("minute_zero", s.MinuteZero)
	v.Set("ascii", s.ASCII)
	v.Set("debug", s.Debug)
	v.Set("display.width", s.Display.Width)
	v.Set("transition.duration", s.Transition.Duration.String())
	v.Set("log.file", s.Log.File)
	v.Set("log.level", s.Log.Level)
}

// renderer builds the renderer for the configured locale. Settings coming
// from loadSettings are already validated.
func (s Settings) renderer() (*words.Renderer, error) {
	loc, err := words.ParseLocale(s.Locale)
	if err != nil {
		return nil, err
	}
	zero, err := words.ParseZeroPolicy(s.MinuteZero)
	if err != nil {
		return nil, err
	}
	return words.NewRenderer(loc.Rules(), words.WithZeroPolicy(zero), words.WithASCII(s.ASCII)), nil
}

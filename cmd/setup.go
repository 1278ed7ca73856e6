package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sumwatshade/textwatch/cmd/clock"
	"github.com/sumwatshade/textwatch/cmd/words"
)

var setupCmd = newSetupCmd(viper.GetViper())

// setupAnswers holds the form values. Numbers stay strings while edited.
type setupAnswers struct {
	Locale     string
	MinuteZero string
	ASCII      bool
	Debug      bool
	Width      string
	Duration   string
}

func answersFrom(s Settings) setupAnswers {
	return setupAnswers{
		Locale:     s.Locale,
		MinuteZero: s.MinuteZero,
		ASCII:      s.ASCII,
		Debug:      s.Debug,
		Width:      strconv.Itoa(s.Display.Width),
		Duration:   s.Transition.Duration.String(),
	}
}

// apply returns s updated with the answers.
func (a setupAnswers) apply(s Settings) (Settings, error) {
	width, err := strconv.Atoi(strings.TrimSpace(a.Width))
	if err != nil {
		return Settings{}, fmt.Errorf("width: %w", err)
	}
	d, err := time.ParseDuration(strings.TrimSpace(a.Duration))
	if err != nil {
		return Settings{}, fmt.Errorf("duration: %w", err)
	}
	s.Locale = a.Locale
	s.MinuteZero = a.MinuteZero
	s.ASCII = a.ASCII
	s.Debug = a.Debug
	s.Display.Width = width
	s.Transition.Duration = d
	return s, nil
}

// preview renders tv with the answers chosen so far.
func (a *setupAnswers) preview(tv clock.TimeValue) string {
	loc, err := words.ParseLocale(a.Locale)
	if err != nil {
		return err.Error()
	}
	zero, err := words.ParseZeroPolicy(a.MinuteZero)
	if err != nil {
		return err.Error()
	}
	r := words.NewRenderer(loc.Rules(), words.WithZeroPolicy(zero), words.WithASCII(a.ASCII))
	lines := r.Render(tv.Hour, tv.Minute)
	s := lines.Strings()
	return strings.TrimRight(strings.Join(s[:], "\n"), "\n")
}

func validateWidth(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("width must be a number")
	}
	if n < 8 {
		return errors.New("width must be at least 8")
	}
	return nil
}

func validateDuration(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return errors.New("duration looks like 400ms")
	}
	if d <= 0 {
		return errors.New("duration must be positive")
	}
	return nil
}

func setupForm(a *setupAnswers, tv clock.TimeValue) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Language").Options(
				huh.NewOption("English", words.English.String()),
				huh.NewOption("Română", words.Romanian.String()),
			).Value(&a.Locale),
			huh.NewSelect[string]().Title("On the hour").Options(
				huh.NewOption(`say it ("three o'clock")`, words.ZeroExplicit.String()),
				huh.NewOption(`hour only ("three")`, words.ZeroOmit.String()),
			).Value(&a.MinuteZero),
			huh.NewConfirm().Title("Strip diacritics?").Value(&a.ASCII),
			huh.NewNote().Title("Preview").DescriptionFunc(func() string {
				return a.preview(tv)
			}, a),
		),
		huh.NewGroup(
			huh.NewInput().Title("Face width").Value(&a.Width).Validate(validateWidth),
			huh.NewInput().Title("Slide duration").Value(&a.Duration).Validate(validateDuration),
			huh.NewConfirm().Title("Allow stepping minutes with the arrow keys?").Value(&a.Debug),
		),
	)
}

func newSetupCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Choose the language and look of the face",
		Long:  `Asks a few questions and writes the answers to the config file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v)
			if err != nil {
				return err
			}
			a := answersFrom(s)
			if err := setupForm(&a, clock.FromTime(time.Now())).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return err
			}
			path, err := saveAnswers(v, s, a, configPath())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			return nil
		},
	}
}

// saveAnswers validates the answers and writes the resulting config to path.
func saveAnswers(v *viper.Viper, s Settings, a setupAnswers, path string) (string, error) {
	s, err := a.apply(s)
	if err != nil {
		return "", err
	}
	storeSettings(v, s)
	if _, err := loadSettings(v); err != nil {
		return "", err
	}
	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}

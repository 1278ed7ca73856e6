package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "textwatch",
	Short: "A word clock for your terminal",
	Long: `Shows the time as words spread over three lines ("three / fifteen"),
sliding each line out and the new one in whenever its text changes.

English and Romanian are supported.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(viper.GetViper())
		if err != nil {
			return err
		}
		log, err := newLogger(settings.Log)
		if err != nil {
			return err
		}
		defer log.Sync()

		m, err := initialModel(settings, log)
		if err != nil {
			return err
		}
		log.Info("starting face",
			zap.String("locale", settings.Locale),
			zap.String("minute_zero", settings.MinuteZero),
			zap.Bool("debug", settings.Debug),
		)

		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err = p.Run()

		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	setDefaults(viper.GetViper())

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.textwatch.yaml)")
	rootCmd.PersistentFlags().String("locale", "", "language of the face: en or ro")
	rootCmd.PersistentFlags().Bool("ascii", false, "strip diacritics from the words")
	rootCmd.Flags().Int("width", 0, "face width in cells")

	cobra.CheckErr(viper.BindPFlag("locale", rootCmd.PersistentFlags().Lookup("locale")))
	cobra.CheckErr(viper.BindPFlag("ascii", rootCmd.PersistentFlags().Lookup("ascii")))
	cobra.CheckErr(viper.BindPFlag("display.width", rootCmd.Flags().Lookup("width")))

	rootCmd.AddCommand(renderCmd, auditCmd, setupCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// a missing .env file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(configDir())
		viper.SetConfigType("yaml")
		viper.SetConfigName(".textwatch")
	}

	viper.SetEnvPrefix("textwatch")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func configDir() string {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	return home
}

// configPath is where setup writes the configuration.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(configDir(), ".textwatch.yaml")
}

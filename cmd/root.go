package cmd

import (
	"log"

	"github.com/Thiwanka-1/Job-Search-Engine/internal/profile"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "job-search-engine"
)

type Config struct {
	Profile     *profile.Profile `mapstructure:"profile"`
	Input       *InputConfig     `mapstructure:"input"`
	ExcludeFile string           `mapstructure:"exclude-file"`
	Exclude     *struct {
		Companies []string
	}
	Matching *MatchingConfig `mapstructure:"matching"`
}

type InputConfig struct {
	// Files are JSON exports with job postings, usually one per provider.
	Files []string `mapstructure:"files"`
}

type MatchingConfig struct {
	MinimumScore int `mapstructure:"minimum-score"`
	Top          int `mapstructure:"top"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "job-search-engine is a simple cli for scoring aggregated job postings against a candidate profile",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is job-search-engine.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for match command now. If there is no config, we can skip initialization
	if matchCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

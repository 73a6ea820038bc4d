package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "ai-readiness"

	defaultDelay = 2 * time.Second
)

type Config struct {
	// Delay is a pause before the report is shown. It never changes the score.
	Delay     time.Duration `mapstructure:"delay"`
	Format    string        `mapstructure:"format"`
	Catalogue string        `mapstructure:"catalogue"`
	Access    *AccessConfig `mapstructure:"access"`
}

type AccessConfig struct {
	Password     string `mapstructure:"password"`
	PasswordFile string `mapstructure:"password-file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "ai-readiness scores how candidates use AI tools during AI-first interview assignments",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("access.password-file", "AI_READINESS_PASSWORD_FILE"); err != nil {
		log.Fatalf("binding AI_READINESS_PASSWORD_FILE environment variable: %v", err)
	}
	if err := viper.BindEnv("attempt", "AI_READINESS_PASSWORD"); err != nil {
		log.Fatalf("binding AI_READINESS_PASSWORD environment variable: %v", err)
	}

	viper.SetDefault("delay", defaultDelay)
	viper.SetDefault("format", "text")

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is ai-readiness.yaml in current directory)")
	rootCmd.PersistentFlags().String("catalogue", "", "a yaml file with roles and assignments (default is the built-in catalogue)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("catalogue", rootCmd.PersistentFlags().Lookup("catalogue"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// The default config file is optional, an explicit one is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}
	if config.Access == nil {
		config.Access = &AccessConfig{}
	}

	return config, nil
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/ai-readiness/internal/access"
	"github.com/spigell/ai-readiness/internal/catalogue"
)

// unlock asks for the interviewer password when one is configured.
// AI_READINESS_PASSWORD skips the prompt for scripted runs.
func unlock(config *Config, logger *zap.Logger) error {
	gate, err := access.NewGate(access.Source{
		Name:  "interviewer password",
		Value: config.Access.Password,
		File:  config.Access.PasswordFile,
	})
	if err != nil {
		return err
	}

	if gate.Open() {
		logger.Debug("no interviewer password configured")
		return nil
	}

	attempt := viper.GetString("attempt")
	if strings.TrimSpace(attempt) == "" {
		prompt := promptui.Prompt{
			Label: "Interviewer password",
			Mask:  '*',
		}
		if attempt, err = prompt.Run(); err != nil {
			return err
		}
	}

	if err := gate.Check(attempt); err != nil {
		return fmt.Errorf("%w: incorrect password", err)
	}
	return nil
}

func loadCatalogue(config *Config) (*catalogue.Catalogue, error) {
	path := strings.TrimSpace(config.Catalogue)
	if path == "" {
		return catalogue.Default()
	}
	return catalogue.Load(path)
}

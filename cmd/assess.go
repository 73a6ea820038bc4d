package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"unicode/utf8"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/ai-readiness/internal/catalogue"
	logging "github.com/spigell/ai-readiness/internal/logger"
	"github.com/spigell/ai-readiness/internal/report"
	"github.com/spigell/ai-readiness/internal/scoring"
	"github.com/spigell/ai-readiness/internal/submission"
	"github.com/spigell/ai-readiness/internal/utils"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var errDeclined = errors.New("scoring declined")

var proceed = promptui.Select{
	Label: "Proceed?",
	Items: []string{PromptYes, PromptNo},
}

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Score a candidate transcript and output for AI readiness",
	Run: func(cmd *cobra.Command, _ []string) {
		assess(cmd)
	},
}

func init() {
	rootCmd.AddCommand(assessCmd)

	assessCmd.Flags().StringP("role", "r", "", "role id the candidate interviewed for. Asked interactively when unset.")
	assessCmd.Flags().StringP("transcript", "t", "", "a text file with the interview transcript")
	assessCmd.Flags().StringP("output", "o", "", "a text file with the document the candidate produced")
	assessCmd.Flags().StringP("submission", "s", "", "a json or yaml file with role, transcript and output")
	assessCmd.Flags().StringP("format", "f", "", "report format: text, json or yaml")
	assessCmd.Flags().Bool("dump", false, "also write the report as json to a temporary file")
	assessCmd.Flags().BoolP("yes", "y", false, "do not show the assignment and ask for confirmation")

	assessCmd.MarkFlagsMutuallyExclusive("submission", "transcript")
	assessCmd.MarkFlagsMutuallyExclusive("submission", "output")

	viper.BindPFlag("format", assessCmd.Flags().Lookup("format"))
}

func assess(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Debug("starting with config",
		zap.Duration("delay", config.Delay),
		zap.String("format", config.Format),
		zap.String("catalogue", config.Catalogue),
	)

	format, err := report.ParseFormat(config.Format)
	if err != nil {
		logger.Fatal("parsing report format", zap.Error(err))
	}

	roles, err := loadCatalogue(config)
	if err != nil {
		logger.Fatal("loading catalogue", zap.Error(err))
	}

	if err := unlock(config, logger); err != nil {
		logger.Fatal("checking access", zap.Error(err))
	}

	sub, err := readSubmission(cmd)
	if err != nil {
		logger.Fatal("reading submission", zap.Error(err))
	}

	if sub.RoleID == "" {
		if sub.RoleID, err = selectRole(roles); err != nil {
			logger.Fatal("selecting a role", zap.Error(err))
		}
	}

	if err := sub.ValidateRole(roles); err != nil {
		logger.Fatal("validating submission", zap.Error(err),
			zap.Strings("known roles", roles.IDs()),
		)
	}
	if err := sub.Validate(); err != nil {
		logger.Fatal("validating submission", zap.Error(err),
			zap.String("hint", "pass --transcript and --output, or --submission"),
		)
	}

	logger = logging.WithRole(logger, sub.RoleID)

	if !flagBool(cmd, "yes") {
		if err := confirm(roles, sub.RoleID); err != nil {
			if errors.Is(err, errDeclined) {
				logger.Info("exiting", zap.String("reason", "got no from prompt"))
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}

	logger.Info("analyzing submission",
		zap.Int("transcript_runes", utf8.RuneCountInString(sub.Transcript)),
		zap.Int("output_runes", utf8.RuneCountInString(sub.Output)),
	)

	if err := utils.WaitFor(ctx, config.Delay); err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}

	result := scoring.Assess(sub.Transcript, sub.Output, sub.RoleID)
	logger.Info("assessment finished", logging.AssessmentFields(result)...)

	if err := report.Write(os.Stdout, format, result); err != nil {
		logger.Fatal("writing report", zap.Error(err))
	}

	if flagBool(cmd, "dump") {
		filename, err := report.DumpToTmpFile(result)
		if err != nil {
			logger.Fatal("dump result to file", zap.Error(err))
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
	}
}

// readSubmission builds the submission from either the document flag or the
// two text file flags. An explicit --role always wins.
func readSubmission(cmd *cobra.Command) (*submission.Submission, error) {
	role := strings.TrimSpace(cmd.Flag("role").Value.String())

	if path := cmd.Flag("submission").Value.String(); path != "" {
		sub, err := submission.Load(path)
		if err != nil {
			return nil, err
		}
		if role != "" {
			sub.RoleID = role
		}
		return sub, nil
	}

	return submission.FromFiles(role,
		cmd.Flag("transcript").Value.String(),
		cmd.Flag("output").Value.String(),
	)
}

func selectRole(roles *catalogue.Catalogue) (string, error) {
	items := make([]string, 0, roles.Len())
	for _, role := range roles.Roles() {
		items = append(items, role.Label())
	}

	rolePrompt := promptui.Select{
		Label: "Choose a role and press ENTER",
		Items: items,
	}

	i, _, err := rolePrompt.Run()
	if err != nil {
		return "", err
	}
	return roles.Roles()[i].ID, nil
}

// confirm shows the assignment the candidate worked on and asks whether to
// score it.
func confirm(roles *catalogue.Catalogue, roleID string) error {
	role, err := roles.Role(roleID)
	if err != nil {
		return err
	}

	if err := report.WriteAssignment(os.Stdout, roles, role); err != nil {
		return fmt.Errorf("printing assignment: %w", err)
	}

	_, answer, err := proceed.Run()
	if err != nil {
		return err
	}
	if answer != PromptYes {
		return errDeclined
	}
	return nil
}

func flagBool(cmd *cobra.Command, name string) bool {
	flag := cmd.Flag(name)
	return flag != nil && strings.EqualFold(flag.Value.String(), "true")
}

func newLogger() (*zap.Logger, error) {
	return logging.New(viper.GetBool("json"), viper.GetBool("debug"))
}

package cmd

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/ai-readiness/internal/catalogue"
	"github.com/spigell/ai-readiness/internal/report"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the roles with an AI-first assignment",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		logger, _, roles := prepareCatalogue()
		if err := printRoles(roles); err != nil {
			logger.Fatal("printing roles", zap.Error(err))
		}
	},
}

var showCmd = &cobra.Command{
	Use:   "show <role>",
	Short: "Print the interviewer script for a role",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger, config, roles := prepareCatalogue()
		if err := unlock(config, logger); err != nil {
			logger.Fatal("checking access", zap.Error(err))
		}

		role, err := roles.Role(args[0])
		if err != nil {
			logger.Fatal("looking up role", zap.Error(err))
		}
		if !role.Available() {
			logger.Warn("assignment is not ready yet", zap.String("role_id", role.ID))
		}

		if err := report.WriteAssignment(os.Stdout, roles, role); err != nil {
			logger.Fatal("printing assignment", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(rolesCmd)
	rolesCmd.AddCommand(showCmd)
}

func prepareCatalogue() (*zap.Logger, *Config, *catalogue.Catalogue) {
	logger, err := newLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	roles, err := loadCatalogue(config)
	if err != nil {
		logger.Fatal("loading catalogue", zap.Error(err))
	}
	return logger, config, roles
}

func printRoles(roles *catalogue.Catalogue) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tSTATUS")
	for _, role := range roles.Roles() {
		status := "ready"
		if !role.Available() {
			status = "coming soon"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", role.ID, role.Title, role.Category, status)
	}
	return w.Flush()
}

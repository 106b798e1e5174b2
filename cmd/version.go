package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spigell/resume-skills/internal/config"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the default models",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("%s version: %s\n", app, version)
		fmt.Printf("skill model: %s\nrole model: %s\n", config.DefaultSkillModel, config.DefaultRoleModel)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

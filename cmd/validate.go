package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-skills/internal/logger"
	"github.com/spigell/resume-skills/internal/output"
)

var validateCmd = &cobra.Command{
	Use:   "validate <profile.json>",
	Short: "Validate a saved profile against the embedded JSON schema",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		validateProfile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateProfile(path string) {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	err = output.ValidateFile(path)
	if err == nil {
		fmt.Printf("%s: valid\n", path)
		return
	}

	var verr *output.ValidationError
	if errors.As(err, &verr) {
		for _, fe := range verr.Errors {
			zlog.Error("schema violation", zap.String("field", fe.Field), zap.String("message", fe.Message))
		}
	}
	zlog.Fatal("profile is invalid", zap.String("filename", path), zap.Error(err))
}

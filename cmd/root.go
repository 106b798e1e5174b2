package cmd

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/resume-skills/internal/config"
)

const (
	app = "resume-skills"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-skills extracts skills, role and experience from resumes",
	}
)

// envBindings maps config keys to the environment variables that can set them.
var envBindings = map[string][]string{
	"preset":                 {"RESUME_SKILLS_PRESET"},
	"exclude-file":           {"RESUME_SKILLS_EXCLUDE_FILE"},
	"classifier.provider":    {"RESUME_SKILLS_PROVIDER"},
	"classifier.base-url":    {"RESUME_SKILLS_BASE_URL"},
	"classifier.token-file":  {"RESUME_SKILLS_HF_TOKEN_FILE", "RESUME_SKILLS_TOKEN_FILE"},
	"classifier.token-env":   {"RESUME_SKILLS_TOKEN_ENV"},
	"store.dsn":              {"RESUME_SKILLS_STORE_DSN"},
	"server.addr":            {"RESUME_SKILLS_ADDR"},
	"server.max-upload-mb":   {"RESUME_SKILLS_MAX_UPLOAD_MB"},
	"model.workers":          {"RESUME_SKILLS_WORKERS"},
	"classifier.max-retries": {"RESUME_SKILLS_MAX_RETRIES"},
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	for key, envs := range envBindings {
		if err := viper.BindEnv(append([]string{key}, envs...)...); err != nil {
			log.Fatalf("binding %v environment variables: %v", envs, err)
		}
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-skills.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("preset", config.PresetDefault, "processing preset: default, fast, accurate or cpu")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("preset", rootCmd.PersistentFlags().Lookup("preset"))
}

func initConfig() {
	// A missing .env is fine; it only supplies tokens for local runs.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional unless it was named explicitly.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

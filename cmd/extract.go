package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-skills/internal/logger"
	"github.com/spigell/resume-skills/internal/output"
	"github.com/spigell/resume-skills/internal/resume"
	"github.com/spigell/resume-skills/internal/store"
)

const (
	PromptSaveJSON        = "Save profile to JSON"
	PromptExportXLSX      = "Export profile to XLSX"
	PromptShowSummary     = "Show summary"
	PromptExcludeSkill    = "Append a skill to exclude file"
	PromptExit            = "Exit"
	PromptBack            = "back"
	defaultExcludeReason  = "excluded manually"
	defaultJSONOutputName = "skills_profile.json"
	defaultXLSXOutputName = "skills_profile.xlsx"
)

var errExit = errors.New("exit requested")

var actionPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowSummary, PromptSaveJSON, PromptExportXLSX, PromptExcludeSkill, PromptExit},
}

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract skills, role and experience from a resume document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		extract(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("output", "o", "", "write the profile as JSON to this file, '-' for stdout")
	extractCmd.Flags().String("xlsx", "", "export the profile to an XLSX workbook")
	extractCmd.Flags().String("store", "", "persist the analysis to a store (sqlite path or postgres:// url)")
	extractCmd.Flags().BoolP("interactive", "i", false, "choose follow-up actions in an interactive prompt")
	extractCmd.Flags().StringP("exclude-file", "e", "", "file with skills to drop from the profile. Default is unset.")
	extractCmd.Flags().StringSlice("exclude-skill", nil, "append skills to the exclude file before processing")
	extractCmd.Flags().String("exclude-reason", defaultExcludeReason, "reason recorded with --exclude-skill entries")

	viper.BindPFlag("exclude-file", extractCmd.Flags().Lookup("exclude-file"))
	viper.BindPFlag("store.dsn", extractCmd.Flags().Lookup("store"))
}

func extract(cmd *cobra.Command, path string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	cfg, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	zlog.Info("starting the resume-skills", zap.String("version", version), zap.String("preset", cfg.Preset))

	if toExclude, _ := cmd.Flags().GetStringSlice("exclude-skill"); len(toExclude) > 0 {
		if cfg.ExcludeFile == "" {
			zlog.Fatal("exclude file is required for --exclude-skill", zap.String("hint", "set --exclude-file or exclude-file in the config"))
		}
		reason, _ := cmd.Flags().GetString("exclude-reason")
		excluded, err := resume.AppendToFile(cfg.ExcludeFile, reason, toExclude...)
		if err != nil {
			zlog.Fatal("appending to exclude file", zap.Error(err))
		}
		zlog.Info("appended to exclude file",
			zap.String("filename", cfg.ExcludeFile),
			zap.Int("excluded", len(excluded.Items)),
		)
	}

	analyzer, _, err := buildAnalyzer(cfg, zlog)
	if err != nil {
		zlog.Fatal("building the analyzer", zap.Error(err))
	}

	analysis, err := analyzer.Process(ctx, path)
	if err != nil {
		zlog.Fatal("processing resume", zap.String(logger.FieldDocument, path), zap.Error(err))
	}

	zlog.Info("resume processed",
		zap.String("analysis_id", analysis.ID.String()),
		zap.String("predicted_role", analysis.PredictedRole.PredictedRole),
		zap.Int("skills", len(analysis.Skills.DetailedSkills)),
		zap.Int("experience", len(analysis.Experience)),
	)

	if cfg.Store.DSN != "" {
		if err := persist(ctx, cfg.Store.DSN, analysis); err != nil {
			zlog.Fatal("saving analysis", zap.Error(err))
		}
		zlog.Info("analysis saved to store", zap.String("analysis_id", analysis.ID.String()))
	}

	jsonPath, _ := cmd.Flags().GetString("output")
	xlsxPath, _ := cmd.Flags().GetString("xlsx")
	interactive, _ := cmd.Flags().GetBool("interactive")

	if err := writeOutputs(zlog, analysis, jsonPath, xlsxPath); err != nil {
		zlog.Fatal("writing results", zap.Error(err))
	}

	if !interactive {
		if jsonPath == "" && xlsxPath == "" {
			printSummary(os.Stdout, analysis)
		}
		return
	}

	for {
		_, action, err := actionPrompt.Run()
		if err != nil {
			zlog.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, zlog, cfg.ExcludeFile, analysis); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			zlog.Fatal("exiting", zap.Error(err))
		}
	}
}

func persist(ctx context.Context, dsn string, analysis *resume.Analysis) error {
	st, err := store.Open(ctx, dsn)
	if err != nil {
		return err
	}
	defer st.Close()

	return st.Save(ctx, analysis)
}

func writeOutputs(logger *zap.Logger, analysis *resume.Analysis, jsonPath, xlsxPath string) error {
	switch jsonPath {
	case "":
	case "-":
		if err := output.WriteJSON(os.Stdout, analysis); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	default:
		if err := output.SaveJSON(jsonPath, analysis); err != nil {
			return err
		}
		logger.Info("profile saved", zap.String("filename", jsonPath))
	}

	if xlsxPath != "" {
		if err := output.SaveXLSX(xlsxPath, analysis); err != nil {
			return err
		}
		logger.Info("workbook saved", zap.String("filename", xlsxPath))
	}
	return nil
}

func handleAction(action string, logger *zap.Logger, excludeFile string, analysis *resume.Analysis) error {
	switch action {
	case PromptShowSummary:
		printSummary(os.Stdout, analysis)
		return nil
	case PromptSaveJSON:
		return writeOutputs(logger, analysis, defaultJSONOutputName, "")
	case PromptExportXLSX:
		return writeOutputs(logger, analysis, "", defaultXLSXOutputName)
	case PromptExcludeSkill:
		return excludeInteractively(logger, excludeFile, analysis)
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func excludeInteractively(logger *zap.Logger, excludeFile string, analysis *resume.Analysis) error {
	if excludeFile == "" {
		logger.Warn("exclude file is not configured", zap.String("hint", "set --exclude-file or exclude-file in the config"))
		return nil
	}

	for {
		if len(analysis.Skills.SkillNames) == 0 {
			logger.Info("no skills left to exclude")
			return nil
		}

		skillPrompt := promptui.Select{
			Label: "Choose a skill and press ENTER",
			Items: append(append([]string{}, analysis.Skills.SkillNames...), PromptBack),
			Size:  15,
		}

		_, selected, err := skillPrompt.Run()
		if err != nil {
			return err
		}

		if selected == PromptBack {
			return nil
		}

		if _, err := resume.AppendToFile(excludeFile, defaultExcludeReason, selected); err != nil {
			return err
		}
		logger.Info("appended to exclude file", zap.String("filename", excludeFile), zap.String("skill", selected))

		analysis.Skills = analysis.Skills.Without([]string{selected})
	}
}

// printSummary writes the human-readable report.
func printSummary(w io.Writer, a *resume.Analysis) {
	role := a.PredictedRole
	fmt.Fprintf(w, "File: %s\n", a.FilePath)
	fmt.Fprintf(w, "Predicted role: %s (confidence %.3f)\n", role.PredictedRole, role.Confidence)
	if role.Failed() {
		fmt.Fprintf(w, "Role error: %s\n", role.Error)
	}

	fmt.Fprintf(w, "\nSkills (%d):\n", len(a.Skills.DetailedSkills))
	for _, category := range a.Skills.CategoryNames() {
		findings := a.Skills.CategorizedSkills[category]
		names := make([]string, 0, len(findings))
		for _, f := range findings {
			names = append(names, fmt.Sprintf("%s (%.2f, %s)", f.Skill, f.Confidence, f.Method))
		}
		fmt.Fprintf(w, "  %s: %s\n", category, strings.Join(names, ", "))
	}

	if len(a.Experience) > 0 {
		years := make([]int, 0, len(a.Experience))
		for _, e := range a.Experience {
			years = append(years, e.Years)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(years)))
		fmt.Fprintf(w, "\nExperience mentions: %d (max %d years)\n", len(a.Experience), years[0])
	}

	s := a.TextStats
	fmt.Fprintf(w, "\nText: %d chars, %d words, %d sentences, %.1f words per sentence\n",
		s.Length, s.Words, s.Sentences, s.AvgSentenceLength)
}

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/Thiwanka-1/Job-Search-Engine/internal/filtering"
	"github.com/Thiwanka-1/Job-Search-Engine/internal/jobs"
	"github.com/Thiwanka-1/Job-Search-Engine/internal/logger"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptExit                = "Exit"
	PromptReportByCompany     = "Report by companies"
	PromptMatchesToFile       = "Dump matched postings to file"
	PromptAppendToExcludeFile = "Append all postings to exclude file"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What to do with matched postings?",
	Items: []string{PromptReportByCompany, PromptMatchesToFile, PromptAppendToExcludeFile, PromptExit},
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score aggregated postings against the candidate profile",
	Run: func(cmd *cobra.Command, _ []string) {
		match(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().BoolP("auto-approve", "y", false, "do not ask what to do with matched postings, dump them to a file")
	matchCmd.Flags().StringP("exclude-file", "e", "", "special file with postings to exclude. Default is unset.")
	matchCmd.Flags().IntP("top", "t", 0, "keep only the best N postings after ranking. Default is all.")

	viper.BindPFlag("exclude-file", matchCmd.Flags().Lookup("exclude-file"))
	viper.BindPFlag("matching.top", matchCmd.Flags().Lookup("top"))
}

// match is the main command for the cli.
func match(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the job-search-engine", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.Profile == nil || len(config.Profile.Skills)+len(config.Profile.MustHaveSkills) == 0 {
		logger.Fatal("a candidate profile with at least one skill is required under the profile section")
	}

	if config.Input == nil || len(config.Input.Files) == 0 {
		logger.Fatal("at least one postings export is required under input.files")
	}

	postings, err := getJobs(config, logger)
	if err != nil {
		logger.Fatal("loading postings", zap.Error(err))
	}

	if postings.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no postings found"))
		return
	}

	filters := prepareFilters(config, logger)

	filtered, err := filters.RunFilters(ctx, postings)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}
	postings = filtered

	if postings.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no postings left after filters"))
		return
	}

	postings.SortByMatchScore()
	postings.Truncate(viper.GetInt("matching.top"))

	action := PromptMatchesToFile
	for {
		var err error
		if cmd.Flag("auto-approve").Value.String() == "false" {
			_, action, err = prompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		logger.Info("current list of matched postings", zap.Int("count", postings.Len()))

		if err := handleAction(action, logger, postings); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}

		if cmd.Flag("auto-approve").Value.String() == "true" {
			return
		}
	}
}

func handleAction(action string, logger *zap.Logger, postings *jobs.Jobs) error {
	switch action {
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	case PromptReportByCompany:
		pretty, _ := json.MarshalIndent(postings.ReportByCompany(), "", "  ")
		logger.Info(string(pretty), zap.Int("postings count", postings.Len()))
		return nil
	case PromptMatchesToFile:
		filename, err := postings.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		return appendToExcludeFile(logger, postings)
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func appendToExcludeFile(logger *zap.Logger, postings *jobs.Jobs) error {
	excludeFile := viper.GetString("exclude-file")
	if excludeFile == "" {
		return errors.New("exclude file is not configured")
	}

	excluded, err := jobs.GetExcludedJobsFromFile(excludeFile)
	if err != nil {
		return err
	}

	excluded.Append(postings.ToExcluded(jobs.ExcludeActorUser, "excluded via prompt"))

	if err = excluded.ToFile(excludeFile); err != nil {
		return err
	}

	logger.Info("appended to exclude file", zap.String("filename", excludeFile))

	postings.Exclude(jobs.JobKeyField, excluded.Keys())

	return nil
}

// getJobs loads every configured postings export and merges them into a single list.
func getJobs(config *Config, logger *zap.Logger) (*jobs.Jobs, error) {
	all := &jobs.Jobs{}
	for _, file := range config.Input.Files {
		loaded, err := jobs.LoadFromFile(file)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}

		logger.Info("loaded postings export",
			zap.String("file", file),
			zap.Int("count", loaded.Len()),
		)

		all.Append(loaded)
	}

	logger.Info("getting postings", zap.Int("count", all.Len()))
	return all, nil
}

func prepareFilters(config *Config, logger *zap.Logger) *filtering.Filtering {
	companies := []string{}
	if config.Exclude != nil {
		companies = config.Exclude.Companies
	}

	steps := []filtering.Filter{
		filtering.NewDuplicates(),
		filtering.NewExcludedCompanies(companies),
		filtering.NewExcludeFile(viper.GetString("exclude-file")),
		prepareMatchFilter(config, logger),
	}

	return filtering.New(steps, logger)
}

func prepareMatchFilter(config *Config, logger *zap.Logger) filtering.Filter {
	minScore := 0
	if config.Matching != nil {
		minScore = config.Matching.MinimumScore
	}

	cfg := &filtering.MatchFilterConfig{
		Enabled:      true,
		MinimumScore: minScore,
	}
	deps := &filtering.MatchFilterDeps{
		Logger:      logger,
		Profile:     config.Profile,
		ExcludeFile: viper.GetString("exclude-file"),
	}

	return filtering.NewMatch(cfg, deps)
}

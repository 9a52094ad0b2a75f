package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/jobfit/internal/filtering"
	"github.com/spigell/jobfit/internal/logger"
	"github.com/spigell/jobfit/internal/model"
	"github.com/spigell/jobfit/internal/store"
)

const (
	PromptShowReport  = "Show report"
	PromptDumpResults = "Dump results to file"
	PromptExit        = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowReport, PromptDumpResults, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Score job postings from files or the job store and keep the ones that fit",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("auto-approve", "y", false, "do not ask what to do with the results, print the report and exit")
	runCmd.Flags().BoolP("rescore", "r", false, "score jobs again even if they have a stored result")
	runCmd.Flags().StringP("exclude-file", "e", "", "special file with jobs to exclude. Default is unset.")

	viper.BindPFlag("exclude-file", runCmd.Flags().Lookup("exclude-file"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	appLogger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		appLogger.Fatal("getting a config", zap.Error(err))
	}

	appLogger.Info("starting the jobfit", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	appLogger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	profile, err := model.LoadProfile(config.Profile)
	if err != nil {
		appLogger.Fatal("loading profile", zap.Error(err), zap.String("hint", "set the 'profile' key in the configuration file"))
	}

	var jobStore *store.Store
	if path := strings.TrimSpace(config.Jobs.DB); path != "" {
		jobStore, err = store.Open(path)
		if err != nil {
			appLogger.Fatal("opening job store", zap.Error(err), zap.String("path", path))
		}
		defer jobStore.Close()
	}

	jobs, err := getJobs(ctx, config.Jobs, jobStore, appLogger)
	if err != nil {
		appLogger.Fatal("getting jobs", zap.Error(err))
	}

	if jobs.Len() == 0 {
		appLogger.Info("exiting", zap.String("reason", "no jobs found"))
		return
	}

	scorer, closeFn := newScorer(ctx, config, appLogger)
	defer closeFn()

	runID := uuid.NewString()
	runLogger := logger.WithRun(appLogger, runID)

	rescore, _ := cmd.Flags().GetBool("rescore")
	filterCfg := &filtering.Config{
		ExcludedCompanies: config.Exclude.Companies,
		ExcludeFile:       config.ExcludeFile,
		Rescore:           rescore,
		MinimumScore:      config.Scoring.MinimumScore,
		Batch:             config.Scoring.Options,
	}

	deps := filtering.Deps{
		Logger:  runLogger,
		Scorer:  scorer,
		Profile: profile,
		RunID:   runID,
	}
	if jobStore != nil {
		deps.Store = jobStore
	}

	steps := filtering.Steps()
	for _, status := range filtering.Describe(steps) {
		runLogger.Debug("filter configured", zap.String("name", status.Name), zap.Bool("enabled", status.Enabled))
	}

	jobs, results, err := filtering.Run(ctx, filterCfg, deps, steps, jobs)
	if err != nil {
		appLogger.Fatal("filtering failed", zap.Error(err))
	}

	if jobs.Len() == 0 {
		runLogger.Info("exiting", zap.String("reason", "no jobs left after filters"))
		return
	}

	action := PromptShowReport
	for {
		if cmd.Flag("auto-approve").Value.String() == "false" {
			_, action, err = prompt.Run()
			if err != nil {
				appLogger.Fatal("exiting", zap.Error(err))
			}
		}

		runLogger.Info("current list of jobs", zap.Int("count", jobs.Len()))

		if err := handleAction(action, runLogger, jobs, results); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			appLogger.Fatal("exiting", zap.Error(err))
		}

		if cmd.Flag("auto-approve").Value.String() == "true" {
			return
		}
	}
}

func handleAction(action string, logger *zap.Logger, jobs *model.Jobs, results map[string]*model.MatchResult) error {
	switch action {
	case PromptShowReport:
		pretty, _ := json.MarshalIndent(jobs.ReportByCompany(results), "", "  ")
		logger.Info(string(pretty), zap.Int("jobs count", jobs.Len()))
		return nil
	case PromptDumpResults:
		filename, err := jobs.DumpToTmpFile(results)
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// getJobs loads jobs from the configured files. Loaded files are imported into the
// store when one is open. Without files the store is queried by status.
func getJobs(ctx context.Context, cfg *JobsConfig, jobStore *store.Store, logger *zap.Logger) (*model.Jobs, error) {
	if len(cfg.Files) > 0 {
		jobs := &model.Jobs{}
		for _, file := range cfg.Files {
			job, err := model.LoadJob(file)
			if err != nil {
				return nil, fmt.Errorf("file %s: %w", file, err)
			}
			jobs.Items = append(jobs.Items, job)
		}

		if jobStore != nil {
			added, err := jobStore.AddJobs(ctx, jobs.Items)
			if err != nil {
				return nil, fmt.Errorf("importing jobs into the store: %w", err)
			}
			logger.Info("jobs imported into the store", zap.Int("added", added))
		}

		logger.Info("getting jobs from files", zap.Int("count", jobs.Len()))
		return jobs, nil
	}

	if jobStore == nil {
		return nil, errors.New("neither jobs.files nor jobs.db is configured")
	}

	jobs, err := jobStore.JobsByStatus(ctx, cfg.Status, cfg.Limit)
	if err != nil {
		return nil, err
	}

	logger.Info("getting jobs from the store", zap.String("status", cfg.Status), zap.Int("count", jobs.Len()))
	return jobs, nil
}

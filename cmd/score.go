package cmd

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/jobfit/internal/logger"
	"github.com/spigell/jobfit/internal/model"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one job posting against a profile and print the result as JSON",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("profile", "p", "", "profile file (yaml, json or toml). Default is the profile key of the config")
	scoreCmd.Flags().String("job", "", "job posting file (yaml, json or toml)")

	viper.BindPFlag("profile", scoreCmd.Flags().Lookup("profile"))
}

func score(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	profile, err := model.LoadProfile(config.Profile)
	if err != nil {
		logger.Fatal("loading profile", zap.Error(err), zap.String("hint", "set --profile or the 'profile' key in the configuration file"))
	}

	jobFile, _ := cmd.Flags().GetString("job")
	job, err := model.LoadJob(jobFile)
	if err != nil {
		logger.Fatal("loading job posting", zap.Error(err), zap.String("hint", "set --job"))
	}

	scorer, closeFn := newScorer(ctx, config, logger)
	defer closeFn()

	result, err := scorer.Score(ctx, job, profile)
	if err != nil {
		logger.Fatal("scoring job posting", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Fatal("printing result", zap.Error(err))
	}
}

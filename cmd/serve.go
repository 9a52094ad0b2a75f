package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/jobfit/internal/batch"
	"github.com/spigell/jobfit/internal/logger"
	"github.com/spigell/jobfit/internal/model"
)

const scoreJobTool = "score_job"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scoring engine as an MCP tool over stdio",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() {
	ctx := context.Background()

	// stdout carries the protocol, so logs always go to stderr as json.
	logger, err := logger.New(true, viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	scorer, closeFn := newScorer(ctx, config, logger)
	defer closeFn()

	s := server.NewMCPServer(app, version, server.WithToolCapabilities(false))

	tool := mcp.NewTool(scoreJobTool,
		mcp.WithDescription("Score how well a candidate profile fits a job posting. Returns score (0-100), reasons, strengths and weaknesses as JSON"),
	)
	tool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"profile": map[string]interface{}{"type": "string", "description": "Candidate profile as JSON (skills, experiences, education, languages)"},
			"job":     map[string]interface{}{"type": "string", "description": "Job posting as JSON (jobTitle, description, requirements, niceToHave)"},
		},
		Required: []string{"profile", "job"},
	}

	s.AddTool(tool, scoreJobHandler(scorer, logger))

	logger.Info("serving mcp over stdio", zap.String("tool", scoreJobTool), zap.String("version", version))

	if err := server.ServeStdio(s); err != nil {
		logger.Fatal("mcp server", zap.Error(err))
	}
}

func scoreJobHandler(scorer batch.Scorer, log *zap.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}

		var profile model.ProfileData
		if err := decodeArgument(args, "profile", &profile); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var job model.JobPosting
		if err := decodeArgument(args, "job", &job); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result, err := scorer.Score(ctx, &job, &profile)
		if err != nil {
			log.Warn("score_job rejected input", zap.Error(err))
			return mcp.NewToolResultError(fmt.Sprintf("Failed to score job: %v", err)), nil
		}

		out, err := json.Marshal(result)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
		}

		return mcp.NewToolResultText(string(out)), nil
	}
}

// decodeArgument accepts the argument either as a JSON string or as an already decoded object.
func decodeArgument(args map[string]interface{}, name string, target any) error {
	var raw []byte
	switch v := args[name].(type) {
	case string:
		raw = []byte(v)
	case map[string]interface{}:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		raw = b
	case nil:
		return fmt.Errorf("missing required field %q", name)
	default:
		return errors.New(name + " must be a JSON string or object")
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%s is not valid JSON: %w", name, err)
	}
	return nil
}

package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/spigell/jobfit/internal/model"
	"github.com/spigell/jobfit/internal/store"
)

const jobYAML = `jobTitle: Backend Engineer
company: Shop
description: Build services in Go.
requirements:
  - Go
  - PostgreSQL
`

func writeJobFile(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(jobYAML), 0o644); err != nil {
		t.Fatalf("write job file: %v", err)
	}
	return path
}

func TestGetJobsFromFilesImportsIntoStore(t *testing.T) {
	dir := t.TempDir()
	file := writeJobFile(t, dir, "backend-1.yaml")

	jobStore, err := store.Open(filepath.Join(dir, "db", "jobfit.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer jobStore.Close()

	jobs, err := getJobs(context.Background(), &JobsConfig{Files: []string{file}}, jobStore, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if jobs.Len() != 1 || jobs.Items[0].ID != "backend-1" {
		t.Fatalf("unexpected jobs: %+v", jobs.Items)
	}

	stored, err := jobStore.JobsByStatus(context.Background(), model.StatusNew, 0)
	if err != nil {
		t.Fatalf("query store: %v", err)
	}
	if stored.Len() != 1 || stored.Items[0].JobTitle != "Backend Engineer" {
		t.Fatalf("expected the job to be imported, got %+v", stored.Items)
	}
}

func TestGetJobsFromStore(t *testing.T) {
	jobStore, err := store.Open(filepath.Join(t.TempDir(), "jobfit.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer jobStore.Close()

	ctx := context.Background()
	if _, err := jobStore.AddJobs(ctx, []*model.JobPosting{
		{ID: "a", JobTitle: "A", Description: "a"},
		{ID: "b", JobTitle: "B", Description: "b"},
	}); err != nil {
		t.Fatalf("add jobs: %v", err)
	}
	if err := jobStore.UpdateStatus(ctx, "a", model.StatusRejected); err != nil {
		t.Fatalf("update status: %v", err)
	}

	jobs, err := getJobs(ctx, &JobsConfig{Status: model.StatusNew}, jobStore, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobs.Len() != 1 || jobs.Items[0].ID != "b" {
		t.Fatalf("unexpected jobs: %+v", jobs.Items)
	}
}

func TestGetJobsWithoutSource(t *testing.T) {
	if _, err := getJobs(context.Background(), &JobsConfig{}, nil, zap.NewNop()); err == nil {
		t.Fatal("expected error without files and store")
	}
}

func TestHandleAction(t *testing.T) {
	jobs := &model.Jobs{Items: []*model.JobPosting{{ID: "1", JobTitle: "Engineer", Company: "Shop", Description: "d"}}}
	results := map[string]*model.MatchResult{"1": {Score: 80, Reasons: []string{"good"}}}

	if err := handleAction(PromptShowReport, zap.NewNop(), jobs, results); err != nil {
		t.Fatalf("report: %v", err)
	}
	if err := handleAction(PromptExit, zap.NewNop(), jobs, results); !errors.Is(err, errExit) {
		t.Fatalf("expected errExit, got %v", err)
	}
	if err := handleAction("unknown", zap.NewNop(), jobs, results); err == nil {
		t.Fatal("expected error for unknown action")
	}
}

package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPrefersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  from-file\n"), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}
	t.Setenv("JOBFIT_TEST_KEY", "from-env")

	got, err := Load(Source{Name: "api key", Value: "inline", File: path, Env: "JOBFIT_TEST_KEY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-file" {
		t.Fatalf("expected file secret, got %q", got)
	}
}

func TestLoadValueBeforeEnv(t *testing.T) {
	t.Setenv("JOBFIT_TEST_KEY", "from-env")

	got, err := Load(Source{Value: " inline ", Env: "JOBFIT_TEST_KEY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "inline" {
		t.Fatalf("expected inline secret, got %q", got)
	}
}

func TestLoadFallsBackToEnv(t *testing.T) {
	t.Setenv("JOBFIT_TEST_KEY", "from-env")

	got, err := Load(Source{Env: "JOBFIT_TEST_KEY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-env" {
		t.Fatalf("expected env secret, got %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, []byte("\n"), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}
	t.Setenv("JOBFIT_TEST_EMPTY", "")

	tests := []struct {
		name string
		src  Source
		want string
	}{
		{name: "nothing", src: Source{Name: "api key"}, want: "api key is not configured"},
		{name: "empty file", src: Source{File: empty}, want: "is empty"},
		{name: "missing file", src: Source{File: filepath.Join(t.TempDir(), "missing")}, want: "reading secret from file"},
		{name: "empty env", src: Source{Env: "JOBFIT_TEST_EMPTY"}, want: "checked JOBFIT_TEST_EMPTY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.src)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error to contain %q, got %v", tt.want, err)
			}
		})
	}
}

package unit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestContractArtifactsAreWellFormedJSON(t *testing.T) {
	root, err := findRepoRoot()
	if err != nil {
		t.Fatalf("resolve repo root: %v", err)
	}

	checks := []struct {
		pattern string
		minimum int
	}{
		{pattern: "contracts/api/v1/*.openapi.json", minimum: 2},
		{pattern: "contracts/events/v1/*.schema.json", minimum: 8},
	}

	for _, check := range checks {
		matches, err := filepath.Glob(filepath.Join(root, check.pattern))
		if err != nil {
			t.Fatalf("invalid glob pattern %s: %v", check.pattern, err)
		}
		if len(matches) < check.minimum {
			t.Fatalf("expected at least %d artifacts for %s, found %d", check.minimum, check.pattern, len(matches))
		}
		for _, path := range matches {
			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}
			var doc map[string]any
			if err := json.Unmarshal(raw, &doc); err != nil {
				t.Fatalf("invalid json contract file %s: %v", path, err)
			}
			if len(doc) == 0 {
				t.Fatalf("empty contract document %s", path)
			}
		}
	}
}

func findRepoRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found walking up from %s", wd)
		}
		dir = parent
	}
}

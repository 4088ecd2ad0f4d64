package task

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
	"github.com/matzehuels/arcgrid/pkg/grid"
)

const sampleTask = `{
  "train": [
    {"input": [[0, 1], [1, 0]], "output": [[1, 0], [0, 1]]},
    {"input": [[2]], "output": [[3]]}
  ],
  "test": [
    {"input": [[1, 1], [0, 0]], "output": [[0, 0], [1, 1]]},
    {"input": [[5]]}
  ]
}`

func writeTask(t *testing.T, dir, id, body string) string {
	t.Helper()
	path := filepath.Join(dir, id+".json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write task: %v", err)
	}
	return path
}

func TestParse(t *testing.T) {
	tk, err := Parse("abc", strings.NewReader(sampleTask))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if tk.ID != "abc" {
		t.Errorf("ID = %q, want abc", tk.ID)
	}
	if len(tk.Train) != 2 || len(tk.Test) != 2 {
		t.Fatalf("pairs = %d/%d, want 2/2", len(tk.Train), len(tk.Test))
	}
	if !tk.Train[0].Output.Equal(grid.MustParse("10\n01")) {
		t.Errorf("Train[0].Output = %v", tk.Train[0].Output)
	}
	if tk.Test[1].Output != nil {
		t.Errorf("Test[1].Output = %v, want nil", tk.Test[1].Output)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"no train", `{"train": [], "test": []}`},
		{"train without output", `{"train": [{"input": [[1]]}], "test": []}`},
		{"test without input", `{"train": [{"input": [[1]], "output": [[1]]}], "test": [{}]}`},
		{"ragged grid", `{"train": [{"input": [[1, 2], [3]], "output": [[1]]}], "test": []}`},
		{"colour out of palette", `{"train": [{"input": [[12]], "output": [[1]]}], "test": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("x", strings.NewReader(tt.body))
			if !arcerrors.Is(err, arcerrors.ErrCodeInvalidTask) {
				t.Errorf("Parse() error = %v, want %s", err, arcerrors.ErrCodeInvalidTask)
			}
		})
	}
}

func TestLoadAndList(t *testing.T) {
	dir := t.TempDir()
	writeTask(t, dir, "b2", sampleTask)
	path := writeTask(t, dir, "a1", sampleTask)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0o755); err != nil {
		t.Fatal(err)
	}

	ids, err := List(dir)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if diff := cmp.Diff([]string{"a1", "b2"}, ids); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}

	tk, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if tk.ID != "a1" {
		t.Errorf("Load() ID = %q, want a1", tk.ID)
	}

	tk, err = LoadID(dir, "b2")
	if err != nil {
		t.Fatalf("LoadID() error: %v", err)
	}
	if tk.ID != "b2" {
		t.Errorf("LoadID() ID = %q, want b2", tk.ID)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.json")); !arcerrors.Is(err, arcerrors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want %s", err, arcerrors.ErrCodeFileNotFound)
	}
	if _, err := LoadID(dir, "missing"); !arcerrors.Is(err, arcerrors.ErrCodeTaskNotFound) {
		t.Errorf("LoadID(missing) error = %v, want %s", err, arcerrors.ErrCodeTaskNotFound)
	}
	if _, err := LoadID(dir, "../etc"); !arcerrors.Is(err, arcerrors.ErrCodeInvalidTask) {
		t.Errorf("LoadID(traversal) error = %v, want %s", err, arcerrors.ErrCodeInvalidTask)
	}
	if _, err := List(filepath.Join(dir, "nope")); !arcerrors.Is(err, arcerrors.ErrCodeFileNotFound) {
		t.Errorf("List(missing dir) error = %v, want %s", err, arcerrors.ErrCodeFileNotFound)
	}
}

func TestIDFromPath(t *testing.T) {
	if got := IDFromPath("data/training/045e512c.json"); got != "045e512c" {
		t.Errorf("IDFromPath() = %q, want 045e512c", got)
	}
	if got := Path("data", "045e512c"); got != filepath.Join("data", "045e512c.json") {
		t.Errorf("Path() = %q", got)
	}
}

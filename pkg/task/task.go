// Package task loads ARC task files.
//
// A task file is a JSON document holding demonstration pairs under "train"
// and held-out pairs under "test":
//
//	{
//	  "train": [{"input": [[0, 1], [1, 0]], "output": [[1, 0], [0, 1]]}],
//	  "test":  [{"input": [[1, 1], [0, 0]], "output": [[0, 0], [1, 1]]}]
//	}
//
// The task ID is the file's basename without the .json extension. Test pairs
// may omit "output" when the expected answer is unknown.
//
// Directories are always passed explicitly; the package keeps no notion of a
// default tasks location.
package task

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
	"github.com/matzehuels/arcgrid/pkg/grid"
)

const fileExt = ".json"

// Pair is one input grid and its expected output.
type Pair struct {
	Input  *grid.Grid `json:"input"`
	Output *grid.Grid `json:"output,omitempty"`
}

// Task is a set of demonstration and held-out pairs.
type Task struct {
	ID    string `json:"-"`
	Train []Pair `json:"train"`
	Test  []Pair `json:"test"`
}

// Parse decodes a task document from r and validates it.
func Parse(id string, r io.Reader) (*Task, error) {
	var t Task
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, arcerrors.Wrap(arcerrors.ErrCodeInvalidTask, err, "decode task %s", id)
	}
	t.ID = id
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that the task has demonstrations, that every pair has an
// input, and that every demonstration has an output.
func (t *Task) Validate() error {
	if len(t.Train) == 0 {
		return arcerrors.New(arcerrors.ErrCodeInvalidTask, "task %s has no train pairs", t.ID)
	}
	for i, p := range t.Train {
		if p.Input == nil || p.Output == nil {
			return arcerrors.New(arcerrors.ErrCodeInvalidTask, "task %s train pair %d is incomplete", t.ID, i)
		}
	}
	for i, p := range t.Test {
		if p.Input == nil {
			return arcerrors.New(arcerrors.ErrCodeInvalidTask, "task %s test pair %d has no input", t.ID, i)
		}
	}
	return nil
}

// Load reads and parses the task file at path.
func Load(path string) (*Task, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, arcerrors.Wrap(arcerrors.ErrCodeFileNotFound, err, "task file %s", path)
	}
	if err != nil {
		return nil, arcerrors.Wrap(arcerrors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return Parse(IDFromPath(path), f)
}

// LoadID loads task id from dir. Unknown IDs yield TASK_NOT_FOUND.
func LoadID(dir, id string) (*Task, error) {
	if err := arcerrors.ValidateTaskID(id); err != nil {
		return nil, err
	}
	t, err := Load(Path(dir, id))
	if arcerrors.Is(err, arcerrors.ErrCodeFileNotFound) {
		return nil, arcerrors.New(arcerrors.ErrCodeTaskNotFound, "task %s not found in %s", id, dir)
	}
	return t, err
}

// Path returns the file path of task id within dir.
func Path(dir, id string) string {
	return filepath.Join(dir, id+fileExt)
}

// IDFromPath returns the task ID for a task file path.
func IDFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), fileExt)
}

// List returns the sorted IDs of all task files directly inside dir.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, arcerrors.Wrap(arcerrors.ErrCodeFileNotFound, err, "tasks directory %s", dir)
	}
	if err != nil {
		return nil, arcerrors.Wrap(arcerrors.ErrCodeInvalidPath, err, "read %s", dir)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != fileExt {
			continue
		}
		ids = append(ids, IDFromPath(e.Name()))
	}
	slices.Sort(ids)
	return ids, nil
}

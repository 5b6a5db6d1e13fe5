package media

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConsoleNotFound indicates the console folder does not exist
	// under the media root.
	ErrConsoleNotFound = errors.New("console folder not found")

	// ErrUnknownConsole indicates an ID outside the fixed console catalog.
	ErrUnknownConsole = errors.New("unknown console")

	// ErrUnknownCategory indicates a key outside the fixed media taxonomy.
	ErrUnknownCategory = errors.New("unknown media category")

	// ErrEmptyGameName indicates a missing or blank game name.
	ErrEmptyGameName = errors.New("game name is empty")
)

// DeleteError aggregates per-file failures from a delete pass. The
// operations that succeeded stay applied; Deleted counts them.
type DeleteError struct {
	Console string
	Game    string
	Deleted int
	Failed  []FileError
}

// FileError is one failed file deletion.
type FileError struct {
	Folder string
	Name   string
	Err    error
}

func (e *DeleteError) Error() string {
	parts := make([]string, 0, len(e.Failed))
	for _, f := range e.Failed {
		parts = append(parts, fmt.Sprintf("%s/%s: %v", f.Folder, f.Name, f.Err))
	}
	return fmt.Sprintf("delete %s/%s: %d deleted, %d failed: %s",
		e.Console, e.Game, e.Deleted, len(e.Failed), strings.Join(parts, "; "))
}

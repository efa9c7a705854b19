package jump

import (
	"errors"
	"fmt"
)

var (
	// ErrNoReference means the line carries no url tag.
	ErrNoReference = errors.New("select a valid url tag")
	// ErrNoConfigFiles means the project has no routing-configuration files.
	ErrNoConfigFiles = errors.New("no urls.py found in project")
)

// ReadError reports a candidate file that could not be read. It excludes
// that file from matching only.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NotFoundError means no candidate declares Name, or a matching file had no
// locatable declaration line.
type NotFoundError struct {
	Name   string
	Issues []Issue
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no matching url found for '%s'", e.Name)
}

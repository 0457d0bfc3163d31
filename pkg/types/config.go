package types

import "errors"

// Config holds the parameters for Backend.Attach. DataDir is the base data
// directory; the backend keeps its database file under DataDir/data.
type Config struct {
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Backend lifecycle errors.
var (
	ErrNotAttached     = errors.New("backend not attached")
	ErrAlreadyAttached = errors.New("backend already attached")
)

// Record operation errors.
var (
	ErrNotFound  = errors.New("record not found")
	ErrInvalidID = errors.New("invalid record ID")
)

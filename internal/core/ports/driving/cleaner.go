package driving

import (
	"context"

	"github.com/alao-ohio/roster/internal/core/domain"
)

// CleanRequest overrides configured settings for a single run.
// Zero values keep the configured setting.
type CleanRequest struct {
	InputPath  string
	OutputPath string

	// Strict and WriteIndex override settings when non-nil.
	Strict     *bool
	WriteIndex *bool

	// SkipHistory disables run recording.
	SkipHistory bool
}

// CleanService runs the roster cleaning pipeline.
type CleanService interface {
	// Clean loads the roster, drops excluded columns, normalises the bound
	// columns and writes the result. The returned run is non-nil whenever
	// the run started, including on failure.
	Clean(ctx context.Context, req CleanRequest) (*domain.Run, error)

	// Watch runs Clean once, then again each time the input file changes,
	// until ctx is cancelled. Each outcome is passed to onRun.
	Watch(ctx context.Context, req CleanRequest, onRun func(*domain.Run, error)) error

	// NormaliseValue applies a single rule to one value.
	NormaliseValue(rule domain.Rule, value string) (string, error)

	// Rules returns the registered rule names, sorted.
	Rules() []string
}

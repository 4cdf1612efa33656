// Package history looks up the latest version-control change to a file.
package history

import (
	"context"
	"time"
)

// Outcome classifies a lookup.
type Outcome int

const (
	// NotFound means the file has no history: untracked, or never committed.
	NotFound Outcome = iota
	// Found means Commit and Modified are set.
	Found
	// Failed means the lookup itself went wrong, for example the tool is
	// missing or the tree is not a repository.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Failed:
		return "failed"
	default:
		return "not-found"
	}
}

// Result is the outcome of looking up one path. Callers that only care about
// the data can treat NotFound and Failed alike.
type Result struct {
	Outcome  Outcome
	Commit   string
	Modified time.Time
	Err      error
}

// Lookup finds the most recent change to a path relative to the source root.
type Lookup interface {
	Latest(ctx context.Context, path string) Result
}

// Func adapts a plain function to Lookup.
type Func func(ctx context.Context, path string) Result

// Latest calls f.
func (f Func) Latest(ctx context.Context, path string) Result {
	return f(ctx, path)
}

// Disabled never finds history.
var Disabled Lookup = Func(func(context.Context, string) Result {
	return Result{Outcome: NotFound}
})

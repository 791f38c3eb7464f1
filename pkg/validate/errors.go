package validate

import "fmt"

// Kind classifies the single terminal failure of a harness run.
type Kind int

const (
	// LaunchFailure means the target could not be started at all.
	LaunchFailure Kind = iota
	// ProcessFailure means the target started but exited with a
	// non-zero code (or had to be stopped). Its output is not trusted.
	ProcessFailure
	// InsufficientOutput means the target produced fewer snapshot
	// lines than the harness requires.
	InsufficientOutput
	// MalformedSnapshot means an output line failed to parse as JSON.
	MalformedSnapshot
	// MissingMetric means an expected metric key was absent from a
	// snapshot.
	MissingMetric
	// KeyCountMismatch means a snapshot contained every expected key
	// but not exactly the expected number of keys.
	KeyCountMismatch
)

var kindNames = map[Kind]string{
	LaunchFailure:      "LaunchFailure",
	ProcessFailure:     "ProcessFailure",
	InsufficientOutput: "InsufficientOutput",
	MalformedSnapshot:  "MalformedSnapshot",
	MissingMetric:      "MissingMetric",
	KeyCountMismatch:   "KeyCountMismatch",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is a terminal run failure. There is no recovery and no retry;
// the first Error produced ends the run and its Reason becomes the
// human-readable diagnosis printed for the failed test.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

// NewError builds a terminal failure of the given kind.
func NewError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// KindOf extracts the failure classification from an error returned by
// this package. Errors of unknown provenance map to ProcessFailure as
// the most conservative verdict.
func KindOf(err error) Kind {
	if failure, ok := err.(*Error); ok {
		return failure.Kind
	}
	return ProcessFailure
}

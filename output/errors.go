package output

import (
	"errors"
	"fmt"
)

// ErrProcessorFinished is returned for page calls after a processor has
// finished or has been aborted.
var ErrProcessorFinished = errors.New("output processor already finished")

// ConfigurationError flags a missing or illegal construction argument.
// A processor is never partially built.
type ConfigurationError struct {
	Arg string // argument or configuration key
	Err error  // optional cause
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("output configuration: %s missing", e.Arg)
	}
	return fmt.Sprintf("output configuration: %s: %v", e.Arg, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ContentProcessingError wraps any failure while emitting a page. It is
// fatal for the current run.
type ContentProcessingError struct {
	Op    string // "logical" or "physical"
	Page  string // page key
	Cause error
}

func (e *ContentProcessingError) Error() string {
	return fmt.Sprintf("processing %s page %s: %v", e.Op, e.Page, e.Cause)
}

func (e *ContentProcessingError) Unwrap() error {
	return e.Cause
}

// WrapPageError wraps err into a ContentProcessingError. Errors are
// wrapped only once; nil stays nil.
func WrapPageError(op string, page fmt.Stringer, err error) error {
	if err == nil {
		return nil
	}
	var cpe *ContentProcessingError
	if errors.As(err, &cpe) {
		return err
	}
	return &ContentProcessingError{Op: op, Page: page.String(), Cause: err}
}

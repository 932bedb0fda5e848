package report

import (
	"fmt"
	"io"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code. Fully-features languages have a complex setup for reporting
// errors to user.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
}

func NewSimpleReporter(writer io.Writer) *SimpleReporter {
	return &SimpleReporter{writer, false}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}

// ListReporter keeps every reported error in order so callers can inspect
// them after the fact.
type ListReporter struct {
	errors []error
}

func NewListReporter() *ListReporter {
	return &ListReporter{make([]error, 0)}
}

func (reporter *ListReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
}

func (reporter *ListReporter) HadError() bool {
	return len(reporter.errors) != 0
}

func (reporter *ListReporter) Reset() {
	reporter.errors = reporter.errors[:0]
}

// Errors returns the reported errors in the order they were reported.
func (reporter *ListReporter) Errors() []error {
	return reporter.errors
}

// Tee forwards every error to all of the given reporters.
type Tee []Reporter

func (reporters Tee) Report(err error) {
	for _, r := range reporters {
		r.Report(err)
	}
}

func (reporters Tee) HadError() bool {
	for _, r := range reporters {
		if r.HadError() {
			return true
		}
	}
	return false
}

func (reporters Tee) Reset() {
	for _, r := range reporters {
		r.Reset()
	}
}

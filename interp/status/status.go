// Package status implements the structured failure type consumed by the
// evaluator (spec.md §4.7, §7): every evaluator entry point returns a
// success-or-failure result, where a failure carries a Kind, a message, and
// a line number where one is known.
package status

import "fmt"

// Kind discriminates the failure categories named in spec.md §7.
type Kind uint8

const (
	Runtime Kind = iota
	IO
	SystemTime
)

func (k Kind) String() string {
	switch k {
	case Runtime:
		return "runtime"
	case IO:
		return "io"
	case SystemTime:
		return "system-time"
	default:
		return "unknown"
	}
}

// Failure is the evaluator's single error type. Syntax and resolution
// failures are reported by lang/parser and lang/resolver's own ErrorList
// types instead; Failure covers the phase that runs after both have
// succeeded (spec.md §7's "Runtime"/"I/O"/"System-time" kinds).
type Failure struct {
	Kind    Kind
	Message string
	Line    int // 0 if no source position applies
}

func (f *Failure) Error() string {
	if f.Line > 0 {
		return fmt.Sprintf("[line %d] %s error: %s", f.Line, f.Kind, f.Message)
	}
	return fmt.Sprintf("%s error: %s", f.Kind, f.Message)
}

// Runtimef builds a Runtime-kind Failure at the given source line.
func Runtimef(line int, format string, args ...interface{}) *Failure {
	return &Failure{Kind: Runtime, Message: fmt.Sprintf(format, args...), Line: line}
}

// IOf builds an IO-kind Failure; line is 0 since I/O failures (reading the
// source file) happen before any line is in scope.
func IOf(format string, args ...interface{}) *Failure {
	return &Failure{Kind: IO, Message: fmt.Sprintf(format, args...)}
}

// SystemTimef builds a SystemTime-kind Failure, raised only by the `time()`
// builtin if the host clock is unavailable.
func SystemTimef(line int, format string, args ...interface{}) *Failure {
	return &Failure{Kind: SystemTime, Message: fmt.Sprintf(format, args...), Line: line}
}

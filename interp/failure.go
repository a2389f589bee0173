package interp

import "github.com/bramblelang/bramble/interp/status"

// runtimef builds a runtime Failure; a small wrapper so call sites read
// `s.runtimef(line, "...")` instead of naming the status package everywhere.
func (s *State) runtimef(line int, format string, args ...interface{}) error {
	return status.Runtimef(line, format, args...)
}

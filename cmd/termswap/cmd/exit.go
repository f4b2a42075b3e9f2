package cmd

import (
	"errors"
	"fmt"
)

// Exit statuses: 0 clean, 1 issues or dictionary problems, 2 errors
const (
	exitOK       = 0
	exitFindings = 1
	exitError    = 2
)

// exitStatus is returned by commands that ran fine but must end with a
// non-zero status
type exitStatus struct{ code int }

func (e exitStatus) Error() string {
	switch e.code {
	case exitFindings:
		return "issues found"
	default:
		return fmt.Sprintf("exit status %d", e.code)
	}
}

// ExitCode maps an Execute error to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var es exitStatus
	if errors.As(err, &es) {
		return es.code
	}
	return exitError
}

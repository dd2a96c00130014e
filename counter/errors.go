package counter

import "fmt"

// Exit codes, one per failing stage.
const (
	ExitMapsFile   = 1
	ExitEvent      = 2
	ExitScoresFile = 3
	ExitScores     = 4
	ExitLinksFile  = 10
	ExitLinks      = 11
)

// Error is a fatal counting failure. Msg is the diagnostic line and Code
// the process exit code of the stage that failed.
type Error struct {
	Code int
	Msg  string
	Err  error
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Err }
func (e *Error) Cause() error  { return e.Err }

func newError(code int, err error, format string, args ...interface{}) *Error {
	return &Error{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
		Err:  err,
	}
}

package cmderr

import (
	"errors"
	"fmt"
	"os"
)

// ExitErr carries an error with the process exit code it should cause.
type ExitErr struct {
	Code  int
	Cause error
}

func (x ExitErr) Error() string { return x.Cause.Error() }

// ExitOnErr writes error to os.Stderr and calls os.Exit with the code
// carried by the error or 1 by default. Does nothing if err is nil.
func ExitOnErr(err error) {
	if err != nil {
		var e ExitErr
		if !errors.As(err, &e) {
			e.Code = 1
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(e.Code)
	}
}

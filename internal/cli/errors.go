package cli

import (
	"github.com/llehouerou/lyrifi/internal/errmsg"
)

// errorf wraps err with the user-facing message for op.
func errorf(op errmsg.Op, err error) error {
	return &opError{msg: errmsg.Format(op, err), err: err}
}

type opError struct {
	msg string
	err error
}

func (e *opError) Error() string { return e.msg }

func (e *opError) Unwrap() error { return e.err }

/*
Package core holds types shared by all packages of the Last Resort cmap converter.

A conversion run knows only a few ways to fail: the input cannot be opened,
an output file cannot be written, or the configured ttx layout is
inconsistent. Lines which do not look like a <map> element are not an error.
Each failure carries an integer code, which the command line tool returns as
its exit status, and a message addressed to the user of the tool.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package core

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Error codes, used as exit status
const (
	NOERROR   int = 0
	EMISSING  int = 122 // input file does not exist or is unreadable
	EINVALID  int = 123 // bad usage or inconsistent configuration
	EIO       int = 124 // reading or writing an open file failed
	EINTERNAL int = 125 // anything else
)

var codeText = map[int]string{
	NOERROR:   "OK",
	EMISSING:  "not found",
	EINVALID:  "invalid",
	EIO:       "i/o error",
	EINTERNAL: "internal error",
}

func textFor(code int) string {
	if t, ok := codeText[code]; ok {
		return t
	}
	return "undefined error"
}

// Coded is implemented by errors which know their exit code.
type Coded interface {
	error
	ErrorCode() int
	UserMessage() string
}

// failure is the Coded error of this module. cause is never nil.
type failure struct {
	cause error
	code  int
	msg   string
}

func (f failure) Error() string {
	return fmt.Sprintf("[%d] %s: %v", f.code, f.msg, f.cause)
}

func (f failure) Unwrap() error       { return f.cause }
func (f failure) ErrorCode() int      { return f.code }
func (f failure) UserMessage() string { return f.msg }

var _ Coded = failure{}

// WrapError attaches code and a user message to err.
// A nil err is replaced by an error stating the code.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(textFor(code))
	}
	return failure{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

// Error creates a coded error without an underlying cause.
func Error(code int, format string, v ...interface{}) error {
	return WrapError(nil, code, format, v...)
}

// Code finds the exit code in err's chain. Errors without a code count as
// EINTERNAL, nil as NOERROR.
func Code(err error) int {
	var c Coded
	switch {
	case err == nil:
		return NOERROR
	case errors.As(err, &c):
		return c.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage finds the user message in err's chain, falling back to the
// text of err's code.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var c Coded
	if errors.As(err, &c) {
		return c.UserMessage()
	}
	return textFor(Code(err))
}

// UserError reports err on stderr.
func UserError(err error) {
	FprintUserError(os.Stderr, err)
}

// FprintUserError reports err to w: the code and user message for coded errors,
// the plain error text otherwise.
func FprintUserError(w io.Writer, err error) {
	var c Coded
	switch {
	case err == nil:
	case errors.As(err, &c):
		fmt.Fprintf(w, "[%d] %s\n", c.ErrorCode(), c.UserMessage())
	default:
		fmt.Fprintf(w, "Error: %s\n", err.Error())
	}
}

package core

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/pkg/errors"
)

type Kind byte

const (
	KIND_INTERNAL Kind = iota
	KIND_USAGE
	KIND_OPEN
	KIND_READ
	KIND_INTERRUPTED
)

var kind_names = map[Kind]string{
	KIND_INTERNAL:    "internal error",
	KIND_USAGE:       "usage error",
	KIND_OPEN:        "file open error",
	KIND_READ:        "file read error",
	KIND_INTERRUPTED: "interrupted",
}

func (self Kind) String() string {
	res, ok := kind_names[self]
	if !ok {
		return fmt.Sprintf("error kind %d", byte(self))
	}

	return res
}

// ExitCode is the process status used when an error of this kind ends the program.
func (self Kind) ExitCode() int {
	if self == KIND_USAGE {
		return 2
	}

	return 1
}

type tError struct {
	source  error
	kind    Kind
	message string
	trace   []string
}

func (self *tError) Error() string {
	var out bytes.Buffer

	fmt.Fprintln(&out, self.source.Error())
	fmt.Fprint(&out, self.message)
	for _, line := range self.trace {
		fmt.Fprintln(&out, "   ", line)
	}

	if len(self.trace) > 0 {
		fmt.Fprintln(&out, "-------------------------------------------------------------------------------")
	}

	return out.String()
}

// Cause lets errors.Cause reach the original error through the wrapper.
func (self *tError) Cause() error {
	return self.source
}

func (self *tError) Unwrap() error {
	return self.source
}

func (self *tError) add_info(format string, args ...interface{}) error {
	var out bytes.Buffer

	fmt.Fprintln(&out, fmt.Sprintf(format, args...))

	self.message += out.String()

	return self
}

func wrap_err(err error) *tError {
	if err == nil {
		return nil
	}

	var pc uintptr = 1

	stack := make([]string, 0)
	for i := 2; pc != 0; i++ {
		ptr, file, line, ok := runtime.Caller(i)
		pc = ptr
		if (pc == 0) || (!ok) {
			continue
		}

		f := runtime.FuncForPC(pc)

		stack = append(stack, fmt.Sprintf("%s (%s:%d)", f.Name(), file, line))
	}

	res, ok := err.(*tError)
	if ok {
		res.trace = stack
	} else {
		res = &tError{
			source: err,
			trace:  stack,
		}
	}

	return res
}

// Recover must be deferred directly; it turns a panic into an error given to handler.
func Recover(handler func(error)) {
	z_err := recover()
	if z_err == nil {
		return
	}

	err, ok := z_err.(error)
	if !ok {
		err = fmt.Errorf("%v", z_err)
	}

	handler(EnsureWrapped(err))
}

func IsWrapped(err error) bool {
	_, ok := err.(*tError)

	return ok
}

func GetSource(err error) error {
	if err == nil {
		return nil
	}

	t_err, ok := err.(*tError)
	if !ok {
		return err
	}

	return t_err.source
}

// GetCause returns the innermost error, past every wrapper and context message.
func GetCause(err error) error {
	return errors.Cause(err)
}

func EnsureWrapped(err error) error {
	if err == nil {
		return nil
	}

	if IsWrapped(err) {
		return err
	}

	return wrap_err(err)
}

func WrapError(err error) error {
	if err == nil {
		return nil
	}

	return wrap_err(err)
}

// WrapKind wraps err with a context message and classifies it.
func WrapKind(kind Kind, err error, context string) error {
	if err == nil {
		return nil
	}

	res := wrap_err(errors.Wrap(err, context))
	res.kind = kind

	return res
}

func NewKindError(kind Kind, format string, args ...interface{}) error {
	res := wrap_err(errors.Errorf(format, args...))
	res.kind = kind

	return res
}

func GetKind(err error) Kind {
	t_err, ok := err.(*tError)
	if !ok {
		return KIND_INTERNAL
	}

	return t_err.kind
}

func IsKind(err error, kind Kind) bool {
	return (err != nil) && (GetKind(err) == kind)
}

func AddErrorInfo(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}

	res_err, ok := err.(*tError)
	if !ok {
		res_err = wrap_err(err)
	}

	return res_err.add_info(format, args...)
}

func IsEof(err error) bool {
	return (err != nil) && (errors.Cause(err) == io.EOF)
}

// FprintError reports err the way the command line expects it: file errors
// print the bare system message on out, usage errors go to errs, anything else
// prints with its trace on out.
func FprintError(out, errs io.Writer, err error) {
	if err == nil {
		return
	}

	switch GetKind(err) {
	case KIND_OPEN, KIND_READ:
		fmt.Fprintln(out, GetCause(err).Error())

	case KIND_USAGE, KIND_INTERRUPTED:
		fmt.Fprintln(errs, GetCause(err).Error())

	default:
		fmt.Fprintln(out, EnsureWrapped(err).Error())
	}
}

func PrintError(err error) {
	FprintError(os.Stdout, os.Stderr, err)
}

func Abort(err error) {
	PrintError(err)
	os.Exit(GetKind(err).ExitCode())
}

type Handler func() error

func CheckedMain(main_task_func Handler) {
	if err := main_task_func(); err != nil {
		Abort(err)
	}
}

func DeferedCall(defered_func Handler) {
	PrintError(defered_func())
}

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/corebreaker/hexdump/core"
)

var (
	_stk     [10]error
	_stk_mtx sync.Mutex
)

// notify_interrupt gives a context done on Ctrl-C. The dump watches it and
// stops between two rows, nothing exits behind its back.
func notify_interrupt(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}

// addstep records what the program is doing, reported if it gets interrupted.
func addstep(msg string, a ...interface{}) {
	_stk_mtx.Lock()
	defer _stk_mtx.Unlock()

	copy(_stk[1:], _stk[:])
	_stk[0] = core.WrapError(fmt.Errorf(msg, a...))
}

// interrupted builds the error reported after Ctrl-C, with the recorded
// steps, last one first.
func interrupted(cause error) error {
	var out bytes.Buffer

	fmt.Fprint(&out, "Interrupted")

	_stk_mtx.Lock()
	for _, x := range _stk {
		if x == nil {
			continue
		}

		fmt.Fprint(&out, "\n  - ", core.GetSource(x))
	}
	_stk_mtx.Unlock()

	return core.AddErrorInfo(core.NewKindError(core.KIND_INTERRUPTED, "%s", out.String()), "%v", core.GetSource(cause))
}

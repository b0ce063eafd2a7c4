package safe

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Run executes handler synchronously and converts a panic into an error
//
// Behavior:
//   - Returns the handler's error unchanged
//   - Recovers from panics, logs them with the stack and returns an error
//     describing the panic value
//
// It isolates one item of a batch (an archive or a font file) so that a
// failure in an OS binding cannot abort the remaining items.
func Run(ctx context.Context, name string, handler func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			logger := ctxlog.From(ctx)
			logger.Error("panic in step",
				"step", name,
				"recover", r,
				"stack", string(stack))
			err = goerr.New("panic in step",
				goerr.V("step", name),
				goerr.V("recover", fmt.Sprint(r)))
		}
	}()

	return handler(ctx)
}

package logging

import (
	"context"
	"runtime/debug"
)

// RecoverPanic logs a panic with its stack and re-panics. Use it deferred.
func RecoverPanic(ctx context.Context) {
	if r := recover(); r != nil {
		FromContext(ctx).Error().
			Interface("panic", r).
			Str("stack", string(debug.Stack())).
			Msg("panic")
		panic(r)
	}
}

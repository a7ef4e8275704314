package goroutine

import (
	"context"
	"runtime/debug"
)

// Logger je minimalni interfejs za prijavu panika iz pozadinskih gorutina.
type Logger interface {
	Errorf(format string, args ...interface{})
}

// SafeGo pokreće gorutinu koja hvata panic umesto da obori proces.
func SafeGo(log Logger, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("goroutine: panic u gorutini: %v\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}

// SafeGoWithContext je SafeGo varijanta za funkcije koje primaju kontekst.
func SafeGoWithContext(ctx context.Context, log Logger, fn func(context.Context)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("goroutine: panic u gorutini: %v\n%s", r, debug.Stack())
			}
		}()
		fn(ctx)
	}()
}

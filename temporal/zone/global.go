package zone

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/nebula-contrib/graphtime/temporal/posix"
)

// ErrAlreadyInitialized is returned by Init when the global zone has already
// been set.
var ErrAlreadyInitialized = errors.New("global timezone already initialized")

// global holds the process-wide zone. It is written once at startup, before
// any goroutine reads it.
//
//nolint:gochecknoglobals
var global atomic.Pointer[Zone]

// Init resolves name and installs it as the global zone. It must be called
// once during startup, before any call to Global. Returns an error wrapping
// ErrUnsupportedTimezone if name cannot be resolved, or
// ErrAlreadyInitialized if the global zone is already set.
func Init(name Name, opt ...posix.Option) error {
	if z := global.Load(); z != nil {
		return fmt.Errorf("%w to %q", ErrAlreadyInitialized, z.name)
	}
	z, err := Resolve(name, opt...)
	if err != nil {
		return err
	}
	return Set(z)
}

// Set installs z as the global zone. Returns an error wrapping
// ErrAlreadyInitialized if the global zone is already set.
func Set(z *Zone) error {
	if z == nil {
		return fmt.Errorf("%w: nil zone", ErrUnsupportedTimezone)
	}
	if !global.CompareAndSwap(nil, z) {
		return fmt.Errorf("%w to %q", ErrAlreadyInitialized, global.Load().name)
	}
	return nil
}

// Initialized reports whether the global zone has been set.
func Initialized() bool { return global.Load() != nil }

// Global returns the global zone. It panics if Init has not been called,
// since every caller depends on startup having configured it.
func Global() *Zone {
	z := global.Load()
	if z == nil {
		panic("zone: global timezone not initialized")
	}
	return z
}

// ResetForTesting clears the global zone so that tests may call Init again.
// It must not be called while other goroutines use the global zone.
func ResetForTesting() { global.Store(nil) }

// key is an unexported type for keys defined in this package. This prevents
// collisions with keys defined in other packages.
type key int

// zoneKey is the key for *Zone values in Contexts. It is unexported;
// clients use ContextWithZone and FromContext instead of using this key
// directly.
const zoneKey key = 0

// ContextWithZone returns a new Context that carries z. Returns ctx
// unchanged if z is nil.
func ContextWithZone(ctx context.Context, z *Zone) context.Context {
	if z == nil {
		return ctx
	}
	return context.WithValue(ctx, zoneKey, z)
}

// FromContext returns the zone stored in ctx, or the global zone if ctx
// carries none.
func FromContext(ctx context.Context) *Zone {
	if z, ok := ctx.Value(zoneKey).(*Zone); ok {
		return z
	}
	return Global()
}

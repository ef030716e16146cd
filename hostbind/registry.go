// Package hostbind adapts arbitrary host values into boxed reactors. A
// host holding a value of some concrete type needs a way to recover a
// Box[any] for it without the caller statically knowing that type ahead
// of time; this package uses the value's dynamic type as the
// registration key instead.
package hostbind

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/driftwave/reactor"
)

// Converter adapts a value of a registered type into a boxed reactor.
// Registered converters are looked up by the value's dynamic type, so a
// Converter never needs to assert its own input type.
type Converter func(value any) (reactor.Reactor[any], error)

type registry struct {
	mu         sync.RWMutex
	converters map[reflect.Type]Converter
}

var defaultRegistry = &registry{converters: make(map[reflect.Type]Converter)}

// Register associates T with convert, so a later call to Box with a value
// of type T dispatches to convert. Calling Register a second time for the
// same T replaces the previous converter — lookup is keyed purely on
// type, not on registration order.
func Register[T any](convert func(T) (reactor.Reactor[any], error)) {
	var zero T
	t := reflect.TypeOf(zero)
	adapter := func(value any) (reactor.Reactor[any], error) {
		v, ok := value.(T)
		if !ok {
			return nil, fmt.Errorf("hostbind: value of type %T does not match registered type %s", value, t)
		}
		return convert(v)
	}

	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	defaultRegistry.converters[t] = adapter
}

// lookup returns the Converter registered for value's dynamic type, if
// any.
func (r *registry) lookup(value any) (Converter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conv, ok := r.converters[reflect.TypeOf(value)]
	return conv, ok
}

package hostbind

import (
	"context"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/zoobzio/pipz"

	"github.com/driftwave/reactor"
)

// validate is the shared validator instance.
var validate = validator.New()

// Conversion is the request threaded through the boxing pipeline: a
// validate -> adapt -> box sequence.
type Conversion struct {
	Value     any
	converter Converter
	boxed     *reactor.Box[any]
}

// Option configures a single Box call.
type Option func(*config)

type config struct {
	observer reactor.Observer
}

// WithObserver attaches an Observer notified when Box successfully
// constructs a boxed reactor.
func WithObserver(o reactor.Observer) Option {
	return func(c *config) { c.observer = o }
}

func resolve(opts []Option) config {
	cfg := config{observer: reactor.NoOpObserver{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

var pipeline = pipz.NewSequence[*Conversion]("hostbind",
	pipz.Apply(pipz.Name("validate"), validateStage),
	pipz.Apply(pipz.Name("adapt"), adaptStage),
	pipz.Transform(pipz.Name("box"), boxStage),
)

// Box converts value into a type-erased boxed reactor using the converter
// registered for value's dynamic type via Register. Unregistered types
// produce an error rather than a panic, since a host embedding this
// module controls neither the values it receives nor whether every type
// it might see was registered ahead of time.
func Box(ctx context.Context, value any, opts ...Option) (*reactor.Box[any], error) {
	cfg := resolve(opts)

	converter, ok := defaultRegistry.lookup(value)
	if !ok {
		return nil, fmt.Errorf("hostbind: no converter registered for type %T", value)
	}

	req := &Conversion{Value: value, converter: converter}
	result, err := pipeline.Process(ctx, req)
	if err != nil {
		return nil, err
	}

	cfg.observer.OnBoxConstructed()
	return result.boxed, nil
}

// validateStage runs go-playground/validator struct-tag validation over
// value when it is a struct. Non-struct values (ints, strings,
// already-boxed reactors) have no tags to check and pass through
// untouched.
func validateStage(_ context.Context, req *Conversion) (*Conversion, error) {
	v := reflect.ValueOf(req.Value)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return req, nil
	}
	if err := validate.Struct(req.Value); err != nil {
		return req, fmt.Errorf("hostbind: validation failed: %w", err)
	}
	return req, nil
}

// adaptStage invokes the registered Converter, turning the raw value into
// a Reactor[any].
func adaptStage(_ context.Context, req *Conversion) (*Conversion, error) {
	r, err := req.converter(req.Value)
	if err != nil {
		return req, fmt.Errorf("hostbind: conversion failed: %w", err)
	}
	req.boxed = reactor.NewBox(r)
	return req, nil
}

// boxStage is a no-op terminal: adaptStage already produced the Box, but
// keeping it as its own pipeline stage keeps adaptation and boxing
// visibly distinct steps, even though this package's Box type carries no
// extra state to attach at box time.
func boxStage(_ context.Context, req *Conversion) *Conversion {
	return req
}

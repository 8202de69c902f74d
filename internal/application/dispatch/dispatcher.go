// Package dispatch routes named procedures to use cases. Every procedure is
// either a query or a mutation; its input is decoded from JSON and validated
// before the use case runs.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
	"github.com/khoahotran/portfolio/pkg/tracing"
)

type Kind string

const (
	KindQuery    Kind = "query"
	KindMutation Kind = "mutation"
)

// NoInput is the input of procedures that take none.
type NoInput struct{}

type decodeFunc func(dst any) error

type Procedure struct {
	Name   string
	Kind   Kind
	handle func(ctx context.Context, decode decodeFunc) (any, error)
}

// Query declares a read-only procedure.
func Query[In, Out any](name string, fn func(context.Context, In) (Out, error)) Procedure {
	return Procedure{Name: name, Kind: KindQuery, handle: bind(fn)}
}

// Mutation declares a procedure that writes.
func Mutation[In, Out any](name string, fn func(context.Context, In) (Out, error)) Procedure {
	return Procedure{Name: name, Kind: KindMutation, handle: bind(fn)}
}

func bind[In, Out any](fn func(context.Context, In) (Out, error)) func(context.Context, decodeFunc) (any, error) {
	return func(ctx context.Context, decode decodeFunc) (any, error) {
		var in In
		if err := decode(&in); err != nil {
			return nil, err
		}
		return fn(ctx, in)
	}
}

type Dispatcher struct {
	procedures map[string]Procedure
	validate   *validator.Validate
	tracer     trace.Tracer
	logger     logger.Logger
}

func NewDispatcher(validate *validator.Validate, log logger.Logger) *Dispatcher {
	if validate == nil {
		validate = NewValidator()
	}
	return &Dispatcher{
		procedures: make(map[string]Procedure),
		validate:   validate,
		tracer:     tracing.Tracer(),
		logger:     log,
	}
}

// Register adds procedures. Names are unique; registering one twice is a
// programming error and panics.
func (d *Dispatcher) Register(procs ...Procedure) {
	for _, p := range procs {
		if _, dup := d.procedures[p.Name]; dup {
			panic(fmt.Sprintf("dispatch: procedure %q registered twice", p.Name))
		}
		d.procedures[p.Name] = p
	}
}

// Procedures lists the registered names in lexical order.
func (d *Dispatcher) Procedures() []string {
	names := make([]string, 0, len(d.procedures))
	for name := range d.procedures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the named procedure. kind is the kind implied by the
// transport (GET for queries, POST for mutations) and must match the
// procedure's own kind. An empty or null input decodes to the zero input.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, kind Kind, input json.RawMessage) (any, error) {
	proc, ok := d.procedures[name]
	if !ok {
		return nil, apperror.NewNotFound("procedure", name)
	}
	if proc.Kind != kind {
		return nil, apperror.NewMethodNotAllowed(fmt.Sprintf("%s is a %s, not a %s", name, proc.Kind, kind))
	}

	ctx, span := d.tracer.Start(ctx, "rpc."+name,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("rpc.procedure", name),
			attribute.String("rpc.kind", string(proc.Kind)),
		),
	)
	defer span.End()

	out, err := proc.handle(ctx, func(dst any) error { return d.decode(name, input, dst) })
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return out, nil
}

func (d *Dispatcher) decode(name string, input json.RawMessage, dst any) error {
	if len(input) > 0 && string(input) != "null" {
		if err := json.Unmarshal(input, dst); err != nil {
			d.logger.Debug("Rejected undecodable procedure input", zap.String("procedure", name), zap.Error(err))
			return apperror.NewInvalidInput(fmt.Sprintf("input for %s is not valid JSON for its shape", name), err)
		}
	}

	if err := d.validate.Struct(dst); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); !ok {
			return apperror.NewInvalidInput(FormatValidationErrors(err), err)
		}
	}

	if v, ok := dst.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return apperror.NewInvalidInput(err.Error(), err)
		}
	}
	return nil
}

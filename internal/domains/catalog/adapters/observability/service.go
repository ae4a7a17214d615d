package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	catapp "github.com/Apurer/pet-name-generator/internal/domains/catalog/application"
	cattypes "github.com/Apurer/pet-name-generator/internal/domains/catalog/application/types"
	"github.com/Apurer/pet-name-generator/internal/domains/catalog/ports"
)

const tracerName = "github.com/Apurer/pet-name-generator/internal/domains/catalog/adapters/observability/service"

// Service decorates a catalog port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// SelectNames selects names with instrumentation.
func (s *Service) SelectNames(ctx context.Context, input cattypes.SelectNamesInput) (*cattypes.NameSelection, error) {
	ctx, span := s.startSpan(ctx, "Service.SelectNames",
		attribute.String("pet.type.requested", input.PetType),
		attribute.Int("names.count.requested", input.Count),
		attribute.Bool("names.random_selection", input.RandomSelection),
	)
	defer span.End()

	result, err := s.inner.SelectNames(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to select names",
			slog.String("pet.type", input.PetType), slog.Int("count", input.Count))
	}
	span.SetAttributes(attribute.Int("names.count.returned", result.Count))
	s.metrics.recordNames(ctx, string(result.PetType), result.Count, input.RandomSelection)
	s.logInfo(ctx, "names selected",
		slog.String("pet.type", string(result.PetType)),
		slog.Int("count", result.Count),
		slog.Bool("random", input.RandomSelection))
	return result, nil
}

// RandomName draws one name with instrumentation.
func (s *Service) RandomName(ctx context.Context, input cattypes.PetTypeInput) (*cattypes.RandomName, error) {
	ctx, span := s.startSpan(ctx, "Service.RandomName", attribute.String("pet.type.requested", input.PetType))
	defer span.End()

	result, err := s.inner.RandomName(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to draw random name", slog.String("pet.type", input.PetType))
	}
	s.metrics.recordNames(ctx, string(result.PetType), 1, true)
	s.logInfo(ctx, "random name drawn", slog.String("pet.type", string(result.PetType)))
	return result, nil
}

// Facts lists facts with instrumentation.
func (s *Service) Facts(ctx context.Context, input cattypes.PetTypeInput) (*cattypes.FactList, error) {
	ctx, span := s.startSpan(ctx, "Service.Facts", attribute.String("pet.type.requested", input.PetType))
	defer span.End()

	result, err := s.inner.Facts(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list facts", slog.String("pet.type", input.PetType))
	}
	span.SetAttributes(attribute.Int("facts.result.count", result.Total))
	s.metrics.recordFacts(ctx, string(result.PetType), result.Total)
	s.logInfo(ctx, "facts listed", slog.String("pet.type", string(result.PetType)), slog.Int("count", result.Total))
	return result, nil
}

// RandomFact draws one fact with instrumentation.
func (s *Service) RandomFact(ctx context.Context, input cattypes.PetTypeInput) (*cattypes.Fact, error) {
	ctx, span := s.startSpan(ctx, "Service.RandomFact", attribute.String("pet.type.requested", input.PetType))
	defer span.End()

	result, err := s.inner.RandomFact(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to draw random fact", slog.String("pet.type", input.PetType))
	}
	s.metrics.recordFacts(ctx, string(result.PetType), 1)
	s.logInfo(ctx, "random fact drawn", slog.String("pet.type", string(result.PetType)))
	return result, nil
}

// AllFacts lists the flattened facts with instrumentation.
func (s *Service) AllFacts(ctx context.Context) (*cattypes.FactCollection, error) {
	ctx, span := s.startSpan(ctx, "Service.AllFacts")
	defer span.End()

	result, err := s.inner.AllFacts(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list all facts")
	}
	span.SetAttributes(attribute.Int("facts.result.count", result.Total))
	s.metrics.recordFacts(ctx, "*", result.Total)
	s.logInfo(ctx, "all facts listed", slog.Int("count", result.Total))
	return result, nil
}

// RandomFactAcrossAll draws one fact from every pet type with instrumentation.
func (s *Service) RandomFactAcrossAll(ctx context.Context) (*cattypes.Fact, error) {
	ctx, span := s.startSpan(ctx, "Service.RandomFactAcrossAll")
	defer span.End()

	result, err := s.inner.RandomFactAcrossAll(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to draw fact across pet types")
	}
	span.SetAttributes(attribute.String("pet.type", string(result.PetType)))
	s.metrics.recordFacts(ctx, string(result.PetType), 1)
	s.logInfo(ctx, "random fact drawn across pet types", slog.String("pet.type", string(result.PetType)))
	return result, nil
}

// AvailablePetTypes lists pet types with instrumentation.
func (s *Service) AvailablePetTypes(ctx context.Context) (*cattypes.PetTypeList, error) {
	ctx, span := s.startSpan(ctx, "Service.AvailablePetTypes")
	defer span.End()

	result, err := s.inner.AvailablePetTypes(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list pet types")
	}
	span.SetAttributes(attribute.Int("pet.types.count", result.Total))
	return result, nil
}

// Health is passed through without a span.
func (s *Service) Health(ctx context.Context) (*cattypes.HealthStatus, error) {
	return s.inner.Health(ctx)
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) log(ctx context.Context, level slog.Level, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, level, msg, attrs...)
}

// handleError records the failure on the span. Caller mistakes are logged at
// warn level; anything else is an error.
func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	level := slog.LevelError
	if errors.Is(err, catapp.ErrPetTypeNotFound) || errors.Is(err, catapp.ErrInvalidInput) {
		level = slog.LevelWarn
		s.metrics.recordRejected(ctx, err)
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.log(ctx, level, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	namesServed     metric.Int64Counter
	factsServed     metric.Int64Counter
	requestRejected metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	namesServed, _ := m.Int64Counter("catalog.service.names_served", metric.WithDescription("Number of names returned"))
	factsServed, _ := m.Int64Counter("catalog.service.facts_served", metric.WithDescription("Number of facts returned"))
	requestRejected, _ := m.Int64Counter("catalog.service.rejected", metric.WithDescription("Number of requests rejected by validation"))
	return serviceMetrics{
		namesServed:     namesServed,
		factsServed:     factsServed,
		requestRejected: requestRejected,
	}
}

func (m serviceMetrics) recordNames(ctx context.Context, petType string, count int, random bool) {
	addCounter(ctx, m.namesServed, int64(count),
		attribute.String("pet.type", petType),
		attribute.Bool("random", random))
}

func (m serviceMetrics) recordFacts(ctx context.Context, petType string, count int) {
	addCounter(ctx, m.factsServed, int64(count), attribute.String("pet.type", petType))
}

func (m serviceMetrics) recordRejected(ctx context.Context, err error) {
	reason := "invalid_input"
	if errors.Is(err, catapp.ErrPetTypeNotFound) {
		reason = "not_found"
	}
	addCounter(ctx, m.requestRejected, 1, attribute.String("reason", reason))
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)

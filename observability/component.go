package observability

import (
	"context"

	"github.com/skillsenselab/parakeet-gateway/component"
	"github.com/skillsenselab/parakeet-gateway/logger"
)

var _ component.Component = (*ObservabilityComponent)(nil)

// ObservabilityComponent manages tracer and meter provider lifecycle.
type ObservabilityComponent struct {
	config         Config
	shutdownTracer func(context.Context) error
	shutdownMeter  func(context.Context) error
}

// NewComponent creates the observability component from config.
func NewComponent(cfg Config) *ObservabilityComponent {
	cfg.ApplyDefaults()
	return &ObservabilityComponent{config: cfg}
}

func (o *ObservabilityComponent) Name() string { return "observability" }

// Start initializes the tracer and meter providers. With telemetry disabled
// this is a no-op.
func (o *ObservabilityComponent) Start(ctx context.Context) error {
	shutdownTracer, err := InitTracer(ctx, o.config)
	if err != nil {
		return err
	}
	o.shutdownTracer = shutdownTracer

	shutdownMeter, err := InitMeter(ctx, o.config)
	if err != nil {
		return err
	}
	o.shutdownMeter = shutdownMeter

	if o.config.Enabled {
		logger.Info("Telemetry export enabled", map[string]interface{}{
			"endpoint": o.config.Endpoint,
		})
	}
	return nil
}

// Stop flushes and shuts down both providers.
func (o *ObservabilityComponent) Stop(ctx context.Context) error {
	var firstErr error
	if o.shutdownTracer != nil {
		if err := o.shutdownTracer(ctx); err != nil {
			firstErr = err
		}
	}
	if o.shutdownMeter != nil {
		if err := o.shutdownMeter(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (o *ObservabilityComponent) Health(ctx context.Context) component.Health {
	status := component.StatusHealthy
	msg := "telemetry disabled"
	if o.config.Enabled {
		msg = o.config.Endpoint
	}
	return component.Health{Name: o.Name(), Status: status, Message: msg}
}

// Package health aggregates named subsystem checks into the probe results
// served to container orchestrators.
package health

import (
	"math"
	"sync"
	"time"

	"aiengine.app/logging"
	"go.uber.org/zap"
)

// Service status values reported by the basic health probe.
const (
	StatusOK        = "ok"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// Readiness status values.
const (
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// HealthResponse is the body of the basic health probe.
type HealthResponse struct {
	Status        string  `json:"status"`
	Service       string  `json:"service"`
	Version       string  `json:"version"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	ModelVersion  string  `json:"model_version"`
}

// LivenessResponse is the body of the liveness probe.
type LivenessResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse is the body of the readiness probe, carrying the full
// per-check map the aggregate was derived from.
type ReadinessResponse struct {
	Status string          `json:"status"`
	Checks map[string]bool `json:"checks"`
}

// Ready reports whether every check passed.
func (r ReadinessResponse) Ready() bool {
	return r.Status == StatusReady
}

// CheckFunc is a boolean-valued readiness probe for one subsystem.
type CheckFunc func() bool

// CheckerOptions holds the dependencies for creating a Checker.
type CheckerOptions struct {
	ServiceName  string
	Version      string
	ModelVersion string
	Logger       *logging.Logger
}

// Checker computes the three probe outcomes from service identity, the
// process start time, and a registry of named boolean checks. All probe
// methods are safe for concurrent use; they never mutate state.
type Checker struct {
	serviceName  string
	version      string
	modelVersion string
	startTime    time.Time
	logger       *logging.Logger

	mu     sync.RWMutex
	checks map[string]CheckFunc

	now func() time.Time
}

// NewChecker creates a checker with an empty registry, capturing the process
// start time.
func NewChecker(opts CheckerOptions) *Checker {
	return &Checker{
		serviceName:  opts.ServiceName,
		version:      opts.Version,
		modelVersion: opts.ModelVersion,
		startTime:    time.Now(),
		logger:       opts.Logger,
		checks:       make(map[string]CheckFunc),
		now:          time.Now,
	}
}

// RegisterCheck adds a named readiness check. Registration happens during
// startup wiring, before the server accepts traffic; the registry is
// read-only afterwards.
func (c *Checker) RegisterCheck(name string, check CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = check
}

// Status returns the basic health status. It is unconditionally ok in this
// version and performs no I/O beyond reading the clock; degradation signals
// will feed the status once real subsystems exist.
func (c *Checker) Status() HealthResponse {
	uptime := c.now().Sub(c.startTime).Seconds()

	return HealthResponse{
		Status:        StatusOK,
		Service:       c.serviceName,
		Version:       c.version,
		UptimeSeconds: math.Round(uptime*100) / 100,
		ModelVersion:  c.modelVersion,
	}
}

// Liveness reports whether the process can schedule and respond at all. It
// must never consult anything that could legitimately fail: a failing
// liveness probe makes the orchestrator kill the process, which is the wrong
// remedy for a transient dependency outage. Those belong in Readiness.
func (c *Checker) Liveness() LivenessResponse {
	return LivenessResponse{Status: StatusOK}
}

// Readiness evaluates every registered check fresh and aggregates them with
// a logical AND: any single failing check marks the whole service not ready.
// A failed aggregate is logged as a warning with the full check map; it is
// reported through the returned status, never as an error.
func (c *Checker) Readiness() ReadinessResponse {
	c.mu.RLock()
	defer c.mu.RUnlock()

	checks := make(map[string]bool, len(c.checks))
	allReady := true
	for name, check := range c.checks {
		passed := check()
		checks[name] = passed
		if !passed {
			allReady = false
		}
	}

	status := StatusReady
	if !allReady {
		status = StatusNotReady
		if c.logger != nil {
			c.logger.Warn("Readiness check failed", zap.Any("checks", checks))
		}
	}

	return ReadinessResponse{
		Status: status,
		Checks: checks,
	}
}

package telemetry

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"

	"github.com/interbanking/backend/internal/infrastructure/config"
)

// DefaultProfileTypes are collected when a ProfilerConfig names none. Mutex
// and block profiles are left out: the service has no contended locks worth
// their overhead.
var DefaultProfileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseObjects,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
}

// Profiler configuration errors.
var (
	ErrProfilerAddressRequired = errors.New("profiler server address is required when profiling is enabled")
	ErrProfilerNameRequired    = errors.New("profiler application name is required when profiling is enabled")
)

// ProfilerConfig holds Pyroscope continuous profiling configuration.
type ProfilerConfig struct {
	Enabled           bool
	ServerAddress     string
	ApplicationName   string
	BasicAuthUser     string
	BasicAuthPassword string
	ProfileTypes      []pyroscope.ProfileType
}

// ProfilerConfigFrom extracts the profiling settings from the telemetry section.
func ProfilerConfigFrom(cfg config.TelemetryConfig) ProfilerConfig {
	return ProfilerConfig{
		Enabled:           cfg.ProfilingEnabled,
		ServerAddress:     cfg.ProfilingServerAddress,
		ApplicationName:   cfg.ServiceName,
		BasicAuthUser:     cfg.ProfilingAuthUser,
		BasicAuthPassword: cfg.ProfilingAuthPassword,
	}
}

func (c ProfilerConfig) validate() error {
	if c.ServerAddress == "" {
		return ErrProfilerAddressRequired
	}
	if c.ApplicationName == "" {
		return ErrProfilerNameRequired
	}
	return nil
}

func (c ProfilerConfig) pyroscopeConfig(logger *zap.Logger) pyroscope.Config {
	types := c.ProfileTypes
	if len(types) == 0 {
		types = DefaultProfileTypes
	}
	tags := map[string]string{}
	if host, err := os.Hostname(); err == nil && host != "" {
		tags["hostname"] = host
	}

	pc := pyroscope.Config{
		ApplicationName: c.ApplicationName,
		ServerAddress:   c.ServerAddress,
		Logger:          pyroscopeLogger{logger.Named("pyroscope").Sugar()},
		Tags:            tags,
		ProfileTypes:    types,
	}
	// Pyroscope rejects half-configured basic auth, so both parts are needed.
	if c.BasicAuthUser != "" && c.BasicAuthPassword != "" {
		pc.BasicAuthUser = c.BasicAuthUser
		pc.BasicAuthPassword = c.BasicAuthPassword
	}
	return pc
}

// Profiler is a started Pyroscope session, or a no-op when disabled.
type Profiler struct {
	profiler *pyroscope.Profiler
	logger   *zap.Logger
	stopOnce sync.Once
	stopErr  error
}

// NewProfiler validates cfg and starts pushing profiles to the server.
func NewProfiler(cfg ProfilerConfig, logger *zap.Logger) (*Profiler, error) {
	p := &Profiler{logger: logger}
	if !cfg.Enabled {
		logger.Info("Continuous profiling disabled")
		return p, nil
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	pc := cfg.pyroscopeConfig(logger)
	profiler, err := pyroscope.Start(pc)
	if err != nil {
		return nil, fmt.Errorf("failed to start Pyroscope profiler: %w", err)
	}
	p.profiler = profiler

	logger.Info("Continuous profiling enabled",
		zap.String("server_address", cfg.ServerAddress),
		zap.String("application_name", cfg.ApplicationName),
		zap.Int("profile_types", len(pc.ProfileTypes)),
	)
	return p, nil
}

// Stop uploads the last profiles and ends the session. Later calls return
// the first call's result.
func (p *Profiler) Stop() error {
	p.stopOnce.Do(func() {
		if p.profiler == nil {
			return
		}
		p.logger.Info("Stopping continuous profiling")
		if err := p.profiler.Stop(); err != nil {
			p.stopErr = fmt.Errorf("failed to stop profiler: %w", err)
		}
	})
	return p.stopErr
}

// IsEnabled reports whether a profiling session is running.
func (p *Profiler) IsEnabled() bool {
	return p.profiler != nil
}

// pyroscopeLogger adapts zap to pyroscope.Logger.
type pyroscopeLogger struct {
	*zap.SugaredLogger
}

package tracing

import (
	"io"

	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/spend-easy/internal/logger"
)

type config interface {
	ServiceName() string
	AgentHostPort() string
}

// Init installs a jaeger tracer as the global opentracing tracer. Every span
// is sampled.
func Init(config config) (io.Closer, error) {
	cfg := jaegercfg.Configuration{
		ServiceName: config.ServiceName(),
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: config.AgentHostPort(),
		},
	}

	closer, err := cfg.InitGlobalTracer(config.ServiceName())
	if err != nil {
		return nil, errors.Wrap(err, "init jaeger tracer")
	}
	logger.Info("tracer initialized", zap.String("service", config.ServiceName()))
	return closer, nil
}

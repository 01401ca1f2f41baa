// Package observe defines the observability sink the gateway reports
// recoverable faults to. The core packages depend only on the Sink
// contract; the zap-backed implementation here is the default wiring.
package observe

import "go.uber.org/zap"

// Sink receives faults that were recovered locally and must not surface
// to the caller, such as cache backend failures that degrade to a miss.
// Key/value context is passed as alternating string keys and values.
type Sink interface {
	Recovered(component, op string, err error, kv ...any)
}

type zapSink struct {
	log *zap.Logger
}

// NewZapSink returns a Sink that logs recovered faults at warn level
// through the provided zap logger.
func NewZapSink(log *zap.Logger) Sink {
	return &zapSink{log: log}
}

func (s *zapSink) Recovered(component, op string, err error, kv ...any) {
	fields := make([]zap.Field, 0, len(kv)/2+3)
	fields = append(fields,
		zap.String("component", component),
		zap.String("op", op),
		zap.Error(err),
	)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, zap.Any(key, kv[i+1]))
	}
	s.log.Warn("recovered fault", fields...)
}

type nopSink struct{}

// Nop returns a Sink that discards everything. Useful in tests and for
// callers that bring their own telemetry.
func Nop() Sink {
	return nopSink{}
}

func (nopSink) Recovered(string, string, error, ...any) {}

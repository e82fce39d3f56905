package steps

import "go.uber.org/zap"

// logTracer writes every step as a structured Debug entry.
type logTracer struct {
	log *zap.Logger
}

// NewLogger returns a Tracer that logs each step through l at Debug level
// with fields "op" and "n". Panics on nil: a logging tracer without a logger
// is a programmer error.
//
// The logger is used as-is; attach algorithm context with l.With(...) before
// passing it in, e.g. steps.NewLogger(log.With(zap.String("algo", "mergesort"))).
func NewLogger(l *zap.Logger) Tracer {
	if l == nil {
		panic("steps: NewLogger(nil)")
	}

	return &logTracer{log: l}
}

func (t *logTracer) Step(op Op, n int) {
	if ce := t.log.Check(zap.DebugLevel, "step"); ce != nil {
		ce.Write(zap.String("op", string(op)), zap.Int("n", n))
	}
}

package sat

// Tracer receives free-form debug trace lines from the engine. It is
// the same capability-injection idiom etsangsplk-go-sat uses on its
// Solver (a Trace bool guarding a Tracer interface): nil means silent,
// a concrete Tracer (typically backed by log.Logger) gets a line per
// decision, propagation and conflict when Engine.Trace is enabled.
type Tracer interface {
	Printf(format string, args ...any)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(format string, args ...any)

// Printf calls f.
func (f TracerFunc) Printf(format string, args ...any) { f(format, args...) }

package steps

import "sync/atomic"

// Op names a kind of elementary operation.
type Op string

const (
	// Probe is one midpoint inspection during binary search.
	Probe Op = "probe"

	// Compare is one comparison between two elements, or an element and a target.
	Compare Op = "compare"

	// Move is one element written into an output buffer.
	Move Op = "move"

	// Emit is one item produced by a lazy enumerator.
	Emit Op = "emit"
)

// Ops lists every known Op in a stable order.
var Ops = []Op{Probe, Compare, Move, Emit}

// Tracer receives n occurrences of op. Implementations must be cheap:
// Step sits on the hot path of every algorithm it is attached to.
type Tracer interface {
	Step(op Op, n int)
}

// Nop discards every step.
var Nop Tracer = nopTracer{}

type nopTracer struct{}

func (nopTracer) Step(Op, int) {}

// Counter tallies steps per Op. The zero value is ready to use and
// concurrency-safe; a *Counter satisfies Tracer.
type Counter struct {
	probe   atomic.Int64
	compare atomic.Int64
	move    atomic.Int64
	emit    atomic.Int64
	other   atomic.Int64
}

// Step implements Tracer. Unknown ops are tallied under Total only.
func (c *Counter) Step(op Op, n int) {
	c.slot(op).Add(int64(n))
}

// Load returns the current tally for op.
func (c *Counter) Load(op Op) int64 {
	return c.slot(op).Load()
}

// Total returns the sum of all tallies, unknown ops included.
func (c *Counter) Total() int64 {
	return c.probe.Load() + c.compare.Load() + c.move.Load() + c.emit.Load() + c.other.Load()
}

// Snapshot copies the known tallies into a map keyed by Op.
func (c *Counter) Snapshot() map[Op]int64 {
	out := make(map[Op]int64, len(Ops))
	for _, op := range Ops {
		out[op] = c.Load(op)
	}

	return out
}

// Reset zeroes every tally.
func (c *Counter) Reset() {
	c.probe.Store(0)
	c.compare.Store(0)
	c.move.Store(0)
	c.emit.Store(0)
	c.other.Store(0)
}

func (c *Counter) slot(op Op) *atomic.Int64 {
	switch op {
	case Probe:
		return &c.probe
	case Compare:
		return &c.compare
	case Move:
		return &c.move
	case Emit:
		return &c.emit
	default:
		return &c.other
	}
}

// Multi returns a Tracer forwarding every step to each of ts in order.
// Nil entries are skipped; with no usable tracers it returns Nop.
func Multi(ts ...Tracer) Tracer {
	live := make(multi, 0, len(ts))
	for _, t := range ts {
		if t != nil {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return Nop
	}

	return live
}

type multi []Tracer

func (m multi) Step(op Op, n int) {
	for _, t := range m {
		t.Step(op, n)
	}
}

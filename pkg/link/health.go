package link

import "sync/atomic"

// Health is the tri-state condition of the serial link.
type Health int32

const (
	// HealthClosed means the port has not been opened yet, or was shut down.
	HealthClosed Health = iota
	// HealthOpen means the port is open and both loops may use it.
	HealthOpen
	// HealthFault means an I/O failure was observed and the supervisor
	// must reopen the port.
	HealthFault
)

// String implements fmt.Stringer.
func (h Health) String() string {
	switch h {
	case HealthClosed:
		return "CLOSED"
	case HealthOpen:
		return "OPEN"
	case HealthFault:
		return "FAULT"
	}
	return "UNKNOWN"
}

// healthFlag is the health state shared by the three link loops.
// The supervisor moves it to OPEN or CLOSED; reader and writer may only
// demote OPEN to FAULT.
type healthFlag struct {
	v atomic.Int32
}

func (f *healthFlag) get() Health {
	return Health(f.v.Load())
}

func (f *healthFlag) set(h Health) {
	f.v.Store(int32(h))
}

// fault demotes OPEN to FAULT. It reports whether this call did the
// demotion, so only the first observer logs the transition.
func (f *healthFlag) fault() bool {
	return f.v.CompareAndSwap(int32(HealthOpen), int32(HealthFault))
}

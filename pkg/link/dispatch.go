package link

import (
	"sync"

	"github.com/golang/glog"

	"github.com/polarbots/mculink/pkg/link/packets"
)

// Handler receives a decoded payload.
type Handler func(packets.Payload)

// Dispatcher routes validated payload bytes to registered handlers by
// packet kind. Kinds without a schema, and kinds nothing subscribed to,
// are logged and dropped without stopping the receive loop.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[packets.Kind][]Handler
	debug    *DebugTable
}

// NewDispatcher creates a Dispatcher feeding the given debug table.
func NewDispatcher(debug *DebugTable) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[packets.Kind][]Handler),
		debug:    debug,
	}
}

// On registers a handler for a packet kind. Multiple handlers per kind
// are invoked in registration order.
func (d *Dispatcher) On(kind packets.Kind, h Handler) {
	d.mu.Lock()
	d.handlers[kind] = append(d.handlers[kind], h)
	d.mu.Unlock()
}

// Dispatch decodes payload bytes for a kind and forwards the result.
// It is called only with checksum-validated payloads; a decode failure
// here means the firmware and host disagree on the schema, which is
// logged and dropped (the collaborator never sees a short payload).
func (d *Dispatcher) Dispatch(kind packets.Kind, data []byte) {
	p, ok := packets.New(kind)
	if !ok {
		glog.V(2).Infof("drop packet without schema: %s", kind)
		return
	}
	if err := p.UnmarshalBinary(data); err != nil {
		glog.Warningf("decode %s: %v", kind, err)
		return
	}

	if debug, isDebug := p.(*packets.Debug); isDebug && d.debug != nil {
		d.debug.update(debug)
	}

	d.mu.RLock()
	handlers := d.handlers[kind]
	d.mu.RUnlock()
	for _, h := range handlers {
		h(p)
	}
}

// DebugTable maps telemetry names to their latest value. Entries appear
// on first sighting of a name and persist for the process lifetime.
// Only the receive loop writes to it.
type DebugTable struct {
	mu     sync.RWMutex
	values map[string]float64
}

// NewDebugTable creates an empty DebugTable.
func NewDebugTable() *DebugTable {
	return &DebugTable{values: make(map[string]float64)}
}

func (t *DebugTable) update(p *packets.Debug) {
	t.mu.Lock()
	for i := range p.Records {
		name := p.Records[i].NameString()
		if name == "" {
			continue
		}
		if _, seen := t.values[name]; !seen {
			glog.Infof("new debug value %q", name)
		}
		t.values[name] = float64(p.Records[i].Value)
	}
	t.mu.Unlock()
}

// Get returns the latest value for a name.
func (t *DebugTable) Get(name string) (float64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.values[name]
	return v, ok
}

// Len returns the number of registered names.
func (t *DebugTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.values)
}

// Snapshot copies the current table.
func (t *DebugTable) Snapshot() map[string]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]float64, len(t.values))
	for k, v := range t.values {
		out[k] = v
	}
	return out
}

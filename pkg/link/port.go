package link

import (
	"io"
	"sync"
)

// Port is the byte transport to the device. Reads are expected to have
// a bounded timeout; concurrent Read and Write are safe (independent
// directions).
type Port interface {
	io.ReadWriteCloser
}

// portSlot holds the currently open port. Only the supervisor stores
// into it; reader and writer fetch the current port per iteration.
type portSlot struct {
	mu   sync.RWMutex
	port Port
}

func (s *portSlot) get() Port {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.port
}

func (s *portSlot) set(p Port) {
	s.mu.Lock()
	s.port = p
	s.mu.Unlock()
}

// take clears the slot and returns what was in it.
func (s *portSlot) take() Port {
	s.mu.Lock()
	p := s.port
	s.port = nil
	s.mu.Unlock()
	return p
}

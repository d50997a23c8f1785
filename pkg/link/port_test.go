package link

import (
	"bytes"
	"sync"
)

type timeoutError struct{}

func (timeoutError) Error() string { return "read timeout" }
func (timeoutError) Timeout() bool { return true }

// testPort is an in-memory Port. Inbound bytes are injected up front;
// writes are captured. chunk limits how many bytes a single Read may
// return, to exercise partial reads.
type testPort struct {
	mu       sync.Mutex
	in       bytes.Buffer
	out      bytes.Buffer
	chunk    int
	idleErr  error // returned with n=0 once inbound bytes run out
	readErr  error
	writeErr error
	closed   bool
}

func (p *testPort) inject(data []byte) {
	p.mu.Lock()
	p.in.Write(data)
	p.mu.Unlock()
}

func (p *testPort) Read(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.readErr != nil {
		return 0, p.readErr
	}
	if p.in.Len() == 0 {
		if p.idleErr != nil {
			return 0, p.idleErr
		}
		return 0, timeoutError{}
	}
	if p.chunk > 0 && len(b) > p.chunk {
		b = b[:p.chunk]
	}
	return p.in.Read(b)
}

func (p *testPort) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.writeErr != nil {
		return 0, p.writeErr
	}
	return p.out.Write(b)
}

func (p *testPort) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return nil
}

func (p *testPort) isClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

func (p *testPort) pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.in.Len()
}

func (p *testPort) written() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]byte(nil), p.out.Bytes()...)
}

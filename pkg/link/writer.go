package link

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/polarbots/mculink/pkg/link/packets"
)

// commandState is the shared outgoing command record. External callers
// mutate it from any goroutine; the writer snapshots it once per tick.
// Last write wins.
type commandState struct {
	mu  sync.Mutex
	cmd packets.RobotCmd
}

func (s *commandState) snapshot() packets.RobotCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cmd
}

func (s *commandState) store(cmd packets.RobotCmd) {
	s.mu.Lock()
	s.cmd = cmd
	s.mu.Unlock()
}

func (s *commandState) update(fn func(*packets.RobotCmd)) {
	s.mu.Lock()
	fn(&s.cmd)
	s.mu.Unlock()
}

// FrameWriter streams the outgoing robot command at a fixed cadence.
// Ticks are skipped while the link is not open; a write failure demotes
// the link to FAULT and drops the frame.
type FrameWriter struct {
	health   *healthFlag
	slot     *portSlot
	cmd      *commandState
	interval time.Duration
}

// NewFrameWriter creates a FrameWriter.
func NewFrameWriter(health *healthFlag, slot *portSlot, cmd *commandState, interval time.Duration) *FrameWriter {
	return &FrameWriter{health: health, slot: slot, cmd: cmd, interval: interval}
}

// Run implements framework.Runnable.
func (w *FrameWriter) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if w.health.get() != HealthOpen {
			continue
		}
		port := w.slot.get()
		if port == nil {
			continue
		}
		if err := w.sendFrame(port); err != nil {
			if w.health.fault() {
				glog.Errorf("send: %v", err)
			}
		}
	}
}

func (w *FrameWriter) sendFrame(port Port) error {
	cmd := w.cmd.snapshot()
	frame, err := encodeFrame(SOFSend, packets.KindRobotCmd, &cmd)
	if err != nil {
		return err
	}
	_, err = port.Write(frame)
	return err
}

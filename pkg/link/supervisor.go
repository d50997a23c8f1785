package link

import (
	"context"
	"time"

	"github.com/golang/glog"
)

// LinkSupervisor owns the port lifecycle. It opens the port, watches
// the shared health flag, and reopens after a fault on a fixed interval
// without ever giving up. Reader and writer never open or close the
// port themselves.
type LinkSupervisor struct {
	health *healthFlag
	slot   *portSlot
	retry  time.Duration
	open   func() (Port, error)
}

// NewLinkSupervisor creates a LinkSupervisor using the given opener.
func NewLinkSupervisor(health *healthFlag, slot *portSlot, retry time.Duration, open func() (Port, error)) *LinkSupervisor {
	return &LinkSupervisor{health: health, slot: slot, retry: retry, open: open}
}

// Run implements framework.Runnable.
func (s *LinkSupervisor) Run(ctx context.Context) error {
	defer s.shutdown()
	for {
		if s.health.get() != HealthOpen {
			s.reopen()
		}
		if err := sleep(ctx, s.retry); err != nil {
			return err
		}
	}
}

func (s *LinkSupervisor) reopen() {
	if old := s.slot.take(); old != nil {
		old.Close()
	}
	port, err := s.open()
	if err != nil {
		glog.Errorf("open port: %v", err)
		return
	}
	s.slot.set(port)
	s.health.set(HealthOpen)
	glog.Info("serial port opened")
}

func (s *LinkSupervisor) shutdown() {
	s.health.set(HealthClosed)
	if port := s.slot.take(); port != nil {
		port.Close()
	}
}

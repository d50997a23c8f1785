package link

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/golang/glog"

	"github.com/polarbots/mculink/pkg/link/packets"
)

// FrameReader runs the receive state machine: scan for sof, read and
// verify the header, accumulate payload and trailer, verify the frame,
// dispatch. Framing errors resynchronize; I/O errors demote the link
// to FAULT and the loop idles until the supervisor reopens the port.
type FrameReader struct {
	health     *healthFlag
	slot       *portSlot
	dispatcher *Dispatcher
	idle       time.Duration

	resyncs    atomic.Uint64
	crcErrors  atomic.Uint64
	scanMisses int
}

// NewFrameReader creates a FrameReader.
func NewFrameReader(health *healthFlag, slot *portSlot, d *Dispatcher, idle time.Duration) *FrameReader {
	return &FrameReader{health: health, slot: slot, dispatcher: d, idle: idle}
}

// Resyncs returns the total count of bytes skipped while seeking sof.
func (r *FrameReader) Resyncs() uint64 {
	return r.resyncs.Load()
}

// CRCErrors returns the total count of header and frame checksum misses.
func (r *FrameReader) CRCErrors() uint64 {
	return r.crcErrors.Load()
}

// Run implements framework.Runnable.
func (r *FrameReader) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.health.get() != HealthOpen {
			if err := sleep(ctx, r.idle); err != nil {
				return err
			}
			continue
		}
		port := r.slot.get()
		if port == nil {
			if err := sleep(ctx, r.idle); err != nil {
				return err
			}
			continue
		}
		if err := r.readFrame(ctx, port); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			// frame in flight is discarded, never retried
			if r.health.fault() {
				glog.Errorf("receive: %v", err)
			}
		}
	}
}

func (r *FrameReader) readFrame(ctx context.Context, port Port) error {
	var sof [1]byte
	if err := readFull(ctx, port, sof[:]); err != nil {
		return err
	}
	if sof[0] != SOFRecv {
		r.resyncs.Add(1)
		r.scanMisses++
		glog.V(2).Infof("seeking sof, skipped %d bytes", r.scanMisses)
		return nil
	}
	if r.scanMisses > 0 {
		glog.Infof("resynchronized after %d bytes", r.scanMisses)
		r.scanMisses = 0
	}

	var header [headerSize]byte
	header[0] = sof[0]
	if err := readFull(ctx, port, header[1:]); err != nil {
		return err
	}
	if !verifyHeaderChecksum(header[:]) {
		// len cannot be trusted here, so no skip-ahead: rescan for sof
		r.crcErrors.Add(1)
		glog.Warning("header checksum mismatch")
		return nil
	}

	payloadLen := int(binary.LittleEndian.Uint16(header[2:4]))
	frame := make([]byte, headerSize+payloadLen+trailerSize)
	copy(frame, header[:])
	if err := readFull(ctx, port, frame[headerSize:]); err != nil {
		return err
	}
	if !verifyFrameChecksum(frame) {
		r.crcErrors.Add(1)
		glog.Warning("frame checksum mismatch")
		return nil
	}

	r.dispatcher.Dispatch(packets.Kind(header[1]), frame[headerSize:headerSize+payloadLen])
	return nil
}

// readFull accumulates exactly len(buf) bytes. Short reads and read
// timeouts are expected; only a real I/O error or cancellation aborts.
// A serial port with a read timeout reports the expired timeout as
// (0, io.EOF), so EOF here means the line went quiet, not that it
// closed. A closed port surfaces as os.ErrClosed.
func readFull(ctx context.Context, port Port, buf []byte) error {
	off := 0
	for off < len(buf) {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := port.Read(buf[off:])
		off += n
		if err != nil {
			if errors.Is(err, io.EOF) || os.IsTimeout(err) {
				continue
			}
			return err
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

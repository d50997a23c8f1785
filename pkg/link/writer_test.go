package link

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/polarbots/mculink/pkg/link/packets"
)

type writerFixture struct {
	port   *testPort
	health *healthFlag
	cmd    *commandState
	writer *FrameWriter
}

func newWriterFixture() *writerFixture {
	f := &writerFixture{
		port:   &testPort{},
		health: &healthFlag{},
		cmd:    &commandState{},
	}
	slot := &portSlot{}
	slot.set(f.port)
	f.health.set(HealthOpen)
	f.writer = NewFrameWriter(f.health, slot, f.cmd, time.Millisecond)
	return f
}

func TestWriterSendsCommandFrames(t *testing.T) {
	f := newWriterFixture()
	f.cmd.update(func(cmd *packets.RobotCmd) {
		cmd.Vx, cmd.Vy, cmd.Wz = 1, 2, 3
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.writer.Run(ctx) }()

	var cmd packets.RobotCmd
	frameLen := headerSize + cmd.Size() + trailerSize
	require.Eventually(t, func() bool {
		return len(f.port.written()) >= frameLen
	}, time.Second, time.Millisecond)
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	frame := f.port.written()[:frameLen]
	require.Equal(t, SOFSend, frame[0])
	require.Equal(t, byte(packets.KindRobotCmd), frame[1])
	require.True(t, verifyHeaderChecksum(frame[:headerSize]))
	require.True(t, verifyFrameChecksum(frame))

	require.NoError(t, cmd.UnmarshalBinary(frame[headerSize:frameLen-trailerSize]))
	require.Equal(t, float32(1), cmd.Vx)
	require.Equal(t, float32(2), cmd.Vy)
	require.Equal(t, float32(3), cmd.Wz)
}

func TestWriterSkipsTicksWhileLinkDown(t *testing.T) {
	f := newWriterFixture()
	f.health.set(HealthClosed)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.writer.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
	require.Empty(t, f.port.written())
}

func TestWriterFaultsOnWriteError(t *testing.T) {
	f := newWriterFixture()
	f.port.writeErr = errors.New("device gone")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- f.writer.Run(ctx) }()

	require.Eventually(t, func() bool {
		return f.health.get() == HealthFault
	}, time.Second, time.Millisecond)
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestCommandStateLastWriteWins(t *testing.T) {
	var s commandState
	s.store(packets.RobotCmd{Vx: 1})
	s.update(func(cmd *packets.RobotCmd) { cmd.GimbalYaw = 2 })
	s.store(packets.RobotCmd{Vy: 3})

	cmd := s.snapshot()
	require.Equal(t, packets.RobotCmd{Vy: 3}, cmd)
}

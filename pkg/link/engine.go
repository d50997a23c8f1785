package link

import (
	"context"

	fx "github.com/polarbots/mculink/pkg/framework"
	"github.com/polarbots/mculink/pkg/link/packets"
)

// Engine bridges the MCU serial link to the host process. It owns the
// three link loops and the state they share, and exposes the
// collaborator-facing API: packet callbacks, the outgoing command, link
// health and the debug value table.
type Engine struct {
	cfg *Config

	health healthFlag
	slot   portSlot
	cmd    commandState

	debug      *DebugTable
	dispatcher *Dispatcher

	reader     *FrameReader
	writer     *FrameWriter
	supervisor *LinkSupervisor
}

// NewEngine creates an Engine. An invalid configuration is fatal here,
// before any loop starts.
func NewEngine(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg, debug: NewDebugTable()}
	e.dispatcher = NewDispatcher(e.debug)
	e.reader = NewFrameReader(&e.health, &e.slot, e.dispatcher, cfg.RetryInterval)
	e.writer = NewFrameWriter(&e.health, &e.slot, &e.cmd, cfg.SendInterval)
	e.supervisor = NewLinkSupervisor(&e.health, &e.slot, cfg.RetryInterval, cfg.open)
	return e, nil
}

// OnPacket registers a callback for a packet kind.
func (e *Engine) OnPacket(kind packets.Kind, h Handler) {
	e.dispatcher.On(kind, h)
}

// SetCommand replaces the whole outgoing command record.
func (e *Engine) SetCommand(cmd packets.RobotCmd) {
	e.cmd.store(cmd)
}

// SetVelocity updates only the chassis speed vector of the outgoing
// command.
func (e *Engine) SetVelocity(vx, vy, wz float32) {
	e.cmd.update(func(cmd *packets.RobotCmd) {
		cmd.Vx, cmd.Vy, cmd.Wz = vx, vy, wz
	})
}

// Health returns the current link health.
func (e *Engine) Health() Health {
	return e.health.get()
}

// DebugValues returns the debug value table.
func (e *Engine) DebugValues() *DebugTable {
	return e.debug
}

// Resyncs returns the count of bytes skipped while seeking sof.
func (e *Engine) Resyncs() uint64 {
	return e.reader.Resyncs()
}

// Run starts the supervise, receive and send loops and blocks until
// all of them exit.
func (e *Engine) Run(ctx context.Context) error {
	runner := fx.NewRunnerWith(ctx)
	runner.Go(
		fx.NamedRun("supervise", e.supervisor),
		fx.NamedRun("receive", e.reader),
		fx.NamedRun("send", e.writer),
	)
	return runner.Wait()
}

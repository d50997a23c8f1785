package link

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polarbots/mculink/pkg/link/packets"
)

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Device = ""
	_, err := NewEngine(cfg)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestEngineAPI(t *testing.T) {
	e, err := NewEngine(validConfig())
	require.NoError(t, err)

	require.Equal(t, HealthClosed, e.Health())
	require.Zero(t, e.Resyncs())

	e.SetCommand(packets.RobotCmd{GimbalYaw: 1})
	e.SetVelocity(1, 2, 3)
	cmd := e.cmd.snapshot()
	require.Equal(t, packets.RobotCmd{Vx: 1, Vy: 2, Wz: 3, GimbalYaw: 1}, cmd)

	var got packets.Payload
	e.OnPacket(packets.KindIMU, func(p packets.Payload) { got = p })
	data, err := (&packets.IMU{Yaw: 2}).MarshalBinary()
	require.NoError(t, err)
	e.dispatcher.Dispatch(packets.KindIMU, data)
	require.Equal(t, &packets.IMU{Yaw: 2}, got)

	require.Zero(t, e.DebugValues().Len())
}

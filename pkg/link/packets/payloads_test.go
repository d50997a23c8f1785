package packets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func debugPayload() *Debug {
	p := &Debug{TimeStamp: 12345}
	p.Records[0].SetName("vx_err")
	p.Records[0].Type = 1
	p.Records[0].Value = -0.25
	p.Records[3].SetName("yaw_target")
	p.Records[3].Value = 3.5
	return p
}

func TestPayloadRoundTrip(t *testing.T) {
	testCases := []Payload{
		debugPayload(),
		&IMU{TimeStamp: 42, Yaw: 1.5, Pitch: -0.5, Roll: 0.25, YawVel: 2, PitchVel: -1, RollVel: 0.125},
		&Event{SupplyZone: 1, BigEnergy: 2, TrapezoidalHighland4: 1, BaseVirtualShieldRemaining: 600},
		&AllRobotHP{TimeStamp: 7, Red1: 150, Red7: 600, RedBase: 5000, Blue3: 250, BlueOutpost: 1500, BlueBase: 4750},
		&GameStatus{TimeStamp: 9, Progress: GameRunning, StageRemainTime: 241},
		&RobotMotion{TimeStamp: 100, Vx: 1.25, Vy: -2.5, Wz: 0.5},
		&GroundRobotPosition{TimeStamp: 3, HeroX: 4.5, EngineerY: -1.5, Standard3X: 12, Standard5Y: 8.25},
		&RFIDStatus{BaseGainPoint: true, EnergyMechanismGainPoint: true, CenterGainPoint: true},
		&RobotStatus{
			RobotID: 3, RobotLevel: 2, CurrentHP: 350, MaximumHP: 400,
			ShooterBarrelCoolingValue: 40, ShooterBarrelHeatLimit: 240, Shooter17mm1BarrelHeat: 30,
			RobotPosX: 6.5, RobotPosY: -3.25, RobotPosAngle: 1.5,
			ArmorID: 1, HPDeductionReason: HPDeductionOverHeat,
			ProjectileAllowance17mm1: 120, RemainingGoldCoin: 325,
		},
		&GimbalCmd{Yaw: 0.75, Pitch: -0.25},
		&ShootCmd{ProjectileNum: 3},
	}
	for _, p := range testCases {
		t.Run(p.Kind().String(), func(t *testing.T) {
			data, err := p.MarshalBinary()
			require.NoError(t, err)
			require.Len(t, data, p.Size())

			decoded, ok := New(p.Kind())
			require.True(t, ok)
			require.NoError(t, decoded.UnmarshalBinary(data))
			require.Equal(t, p, decoded)
		})
	}
}

// RobotCmd is outbound only and shares its id space with inbound kinds,
// so it is not reachable through New.
func TestRobotCmdRoundTrip(t *testing.T) {
	cmd := &RobotCmd{Vx: 1, Vy: 2, Wz: 3, ChassisYaw: 4, LegLength: 0.18, GimbalPitch: -0.5}
	data, err := cmd.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, cmd.Size())

	var decoded RobotCmd
	require.NoError(t, decoded.UnmarshalBinary(data))
	require.Equal(t, *cmd, decoded)
}

func TestUnmarshalShortPayload(t *testing.T) {
	var imu IMU
	err := imu.UnmarshalBinary(make([]byte, imu.Size()-1))
	require.Error(t, err)
	var short *ErrShortPayload
	require.ErrorAs(t, err, &short)
	require.Equal(t, KindIMU, short.Kind)
	require.Equal(t, imu.Size(), short.Want)
}

func TestNewCoversInboundKinds(t *testing.T) {
	kinds := []Kind{
		KindDebug, KindIMU, KindEvent, KindAllRobotHP, KindGameStatus,
		KindRobotMotion, KindGroundRobotPosition, KindRFIDStatus,
		KindRobotStatus, KindGimbalCmd, KindShootCmd,
	}
	for _, k := range kinds {
		p, ok := New(k)
		require.True(t, ok, "kind %s", k)
		require.Equal(t, k, p.Kind())
	}

	// reserved by the firmware, no schema yet
	_, ok := New(KindPIDDebug)
	require.False(t, ok)

	_, ok = New(Kind(0x7f))
	require.False(t, ok)
}

func TestDebugRecordName(t *testing.T) {
	var r DebugRecord
	require.Equal(t, "", r.NameString())

	r.SetName("foo")
	require.Equal(t, "foo", r.NameString())

	r.SetName("a_very_long_name_beyond_width")
	require.Equal(t, DebugNameLen, len(r.NameString()))

	// name occupying the full field with no terminator
	for i := range r.Name {
		r.Name[i] = 'x'
	}
	require.Equal(t, "xxxxxxxxxx", r.NameString())
}

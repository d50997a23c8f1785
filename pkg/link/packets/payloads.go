package packets

// Debug payload geometry.
const (
	DebugRecordCount = 10
	DebugNameLen     = 10
)

// DebugRecord is one named telemetry slot in a Debug payload.
// A record with an all-zero name is an empty slot.
type DebugRecord struct {
	Name  [DebugNameLen]byte
	Type  uint8
	Value float32
}

// NameString returns the record name up to the first zero byte.
func (r *DebugRecord) NameString() string {
	for i, b := range r.Name {
		if b == 0 {
			return string(r.Name[:i])
		}
	}
	return string(r.Name[:])
}

// SetName stores a name, truncating to the fixed field width.
func (r *DebugRecord) SetName(name string) {
	r.Name = [DebugNameLen]byte{}
	copy(r.Name[:], name)
}

// Debug carries a fixed table of named telemetry values.
type Debug struct {
	TimeStamp uint32
	Records   [DebugRecordCount]DebugRecord
}

// Kind implements Payload.
func (p *Debug) Kind() Kind { return KindDebug }

// Size implements Payload.
func (p *Debug) Size() int { return 4 + DebugRecordCount*(DebugNameLen+1+4) }

// MarshalBinary implements Payload.
func (p *Debug) MarshalBinary() ([]byte, error) {
	w := wireWriter{buf: make([]byte, p.Size())}
	w.u32(p.TimeStamp)
	for i := range p.Records {
		w.raw(p.Records[i].Name[:])
		w.u8(p.Records[i].Type)
		w.f32(p.Records[i].Value)
	}
	return w.buf, nil
}

// UnmarshalBinary implements Payload.
func (p *Debug) UnmarshalBinary(data []byte) error {
	if err := checkSize(p, data); err != nil {
		return err
	}
	r := wireReader{buf: data}
	p.TimeStamp = r.u32()
	for i := range p.Records {
		r.raw(p.Records[i].Name[:])
		p.Records[i].Type = r.u8()
		p.Records[i].Value = r.f32()
	}
	return nil
}

// IMU carries attitude and angular rates.
type IMU struct {
	TimeStamp uint32

	Yaw   float32
	Pitch float32
	Roll  float32

	YawVel   float32
	PitchVel float32
	RollVel  float32
}

// Kind implements Payload.
func (p *IMU) Kind() Kind { return KindIMU }

// Size implements Payload.
func (p *IMU) Size() int { return 28 }

// MarshalBinary implements Payload.
func (p *IMU) MarshalBinary() ([]byte, error) {
	w := wireWriter{buf: make([]byte, p.Size())}
	w.u32(p.TimeStamp)
	w.f32(p.Yaw)
	w.f32(p.Pitch)
	w.f32(p.Roll)
	w.f32(p.YawVel)
	w.f32(p.PitchVel)
	w.f32(p.RollVel)
	return w.buf, nil
}

// UnmarshalBinary implements Payload.
func (p *IMU) UnmarshalBinary(data []byte) error {
	if err := checkSize(p, data); err != nil {
		return err
	}
	r := wireReader{buf: data}
	p.TimeStamp = r.u32()
	p.Yaw = r.f32()
	p.Pitch = r.f32()
	p.Roll = r.f32()
	p.YawVel = r.f32()
	p.PitchVel = r.f32()
	p.RollVel = r.f32()
	return nil
}

// Event carries field event states from the referee system.
type Event struct {
	SupplyStationFront    uint8
	SupplyStationInternal uint8
	SupplyZone            uint8
	CenterGainZone        uint8

	SmallEnergy uint8
	BigEnergy   uint8

	CircularHighland     uint8
	TrapezoidalHighland3 uint8
	TrapezoidalHighland4 uint8

	BaseVirtualShieldRemaining uint16
}

// Kind implements Payload.
func (p *Event) Kind() Kind { return KindEvent }

// Size implements Payload.
func (p *Event) Size() int { return 11 }

// MarshalBinary implements Payload.
func (p *Event) MarshalBinary() ([]byte, error) {
	w := wireWriter{buf: make([]byte, p.Size())}
	w.u8(p.SupplyStationFront)
	w.u8(p.SupplyStationInternal)
	w.u8(p.SupplyZone)
	w.u8(p.CenterGainZone)
	w.u8(p.SmallEnergy)
	w.u8(p.BigEnergy)
	w.u8(p.CircularHighland)
	w.u8(p.TrapezoidalHighland3)
	w.u8(p.TrapezoidalHighland4)
	w.u16(p.BaseVirtualShieldRemaining)
	return w.buf, nil
}

// UnmarshalBinary implements Payload.
func (p *Event) UnmarshalBinary(data []byte) error {
	if err := checkSize(p, data); err != nil {
		return err
	}
	r := wireReader{buf: data}
	p.SupplyStationFront = r.u8()
	p.SupplyStationInternal = r.u8()
	p.SupplyZone = r.u8()
	p.CenterGainZone = r.u8()
	p.SmallEnergy = r.u8()
	p.BigEnergy = r.u8()
	p.CircularHighland = r.u8()
	p.TrapezoidalHighland3 = r.u8()
	p.TrapezoidalHighland4 = r.u8()
	p.BaseVirtualShieldRemaining = r.u16()
	return nil
}

// AllRobotHP carries hit points for every robot on the field.
type AllRobotHP struct {
	TimeStamp uint32

	Red1       uint16
	Red2       uint16
	Red3       uint16
	Red4       uint16
	Red5       uint16
	Red7       uint16
	RedOutpost uint16
	RedBase    uint16

	Blue1       uint16
	Blue2       uint16
	Blue3       uint16
	Blue4       uint16
	Blue5       uint16
	Blue7       uint16
	BlueOutpost uint16
	BlueBase    uint16
}

// Kind implements Payload.
func (p *AllRobotHP) Kind() Kind { return KindAllRobotHP }

// Size implements Payload.
func (p *AllRobotHP) Size() int { return 36 }

// MarshalBinary implements Payload.
func (p *AllRobotHP) MarshalBinary() ([]byte, error) {
	w := wireWriter{buf: make([]byte, p.Size())}
	w.u32(p.TimeStamp)
	for _, hp := range []uint16{
		p.Red1, p.Red2, p.Red3, p.Red4, p.Red5, p.Red7, p.RedOutpost, p.RedBase,
		p.Blue1, p.Blue2, p.Blue3, p.Blue4, p.Blue5, p.Blue7, p.BlueOutpost, p.BlueBase,
	} {
		w.u16(hp)
	}
	return w.buf, nil
}

// UnmarshalBinary implements Payload.
func (p *AllRobotHP) UnmarshalBinary(data []byte) error {
	if err := checkSize(p, data); err != nil {
		return err
	}
	r := wireReader{buf: data}
	p.TimeStamp = r.u32()
	for _, hp := range []*uint16{
		&p.Red1, &p.Red2, &p.Red3, &p.Red4, &p.Red5, &p.Red7, &p.RedOutpost, &p.RedBase,
		&p.Blue1, &p.Blue2, &p.Blue3, &p.Blue4, &p.Blue5, &p.Blue7, &p.BlueOutpost, &p.BlueBase,
	} {
		*hp = r.u16()
	}
	return nil
}

// Game progress values in GameStatus.
const (
	GameNotStart     uint8 = 0
	GamePreparation  uint8 = 1
	GameSelfChecking uint8 = 2
	GameCountDown    uint8 = 3
	GameRunning      uint8 = 4
	GameOver         uint8 = 5
)

// GameStatus carries the match phase and remaining time.
type GameStatus struct {
	TimeStamp       uint32
	Progress        uint8
	StageRemainTime uint16
}

// Kind implements Payload.
func (p *GameStatus) Kind() Kind { return KindGameStatus }

// Size implements Payload.
func (p *GameStatus) Size() int { return 7 }

// MarshalBinary implements Payload.
func (p *GameStatus) MarshalBinary() ([]byte, error) {
	w := wireWriter{buf: make([]byte, p.Size())}
	w.u32(p.TimeStamp)
	w.u8(p.Progress)
	w.u16(p.StageRemainTime)
	return w.buf, nil
}

// UnmarshalBinary implements Payload.
func (p *GameStatus) UnmarshalBinary(data []byte) error {
	if err := checkSize(p, data); err != nil {
		return err
	}
	r := wireReader{buf: data}
	p.TimeStamp = r.u32()
	p.Progress = r.u8()
	p.StageRemainTime = r.u16()
	return nil
}

// RobotMotion carries the measured chassis speed vector.
type RobotMotion struct {
	TimeStamp uint32
	Vx        float32
	Vy        float32
	Wz        float32
}

// Kind implements Payload.
func (p *RobotMotion) Kind() Kind { return KindRobotMotion }

// Size implements Payload.
func (p *RobotMotion) Size() int { return 16 }

// MarshalBinary implements Payload.
func (p *RobotMotion) MarshalBinary() ([]byte, error) {
	w := wireWriter{buf: make([]byte, p.Size())}
	w.u32(p.TimeStamp)
	w.f32(p.Vx)
	w.f32(p.Vy)
	w.f32(p.Wz)
	return w.buf, nil
}

// UnmarshalBinary implements Payload.
func (p *RobotMotion) UnmarshalBinary(data []byte) error {
	if err := checkSize(p, data); err != nil {
		return err
	}
	r := wireReader{buf: data}
	p.TimeStamp = r.u32()
	p.Vx = r.f32()
	p.Vy = r.f32()
	p.Wz = r.f32()
	return nil
}

// GroundRobotPosition carries field coordinates of friendly ground robots.
type GroundRobotPosition struct {
	TimeStamp uint32

	HeroX     float32
	HeroY     float32
	EngineerX float32
	EngineerY float32

	Standard3X float32
	Standard3Y float32
	Standard4X float32
	Standard4Y float32
	Standard5X float32
	Standard5Y float32
}

// Kind implements Payload.
func (p *GroundRobotPosition) Kind() Kind { return KindGroundRobotPosition }

// Size implements Payload.
func (p *GroundRobotPosition) Size() int { return 44 }

// MarshalBinary implements Payload.
func (p *GroundRobotPosition) MarshalBinary() ([]byte, error) {
	w := wireWriter{buf: make([]byte, p.Size())}
	w.u32(p.TimeStamp)
	for _, v := range []float32{
		p.HeroX, p.HeroY, p.EngineerX, p.EngineerY,
		p.Standard3X, p.Standard3Y, p.Standard4X, p.Standard4Y, p.Standard5X, p.Standard5Y,
	} {
		w.f32(v)
	}
	return w.buf, nil
}

// UnmarshalBinary implements Payload.
func (p *GroundRobotPosition) UnmarshalBinary(data []byte) error {
	if err := checkSize(p, data); err != nil {
		return err
	}
	r := wireReader{buf: data}
	p.TimeStamp = r.u32()
	for _, v := range []*float32{
		&p.HeroX, &p.HeroY, &p.EngineerX, &p.EngineerY,
		&p.Standard3X, &p.Standard3Y, &p.Standard4X, &p.Standard4Y, &p.Standard5X, &p.Standard5Y,
	} {
		*v = r.f32()
	}
	return nil
}

// RFIDStatus carries the detection state of every RFID gain point.
type RFIDStatus struct {
	BaseGainPoint                  bool
	CircularHighlandGainPoint      bool
	EnemyCircularHighlandGainPoint bool
	FriendlyR3B3GainPoint          bool
	EnemyR3B3GainPoint             bool
	FriendlyR4B4GainPoint          bool
	EnemyR4B4GainPoint             bool
	EnergyMechanismGainPoint       bool
	FriendlyFlyRampFrontGainPoint  bool
	FriendlyFlyRampBackGainPoint   bool
	EnemyFlyRampFrontGainPoint     bool
	EnemyFlyRampBackGainPoint      bool
	FriendlyOutpostGainPoint       bool
	FriendlyHealingPoint           bool
	FriendlySentryPatrolArea       bool
	EnemySentryPatrolArea          bool
	FriendlyBigResourceIsland      bool
	EnemyBigResourceIsland         bool
	FriendlyExchangeArea           bool
	CenterGainPoint                bool
}

// Kind implements Payload.
func (p *RFIDStatus) Kind() Kind { return KindRFIDStatus }

// Size implements Payload.
func (p *RFIDStatus) Size() int { return 20 }

func (p *RFIDStatus) fields() []*bool {
	return []*bool{
		&p.BaseGainPoint, &p.CircularHighlandGainPoint, &p.EnemyCircularHighlandGainPoint,
		&p.FriendlyR3B3GainPoint, &p.EnemyR3B3GainPoint,
		&p.FriendlyR4B4GainPoint, &p.EnemyR4B4GainPoint,
		&p.EnergyMechanismGainPoint,
		&p.FriendlyFlyRampFrontGainPoint, &p.FriendlyFlyRampBackGainPoint,
		&p.EnemyFlyRampFrontGainPoint, &p.EnemyFlyRampBackGainPoint,
		&p.FriendlyOutpostGainPoint, &p.FriendlyHealingPoint,
		&p.FriendlySentryPatrolArea, &p.EnemySentryPatrolArea,
		&p.FriendlyBigResourceIsland, &p.EnemyBigResourceIsland,
		&p.FriendlyExchangeArea, &p.CenterGainPoint,
	}
}

// MarshalBinary implements Payload.
func (p *RFIDStatus) MarshalBinary() ([]byte, error) {
	w := wireWriter{buf: make([]byte, p.Size())}
	for _, f := range p.fields() {
		w.flag(*f)
	}
	return w.buf, nil
}

// UnmarshalBinary implements Payload.
func (p *RFIDStatus) UnmarshalBinary(data []byte) error {
	if err := checkSize(p, data); err != nil {
		return err
	}
	r := wireReader{buf: data}
	for _, f := range p.fields() {
		*f = r.flag()
	}
	return nil
}

// HP deduction reasons in RobotStatus.
const (
	HPDeductionArmorHit       uint8 = 0
	HPDeductionSystemOffline  uint8 = 1
	HPDeductionOverShootSpeed uint8 = 2
	HPDeductionOverHeat       uint8 = 3
	HPDeductionOverPower      uint8 = 4
	HPDeductionArmorCollision uint8 = 5
)

// RobotStatus carries the referee state of this robot.
type RobotStatus struct {
	RobotID    uint8
	RobotLevel uint8
	CurrentHP  uint16
	MaximumHP  uint16

	ShooterBarrelCoolingValue uint16
	ShooterBarrelHeatLimit    uint16
	Shooter17mm1BarrelHeat    uint16

	RobotPosX     float32
	RobotPosY     float32
	RobotPosAngle float32

	ArmorID           uint8
	HPDeductionReason uint8

	ProjectileAllowance17mm1 uint16
	RemainingGoldCoin        uint16
}

// Kind implements Payload.
func (p *RobotStatus) Kind() Kind { return KindRobotStatus }

// Size implements Payload.
func (p *RobotStatus) Size() int { return 30 }

// MarshalBinary implements Payload.
func (p *RobotStatus) MarshalBinary() ([]byte, error) {
	w := wireWriter{buf: make([]byte, p.Size())}
	w.u8(p.RobotID)
	w.u8(p.RobotLevel)
	w.u16(p.CurrentHP)
	w.u16(p.MaximumHP)
	w.u16(p.ShooterBarrelCoolingValue)
	w.u16(p.ShooterBarrelHeatLimit)
	w.u16(p.Shooter17mm1BarrelHeat)
	w.f32(p.RobotPosX)
	w.f32(p.RobotPosY)
	w.f32(p.RobotPosAngle)
	w.u8(p.ArmorID)
	w.u8(p.HPDeductionReason)
	w.u16(p.ProjectileAllowance17mm1)
	w.u16(p.RemainingGoldCoin)
	return w.buf, nil
}

// UnmarshalBinary implements Payload.
func (p *RobotStatus) UnmarshalBinary(data []byte) error {
	if err := checkSize(p, data); err != nil {
		return err
	}
	r := wireReader{buf: data}
	p.RobotID = r.u8()
	p.RobotLevel = r.u8()
	p.CurrentHP = r.u16()
	p.MaximumHP = r.u16()
	p.ShooterBarrelCoolingValue = r.u16()
	p.ShooterBarrelHeatLimit = r.u16()
	p.Shooter17mm1BarrelHeat = r.u16()
	p.RobotPosX = r.f32()
	p.RobotPosY = r.f32()
	p.RobotPosAngle = r.f32()
	p.ArmorID = r.u8()
	p.HPDeductionReason = r.u8()
	p.ProjectileAllowance17mm1 = r.u16()
	p.RemainingGoldCoin = r.u16()
	return nil
}

// GimbalCmd carries a gimbal pose requested by the MCU.
type GimbalCmd struct {
	Yaw   float32
	Pitch float32
}

// Kind implements Payload.
func (p *GimbalCmd) Kind() Kind { return KindGimbalCmd }

// Size implements Payload.
func (p *GimbalCmd) Size() int { return 8 }

// MarshalBinary implements Payload.
func (p *GimbalCmd) MarshalBinary() ([]byte, error) {
	w := wireWriter{buf: make([]byte, p.Size())}
	w.f32(p.Yaw)
	w.f32(p.Pitch)
	return w.buf, nil
}

// UnmarshalBinary implements Payload.
func (p *GimbalCmd) UnmarshalBinary(data []byte) error {
	if err := checkSize(p, data); err != nil {
		return err
	}
	r := wireReader{buf: data}
	p.Yaw = r.f32()
	p.Pitch = r.f32()
	return nil
}

// ShootCmd carries a shoot request from the MCU.
type ShootCmd struct {
	ProjectileNum uint8
}

// Kind implements Payload.
func (p *ShootCmd) Kind() Kind { return KindShootCmd }

// Size implements Payload.
func (p *ShootCmd) Size() int { return 1 }

// MarshalBinary implements Payload.
func (p *ShootCmd) MarshalBinary() ([]byte, error) {
	return []byte{p.ProjectileNum}, nil
}

// UnmarshalBinary implements Payload.
func (p *ShootCmd) UnmarshalBinary(data []byte) error {
	if err := checkSize(p, data); err != nil {
		return err
	}
	p.ProjectileNum = data[0]
	return nil
}

// RobotCmd is the host-originated command streamed to the MCU.
type RobotCmd struct {
	Vx float32
	Vy float32
	Wz float32

	ChassisYaw   float32
	ChassisPitch float32
	ChassisRoll  float32
	LegLength    float32

	GimbalYaw   float32
	GimbalPitch float32
}

// Kind implements Payload.
func (p *RobotCmd) Kind() Kind { return KindRobotCmd }

// Size implements Payload.
func (p *RobotCmd) Size() int { return 36 }

// MarshalBinary implements Payload.
func (p *RobotCmd) MarshalBinary() ([]byte, error) {
	w := wireWriter{buf: make([]byte, p.Size())}
	for _, v := range []float32{
		p.Vx, p.Vy, p.Wz,
		p.ChassisYaw, p.ChassisPitch, p.ChassisRoll, p.LegLength,
		p.GimbalYaw, p.GimbalPitch,
	} {
		w.f32(v)
	}
	return w.buf, nil
}

// UnmarshalBinary implements Payload.
func (p *RobotCmd) UnmarshalBinary(data []byte) error {
	if err := checkSize(p, data); err != nil {
		return err
	}
	r := wireReader{buf: data}
	for _, v := range []*float32{
		&p.Vx, &p.Vy, &p.Wz,
		&p.ChassisYaw, &p.ChassisPitch, &p.ChassisRoll, &p.LegLength,
		&p.GimbalYaw, &p.GimbalPitch,
	} {
		*v = r.f32()
	}
	return nil
}

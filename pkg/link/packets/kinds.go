package packets

import "fmt"

// Kind identifies a packet payload schema.
type Kind byte

// Inbound kinds (device to host).
const (
	KindDebug               Kind = 0x01
	KindIMU                 Kind = 0x02
	KindEvent               Kind = 0x03
	KindPIDDebug            Kind = 0x04
	KindAllRobotHP          Kind = 0x05
	KindGameStatus          Kind = 0x06
	KindRobotMotion         Kind = 0x07
	KindGroundRobotPosition Kind = 0x08
	KindRFIDStatus          Kind = 0x09
	KindRobotStatus         Kind = 0x0a
	KindGimbalCmd           Kind = 0x0b
	KindShootCmd            Kind = 0x0c
)

// Outbound kinds (host to device).
const (
	KindRobotCmd Kind = 0x01
)

var kindNames = map[Kind]string{
	KindDebug:               "debug",
	KindIMU:                 "imu",
	KindEvent:               "event_data",
	KindPIDDebug:            "pid_debug",
	KindAllRobotHP:          "all_robot_hp",
	KindGameStatus:          "game_status",
	KindRobotMotion:         "robot_motion",
	KindGroundRobotPosition: "ground_robot_position",
	KindRFIDStatus:          "rfid_status",
	KindRobotStatus:         "robot_status",
	KindGimbalCmd:           "gimbal_cmd",
	KindShootCmd:            "shoot_cmd",
}

// String returns the topic-friendly name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(0x%02x)", byte(k))
}

// New creates an empty payload for an inbound kind.
// It returns false for kinds without a schema, including KindPIDDebug
// which is reserved by the firmware but carries no decodable layout yet.
func New(k Kind) (Payload, bool) {
	switch k {
	case KindDebug:
		return &Debug{}, true
	case KindIMU:
		return &IMU{}, true
	case KindEvent:
		return &Event{}, true
	case KindAllRobotHP:
		return &AllRobotHP{}, true
	case KindGameStatus:
		return &GameStatus{}, true
	case KindRobotMotion:
		return &RobotMotion{}, true
	case KindGroundRobotPosition:
		return &GroundRobotPosition{}, true
	case KindRFIDStatus:
		return &RFIDStatus{}, true
	case KindRobotStatus:
		return &RobotStatus{}, true
	case KindGimbalCmd:
		return &GimbalCmd{}, true
	case KindShootCmd:
		return &ShootCmd{}, true
	}
	return nil, false
}

// Package link implements the framed serial protocol to the MCU.
package link

// The link carries fixed-layout packets over an asynchronous serial
// port. Every frame is sof(1) id(1) len(2) crc8(1) payload(len) crc16(2),
// with a direction-specific sof. The receive side resynchronizes on sof
// after any framing error; the send side streams the robot command at a
// fixed cadence. A supervisor owns the port and reopens it after I/O
// faults, so both loops only ever observe the shared link health.
//
// Producer: MCU firmware (inbound frames)
// Consumer: host process via dispatcher callbacks

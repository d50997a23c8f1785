// Package packets defines the payload schemas exchanged with the MCU.
package packets

// Every payload is a fixed-layout record on the wire: little-endian,
// explicit field order, no padding. The layouts must stay byte-exact
// with the firmware; encode and decode never rely on in-memory struct
// layout.
//
// Producer: MCU firmware (inbound kinds)
// Consumer: host bridge (outbound RobotCmd)

package link

import (
	"encoding/binary"

	"github.com/sigurn/crc16"
	"github.com/sigurn/crc8"

	"github.com/polarbots/mculink/pkg/link/packets"
)

// Frame geometry. A frame is sof(1) id(1) len(2) crc8(1) payload(len) crc16(2).
const (
	SOFRecv byte = 0x5a // device to host
	SOFSend byte = 0xa5 // host to device

	headerSize  = 5
	trailerSize = 2
)

// Checksum parameters must stay byte-exact with the firmware tables:
// CRC8 is poly 0x31 reflected with seed 0xFF, CRC16 is MCRF4XX.
var (
	crc8Table = crc8.MakeTable(crc8.Params{
		Poly: 0x31, Init: 0xff, RefIn: true, RefOut: true, XorOut: 0x00,
		Check: 0x0b, Name: "CRC-8/MCU",
	})
	crc16Table = crc16.MakeTable(crc16.CRC16_MCRF4XX)
)

// appendHeaderChecksum writes the CRC8 of the first four header bytes
// into the fifth.
func appendHeaderChecksum(header []byte) {
	header[headerSize-1] = crc8.Checksum(header[:headerSize-1], crc8Table)
}

// verifyHeaderChecksum checks the CRC8 trailing a full 5-byte header.
func verifyHeaderChecksum(header []byte) bool {
	return crc8.Checksum(header[:headerSize-1], crc8Table) == header[headerSize-1]
}

// appendFrameChecksum writes the CRC16 over everything before the final
// two bytes into those bytes.
func appendFrameChecksum(frame []byte) {
	sum := crc16.Checksum(frame[:len(frame)-trailerSize], crc16Table)
	binary.LittleEndian.PutUint16(frame[len(frame)-trailerSize:], sum)
}

// verifyFrameChecksum checks the CRC16 trailing a complete frame.
func verifyFrameChecksum(frame []byte) bool {
	if len(frame) < headerSize+trailerSize {
		return false
	}
	sum := crc16.Checksum(frame[:len(frame)-trailerSize], crc16Table)
	return binary.LittleEndian.Uint16(frame[len(frame)-trailerSize:]) == sum
}

// encodeHeader stamps sof, id and payload length, then the header CRC8.
func encodeHeader(dst []byte, sof byte, kind packets.Kind, payloadLen int) {
	dst[0] = sof
	dst[1] = byte(kind)
	binary.LittleEndian.PutUint16(dst[2:4], uint16(payloadLen))
	appendHeaderChecksum(dst[:headerSize])
}

// encodeFrame assembles a complete frame around a payload.
func encodeFrame(sof byte, kind packets.Kind, p packets.Payload) ([]byte, error) {
	payload, err := p.MarshalBinary()
	if err != nil {
		return nil, err
	}
	frame := make([]byte, headerSize+len(payload)+trailerSize)
	encodeHeader(frame, sof, kind, len(payload))
	copy(frame[headerSize:], payload)
	appendFrameChecksum(frame)
	return frame, nil
}

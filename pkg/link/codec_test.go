package link

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polarbots/mculink/pkg/link/packets"
)

func TestHeaderChecksum(t *testing.T) {
	// reference value computed with the firmware's table
	header := []byte{0x5a, 0x02, 28, 0, 0}
	appendHeaderChecksum(header)
	require.Equal(t, byte(0xc6), header[4])
	require.True(t, verifyHeaderChecksum(header))
}

func TestFrameChecksum(t *testing.T) {
	frame, err := encodeFrame(SOFRecv, packets.KindShootCmd, &packets.ShootCmd{ProjectileNum: 7})
	require.NoError(t, err)
	require.Equal(t, []byte{0x5a, 0x0c, 0x01, 0x00, 0x57, 0x07, 0xd4, 0xe0}, frame)
	require.True(t, verifyFrameChecksum(frame))
}

// Corrupting any single header byte to any other value must be caught.
func TestHeaderChecksumCatchesCorruption(t *testing.T) {
	header := make([]byte, headerSize)
	encodeHeader(header, SOFRecv, packets.KindIMU, 28)
	require.True(t, verifyHeaderChecksum(header))

	for pos := 0; pos < headerSize; pos++ {
		orig := header[pos]
		for v := 0; v < 256; v++ {
			if byte(v) == orig {
				continue
			}
			header[pos] = byte(v)
			require.Falsef(t, verifyHeaderChecksum(header), "corruption at byte %d value %#02x undetected", pos, v)
		}
		header[pos] = orig
	}
}

func TestFrameChecksumCatchesCorruption(t *testing.T) {
	frame, err := encodeFrame(SOFRecv, packets.KindGimbalCmd, &packets.GimbalCmd{Yaw: 1, Pitch: 2})
	require.NoError(t, err)

	for pos := range frame {
		frame[pos] ^= 0xff
		require.Falsef(t, verifyFrameChecksum(frame), "corruption at byte %d undetected", pos)
		frame[pos] ^= 0xff
	}
	require.True(t, verifyFrameChecksum(frame))
}

func TestVerifyFrameChecksumShortBuffer(t *testing.T) {
	require.False(t, verifyFrameChecksum(nil))
	require.False(t, verifyFrameChecksum(make([]byte, headerSize)))
}

func TestEncodeHeaderLayout(t *testing.T) {
	header := make([]byte, headerSize)
	encodeHeader(header, SOFSend, packets.KindRobotCmd, 300)
	require.Equal(t, SOFSend, header[0])
	require.Equal(t, byte(packets.KindRobotCmd), header[1])
	require.Equal(t, uint16(300), binary.LittleEndian.Uint16(header[2:4]))
	require.True(t, verifyHeaderChecksum(header))
}

package radar

import "encoding/binary"

// LD2410 command codes. Numeric values are preserved from the on-wire
// protocol; caller-facing names are the typed Session methods below.
const (
	cmdEnterConfig    = 0x00FF
	cmdExitConfig     = 0x00FE
	cmdSetMaxGate     = 0x0060
	cmdSetSensitivity = 0x0064
	cmdEngModeOn      = 0x0062
	cmdEngModeOff     = 0x0063
	cmdRestart        = 0x00A3
	cmdFactoryReset   = 0x00A2
)

var enterConfigBody = []byte{0x01, 0x00}

// buildCommandFrame lays out a command frame on the wire:
// FA FB FC FD | payload_len LE | cmd_code LE | body | 01 02 03 04
func buildCommandFrame(cmdCode uint16, body []byte) []byte {
	payloadLen := 2 + len(body)
	frame := make([]byte, 0, 4+2+payloadLen+4)

	frame = append(frame, cmdMagic[:]...)

	lenBuf := make([]byte, 2)
	binary.LittleEndian.PutUint16(lenBuf, uint16(payloadLen))
	frame = append(frame, lenBuf...)

	cmdBuf := make([]byte, 2)
	binary.LittleEndian.PutUint16(cmdBuf, cmdCode)
	frame = append(frame, cmdBuf...)

	frame = append(frame, body...)
	frame = append(frame, cmdTail[:]...)

	return frame
}

// buildWordTaggedBody encodes the three little-endian word-tagged
// fields shared by the sensitivity and max-gate command bodies: each
// word is a 2-byte tag (0,1,2) followed by a 4-byte little-endian
// value, for 18 bytes total.
func buildWordTaggedBody(values [3]uint32) []byte {
	body := make([]byte, 18)
	for i, v := range values {
		off := i * 6
		binary.LittleEndian.PutUint16(body[off:off+2], uint16(i))
		binary.LittleEndian.PutUint32(body[off+2:off+6], v)
	}
	return body
}

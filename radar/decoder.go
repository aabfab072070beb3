package radar

import (
	"encoding/binary"
	"fmt"
)

// Data-frame payload layout (see mmwave_process_data_frame in the
// original NuttX driver this package's behaviour is grounded on).
const (
	dataTypeEngineering = 0x01
	dataTypeStandard    = 0x02
	headMarker          = 0xAA

	minDataPayloadLen = 11
	engPayloadLen     = minDataPayloadLen + MaxGates + MaxGates // 29
)

// decodeDataFrame validates and decodes the common Reading prefix of a
// data-frame payload. It reports whether the frame was an engineering
// frame (data_type == 0x01) so the caller can attempt the gate-array
// decode. Rejections never touch session state — callers must not
// apply a Reading, bump a counter, or clear data_valid on error.
func decodeDataFrame(payload []byte) (Reading, bool, error) {
	if len(payload) < minDataPayloadLen {
		return Reading{}, false, fmt.Errorf("%w: short data payload (%d bytes)", ErrParse, len(payload))
	}

	dataType := payload[0]
	if dataType != dataTypeStandard && dataType != dataTypeEngineering {
		return Reading{}, false, fmt.Errorf("%w: wrong kind 0x%02x", ErrParse, dataType)
	}

	if payload[1] != headMarker {
		return Reading{}, false, fmt.Errorf("%w: corrupt payload (missing head marker)", ErrParse)
	}

	r := Reading{
		TargetState:         TargetState(payload[2]),
		MotionDistanceCM:    binary.LittleEndian.Uint16(payload[3:5]),
		MotionEnergy:        payload[5],
		StaticDistanceCM:    binary.LittleEndian.Uint16(payload[6:8]),
		StaticEnergy:        payload[8],
		DetectionDistanceCM: binary.LittleEndian.Uint16(payload[9:11]),
	}

	return r, dataType == dataTypeEngineering, nil
}

// decodeEngineeringGates decodes the per-gate motion/static energy
// arrays that follow the common prefix in an engineering data frame.
// Per the protocol's open question (§9), the engineering payload is
// treated as exactly 29 bytes; anything shorter is rejected rather
// than partially decoded, leaving the caller's existing gate arrays
// untouched.
func decodeEngineeringGates(payload []byte) (motion, static [MaxGates]uint8, ok bool) {
	if len(payload) < engPayloadLen {
		return motion, static, false
	}
	copy(motion[:], payload[minDataPayloadLen:minDataPayloadLen+MaxGates])
	copy(static[:], payload[minDataPayloadLen+MaxGates:engPayloadLen])
	return motion, static, true
}

package i8080

import (
	"encoding/binary"
	"errors"
)

// cpuSerializeVersion is bumped whenever the on-disk layout changes.
const cpuSerializeVersion = 1

// cpuSerializeSize is the fixed size of a serialized CPU in bytes:
// version(1) + A,F,B,C,D,E,H,L(8) + SP,PC,WZ(6) + IR,TMP(2) +
// inte,stopped,intPending,intWhileHalt(4) + pins address/data/status/ctrl(8)
// + step(2).
const cpuSerializeSize = 1 + 8 + 6 + 2 + 4 + 8 + 2

// SerializeSize returns the number of bytes Serialize writes.
func (c *CPU) SerializeSize() int { return cpuSerializeSize }

// Serialize writes a complete snapshot of the CPU's programmer-visible
// and internal state, including the pin word, into buf. buf must be at
// least SerializeSize() bytes.
func (c *CPU) Serialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("i8080: buffer too small to serialize CPU")
	}

	buf[0] = cpuSerializeVersion
	buf[1] = c.A
	buf[2] = c.F
	buf[3] = c.B
	buf[4] = c.C
	buf[5] = c.D
	buf[6] = c.E
	buf[7] = c.H
	buf[8] = c.L
	binary.BigEndian.PutUint16(buf[9:11], c.SP)
	binary.BigEndian.PutUint16(buf[11:13], c.PC)
	binary.BigEndian.PutUint16(buf[13:15], c.WZ)
	buf[15] = c.IR
	buf[16] = c.TMP
	buf[17] = boolByte(c.inte)
	buf[18] = boolByte(c.stopped)
	buf[19] = boolByte(c.intPending)
	buf[20] = boolByte(c.intWhileHalt)
	binary.BigEndian.PutUint16(buf[21:23], c.Pins.address)
	buf[23] = c.Pins.data
	buf[24] = c.Pins.status
	binary.BigEndian.PutUint32(buf[25:29], c.Pins.ctrl)
	binary.BigEndian.PutUint16(buf[29:31], uint16(c.step))

	return nil
}

// Deserialize restores a CPU's state from a buffer previously produced
// by Serialize. It does not reset readyStarved/cycles bookkeeping, which
// is diagnostic-only and not part of the programmer model.
func (c *CPU) Deserialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("i8080: buffer too small to deserialize CPU")
	}
	if buf[0] != cpuSerializeVersion {
		return errors.New("i8080: unsupported serialize version")
	}

	c.A = buf[1]
	c.F = packF(buf[2])
	c.B = buf[3]
	c.C = buf[4]
	c.D = buf[5]
	c.E = buf[6]
	c.H = buf[7]
	c.L = buf[8]
	c.SP = binary.BigEndian.Uint16(buf[9:11])
	c.PC = binary.BigEndian.Uint16(buf[11:13])
	c.WZ = binary.BigEndian.Uint16(buf[13:15])
	c.IR = buf[15]
	c.TMP = buf[16]
	c.inte = buf[17] != 0
	c.stopped = buf[18] != 0
	c.intPending = buf[19] != 0
	c.intWhileHalt = buf[20] != 0
	c.Pins.address = binary.BigEndian.Uint16(buf[21:23])
	c.Pins.data = buf[23]
	c.Pins.status = buf[24]
	c.Pins.ctrl = binary.BigEndian.Uint32(buf[25:29])
	c.step = binary.BigEndian.Uint16(buf[29:31])

	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

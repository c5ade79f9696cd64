package i8080

// Control kernels: NOP (and its undocumented-opcode aliases), HLT, the
// shared EI/DI toggle, and the I/O transfer instructions.

func init() {
	registerKernel(kNop, []microStep{
		terminalStep(nil),
	})

	registerKernel(kHlt, joinSteps(
		[]microStep{internalStep(nil)},
		readCycle(StatusHaltAck, func(c *CPU) uint16 { return c.PC }, func(c *CPU, b uint8) {
			c.stopped = true
		}, true),
	))

	// EI is 0xFB, DI is 0xF3; they differ only in bit 3 of the opcode.
	registerKernel(kEiDi, []microStep{
		terminalStep(func(c *CPU) { c.setINTE(c.IR&0x08 != 0) }),
	})

	registerKernel(kIn, joinSteps(
		[]microStep{internalStep(nil)},
		readCycle(StatusMemRead, func(c *CPU) uint16 { return c.PC }, func(c *CPU, b uint8) {
			c.TMP = b
			c.PC++
		}, false),
		readCycle(StatusInputRead, func(c *CPU) uint16 { return ioAddress(c.TMP) }, func(c *CPU, b uint8) {
			c.A = b
		}, true),
	))

	registerKernel(kOut, joinSteps(
		[]microStep{internalStep(nil)},
		readCycle(StatusMemRead, func(c *CPU) uint16 { return c.PC }, func(c *CPU, b uint8) {
			c.TMP = b
			c.PC++
		}, false),
		writeCycle(StatusOutputWrite, func(c *CPU) uint16 { return ioAddress(c.TMP) }, func(c *CPU) uint8 {
			return c.A
		}, true),
	))
}

// ioAddress places the port byte on the low half of the address bus and
// replicates it on the high half (spec §9 Open Question: either
// placement is accepted, provided the collaborator can read the port off
// the low byte).
func ioAddress(port uint8) uint16 {
	return uint16(port)<<8 | uint16(port)
}

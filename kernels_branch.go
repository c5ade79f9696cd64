package i8080

// Branch kernels: JMP/Jcond, CALL/Ccond, RET/Rcond, RST, and the
// HL-to-PC transfer PCHL.
//
// CALL and RET are the two kernels whose effective length depends on
// run-time state: a branchStep evaluates the condition after both
// operand bytes (CALL) or after the opcode (RET) and ends the kernel
// immediately when the condition is false, modeling the 8080's
// genuinely shorter not-taken timing without a second kernel slot.

func init() {
	registerKernel(kJmp, joinSteps(
		imm16ToWZ(),
		[]microStep{terminalStep(func(c *CPU) {
			if c.IR == 0xC3 || c.IR == 0xCB || c.conditionTrue(c.fieldCC()) {
				c.PC = c.WZ
			}
		})},
	))

	registerKernel(kCall, joinSteps(
		[]microStep{internalStep(nil)},
		imm16ToWZ(),
		[]microStep{branchStep(func(c *CPU) bool {
			if c.IR != 0xCD && c.IR != 0xDD && c.IR != 0xED && c.IR != 0xFD && !c.conditionTrue(c.fieldCC()) {
				return false
			}
			// Taken: jump now and keep the return address in WZ for the
			// two stack writes, which then end the kernel.
			c.SP -= 2
			c.PC, c.WZ = c.WZ, c.PC
			return true
		})},
		writeCycle(StatusStackWrite, func(c *CPU) uint16 { return c.SP + 1 }, func(c *CPU) uint8 { return uint8(c.WZ >> 8) }, false),
		writeCycle(StatusStackWrite, func(c *CPU) uint16 { return c.SP }, func(c *CPU) uint8 { return uint8(c.WZ) }, true),
	))

	registerKernel(kRet, joinSteps(
		[]microStep{
			func(c *CPU) stepResult {
				if c.IR == 0xC9 || c.IR == 0xD9 {
					c.step++ // unconditional RET skips the condition T-state
				}
				return stepAdvance
			},
			branchStep(func(c *CPU) bool { return c.conditionTrue(c.fieldCC()) }),
		},
		readCycle(StatusStackRead, func(c *CPU) uint16 { return c.SP }, func(c *CPU, b uint8) {
			c.WZ = c.WZ&0xFF00 | uint16(b)
			c.SP++
		}, false),
		readCycle(StatusStackRead, func(c *CPU) uint16 { return c.SP }, func(c *CPU, b uint8) {
			c.WZ = c.WZ&0x00FF | uint16(b)<<8
			c.SP++
			c.PC = c.WZ
		}, true),
	))

	registerKernel(kRst, joinSteps(
		[]microStep{internalStep(func(c *CPU) { c.SP -= 2 })},
		writeCycle(StatusStackWrite, func(c *CPU) uint16 { return c.SP + 1 }, func(c *CPU) uint8 { return uint8(c.PC >> 8) }, false),
		writeCycle(StatusStackWrite, func(c *CPU) uint16 { return c.SP }, func(c *CPU) uint8 { return uint8(c.PC) }, false),
		[]microStep{terminalStep(func(c *CPU) { c.PC = c.fieldRST() })},
	))

	registerKernel(kPchl, []microStep{
		internalStep(nil),
		terminalStep(func(c *CPU) { c.PC = c.hl() }),
	})
}

package i8080

// Arithmetic kernels: the register/memory/immediate ALU-add-and-subtract
// families, increment/decrement, and the 16-bit DAD.

func init() {
	registerKernel(kAddR, aluRegKernel(func(c *CPU, op uint8) { c.add(op, false) }))
	registerKernel(kAdcR, aluRegKernel(func(c *CPU, op uint8) { c.add(op, true) }))
	registerKernel(kSubR, aluRegKernel(func(c *CPU, op uint8) { c.sub(op, false) }))
	registerKernel(kSbbR, aluRegKernel(func(c *CPU, op uint8) { c.sub(op, true) }))

	registerKernel(kAddM, aluMemKernel(func(c *CPU, op uint8) { c.add(op, false) }))
	registerKernel(kAdcM, aluMemKernel(func(c *CPU, op uint8) { c.add(op, true) }))
	registerKernel(kSubM, aluMemKernel(func(c *CPU, op uint8) { c.sub(op, false) }))
	registerKernel(kSbbM, aluMemKernel(func(c *CPU, op uint8) { c.sub(op, true) }))

	registerKernel(kAdi, aluImmKernel(func(c *CPU, op uint8) { c.add(op, false) }))
	registerKernel(kAci, aluImmKernel(func(c *CPU, op uint8) { c.add(op, true) }))
	registerKernel(kSui, aluImmKernel(func(c *CPU, op uint8) { c.sub(op, false) }))
	registerKernel(kSbi, aluImmKernel(func(c *CPU, op uint8) { c.sub(op, true) }))

	registerKernel(kInrR, []microStep{
		internalStep(nil),
		terminalStep(func(c *CPU) {
			sel := c.fieldDst()
			c.setReg8(sel, c.inr(c.reg8(sel)))
		}),
	})

	registerKernel(kDcrR, []microStep{
		internalStep(nil),
		terminalStep(func(c *CPU) {
			sel := c.fieldDst()
			c.setReg8(sel, c.dcr(c.reg8(sel)))
		}),
	})

	registerKernel(kInrM, joinSteps(
		[]microStep{internalStep(nil)},
		readCycle(StatusMemRead, (*CPU).hl, func(c *CPU, b uint8) { c.TMP = c.inr(b) }, false),
		writeCycle(StatusMemWrite, (*CPU).hl, func(c *CPU) uint8 { return c.TMP }, true),
	))

	registerKernel(kDcrM, joinSteps(
		[]microStep{internalStep(nil)},
		readCycle(StatusMemRead, (*CPU).hl, func(c *CPU, b uint8) { c.TMP = c.dcr(b) }, false),
		writeCycle(StatusMemWrite, (*CPU).hl, func(c *CPU) uint8 { return c.TMP }, true),
	))

	registerKernel(kInx, []microStep{
		internalStep(nil),
		terminalStep(func(c *CPU) {
			sel := c.fieldRP()
			c.setPairRP(sel, c.pairRP(sel)+1)
		}),
	})

	registerKernel(kDcx, []microStep{
		internalStep(nil),
		terminalStep(func(c *CPU) {
			sel := c.fieldRP()
			c.setPairRP(sel, c.pairRP(sel)-1)
		}),
	})

	registerKernel(kDad, []microStep{
		internalStep(nil),
		internalStep(nil),
		internalStep(nil),
		internalStep(nil),
		internalStep(nil),
		internalStep(nil),
		terminalStep(func(c *CPU) { c.dad(c.pairRP(c.fieldRP())) }),
	})
}

// aluRegKernel is the shared shape for ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP
// against a register operand (4 T-states total, no extra bus cycle).
func aluRegKernel(apply func(c *CPU, operand uint8)) []microStep {
	return []microStep{
		terminalStep(func(c *CPU) { apply(c, c.reg8(c.fieldSrc())) }),
	}
}

// aluMemKernel is the same ALU family against (HL).
func aluMemKernel(apply func(c *CPU, operand uint8)) []microStep {
	return joinSteps(
		[]microStep{internalStep(nil)},
		readCycle(StatusMemRead, (*CPU).hl, func(c *CPU, b uint8) { apply(c, b) }, true),
	)
}

// aluImmKernel is the same ALU family against an immediate byte.
func aluImmKernel(apply func(c *CPU, operand uint8)) []microStep {
	return joinSteps(
		[]microStep{internalStep(nil)},
		readCycle(StatusMemRead, func(c *CPU) uint16 { return c.PC }, func(c *CPU, b uint8) {
			c.PC++
			apply(c, b)
		}, true),
	)
}

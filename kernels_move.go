package i8080

// Data-movement kernels: MOV, MVI, LXI, direct/indirect load-store,
// XCHG, the stack-move group, and HL-SP/PC transfers.

func init() {
	registerKernel(kMovRR, []microStep{
		internalStep(nil),
		terminalStep(func(c *CPU) {
			c.setReg8(c.fieldDst(), c.reg8(c.fieldSrc()))
		}),
	})

	registerKernel(kMovRM, joinSteps(
		[]microStep{internalStep(nil)},
		readCycle(StatusMemRead, (*CPU).hl, func(c *CPU, b uint8) {
			c.setReg8(c.fieldDst(), b)
		}, true),
	))

	registerKernel(kMovMR, joinSteps(
		[]microStep{internalStep(nil)},
		writeCycle(StatusMemWrite, (*CPU).hl, func(c *CPU) uint8 {
			return c.reg8(c.fieldSrc())
		}, true),
	))

	registerKernel(kMviR, joinSteps(
		[]microStep{internalStep(nil)},
		readCycle(StatusMemRead, func(c *CPU) uint16 { return c.PC }, func(c *CPU, b uint8) {
			c.setReg8(c.fieldDst(), b)
			c.PC++
		}, true),
	))

	registerKernel(kMviM, joinSteps(
		[]microStep{internalStep(nil)},
		readCycle(StatusMemRead, func(c *CPU) uint16 { return c.PC }, func(c *CPU, b uint8) {
			c.TMP = b
			c.PC++
		}, false),
		writeCycle(StatusMemWrite, (*CPU).hl, func(c *CPU) uint8 { return c.TMP }, true),
	))

	registerKernel(kLxi, joinSteps(
		[]microStep{internalStep(nil)},
		readCycle(StatusMemRead, func(c *CPU) uint16 { return c.PC }, func(c *CPU, b uint8) {
			c.WZ = c.WZ&0xFF00 | uint16(b)
			c.PC++
		}, false),
		readCycle(StatusMemRead, func(c *CPU) uint16 { return c.PC }, func(c *CPU, b uint8) {
			c.WZ = c.WZ&0x00FF | uint16(b)<<8
			c.PC++
			c.setPairRP(c.fieldRP(), c.WZ)
		}, true),
	))

	registerKernel(kStax, joinSteps(
		[]microStep{internalStep(nil)},
		writeCycle(StatusMemWrite, func(c *CPU) uint16 { return c.pairRP((c.IR >> 4) & 1) }, func(c *CPU) uint8 {
			return c.A
		}, true),
	))

	registerKernel(kLdax, joinSteps(
		[]microStep{internalStep(nil)},
		readCycle(StatusMemRead, func(c *CPU) uint16 { return c.pairRP((c.IR >> 4) & 1) }, func(c *CPU, b uint8) {
			c.A = b
		}, true),
	))

	registerKernel(kXchg, []microStep{
		terminalStep(func(c *CPU) {
			c.H, c.L, c.D, c.E = c.D, c.E, c.H, c.L
		}),
	})

	registerKernel(kShld, joinSteps(
		[]microStep{internalStep(nil)},
		imm16ToWZ(),
		writeCycle(StatusMemWrite, func(c *CPU) uint16 { return c.WZ }, func(c *CPU) uint8 { return c.L }, false),
		writeCycle(StatusMemWrite, func(c *CPU) uint16 { return c.WZ + 1 }, func(c *CPU) uint8 { return c.H }, true),
	))

	registerKernel(kLhld, joinSteps(
		[]microStep{internalStep(nil)},
		imm16ToWZ(),
		readCycle(StatusMemRead, func(c *CPU) uint16 { return c.WZ }, func(c *CPU, b uint8) { c.L = b }, false),
		readCycle(StatusMemRead, func(c *CPU) uint16 { return c.WZ + 1 }, func(c *CPU, b uint8) { c.H = b }, true),
	))

	registerKernel(kSta, joinSteps(
		[]microStep{internalStep(nil)},
		imm16ToWZ(),
		writeCycle(StatusMemWrite, func(c *CPU) uint16 { return c.WZ }, func(c *CPU) uint8 { return c.A }, true),
	))

	registerKernel(kLda, joinSteps(
		[]microStep{internalStep(nil)},
		imm16ToWZ(),
		readCycle(StatusMemRead, func(c *CPU) uint16 { return c.WZ }, func(c *CPU, b uint8) { c.A = b }, true),
	))

	for i, k := range []uint8{kPushB, kPushD, kPushH, kPushPSW} {
		rp := uint8(i)
		registerKernel(k, joinSteps(
			[]microStep{internalStep(nil), internalStep(func(c *CPU) { c.SP -= 2 })},
			writeCycle(StatusStackWrite, func(c *CPU) uint16 { return c.SP + 1 }, func(c *CPU) uint8 {
				return pushHigh(c, rp)
			}, false),
			writeCycle(StatusStackWrite, func(c *CPU) uint16 { return c.SP }, func(c *CPU) uint8 {
				return pushLow(c, rp)
			}, true),
		))
	}

	for i, k := range []uint8{kPopB, kPopD, kPopH, kPopPSW} {
		rp := uint8(i)
		registerKernel(k, joinSteps(
			[]microStep{internalStep(nil)},
			readCycle(StatusStackRead, func(c *CPU) uint16 { return c.SP }, func(c *CPU, b uint8) {
				c.WZ = c.WZ&0xFF00 | uint16(b)
			}, false),
			readCycle(StatusStackRead, func(c *CPU) uint16 { return c.SP + 1 }, func(c *CPU, b uint8) {
				c.WZ = c.WZ&0x00FF | uint16(b)<<8
				c.SP += 2
				popInto(c, rp, c.WZ)
			}, true),
		))
	}

	registerKernel(kXthl, joinSteps(
		[]microStep{internalStep(nil), internalStep(nil)},
		readCycle(StatusStackRead, func(c *CPU) uint16 { return c.SP }, func(c *CPU, b uint8) {
			c.WZ = c.WZ&0xFF00 | uint16(b)
		}, false),
		readCycle(StatusStackRead, func(c *CPU) uint16 { return c.SP + 1 }, func(c *CPU, b uint8) {
			c.WZ = c.WZ&0x00FF | uint16(b)<<8
		}, false),
		writeCycle(StatusStackWrite, func(c *CPU) uint16 { return c.SP }, func(c *CPU) uint8 { return c.L }, false),
		writeCycle(StatusStackWrite, func(c *CPU) uint16 { return c.SP + 1 }, func(c *CPU) uint8 { return c.H }, false),
		[]microStep{terminalStep(func(c *CPU) { c.setHL(c.WZ) })},
	))

	registerKernel(kSphl, []microStep{
		internalStep(nil),
		terminalStep(func(c *CPU) { c.SP = c.hl() }),
	})
}

// imm16ToWZ reads the two bytes following the opcode into WZ, low byte
// first, advancing PC past both — the common prefix of every direct-
// addressed instruction (LXI excluded: its second read also copies WZ
// into the register pair in the same T-state).
func imm16ToWZ() []microStep {
	return joinSteps(
		readCycle(StatusMemRead, func(c *CPU) uint16 { return c.PC }, func(c *CPU, b uint8) {
			c.WZ = c.WZ&0xFF00 | uint16(b)
			c.PC++
		}, false),
		readCycle(StatusMemRead, func(c *CPU) uint16 { return c.PC }, func(c *CPU, b uint8) {
			c.WZ = c.WZ&0x00FF | uint16(b)<<8
			c.PC++
		}, false),
	)
}

// joinSteps concatenates microstep slices and bus-cycle builder outputs
// into a single kernel sequence.
func joinSteps(parts ...[]microStep) []microStep {
	var out []microStep
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func pushHigh(c *CPU, rp uint8) uint8 {
	switch rp {
	case 0:
		return c.B
	case 1:
		return c.D
	case 2:
		return c.H
	default: // PSW
		return c.A
	}
}

func pushLow(c *CPU, rp uint8) uint8 {
	switch rp {
	case 0:
		return c.C
	case 1:
		return c.E
	case 2:
		return c.L
	default: // PSW
		return packF(c.F)
	}
}

func popInto(c *CPU, rp uint8, v uint16) {
	hi, lo := uint8(v>>8), uint8(v)
	switch rp {
	case 0:
		c.B, c.C = hi, lo
	case 1:
		c.D, c.E = hi, lo
	case 2:
		c.H, c.L = hi, lo
	default: // PSW
		c.A = hi
		c.F = packF(lo)
	}
}

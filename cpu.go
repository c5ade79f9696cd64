// Package i8080 implements a cycle-stepped, pin-accurate emulator of the
// Intel 8080 microprocessor.
//
// The CPU exposes the same external contract as the physical part: a
// 16-bit address output, an 8-bit bidirectional data port, and the status/
// control signals defined in the Intel 8080 User Manual. Each call to
// Tick advances the processor by exactly one T-state (clock phase); an
// instruction completes over 4-18 T-states grouped into 1-5 machine
// cycles. External memory, I/O devices and interrupt sources are not
// modeled here — they are collaborators that observe Pins between ticks
// and drive the data port and the INT/READY inputs in response.
package i8080

import "log"

// CPU is the Intel 8080 processor core. The zero value is not ready to
// use; call New.
type CPU struct {
	// Programmer-visible registers.
	A          uint8
	F          uint8
	B, C       uint8
	D, E       uint8
	H, L       uint8
	SP         uint16
	PC         uint16

	// Internal registers (spec §3): WZ is scratch used while assembling
	// multi-byte operands/addresses, IR latches the opcode, TMP holds a
	// byte in transit (INR/DCR M result, MVI M immediate, I/O port).
	WZ  uint16
	IR  uint8
	TMP uint8

	Pins Pins

	step uint16

	inte         bool // interrupt-enable flip-flop
	stopped      bool // halted, waiting for an interrupt
	intPending   bool // INT∧INTE edge latched, awaiting the next fetch
	intWhileHalt bool // the latched interrupt arrived while stopped

	readyStarved int  // consecutive T-states spent with WAIT asserted
	starveLogged bool // readyStarvationLogThreshold hint already emitted

	cycles uint64 // total T-states since the last Reset, for diagnostics/tests
}

// readyStarvationLogThreshold is the number of consecutive WAIT-asserted
// T-states after which the core logs a one-time diagnostic hint that
// READY may be stuck low. This is advisory only — spec §7 states
// starvation by a persistently-low READY is the collaborator's
// responsibility, not a core error condition.
const readyStarvationLogThreshold = 1 << 20

// New returns a freshly reset CPU.
func New() *CPU {
	c := &CPU{F: flagsForce}
	c.Reset()
	return c
}

// Reset restores PC and the step counter to zero and clears the stopped/
// interrupt latches. It does not alter A, F, the register pairs, or SP
// (spec §3). The pin word is cleared except READY, which is raised.
func (c *CPU) Reset() {
	c.PC = 0
	c.step = 0
	c.WZ = 0
	c.IR = 0
	c.TMP = 0
	c.inte = false
	c.stopped = false
	c.intPending = false
	c.intWhileHalt = false
	c.readyStarved = 0
	c.starveLogged = false
	c.cycles = 0
	c.Pins.reset()
}

// Halted reports whether the CPU is in the HALT-stopped state.
func (c *CPU) Halted() bool { return c.stopped }

// Cycles returns the total number of T-states executed since the last
// Reset.
func (c *CPU) Cycles() uint64 { return c.cycles }

// Tick advances the processor by exactly one T-state. It is the sole
// mutation entry point (spec §5): no internal threading, no suspension
// primitive beyond the WAIT pin itself.
func (c *CPU) Tick() {
	c.cycles++
	c.checkInterruptEdge()

	if c.stopped {
		// No interrupt was accepted this tick: no bus activity (spec §5).
		return
	}

	switch {
	case c.step == 0:
		c.fetchT1()
	case c.step == 1:
		c.fetchT2()
	case c.step == 2:
		c.fetchT3()
	default:
		res := steps[c.step](c)
		switch res {
		case stepAdvance:
			c.step++
		case stepDone:
			c.step = 0
		case stepWait:
			// leave step unchanged; register state untouched this tick
		}
	}
}

// GetReg returns the 8-bit value of a named register: A, B, C, D, E, H, L.
func (c *CPU) GetReg(name string) uint8 {
	switch name {
	case "A":
		return c.A
	case "F":
		return c.F
	case "B":
		return c.B
	case "C":
		return c.C
	case "D":
		return c.D
	case "E":
		return c.E
	case "H":
		return c.H
	case "L":
		return c.L
	}
	return 0
}

// GetPair returns the 16-bit value of a named register pair: BC, DE, HL,
// SP, PC, PSW (A:F).
func (c *CPU) GetPair(name string) uint16 {
	switch name {
	case "BC":
		return uint16(c.B)<<8 | uint16(c.C)
	case "DE":
		return uint16(c.D)<<8 | uint16(c.E)
	case "HL":
		return uint16(c.H)<<8 | uint16(c.L)
	case "SP":
		return c.SP
	case "PC":
		return c.PC
	case "PSW":
		return uint16(c.A)<<8 | uint16(c.F)
	}
	return 0
}

// noteWait counts consecutive WAIT-asserted T-states and emits a one-time
// diagnostic hint if the bus has been held in WAIT far longer than any
// real device would stretch a cycle.
func (c *CPU) noteWait(asserted bool) {
	if !asserted {
		c.readyStarved = 0
		return
	}
	c.readyStarved++
	if c.readyStarved == readyStarvationLogThreshold && !c.starveLogged {
		c.starveLogged = true
		log.Printf("[i8080] READY held low for %d consecutive T-states at PC=%04X; bus may be starved", c.readyStarved, c.PC)
	}
}

package i8080

// checkInterruptEdge latches a pending interrupt acknowledge at the top
// of every tick (spec §4.5): if INT and INTE are both high and no
// acknowledge is already in progress, latch int_pending and clear INTE.
// If the core was halted, clear the halt state and remember that the
// acknowledge was preceded by HALT, so the next fetch reports the
// halt-flavored status variant instead of the plain one.
//
// Grounded on the teacher's interrupt.go split between edge detection
// and frame construction, generalized to the 8080's single-line model:
// no priority mask, no vector table, no pushed return-address frame
// beyond what the injected RST instruction itself triggers.
func (c *CPU) checkInterruptEdge() {
	if c.intPending {
		return
	}
	if c.Pins.INT() && c.inte {
		c.intPending = true
		c.setINTE(false)
		if c.stopped {
			c.stopped = false
			c.intWhileHalt = true
		}
	}
}

func (c *CPU) setINTE(v bool) {
	c.inte = v
	c.Pins.setCtrl(pinINTE, v)
}

// INTE reports the interrupt-enable flip-flop.
func (c *CPU) INTE() bool { return c.inte }

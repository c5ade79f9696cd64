package i8080

// Rotate kernels: RLC/RRC/RAL/RAR, all accumulator-only, a single T-state
// of ALU work after the three fetch states (4 T-states in all).

func init() {
	registerKernel(kRlc, []microStep{terminalStep(func(c *CPU) { c.rlc() })})
	registerKernel(kRrc, []microStep{terminalStep(func(c *CPU) { c.rrc() })})
	registerKernel(kRal, []microStep{terminalStep(func(c *CPU) { c.ral() })})
	registerKernel(kRar, []microStep{terminalStep(func(c *CPU) { c.rar() })})
}

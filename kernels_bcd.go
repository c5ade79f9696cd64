package i8080

// Binary-coded-decimal kernel: DAA, the 8080's only dedicated BCD
// instruction. Kept in its own file to mirror the teacher's convention
// of filing by concern rather than by instruction count.

func init() {
	registerKernel(kDaa, []microStep{
		terminalStep(func(c *CPU) { c.daa() }),
	})
}

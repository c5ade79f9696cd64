package i8080

// Logical kernels: ANA/XRA/ORA/CMP in register/memory/immediate form,
// plus the single-bit accumulator operations CMA/CMC/STC.

func init() {
	registerKernel(kAnaR, aluRegKernel(func(c *CPU, op uint8) { c.ana(op) }))
	registerKernel(kXraR, aluRegKernel(func(c *CPU, op uint8) { c.xra(op) }))
	registerKernel(kOraR, aluRegKernel(func(c *CPU, op uint8) { c.ora(op) }))
	registerKernel(kCmpR, aluRegKernel(func(c *CPU, op uint8) { c.cmp(op) }))

	registerKernel(kAnaM, aluMemKernel(func(c *CPU, op uint8) { c.ana(op) }))
	registerKernel(kXraM, aluMemKernel(func(c *CPU, op uint8) { c.xra(op) }))
	registerKernel(kOraM, aluMemKernel(func(c *CPU, op uint8) { c.ora(op) }))
	registerKernel(kCmpM, aluMemKernel(func(c *CPU, op uint8) { c.cmp(op) }))

	registerKernel(kAni, aluImmKernel(func(c *CPU, op uint8) { c.ana(op) }))
	registerKernel(kXri, aluImmKernel(func(c *CPU, op uint8) { c.xra(op) }))
	registerKernel(kOri, aluImmKernel(func(c *CPU, op uint8) { c.ora(op) }))
	registerKernel(kCpi, aluImmKernel(func(c *CPU, op uint8) { c.cmp(op) }))

	registerKernel(kCma, []microStep{terminalStep(func(c *CPU) { c.cma() })})
	registerKernel(kCmc, []microStep{terminalStep(func(c *CPU) { c.cmc() })})
	registerKernel(kStc, []microStep{terminalStep(func(c *CPU) { c.stc() })})
}

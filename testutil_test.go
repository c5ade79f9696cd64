package i8080

// testMemory is the flat 64 KiB array standing in for the external
// memory/IO collaborator in unit tests (spec §1 names this harness array
// explicitly out of the core's scope). It is the test-only analogue of
// the teacher's testutil_test.go testBus.
type testMemory struct {
	mem   [65536]byte
	ports [256]byte

	// intVector, when non-nil, is placed on the data port during an
	// interrupt-acknowledge read instead of the memory array, modeling
	// an interrupt controller injecting an instruction (typically RST n).
	intVector *uint8
}

func newTestMemory() *testMemory { return &testMemory{} }

func (m *testMemory) load(addr uint16, bytes ...uint8) {
	for i, b := range bytes {
		m.mem[int(addr)+i] = b
	}
}

// service drives one tick's worth of collaborator response: if the core
// is requesting a read, place the byte; if it just wrote, latch it. No
// wait states are introduced (READY stays high throughout).
func (m *testMemory) service(c *CPU) {
	if c.Pins.DBIN() {
		addr := c.Pins.Address()
		switch {
		case c.Pins.Status()&StatusINTA != 0 && m.intVector != nil:
			c.Pins.SetData(*m.intVector)
		case c.Pins.Status()&StatusINP != 0:
			c.Pins.SetData(m.ports[uint8(addr>>8)])
		default:
			c.Pins.SetData(m.mem[addr])
		}
	}
	if c.Pins.WR() {
		addr := c.Pins.Address()
		if c.Pins.Status()&StatusOUT != 0 {
			m.ports[uint8(addr>>8)] = c.Pins.Data()
		} else {
			m.mem[addr] = c.Pins.Data()
		}
	}
}

// tick advances the CPU by one T-state and lets the test memory respond.
func tick(c *CPU, m *testMemory) {
	c.Tick()
	m.service(c)
}

// runTicks advances the CPU n T-states, servicing the bus each time.
func runTicks(c *CPU, m *testMemory, n int) {
	for i := 0; i < n; i++ {
		tick(c, m)
	}
}

// runUntilHalt ticks until the CPU enters HALT or maxTicks is exceeded,
// reporting which happened. A short program ending in HLT can be driven
// to completion this way without hand-counting T-states.
func runUntilHalt(c *CPU, m *testMemory, maxTicks int) bool {
	for i := 0; i < maxTicks; i++ {
		tick(c, m)
		if c.Halted() {
			return true
		}
	}
	return false
}

// newWiredCPU returns a CPU and backing memory ready to run a short
// program placed at addr via mem.load.
func newWiredCPU() (*CPU, *testMemory) {
	c := New()
	m := newTestMemory()
	return c, m
}

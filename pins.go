package i8080

// Control-line bit positions within Pins.ctrl.
//
//	             ┌───────────────────┐
//	    A0 ○<————│  1             34 │<————○ READY
//	    A1 ○<————│  2             33 │<————○ INT
//	    A2 ○<————│  3             32 │<————○ HOLD
//	    A3 ○<————│  4             31 │<————○ RESET
//	    A4 ○<————│  5             30 │————>○ WAIT
//	    A5 ○<————│  6    INTEL    29 │————>○ HLDA
//	    A6 ○<————│  7     8080    28 │————>○ SYNC
//	    A7 ○<————│  8             27 │————>○ WR
//	    A8 ○<————│  9             26 │————>○ DBIN
//	    A9 ○<————│ 10             25 │————>○ INTE
//	   A10 ○<————│ 11             24 │<———>○ D7
//	   A11 ○<————│ 12             23 │<———>○ D6
//	   A12 ○<————│ 13             22 │<———>○ D5
//	   A13 ○<————│ 14             21 │<———>○ D4
//	   A14 ○<————│ 15             20 │<———>○ D3
//	   A15 ○<————│ 16             19 │<———>○ D2
//	    D0 ○<———>│ 17             18 │<———>○ D1
//	             └───────────────────┘
//
// The pins are not packed into one word: Pins keeps the 16-bit address
// bus, the 8-bit bidirectional data port and the latched status byte in
// fields of their own, and the control outputs plus the two externally
// driven inputs (INT, READY) as bits 0-6 of a 32-bit control word. These
// positions are stable but otherwise arbitrary and unexported; callers
// outside the package use the Pins accessor methods.
const (
	pinINTE uint32 = 1 << iota
	pinDBIN
	pinWR
	pinSYNC
	pinWAIT
	pinINT
	pinREADY
)

// Status word bit symbols (the byte on the data port during T1 of every
// machine cycle). Named per the Intel 8080 status information definition.
const (
	StatusINTA uint8 = 1 << iota // acknowledge signal for an interrupt request
	StatusWO                     // 0 = this cycle will write memory or output
	StatusSTACK                  // address bus holds a stack-pointer-derived address
	StatusHLTA                   // acknowledge signal for HALT
	StatusOUT                    // address bus holds an output device address
	StatusM1                     // fetch cycle for the first byte of an instruction
	StatusINP                    // address bus holds an input device address
	StatusMEMR                  // data bus will be used for memory read data
)

// Status word values for each of the ten defined machine-cycle kinds
// (spec §3, §6). Latched into Pins.Status() at T1 of the owning cycle.
const (
	StatusFetch        uint8 = StatusMEMR | StatusM1 | StatusWO               // 0xA2
	StatusMemRead      uint8 = StatusMEMR | StatusWO                          // 0x82
	StatusMemWrite     uint8 = 0                                              // 0x00
	StatusStackRead    uint8 = StatusMEMR | StatusSTACK | StatusWO            // 0x86
	StatusStackWrite   uint8 = StatusSTACK                                    // 0x04
	StatusInputRead    uint8 = StatusINP | StatusWO                           // 0x42
	StatusOutputWrite  uint8 = StatusOUT                                      // 0x10
	StatusInterruptAck uint8 = StatusINTA | StatusWO | StatusM1               // 0x23
	StatusHaltAck      uint8 = StatusMEMR | StatusWO | StatusHLTA             // 0x8A
	StatusIntAckHalted uint8 = StatusINTA | StatusWO | StatusM1 | StatusHLTA  // 0x2B
)

// Pins is the shared mutable surface between the CPU core and its external
// collaborator (memory, I/O devices, interrupt sources). The core mutates
// address/data/status/control outputs inside Tick; the collaborator reads
// them between ticks and drives the data port and the two inputs (INT,
// READY) in response. Pins never calls back into the collaborator — it is
// plain data, per spec §9 ("avoid modeling the collaborator as a
// dependency of the core").
type Pins struct {
	address uint16
	data    uint8
	status  uint8
	ctrl    uint32
}

func (p *Pins) reset() {
	p.address = 0
	p.data = 0
	p.status = 0
	p.ctrl = pinREADY
}

// Address returns the current 16-bit address bus value.
func (p *Pins) Address() uint16 { return p.address }

// Data returns the current value on the 8-bit bidirectional data port.
func (p *Pins) Data() uint8 { return p.data }

// SetData drives the data port. The collaborator calls this while DBIN is
// high (supplying a byte to read); the core drives the port itself while
// SYNC or WR is high (the status word or a byte to write).
func (p *Pins) SetData(v uint8) { p.data = v }

// Status returns the machine-cycle status word latched at the start of
// the current machine cycle (spec §3, §6).
func (p *Pins) Status() uint8 { return p.status }

// INTE reports the interrupt-enable flip-flop as reflected on its pin.
func (p *Pins) INTE() bool { return p.ctrl&pinINTE != 0 }

// DBIN reports whether the CPU is requesting a byte be placed on the data
// port for it to read.
func (p *Pins) DBIN() bool { return p.ctrl&pinDBIN != 0 }

// WR reports whether the CPU has placed a byte on the data port for the
// collaborator to latch.
func (p *Pins) WR() bool { return p.ctrl&pinWR != 0 }

// SYNC reports whether the current T-state is T1 of a machine cycle.
func (p *Pins) SYNC() bool { return p.ctrl&pinSYNC != 0 }

// WAIT reports whether the bus is stretched pending READY.
func (p *Pins) WAIT() bool { return p.ctrl&pinWAIT != 0 }

// INT returns the current state of the externally-driven interrupt
// request input.
func (p *Pins) INT() bool { return p.ctrl&pinINT != 0 }

// SetInt drives the interrupt request input. Not cleared by the core;
// the collaborator is responsible for lowering it once acknowledged.
func (p *Pins) SetInt(v bool) { p.setCtrl(pinINT, v) }

// READY returns the current state of the externally-driven bus-ready
// input.
func (p *Pins) READY() bool { return p.ctrl&pinREADY != 0 }

// SetReady drives the bus-ready input. A device stretches a machine cycle
// by holding this low across a T2 sample.
func (p *Pins) SetReady(v bool) { p.setCtrl(pinREADY, v) }

func (p *Pins) setCtrl(bit uint32, v bool) {
	if v {
		p.ctrl |= bit
	} else {
		p.ctrl &^= bit
	}
}

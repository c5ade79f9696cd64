package i8080

// mnemonic is a test-only disassembly aid ported from the original
// reference's debug trace printer. spec.md scopes the disassembler
// pretty-printer out of the core package; nothing prevents test code
// from having one for readable failure traces from the CPU-exerciser
// runner (see exerciser_test.go).
var mnemonicTable = [256]string{
	0x00: "nop", 0x01: "lxi b,#", 0x02: "stax b", 0x03: "inx b",
	0x04: "inr b", 0x05: "dcr b", 0x06: "mvi b,#", 0x07: "rlc",
	0x08: "nop*", 0x09: "dad b", 0x0A: "ldax b", 0x0B: "dcx b",
	0x0C: "inr c", 0x0D: "dcr c", 0x0E: "mvi c,#", 0x0F: "rrc",
	0x10: "nop*", 0x11: "lxi d,#", 0x12: "stax d", 0x13: "inx d",
	0x14: "inr d", 0x15: "dcr d", 0x16: "mvi d,#", 0x17: "ral",
	0x18: "nop*", 0x19: "dad d", 0x1A: "ldax d", 0x1B: "dcx d",
	0x1C: "inr e", 0x1D: "dcr e", 0x1E: "mvi e,#", 0x1F: "rar",
	0x20: "nop*", 0x21: "lxi h,#", 0x22: "shld", 0x23: "inx h",
	0x24: "inr h", 0x25: "dcr h", 0x26: "mvi h,#", 0x27: "daa",
	0x28: "nop*", 0x29: "dad h", 0x2A: "lhld", 0x2B: "dcx h",
	0x2C: "inr l", 0x2D: "dcr l", 0x2E: "mvi l,#", 0x2F: "cma",
	0x30: "nop*", 0x31: "lxi sp,#", 0x32: "sta", 0x33: "inx sp",
	0x34: "inr m", 0x35: "dcr m", 0x36: "mvi m,#", 0x37: "stc",
	0x38: "nop*", 0x39: "dad sp", 0x3A: "lda", 0x3B: "dcx sp",
	0x3C: "inr a", 0x3D: "dcr a", 0x3E: "mvi a,#", 0x3F: "cmc",
	0x76: "hlt",
	0xC0: "rnz", 0xC1: "pop b", 0xC2: "jnz", 0xC3: "jmp",
	0xC4: "cnz", 0xC5: "push b", 0xC6: "adi #", 0xC7: "rst 0",
	0xC8: "rz", 0xC9: "ret", 0xCA: "jz", 0xCB: "jmp*",
	0xCC: "cz", 0xCD: "call", 0xCE: "aci #", 0xCF: "rst 1",
	0xD0: "rnc", 0xD1: "pop d", 0xD2: "jnc", 0xD3: "out",
	0xD4: "cnc", 0xD5: "push d", 0xD6: "sui #", 0xD7: "rst 2",
	0xD8: "rc", 0xD9: "ret*", 0xDA: "jc", 0xDB: "in",
	0xDC: "cc", 0xDD: "call*", 0xDE: "sbi #", 0xDF: "rst 3",
	0xE0: "rpo", 0xE1: "pop h", 0xE2: "jpo", 0xE3: "xthl",
	0xE4: "cpo", 0xE5: "push h", 0xE6: "ani #", 0xE7: "rst 4",
	0xE8: "rpe", 0xE9: "pchl", 0xEA: "jpe", 0xEB: "xchg",
	0xEC: "cpe", 0xED: "call*", 0xEE: "xri #", 0xEF: "rst 5",
	0xF0: "rp", 0xF1: "pop psw", 0xF2: "jp", 0xF3: "di",
	0xF4: "cp", 0xF5: "push psw", 0xF6: "ori #", 0xF7: "rst 6",
	0xF8: "rm", 0xF9: "sphl", 0xFA: "jm", 0xFB: "ei",
	0xFC: "cm", 0xFD: "call*", 0xFE: "cpi #", 0xFF: "rst 7",
}

func init() {
	// MOV r,r / r,M / M,r occupy 0x40-0x7F, all sharing one mnemonic
	// shape; filled here rather than spelled out 64 times above.
	regNames := [8]string{"b", "c", "d", "e", "h", "l", "m", "a"}
	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			continue // hlt, already set above
		}
		dst := regNames[(op>>3)&7]
		src := regNames[op&7]
		mnemonicTable[op] = "mov " + dst + "," + src
	}
	for op := 0x80; op <= 0xBF; op++ {
		names := [8]string{"add", "adc", "sub", "sbb", "ana", "xra", "ora", "cmp"}
		mnemonicTable[op] = names[(op>>3)&7] + " " + regNames[op&7]
	}
}

func mnemonic(op uint8) string {
	if m := mnemonicTable[op]; m != "" {
		return m
	}
	return "???"
}

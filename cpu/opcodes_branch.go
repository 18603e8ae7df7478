package cpu

import "github.com/nes6502/nescpu/memory"

// branch is the shared relative-branch core. The table bills the base
// 2 cycles unconditionally; a taken branch adds 1, and a taken branch
// that also crosses a page adds a further 1 (so a taken, crossing
// branch costs 4 total).
func (c *Chip) branch(res addrResult, taken bool) {
	if !taken {
		return
	}
	c.Cycles++
	if res.PageCrossed {
		c.Cycles++
	}
	c.PC = res.Addr
}

func execBCC(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.branch(res, !c.flag(FlagCarry))
}

func execBCS(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.branch(res, c.flag(FlagCarry))
}

func execBEQ(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.branch(res, c.flag(FlagZero))
}

func execBNE(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.branch(res, !c.flag(FlagZero))
}

func execBPL(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.branch(res, !c.flag(FlagNegative))
}

func execBMI(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.branch(res, c.flag(FlagNegative))
}

func execBVC(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.branch(res, !c.flag(FlagOverflow))
}

func execBVS(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.branch(res, c.flag(FlagOverflow))
}

package cpu

// setNZ sets ZERO and NEGATIVE from the given result byte, the common
// case for loads, transfers and most ALU results.
func (c *Chip) setNZ(result uint8) {
	c.setFlag(FlagZero, result == 0)
	c.setFlag(FlagNegative, result&0x80 != 0)
}

// setFlag sets or clears a single flag bit in P.
func (c *Chip) setFlag(flag uint8, on bool) {
	if on {
		c.P |= flag
	} else {
		c.P &^= flag
	}
}

// flag reports whether a single flag bit is set in P.
func (c *Chip) flag(flag uint8) bool {
	return c.P&flag != 0
}

// pushableP returns P with BREAK and UNUSED forced to 1, the byte value
// PHP and BRK push to the stack regardless of the live flag state.
func (c *Chip) pushableP() uint8 {
	return c.P | FlagBreak | FlagUnused
}

// restoreP sets P from a popped stack byte with BREAK cleared and
// UNUSED forced to 1, as PLP and RTI do.
func (c *Chip) restoreP(val uint8) {
	c.P = (val &^ FlagBreak) | FlagUnused
}

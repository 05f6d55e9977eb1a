package is31fl3737

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/mmr"
)

// Register is a paged register address. The high byte is the page number and
// the low byte is the offset inside the page.
type Register uint16

// Page returns the page the register lives in.
func (r Register) Page() byte {
	return byte(r>>8) & pageMask
}

// Offset returns the register offset inside its page.
func (r Register) Offset() byte {
	return byte(r)
}

// Unpaged registers, reachable regardless of the selected page.
const (
	regPageSelect = 0xFD // Page select register. Write only.
	regPageLock   = 0xFE // Command register write lock.
	regIntMask    = 0xF0 // Interrupt mask register.
	regIntStatus  = 0xF1 // Interrupt status register. Read only.

	pageUnlockKey = 0xC5 // Unlocks regPageSelect for one write.
	pageMask      = 0x03
)

// Pages.
const (
	PageLEDControl byte = 0 // LED on/off, open and short state.
	PagePWM        byte = 1 // PWM duty for each LED.
	PageABM        byte = 2 // Auto breath mode for each LED.
	PageFunction   byte = 3 // Configuration, current and timing.
)

// Page 0.
const (
	RegLEDOnOff Register = 0x0000 // ON or OFF state control for each LED. Write only.
	RegLEDOpen  Register = 0x0018 // Open state for each LED. Read only.
	RegLEDShort Register = 0x0030 // Short state for each LED. Read only.
)

// Page 1.
const (
	RegLEDPWM Register = 0x0100 // PWM duty for each LED. Write only.
)

// Page 2.
const (
	RegLEDABM Register = 0x0200 // Auto breath mode for each LED. Write only.
)

// Page 3.
const (
	RegCR    Register = 0x0300 // Configuration register. Write only.
	RegGCC   Register = 0x0301 // Global current control register. Write only.
	RegABM1  Register = 0x0302 // Auto breath control register for ABM-1. Write only.
	RegABM2  Register = 0x0306 // Auto breath control register for ABM-2. Write only.
	RegABM3  Register = 0x030A // Auto breath control register for ABM-3. Write only.
	RegTUR   Register = 0x030E // Time update register. Write only.
	RegSWPUR Register = 0x030F // SWy pull-up resistor selection register. Write only.
	RegCSPDR Register = 0x0310 // CSx pull-down resistor selection register. Write only.
	RegReset Register = 0x0311 // Reset register. Reading it resets the chip.
)

// Configuration register bits.
const (
	crSoftwareShutdown = 0x01 // 1 = normal operation, 0 = software shutdown.
)

// Register window sizes.
const (
	ledControlSize = 0x18 // One bit per slot.
	pwmSize        = 0xC0 // One byte per slot.
	abmSize        = 0xC0 // One byte per slot.
)

// regs implements the page select protocol on top of an I2C device.
//
// Every access unlocks the page select register and writes the page before
// touching the target offset. The device holds the selected page, so nothing
// else may talk to it between the select and the access.
type regs struct {
	c *i2c.Dev
	m mmr.Dev8
}

func newRegs(bus i2c.Bus, addr uint16) *regs {
	d := &i2c.Dev{Bus: bus, Addr: addr}
	return &regs{c: d, m: mmr.Dev8{Conn: d}}
}

// selectPage unlocks the page select register and writes page to it.
func (r *regs) selectPage(page byte) error {
	if err := r.m.WriteUint8(regPageLock, pageUnlockKey); err != nil {
		return fmt.Errorf("is31fl3737: failed to unlock page select: %w", err)
	}
	if err := r.m.WriteUint8(regPageSelect, page&pageMask); err != nil {
		return fmt.Errorf("is31fl3737: failed to select page %d: %w", page&pageMask, err)
	}
	return nil
}

// readByte reads a single paged register.
func (r *regs) readByte(reg Register) (byte, error) {
	if err := r.selectPage(reg.Page()); err != nil {
		return 0, err
	}
	v, err := r.m.ReadUint8(reg.Offset())
	if err != nil {
		return 0, fmt.Errorf("is31fl3737: failed to read register 0x%04X: %w", uint16(reg), err)
	}
	return v, nil
}

// writeByte writes a single paged register.
func (r *regs) writeByte(reg Register, v byte) error {
	if err := r.selectPage(reg.Page()); err != nil {
		return err
	}
	if err := r.m.WriteUint8(reg.Offset(), v); err != nil {
		return fmt.Errorf("is31fl3737: failed to write register 0x%04X: %w", uint16(reg), err)
	}
	return nil
}

// writeBlock selects page once and writes data starting at offset. The chip
// auto-increments the offset.
func (r *regs) writeBlock(page, offset byte, data []byte) error {
	if err := r.selectPage(page); err != nil {
		return err
	}
	w := make([]byte, 1+len(data))
	w[0] = offset
	copy(w[1:], data)
	if err := r.c.Tx(w, nil); err != nil {
		return fmt.Errorf("is31fl3737: failed to write %d bytes at page %d offset 0x%02X: %w", len(data), page&pageMask, offset, err)
	}
	return nil
}

// readBlock selects page once and reads len(data) bytes starting at offset.
func (r *regs) readBlock(page, offset byte, data []byte) error {
	if err := r.selectPage(page); err != nil {
		return err
	}
	if err := r.c.Tx([]byte{offset}, data); err != nil {
		return fmt.Errorf("is31fl3737: failed to read %d bytes at page %d offset 0x%02X: %w", len(data), page&pageMask, offset, err)
	}
	return nil
}

// Package is31fl3737 drives an IS31FL3737 RGB LED matrix over I2C.
//
// See doc.go for the wiring and usage examples.
package is31fl3737

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/is31fl3737/rgb"
)

// DefaultAddr is the I2C address with the ADDR pin tied to GND.
const DefaultAddr uint16 = 0x50

// DefaultGlobalCurrent is the global current control value written by Init.
const DefaultGlobalCurrent byte = 50

// MaxBrightness renders colors unscaled.
const MaxBrightness = 256

// frameSize covers the whole PWM page as seen by the offset byte.
const frameSize = 256

// frameChunk is the largest PWM transfer. A frame goes out in two of them.
const frameChunk = frameSize / 2

// ErrNotReady is returned by operations that need Init to have completed since
// the last power on.
var ErrNotReady = errors.New("is31fl3737: not initialized")

// Opts is the configuration for the IS31FL3737 driver.
type Opts struct {
	Addr          uint16 // I2C address (default: DefaultAddr)
	GlobalCurrent byte   // Written to RegGCC by Init (default: DefaultGlobalCurrent)
	Brightness    int    // Initial brightness, 0 uses MaxBrightness

	// Optional shutdown (SDB) pin. When nil the chip is assumed always
	// enabled and PowerOn/PowerOff only track state.
	SDB gpio.PinOut
}

// LED is one color cell of the matrix, bound to its PWM base address.
type LED struct {
	rgb.Color
	addr byte
}

// Addr returns the PWM base address of the LED. The blue, green and red duty
// registers sit at Addr, Addr+0x10 and Addr+0x20.
func (l *LED) Addr() byte {
	return l.addr
}

type state uint8

const (
	stateOff state = iota
	statePowered
	stateReady
)

func (s state) String() string {
	switch s {
	case stateOff:
		return "off"
	case statePowered:
		return "powered"
	case stateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Dev is the device handle for the IS31FL3737.
//
// Dev is not safe for concurrent use. The page select register is shared
// device state, so callers must serialize every method.
type Dev struct {
	// Communication
	r    *regs
	addr uint16
	sdb  gpio.PinOut

	// LED state
	leds       [NumLEDs]LED
	raw        [frameSize]byte
	brightness int
	current    byte

	state state
}

var _ display.Drawer = (*Dev)(nil)

// New returns a handle bound to the bus and the optional SDB pin.
//
// No bus traffic happens here. Call PowerOn and Init before Update.
// opts can be nil to use defaults.
func New(bus i2c.Bus, opts *Opts) (*Dev, error) {
	if bus == nil {
		return nil, errors.New("is31fl3737: bus is required")
	}
	if opts == nil {
		opts = &Opts{}
	}

	d := &Dev{
		addr:       opts.Addr,
		sdb:        opts.SDB,
		brightness: opts.Brightness,
		current:    opts.GlobalCurrent,
	}
	if d.addr == 0 {
		d.addr = DefaultAddr
	}
	if d.brightness == 0 {
		d.brightness = MaxBrightness
	}
	if d.current == 0 {
		d.current = DefaultGlobalCurrent
	}
	d.r = newRegs(bus, d.addr)

	for i := range d.leds {
		d.leds[i].addr = Address(i)
	}
	return d, nil
}

// PowerOn drives SDB high. Init must follow before the matrix can be updated.
func (d *Dev) PowerOn() error {
	if d.sdb != nil {
		if err := d.sdb.Out(gpio.High); err != nil {
			return fmt.Errorf("is31fl3737: failed to pull SDB high: %w", err)
		}
	}
	if d.state == stateOff {
		d.state = statePowered
	}
	return nil
}

// PowerOff drives SDB low. The chip loses its configuration, so Init is
// required again after the next PowerOn.
func (d *Dev) PowerOff() error {
	d.state = stateOff
	if d.sdb != nil {
		if err := d.sdb.Out(gpio.Low); err != nil {
			return fmt.Errorf("is31fl3737: failed to pull SDB low: %w", err)
		}
	}
	return nil
}

// Init resets the chip and brings it to a known state: all LEDs enabled,
// auto breath disabled and the PWM page cleared.
//
// The chip is powered on first if needed. A bus error aborts the sequence and
// leaves the device not ready.
func (d *Dev) Init() error {
	if d.state == stateOff {
		if err := d.PowerOn(); err != nil {
			return err
		}
	}
	d.state = statePowered

	// Reading the reset register resets every register to its default.
	if _, err := d.r.readByte(RegReset); err != nil {
		return err
	}
	// Leave software shutdown.
	if err := d.r.writeByte(RegCR, crSoftwareShutdown); err != nil {
		return err
	}

	// Enable every slot so visibility only depends on the PWM duty.
	on := make([]byte, ledControlSize)
	for i := range on {
		on[i] = 0xFF
	}
	if err := d.r.writeBlock(RegLEDOnOff.Page(), RegLEDOnOff.Offset(), on); err != nil {
		return err
	}
	if err := d.r.writeBlock(RegLEDABM.Page(), RegLEDABM.Offset(), make([]byte, abmSize)); err != nil {
		return err
	}

	d.raw = [frameSize]byte{}
	if err := d.flush(); err != nil {
		return err
	}
	if err := d.r.writeByte(RegGCC, d.current); err != nil {
		return err
	}

	d.state = stateReady
	return nil
}

// Update scales every LED color by the brightness and writes the frame to the
// PWM page.
func (d *Dev) Update() error {
	if d.state != stateReady {
		return ErrNotReady
	}
	d.render()
	return d.flush()
}

// Clear sets every LED to black and updates the matrix.
func (d *Dev) Clear() error {
	for i := range d.leds {
		d.leds[i].Set(0, 0, 0)
	}
	return d.Update()
}

// render fills the frame buffer from the LED array.
func (d *Dev) render() {
	for i := Sentinel + 1; i < renderCount; i++ {
		l := &d.leds[i]
		a := int(l.addr)
		d.raw[a+strideBlue] = d.scale(l.B)
		d.raw[a+strideGreen] = d.scale(l.G)
		d.raw[a+strideRed] = d.scale(l.R)
	}
}

func (d *Dev) scale(c uint8) byte {
	return byte(int(c) * d.brightness / MaxBrightness)
}

// flush writes the frame buffer in two chunks, selecting the PWM page for each.
func (d *Dev) flush() error {
	for off := 0; off < frameSize; off += frameChunk {
		if err := d.r.writeBlock(RegLEDPWM.Page(), byte(off), d.raw[off:off+frameChunk]); err != nil {
			return err
		}
	}
	return nil
}

// SetBrightness sets the scale applied by Update, as a fraction of 256.
// It is not range checked.
func (d *Dev) SetBrightness(b int) {
	d.brightness = b
}

// Brightness returns the scale applied by Update.
func (d *Dev) Brightness() int {
	return d.brightness
}

// LED returns the cell at logical index i. Index Sentinel is valid but never
// rendered.
func (d *Dev) LED(i int) *LED {
	return &d.leds[i]
}

// Eye returns the cell at eye position (x, y). Empty positions return the
// sentinel cell.
func (d *Dev) Eye(x, y int) *LED {
	return &d.leds[EyeGrid[x][y]]
}

// View resolves v against the LED array. The returned cells are shared with
// the device and every other view.
func (d *Dev) View(v View) []*LED {
	out := make([]*LED, len(v))
	for i, idx := range v {
		out[i] = &d.leds[idx]
	}
	return out
}

// Frame returns a copy of the last frame buffer sent to the PWM page.
func (d *Dev) Frame() []byte {
	out := make([]byte, frameSize)
	copy(out, d.raw[:])
	return out
}

// OpenStatus reads the open-circuit bitmap, one bit per LED slot. The chip
// refreshes it when open/short detection runs.
func (d *Dev) OpenStatus() ([]byte, error) {
	return d.readStatus(RegLEDOpen)
}

// ShortStatus reads the short-circuit bitmap, one bit per LED slot.
func (d *Dev) ShortStatus() ([]byte, error) {
	return d.readStatus(RegLEDShort)
}

func (d *Dev) readStatus(reg Register) ([]byte, error) {
	if d.state == stateOff {
		return nil, ErrNotReady
	}
	b := make([]byte, ledControlSize)
	if err := d.r.readBlock(reg.Page(), reg.Offset(), b); err != nil {
		return nil, err
	}
	return b, nil
}

// ColorModel returns the color model of the matrix.
func (d *Dev) ColorModel() color.Model {
	return rgb.Model
}

// Bounds returns the eye grid as an image rectangle.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, EyeWidth, EyeHeight)
}

// Draw copies src onto the eye grid and updates the matrix. Positions without
// an LED are skipped. Other LEDs keep their color.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.state != stateReady {
		return ErrNotReady
	}

	r := dst.Intersect(d.Bounds())
	if r.Empty() {
		return nil
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			i := EyeGrid[x][y]
			if i == Sentinel {
				continue
			}
			c := rgb.Model.Convert(src.At(sp.X+x-dst.Min.X, sp.Y+y-dst.Min.Y)).(rgb.Color)
			d.leds[i].Copy(c)
		}
	}
	return d.Update()
}

// Halt blanks the matrix when it is ready and powers the chip off.
func (d *Dev) Halt() error {
	if d.state == stateReady {
		if err := d.Clear(); err != nil {
			return err
		}
	}
	return d.PowerOff()
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("is31fl3737.Dev{0x%02X, %s}", d.addr, d.state)
}

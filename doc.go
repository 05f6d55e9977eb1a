// Package is31fl3737 controls an IS31FL3737 RGB LED matrix driver via I2C.
//
// The IS31FL3737 drives a 12×16 matrix of LED slots with 8-bit PWM per slot.
// On the badge this driver targets, three slots form one RGB LED, giving 49
// addressable LEDs arranged as an eye and a chin.
//
// # Hardware Connection
//
//	Chip Pin → System Pin
//	GND      → GND
//	VCC      → 3.3V
//	SCL      → I2C Clock (SCL)
//	SDA      → I2C Data (SDA)
//	SDB      → GPIO (any available pin, high = enabled)
//	ADDR     → GND (address 0x50)
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/devices/v3/is31fl3737"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I2C bus
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		// Create device
//		dev, _ := is31fl3737.New(bus, &is31fl3737.Opts{
//			SDB: gpioreg.ByName("GPIO3"),
//		})
//		defer dev.Halt()
//
//		dev.PowerOn()
//		dev.Init()
//
//		// Paint the chin red and push the frame
//		for _, led := range dev.View(is31fl3737.Chin) {
//			led.Set(255, 0, 0)
//		}
//		dev.Update()
//	}
//
// # Lifecycle
//
// New only binds the bus and the SDB pin. PowerOn raises SDB, Init resets
// and configures the chip, after which Update, Clear and Draw can be used.
// PowerOff lowers SDB and the chip forgets its configuration, so Init must be
// called again. Init powers the chip on by itself when needed.
//
// # LEDs and Views
//
// The device owns a single array of NumLEDs cells. Index Sentinel (0) is a
// placeholder used to pad the eye grid; it can be written but is never
// rendered. Views are lists of indices into the same array, so a change made
// through one view is visible through all of them:
//
//	dev.Eye(2, 0).HSV(0.5, 1, 255)       // eye grid, [x][y]
//	dev.View(is31fl3737.Clockwise)[0]    // same cell as dev.LED(1)
//
// The available views are EyeGrid, RightEye, Chin, Clockwise and Downward.
//
// # Brightness
//
// SetBrightness takes a fraction of 256. The scale is applied when the frame
// is built and never written back to the cells:
//
//	dev.SetBrightness(128) // half intensity
//	dev.Update()
//
// # Register Access
//
// The chip exposes four register pages behind a lock: every access writes the
// unlock key to 0xFE, then the page number to 0xFD, then touches the register.
// The device keeps the selected page, so nothing else may use the chip while
// this driver runs.
//
// # Compatibility with periph.io
//
// Dev implements display.Drawer over the 7×5 eye grid, so images can be drawn
// onto the eye with any periph.io tool.
//
// # Datasheet
//
// https://www.lumissil.com/assets/pdf/core/IS31FL3737_DS.pdf
package is31fl3737

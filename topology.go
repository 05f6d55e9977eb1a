package is31fl3737

// NumLEDs is the length of the LED array, sentinel included.
const NumLEDs = 50

// Sentinel is the reserved LED index used to pad grid positions that have no
// physical LED. It can be written through views but is never rendered.
const Sentinel = 0

// renderCount bounds the indices rendered by Update. It is a property of the
// badge's wiring; indices at or past it keep an address but are never written.
const renderCount = 48

// Channel strides from an LED base address inside the PWM page.
const (
	strideBlue  = 0x00
	strideGreen = 0x10
	strideRed   = 0x20
)

// pageStride is the address distance between two groups of 12 LEDs.
const pageStride = 0x30

// Address returns the base PWM address of logical LED i.
//
// Every 12 indices advance one stride of 0x30 and the upper six of each group
// skip the two unused slots at 6 and 7. The sentinel maps to 0, which no
// other index produces.
func Address(i int) byte {
	base := i % 12
	if base > 5 {
		base += 2
	}
	return byte((base + (i/12)*pageStride) & 0xFF)
}

// View is an ordered list of LED indices. Indices may repeat and may point at
// the Sentinel.
type View []int

// Grid dimensions of the eye. The grid is stored sideways: EyeGrid[x][y].
const (
	EyeWidth  = 7
	EyeHeight = 5
)

// EyeGrid maps eye positions to LED indices. Positions holding Sentinel have no
// LED.
var EyeGrid = [EyeWidth][EyeHeight]int{
	{0, 0, 1, 0, 0},
	{0, 25, 13, 0, 0},
	{38, 26, 14, 2, 0},
	{39, 27, 15, 3, 0},
	{40, 28, 16, 4, 37},
	{41, 29, 17, 5, 6},
	{0, 30, 18, 0, 42},
}

// RightEye lists the eye LEDs column by column, skipping empty positions.
var RightEye = View{
	1,
	25, 13,
	38, 26, 14, 2,
	39, 27, 15, 3,
	40, 28, 16, 4, 37,
	41, 29, 17, 5, 6,
	30, 18, 42,
}

// Chin lists the chin ring LEDs.
var Chin = View{7, 8, 9, 10, 11, 12, 19, 20, 21, 22, 23, 24}

// Clockwise walks every LED around the boundary of the face.
var Clockwise = View{
	1, 2, 37, 6, 42, 3, 4, 5, 13, 14, 15,
	16, 17, 18, 30, 29, 28, 27, 26, 25,
	41, 40, 39, 38,
	24, 23, 22, 21, 20, 19, 12, 11, 10, 9, 8, 7,
}

// Downward sweeps every LED from the top of the face to the bottom.
var Downward = View{
	42, 6, 37,
	2, 3, 4, 5,
	13, 14, 15, 16, 17, 18,
	1,
	25, 26, 27, 28, 29, 30,
	38, 39, 40, 41,
	24, 23, 22, 21, 20, 19, 7, 8, 10, 9, 12, 11,
}

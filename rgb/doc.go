// Package rgb provides the 24-bit color value stored for each LED of the
// IS31FL3737 matrix.
//
// A Color holds three raw channel bytes. It can be assigned directly, copied
// from another Color, or computed from HSV coordinates using fixed-point math
// so that the result is identical on every platform:
//
//	var c rgb.Color
//	c.Set(255, 128, 0)
//
//	// Hue is a fraction of a full turn, saturation a fraction, value a byte.
//	c.HSV(1.0/3.0, 1.0, 255) // pure green
//
// Color implements color.Color and Model converts any color.Color to a Color,
// so the values can be used with the standard image packages:
//
//	draw.Draw(img, img.Bounds(), image.NewUniform(rgb.Color{R: 255}), image.Point{}, draw.Src)
package rgb

package yiq

import "image/color"

// FromColor converts any color.Color to YIQ using the top 8 bits of each channel.
// Alpha is dropped; RGBA() is alpha-premultiplied, so translucent colors come out darker.
func FromColor(c color.Color) YIQ {
	r, g, b, _ := c.RGBA()
	return FromRGB([3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)})
}

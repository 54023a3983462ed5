package yiq

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Weights applied to the Y, I and Q differences by SquaredDistance.
const (
	KY float32 = 0.5053
	KI float32 = 0.299
	KQ float32 = 0.1957
)

// rows of the RGB -> YIQ matrix, applied to un-normalized 0..255 components
var matrix = [3][3]float32{
	{0.29889531, 0.58662247, 0.11448223},
	{0.59597799, -0.27417160, -0.32180189},
	{0.21147019, -0.52261711, 0.31114694},
}

// YIQ is a color in the YIQ space. Values produced by FromRGB keep the scale of
// the 8-bit input, so Y lies in [0, 255] and I, Q in roughly [-152, 152] and [-133, 133].
type YIQ struct {
	Y float32 // luminance
	I float32 // in-phase chrominance
	Q float32 // quadrature chrominance
}

// FromRGB converts an 8-bit RGB triplet to YIQ.
func FromRGB(rgb [3]uint8) YIQ {
	r := float32(rgb[0])
	g := float32(rgb[1])
	b := float32(rgb[2])
	return YIQ{
		Y: row(matrix[0], r, g, b),
		I: row(matrix[1], r, g, b),
		Q: row(matrix[2], r, g, b),
	}
}

// float32 conversions stop FMA fusion so every arch rounds the same way
func row(m [3]float32, r, g, b float32) float32 {
	return float32(m[0]*r) + float32(m[1]*g) + float32(m[2]*b)
}

// SquaredDistance returns the weighted squared distance between c and other.
// It preserves the ordering of SquareRootDistance and skips the square root,
// so prefer it when only comparing distances.
func (c YIQ) SquaredDistance(other YIQ) float32 {
	dy := other.Y - c.Y
	di := other.I - c.I
	dq := other.Q - c.Q
	return float32(KY*float32(dy*dy)) + float32(KI*float32(di*di)) + float32(KQ*float32(dq*dq))
}

// SquareRootDistance returns the perceptual distance between c and other.
func (c YIQ) SquareRootDistance(other YIQ) float32 {
	return math32.Sqrt(c.SquaredDistance(other))
}

func (c YIQ) String() string {
	return fmt.Sprintf("yiq(%g, %g, %g)", c.Y, c.I, c.Q)
}

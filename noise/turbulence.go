// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package noise

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"github.com/gogpu/gg"
)

// Parameter errors.
var (
	// ErrInvalidFrequency is returned for negative or non-finite base
	// frequencies.
	ErrInvalidFrequency = errors.New("noise: invalid base frequency")

	// ErrInvalidOctaves is returned when the octave count is out of range.
	ErrInvalidOctaves = errors.New("noise: invalid octave count")
)

// MaxOctaves is the largest accepted octave count. Octaves past this add
// nothing visible at 8-bit precision.
const MaxOctaves = 255

const (
	latticeSize = 0x100
	latticeMask = 0xff
	perlinN     = 0x1000

	randM = 2147483647 // 2^31 - 1
	randA = 16807      // 7^5, primitive root of m
	randQ = 127773     // m / a
	randR = 2836       // m % a

	channels = 4
)

// Type selects how octaves are combined.
type Type int

const (
	// FractalNoise sums signed octaves and maps the result to [0, 1].
	FractalNoise Type = iota

	// Turbulence sums absolute octave values.
	Turbulence
)

// String returns the noise type name.
func (t Type) String() string {
	switch t {
	case FractalNoise:
		return "FractalNoise"
	case Turbulence:
		return "Turbulence"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Generator is a seeded Perlin noise pattern. It implements gg.Pattern.
//
// Generator is immutable after construction and safe for concurrent use.
type Generator struct {
	kind      Type
	baseFreqX float32
	baseFreqY float32
	octaves   int
	seed      int32

	lattice  [latticeSize + latticeSize + 2]int
	gradient [channels][latticeSize + latticeSize + 2][2]float32
}

var _ gg.Pattern = (*Generator)(nil)

// NewFractal creates a fractal noise pattern.
//
// baseFreqX and baseFreqY are in cycles per pixel; octaves is the number of
// noise layers, each at twice the frequency and half the amplitude of the
// previous one. seed is rounded to the nearest integer; values <= 0 are
// folded into the generator's valid range.
func NewFractal(baseFreqX, baseFreqY float64, octaves int, seed float64) (*Generator, error) {
	return New(FractalNoise, baseFreqX, baseFreqY, octaves, seed)
}

// NewTurbulence creates a turbulence pattern. Parameters match NewFractal.
func NewTurbulence(baseFreqX, baseFreqY float64, octaves int, seed float64) (*Generator, error) {
	return New(Turbulence, baseFreqX, baseFreqY, octaves, seed)
}

// New creates a noise pattern of the given type.
func New(kind Type, baseFreqX, baseFreqY float64, octaves int, seed float64) (*Generator, error) {
	if !validFreq(baseFreqX) || !validFreq(baseFreqY) {
		return nil, fmt.Errorf("%w: (%v, %v)", ErrInvalidFrequency, baseFreqX, baseFreqY)
	}
	if octaves < 0 || octaves > MaxOctaves {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOctaves, octaves)
	}
	g := &Generator{
		kind:      kind,
		baseFreqX: float32(baseFreqX),
		baseFreqY: float32(baseFreqY),
		octaves:   octaves,
		seed:      int32(math.Round(seed)),
	}
	g.init()
	return g, nil
}

// MustFractal is like NewFractal but panics on invalid parameters.
// Use only with constant arguments.
func MustFractal(baseFreqX, baseFreqY float64, octaves int, seed float64) *Generator {
	g, err := NewFractal(baseFreqX, baseFreqY, octaves, seed)
	if err != nil {
		panic(err)
	}
	return g
}

// Type returns the noise type.
func (g *Generator) Type() Type { return g.kind }

// Octaves returns the number of octaves.
func (g *Generator) Octaves() int { return g.octaves }

// BaseFrequency returns the base frequencies.
func (g *Generator) BaseFrequency() (fx, fy float64) {
	return float64(g.baseFreqX), float64(g.baseFreqY)
}

// ColorAt returns the unpremultiplied color at (x, y).
func (g *Generator) ColorAt(x, y float64) gg.RGBA {
	px, py := float32(x), float32(y)
	return gg.RGBA{
		R: float64(g.channel(0, px, py)),
		G: float64(g.channel(1, px, py)),
		B: float64(g.channel(2, px, py)),
		A: float64(g.channel(3, px, py)),
	}
}

// channel evaluates one color channel in [0, 1].
func (g *Generator) channel(ch int, x, y float32) float32 {
	sum := g.octaveSum(ch, x, y)
	if g.kind == FractalNoise {
		sum = (sum + 1) / 2
	}
	return clamp01(sum)
}

func (g *Generator) octaveSum(ch int, x, y float32) float32 {
	vx := x * g.baseFreqX
	vy := y * g.baseFreqY
	var sum float32
	ratio := float32(1)
	for range g.octaves {
		n := g.noise2(ch, vx, vy)
		if g.kind == Turbulence {
			n = math32.Abs(n)
		}
		sum += n / ratio
		vx *= 2
		vy *= 2
		ratio *= 2
	}
	return sum
}

// noise2 is classic 2D gradient noise on the lattice.
func (g *Generator) noise2(ch int, x, y float32) float32 {
	t := x + perlinN
	bx0 := int(t) & latticeMask
	bx1 := (bx0 + 1) & latticeMask
	rx0 := t - math32.Floor(t)
	rx1 := rx0 - 1

	t = y + perlinN
	by0 := int(t) & latticeMask
	by1 := (by0 + 1) & latticeMask
	ry0 := t - math32.Floor(t)
	ry1 := ry0 - 1

	i := g.lattice[bx0]
	j := g.lattice[bx1]
	b00 := g.lattice[i+by0]
	b10 := g.lattice[j+by0]
	b01 := g.lattice[i+by1]
	b11 := g.lattice[j+by1]

	sx := sCurve(rx0)
	sy := sCurve(ry0)

	grad := &g.gradient[ch]
	u := rx0*grad[b00][0] + ry0*grad[b00][1]
	v := rx1*grad[b10][0] + ry0*grad[b10][1]
	a := lerp(sx, u, v)
	u = rx0*grad[b01][0] + ry1*grad[b01][1]
	v = rx1*grad[b11][0] + ry1*grad[b11][1]
	b := lerp(sx, u, v)
	return lerp(sy, a, b)
}

// init fills the permutation lattice and the per-channel gradient tables.
func (g *Generator) init() {
	seed := setupSeed(g.seed)

	for k := 0; k < channels; k++ {
		for i := 0; i < latticeSize; i++ {
			g.lattice[i] = i
			for j := 0; j < 2; j++ {
				seed = random(seed)
				g.gradient[k][i][j] = float32((seed%(latticeSize+latticeSize))-latticeSize) / latticeSize
			}
			gx, gy := g.gradient[k][i][0], g.gradient[k][i][1]
			if s := math32.Sqrt(gx*gx + gy*gy); s != 0 {
				g.gradient[k][i][0] = gx / s
				g.gradient[k][i][1] = gy / s
			}
		}
	}

	for i := latticeSize - 1; i > 0; i-- {
		seed = random(seed)
		j := int(seed % latticeSize)
		g.lattice[i], g.lattice[j] = g.lattice[j], g.lattice[i]
	}

	for i := 0; i < latticeSize+2; i++ {
		g.lattice[latticeSize+i] = g.lattice[i]
		for k := 0; k < channels; k++ {
			g.gradient[k][latticeSize+i] = g.gradient[k][i]
		}
	}
}

// setupSeed folds seed into [1, randM-1].
func setupSeed(seed int32) int64 {
	s := int64(seed)
	if s <= 0 {
		s = -(s % (randM - 1)) + 1
	}
	if s > randM-1 {
		s = randM - 1
	}
	return s
}

// random is the Park-Miller minimal standard generator (Schrage's method).
func random(seed int64) int64 {
	r := randA*(seed%randQ) - randR*(seed/randQ)
	if r <= 0 {
		r += randM
	}
	return r
}

func sCurve(t float32) float32 { return t * t * (3 - 2*t) }

func lerp(t, a, b float32) float32 { return a + t*(b-a) }

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func validFreq(f float64) bool {
	return f >= 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

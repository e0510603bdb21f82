// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package noise

import (
	"errors"
	"math"
	"testing"
)

func TestRandomParkMiller(t *testing.T) {
	// First outputs of the minimal standard generator from seed 1.
	want := []int64{16807, 282475249, 1622650073, 984943658, 1144108930}
	seed := int64(1)
	for i, w := range want {
		seed = random(seed)
		if seed != w {
			t.Fatalf("random step %d = %d, want %d", i, seed, w)
		}
	}
}

func TestSetupSeed(t *testing.T) {
	tests := []struct {
		in   int32
		want int64
	}{
		{0, 1},
		{-5, 6},
		{1, 1},
		{42, 42},
		{math.MaxInt32, randM - 1},
	}
	for _, tt := range tests {
		if got := setupSeed(tt.in); got != tt.want {
			t.Errorf("setupSeed(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name    string
		fx, fy  float64
		octaves int
		want    error
	}{
		{"negative freq", -0.1, 0.05, 4, ErrInvalidFrequency},
		{"nan freq", math.NaN(), 0.05, 4, ErrInvalidFrequency},
		{"inf freq", 0.05, math.Inf(1), 4, ErrInvalidFrequency},
		{"negative octaves", 0.05, 0.05, -1, ErrInvalidOctaves},
		{"too many octaves", 0.05, 0.05, MaxOctaves + 1, ErrInvalidOctaves},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFractal(tt.fx, tt.fy, tt.octaves, 0); !errors.Is(err, tt.want) {
				t.Errorf("NewFractal() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGradientsNormalized(t *testing.T) {
	g := MustFractal(0.05, 0.05, 4, 0)
	for k := 0; k < channels; k++ {
		for i := 0; i < latticeSize+latticeSize+2; i++ {
			gx, gy := float64(g.gradient[k][i][0]), float64(g.gradient[k][i][1])
			if l := math.Hypot(gx, gy); math.Abs(l-1) > 1e-5 {
				t.Fatalf("gradient[%d][%d] length = %v, want 1", k, i, l)
			}
		}
	}
}

func TestLatticeIsPermutation(t *testing.T) {
	g := MustFractal(0.05, 0.05, 4, 0)
	seen := make(map[int]bool, latticeSize)
	for i := 0; i < latticeSize; i++ {
		v := g.lattice[i]
		if v < 0 || v >= latticeSize || seen[v] {
			t.Fatalf("lattice[%d] = %d is not part of a permutation", i, v)
		}
		seen[v] = true
	}
	for i := 0; i < latticeSize+2; i++ {
		if g.lattice[latticeSize+i] != g.lattice[i] {
			t.Fatalf("lattice tail %d not mirrored", i)
		}
	}
}

func TestDeterministic(t *testing.T) {
	a := MustFractal(0.05, 0.05, 4, 0)
	b := MustFractal(0.05, 0.05, 4, 0)
	for _, p := range [][2]float64{{0, 0}, {10.5, 3.5}, {199.5, 99.5}, {-20, 40}} {
		if ca, cb := a.ColorAt(p[0], p[1]), b.ColorAt(p[0], p[1]); ca != cb {
			t.Errorf("ColorAt%v differs between equal generators: %v vs %v", p, ca, cb)
		}
	}
}

func TestSeedChangesOutput(t *testing.T) {
	a := MustFractal(0.05, 0.05, 4, 0)
	b := MustFractal(0.05, 0.05, 4, 7)
	differs := false
	for x := 0.5; x < 64 && !differs; x += 3 {
		if a.ColorAt(x, x/2) != b.ColorAt(x, x/2) {
			differs = true
		}
	}
	if !differs {
		t.Error("different seeds produced identical noise")
	}
}

func TestColorRange(t *testing.T) {
	for _, kind := range []Type{FractalNoise, Turbulence} {
		g, err := New(kind, 0.05, 0.05, 4, 0)
		if err != nil {
			t.Fatal(err)
		}
		for y := 0.5; y < 100; y += 7 {
			for x := 0.5; x < 200; x += 7 {
				c := g.ColorAt(x, y)
				for _, v := range []float64{c.R, c.G, c.B, c.A} {
					if v < 0 || v > 1 {
						t.Fatalf("%v ColorAt(%v, %v) = %v out of [0, 1]", kind, x, y, c)
					}
				}
			}
		}
	}
}

func TestFractalMean(t *testing.T) {
	g := MustFractal(0.05, 0.05, 4, 0)
	var sum float64
	n := 0
	for y := 0.5; y < 256; y += 2 {
		for x := 0.5; x < 256; x += 2 {
			sum += g.ColorAt(x, y).A
			n++
		}
	}
	mean := sum / float64(n)
	if mean < 0.35 || mean > 0.65 {
		t.Errorf("fractal alpha mean = %v, want near 0.5", mean)
	}
}

func TestZeroOctaves(t *testing.T) {
	f, _ := NewFractal(0.05, 0.05, 0, 0)
	if c := f.ColorAt(3, 4); c.R != 0.5 || c.A != 0.5 {
		t.Errorf("fractal with no octaves = %v, want flat 0.5", c)
	}
	tb, _ := NewTurbulence(0.05, 0.05, 0, 0)
	if c := tb.ColorAt(3, 4); c.R != 0 || c.A != 0 {
		t.Errorf("turbulence with no octaves = %v, want 0", c)
	}
}

func TestLatticePointsAreZero(t *testing.T) {
	// Gradient noise vanishes on integer lattice points.
	g := MustFractal(1, 1, 1, 0)
	for _, p := range [][2]float32{{0, 0}, {3, 5}, {17, 2}} {
		if n := g.noise2(0, p[0], p[1]); n != 0 {
			t.Errorf("noise2(%v) = %v, want 0", p, n)
		}
	}
}

func TestAccessors(t *testing.T) {
	g := MustFractal(0.05, 0.25, 4, 0)
	if g.Type() != FractalNoise || g.Type().String() != "FractalNoise" {
		t.Errorf("Type() = %v", g.Type())
	}
	if g.Octaves() != 4 {
		t.Errorf("Octaves() = %d, want 4", g.Octaves())
	}
	fx, fy := g.BaseFrequency()
	if math.Abs(fx-0.05) > 1e-7 || fy != 0.25 {
		t.Errorf("BaseFrequency() = %v, %v", fx, fy)
	}
}

func TestMustFractalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustFractal with invalid octaves should panic")
		}
	}()
	MustFractal(0.05, 0.05, -1, 0)
}

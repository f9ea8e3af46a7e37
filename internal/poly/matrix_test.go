// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"math"
	"testing"
)

func TestRotationMatrix3DXQuarterTurn(t *testing.T) {
	m := RotationMatrix3DX(math.Pi / 2)
	got := m.Apply(Point3{X: 1, Y: 1, Z: 0})
	want := Point3{X: 1, Y: 0, Z: 1}
	if !got.ApproxEqual(want, 1e-9) {
		t.Errorf("Apply() = %v, want %v", got, want)
	}
}

func TestMatrix4InverseAffineRoundTrip(t *testing.T) {
	base := TranslationMatrix3D(1, 2, 3).Mul(RotationMatrix3DZ(math.Pi / 3))
	inv := base.InverseAffine()
	p := Point3{X: 4, Y: -1, Z: 2}
	got := inv.Apply(base.Apply(p))
	if !got.ApproxEqual(p, 1e-9) {
		t.Errorf("round trip = %v, want %v", got, p)
	}
}

func TestRotationMatrix3DNonUnitAxis(t *testing.T) {
	if _, err := RotationMatrix3D(1, Point3{X: 2}); err == nil {
		t.Error("expected an error for a non-unit axis")
	}
}

func TestMatrix3Apply(t *testing.T) {
	m := TranslationMatrix2D(3, -2)
	got := m.Apply(Point2{X: 1, Y: 1})
	want := Point2{X: 4, Y: -1}
	if got != want {
		t.Errorf("Apply() = %v, want %v", got, want)
	}
}

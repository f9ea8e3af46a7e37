// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"fmt"
	"math"
)

// Matrix3 is a 3x3 homogeneous affine transform for Point2.
type Matrix3 [3][3]R

// Identity3 returns the identity transform.
func Identity3() Matrix3 {
	return Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// RotationMatrix2D returns the transform that rotates by theta radians
// about the origin.
func RotationMatrix2D(theta R) Matrix3 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Matrix3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// TranslationMatrix2D returns the transform that translates by (dx, dy).
func TranslationMatrix2D(dx, dy R) Matrix3 {
	return Matrix3{
		{1, 0, dx},
		{0, 1, dy},
		{0, 0, 1},
	}
}

// Mul returns m * n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum R
			for k := 0; k < 3; k++ {
				sum += m[i][k] * n[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Apply transforms p by m, homogenizing the result (dividing by the
// resulting w). For the affine matrices this package builds, w is always
// 1, but the division is kept explicit to match the homogeneous-coordinate
// model the rest of the geometry layer assumes.
func (m Matrix3) Apply(p Point2) Point2 {
	x := m[0][0]*p.X + m[0][1]*p.Y + m[0][2]
	y := m[1][0]*p.X + m[1][1]*p.Y + m[1][2]
	w := m[2][0]*p.X + m[2][1]*p.Y + m[2][2]
	if w == 0 {
		panic("poly: homogenize by zero w")
	}
	return Point2{X: x / w, Y: y / w}
}

// Matrix4 is a 4x4 homogeneous affine transform for Point3.
type Matrix4 [4][4]R

func Identity4() Matrix4 {
	m := Matrix4{}
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	return m
}

// TranslationMatrix3D returns the transform that translates by (dx, dy, dz).
func TranslationMatrix3D(dx, dy, dz R) Matrix4 {
	m := Identity4()
	m[0][3], m[1][3], m[2][3] = dx, dy, dz
	return m
}

// RotationMatrix3D returns the Rodrigues rotation by theta radians about
// axis, which must be a unit vector (checked to within Eps; a non-unit
// axis is a programming error, reported rather than silently normalized).
func RotationMatrix3D(theta R, axis Point3) (Matrix4, error) {
	if math.Abs(axis.Norm()-1) > Eps {
		return Matrix4{}, fmt.Errorf("poly: rotation axis %v is not a unit vector", axis)
	}
	c, s := math.Cos(theta), math.Sin(theta)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z
	m := Identity4()
	m[0][0], m[0][1], m[0][2] = t*x*x+c, t*x*y-s*z, t*x*z+s*y
	m[1][0], m[1][1], m[1][2] = t*x*y+s*z, t*y*y+c, t*y*z-s*x
	m[2][0], m[2][1], m[2][2] = t*x*z-s*y, t*y*z+s*x, t*z*z+c
	return m, nil
}

// RotationMatrix3DX, RotationMatrix3DY, RotationMatrix3DZ are convenience
// wrappers around RotationMatrix3D for the three coordinate axes, used by
// the plane-cut planner to build its per-cut rotation.
func RotationMatrix3DX(theta R) Matrix4 {
	m, _ := RotationMatrix3D(theta, Point3{X: 1})
	return m
}

func RotationMatrix3DY(theta R) Matrix4 {
	m, _ := RotationMatrix3D(theta, Point3{Y: 1})
	return m
}

func RotationMatrix3DZ(theta R) Matrix4 {
	m, _ := RotationMatrix3D(theta, Point3{Z: 1})
	return m
}

func (m Matrix4) Mul(n Matrix4) Matrix4 {
	var out Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum R
			for k := 0; k < 4; k++ {
				sum += m[i][k] * n[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Apply transforms p by m, homogenizing the result.
func (m Matrix4) Apply(p Point3) Point3 {
	x := m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3]
	y := m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3]
	z := m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3]
	w := m[3][0]*p.X + m[3][1]*p.Y + m[3][2]*p.Z + m[3][3]
	if w == 0 {
		panic("poly: homogenize by zero w")
	}
	return Point3{X: x / w, Y: y / w, Z: z / w}
}

// InverseAffine returns the inverse of an affine (rotation+translation) matrix
// m, exploiting that its linear part is orthogonal: the inverse rotation
// is the transpose, and the inverse translation is -R^T * t.
func (m Matrix4) InverseAffine() Matrix4 {
	var out Matrix4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	t := Point3{X: m[0][3], Y: m[1][3], Z: m[2][3]}
	inv := Point3{
		X: -(out[0][0]*t.X + out[0][1]*t.Y + out[0][2]*t.Z),
		Y: -(out[1][0]*t.X + out[1][1]*t.Y + out[1][2]*t.Z),
		Z: -(out[2][0]*t.X + out[2][1]*t.Y + out[2][2]*t.Z),
	}
	out[0][3], out[1][3], out[2][3] = inv.X, inv.Y, inv.Z
	out[3][3] = 1
	return out
}

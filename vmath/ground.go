package vmath

import "github.com/go-gl/mathgl/mgl32"

// Ground plane convention
// Meshes store (x, y) pairs on the ground; the world is Y-up, so the stored
// pair maps to world (x, 0, z=y). Every conversion between the two spaces
// goes through this file.

// Up is the ground plane normal in world space
var Up = mgl32.Vec3{0, 1, 0}

// GroundToWorld lifts a stored ground pair onto the world ground plane at height 0
func GroundToWorld(p mgl32.Vec2) mgl32.Vec3 {
	return mgl32.Vec3{p.X(), 0, p.Y()}
}

// WorldToGround drops height and returns the stored (x, z) pair
func WorldToGround(v mgl32.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{v.X(), v.Z()}
}

// GroundToWorldSlice lifts every ground pair into dst, growing dst if needed
func GroundToWorldSlice(dst []mgl32.Vec3, src []mgl32.Vec2) []mgl32.Vec3 {
	if cap(dst) < len(src) {
		dst = make([]mgl32.Vec3, len(src))
	}
	dst = dst[:len(src)]
	for i, p := range src {
		dst[i] = GroundToWorld(p)
	}
	return dst
}

package component

import "github.com/go-gl/mathgl/mgl32"

// TransformComponent is an entity's transform relative to its parent
type TransformComponent struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// NewTransform returns an identity transform at the given translation
func NewTransform(translation mgl32.Vec3) TransformComponent {
	return TransformComponent{
		Translation: translation,
		Rotation:    mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{1, 1, 1},
	}
}

// Matrix composes translation * rotation * scale
func (t TransformComponent) Matrix() mgl32.Mat4 {
	scale := t.Scale
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}
	rot := t.Rotation
	if rot == (mgl32.Quat{}) {
		rot = mgl32.QuatIdent()
	}
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).
		Mul4(rot.Mat4()).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

package core

import "github.com/go-gl/mathgl/mgl32"

// DirectionalLight lights every instance from the same direction.
type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

// Material holds the Phong reflectance terms shared by all instances.
type Material struct {
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

func DefaultLight() DirectionalLight {
	return DirectionalLight{
		Direction: mgl32.Vec3{-3, -3, -1},
		Ambient:   mgl32.Vec3{1, 1, 1},
		Diffuse:   mgl32.Vec3{1, 1, 1},
		Specular:  mgl32.Vec3{1, 1, 1},
	}
}

func DefaultMaterial() Material {
	return Material{
		Ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
		Diffuse:   mgl32.Vec3{0.6, 0.6, 0.6},
		Specular:  mgl32.Vec3{1, 1, 1},
		Shininess: 16,
	}
}

var (
	DefaultObjectColor = mgl32.Vec3{0, 170.0 / 255.0, 1}
	DefaultClearColor  = mgl32.Vec4{30.0 / 255.0, 30.0 / 255.0, 112.0 / 255.0, 1}
)

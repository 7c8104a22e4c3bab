package world

import (
	"fmt"
	"math"
)

// Vector3 is a point or direction in world space
type Vector3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Vec3 is shorthand for building a Vector3
func Vec3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}

// Add returns v + o
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v multiplied by s
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Magnitude returns the Euclidean length of v
func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Vector3) float64 {
	return a.Sub(b).Magnitude()
}

// Transform exposes the live world position of an object
type Transform interface {
	Position() Vector3
}

// GameObject is a handle to an object owned by the world.
// Destroyed reports true once the world has removed the object; holders of
// the handle must treat it as released from then on.
type GameObject interface {
	ID() string
	Transform() Transform
	Destroyed() bool
}

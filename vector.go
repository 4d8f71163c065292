package cubekit

import "fmt"

// Vec3 is an integer 3-component vector. It doubles as a lattice position
// (components in {-1, 0, 1}) and as a generic triple for matrix rows,
// columns, and face axes.
type Vec3 struct {
	X, Y, Z int
}

// NewVec3 creates a vector from three components.
func NewVec3(x, y, z int) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Vec3FromSlice creates a vector from a 3-element slice.
// Any other length fails with ErrVectorSize.
func Vec3FromSlice(vals []int) (Vec3, error) {
	if len(vals) != 3 {
		return Vec3{}, fmt.Errorf("%w, got %d", ErrVectorSize, len(vals))
	}
	return Vec3{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

// Add returns the component-wise sum.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddTriple adds a raw 3-element triple.
func (v Vec3) AddTriple(t []int) (Vec3, error) {
	o, err := Vec3FromSlice(t)
	if err != nil {
		return Vec3{}, err
	}
	return v.Add(o), nil
}

// Sub returns the component-wise difference.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubTriple subtracts a raw 3-element triple.
func (v Vec3) SubTriple(t []int) (Vec3, error) {
	o, err := Vec3FromSlice(t)
	if err != nil {
		return Vec3{}, err
	}
	return v.Sub(o), nil
}

// Mul returns the element-wise (Hadamard) product.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// MulTriple multiplies element-wise by a raw 3-element triple.
func (v Vec3) MulTriple(t []int) (Vec3, error) {
	o, err := Vec3FromSlice(t)
	if err != nil {
		return Vec3{}, err
	}
	return v.Mul(o), nil
}

// Scale multiplies every component by a scalar.
func (v Vec3) Scale(s int) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) int {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// EqualsTriple reports whether the vector equals a raw 3-element triple.
func (v Vec3) EqualsTriple(t []int) (bool, error) {
	o, err := Vec3FromSlice(t)
	if err != nil {
		return false, err
	}
	return v == o, nil
}

// Components returns the three components in x, y, z order.
func (v Vec3) Components() [3]int {
	return [3]int{v.X, v.Y, v.Z}
}

// Zeros returns how many components are zero.
func (v Vec3) Zeros() int {
	n := 0
	for _, c := range v.Components() {
		if c == 0 {
			n++
		}
	}
	return n
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}

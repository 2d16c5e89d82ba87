package mat

import (
	"golang.org/x/image/math/f32"

	"github.com/cwbudde/algo-glm/vec"
)

// f32 matrices are row-major: element (row r, col c) is at index n*r+c.

func ToF32Mat3(m Matrix[float32, vec.Three, vec.Three]) f32.Mat3 {
	var out f32.Mat3
	for j := range 3 {
		for i := range 3 {
			out[3*i+j] = m.cols[j].At(i)
		}
	}
	return out
}

func FromF32Mat3(a f32.Mat3) Matrix[float32, vec.Three, vec.Three] {
	var m Matrix[float32, vec.Three, vec.Three]
	for j := range 3 {
		for i := range 3 {
			m.cols[j].SetAt(i, a[3*i+j])
		}
	}
	return m
}

func ToF32Mat4(m Matrix[float32, vec.Four, vec.Four]) f32.Mat4 {
	var out f32.Mat4
	for j := range 4 {
		for i := range 4 {
			out[4*i+j] = m.cols[j].At(i)
		}
	}
	return out
}

func FromF32Mat4(a f32.Mat4) Matrix[float32, vec.Four, vec.Four] {
	var m Matrix[float32, vec.Four, vec.Four]
	for j := range 4 {
		for i := range 4 {
			m.cols[j].SetAt(i, a[4*i+j])
		}
	}
	return m
}

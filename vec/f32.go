package vec

import "golang.org/x/image/math/f32"

func FromF32Vec2(v f32.Vec2) Vector[float32, Two]   { return Vec2(v[0], v[1]) }
func FromF32Vec3(v f32.Vec3) Vector[float32, Three] { return Vec3(v[0], v[1], v[2]) }
func FromF32Vec4(v f32.Vec4) Vector[float32, Four]  { return Vec4(v[0], v[1], v[2], v[3]) }

func ToF32Vec2(v Vector[float32, Two]) f32.Vec2   { return f32.Vec2{v.c[0], v.c[1]} }
func ToF32Vec3(v Vector[float32, Three]) f32.Vec3 { return f32.Vec3{v.c[0], v.c[1], v.c[2]} }
func ToF32Vec4(v Vector[float32, Four]) f32.Vec4  { return f32.Vec4{v.c[0], v.c[1], v.c[2], v.c[3]} }

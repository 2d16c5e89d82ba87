package mat

import (
	"fmt"

	"github.com/cwbudde/algo-glm/vec"
)

func ExampleOuterProduct() {
	m := OuterProduct(vec.Vec2[int32](1, 2), vec.Vec2[int32](3, 4))
	fmt.Println(m.Column(0), "|", m.Column(1))
	// Output:
	// 3, 6 | 4, 8
}

func ExampleMulVec() {
	m := FromRows[vec.Two](vec.Vec2(0.0, -1.0), vec.Vec2(1.0, 0.0))
	fmt.Println(MulVec(m, vec.Vec2(2.0, 3.0)))
	// Output:
	// -3, 2
}

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/primst/builder"
)

// ExampleBuild lays a path and an isolated vertex side by side.
func ExampleBuild() {
	l, err := builder.Build(
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(4))},
		builder.Path(3), builder.Isolated(1),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("V =", l.Order)
	for _, e := range l.Edges {
		fmt.Println(e)
	}
	// Output:
	// V = 4
	// 0-1(4)
	// 1-2(4)
}

package mst_test

import (
	"fmt"

	"github.com/katalvlaran/primst/core"
	"github.com/katalvlaran/primst/mst"
)

// ExamplePrim_disconnected grows a tree from vertex 0; the second component
// stays unreached.
func ExamplePrim_disconnected() {
	g, err := core.New(5, []core.Edge{
		{From: 0, To: 1, Weight: 10},
		{From: 1, To: 2, Weight: 20},
		{From: 3, To: 4, Weight: 30},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := mst.Prim(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for v, p := range res.Parents {
		fmt.Println(v, p, res.Keys[v])
	}
	fmt.Println("total:", res.TotalWeight())
	// Output:
	// 0 root 0
	// 1 0 10
	// 2 1 20
	// 3 unreached inf
	// 4 unreached inf
	// total: 30
}

// ExampleKruskal shows the reference forest on a triangle.
func ExampleKruskal() {
	g, _ := core.New(3, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 0, To: 2, Weight: 4},
	})
	edges, total, _ := mst.Kruskal(g)
	fmt.Println("total:", total, "edges:", edges)
	// Output: total: 3 edges: [0-1(1) 1-2(2)]
}

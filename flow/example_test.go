package flow_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flowmatch/flow"
)

// ExampleNew_singleEdge demonstrates max-flow on a single-edge network.
// Graph: 0→1 with capacity 1
func ExampleNew_singleEdge() {
	f, err := flow.New([][]int64{{0, 1}, {0, 0}}, 0, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(f.MaxFlow())
	fmt.Println(f.FlowGraph())
	// Output:
	// 1
	// [[0 1] [0 0]]
}

// ExampleNew_diamond shows flow split across two routes, one of which
// passes through the cross edge 2→1.
//
//	0→1(1)  0→2(2)
//	1→3(2)  2→1(1)  2→3(1)
func ExampleNew_diamond() {
	f, _ := flow.New([][]int64{
		{0, 1, 2, 0},
		{0, 0, 0, 2},
		{0, 1, 0, 1},
		{0, 0, 0, 0},
	}, 0, 3)
	fmt.Println(f.MaxFlow(), f.Augmentations())
	// Output:
	// 3 3
}

// ExampleNew_invalid shows a rejected network: source equals sink.
func ExampleNew_invalid() {
	_, err := flow.New([][]int64{{0, 1}, {0, 0}}, 1, 1)
	fmt.Println(errors.Is(err, flow.ErrInvalidNetwork))
	// Output:
	// true
}

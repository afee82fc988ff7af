// Package dc_test provides runnable examples of the DC decision
// procedure for four of the literal end-to-end scenarios: trivial DC,
// the inconsistent STN, Morris's canonical example, and the squeeze.
package dc_test

import (
	"fmt"

	"github.com/katalvlaran/morrisdc/dc"
	"github.com/katalvlaran/morrisdc/network"
)

// ExampleDecideDC_trivial shows the simplest controllable-only case.
func ExampleDecideDC_trivial() {
	net, _ := network.New(2, []network.ControllableEdge{{From: 1, To: 2, Lower: 0, Upper: 10}}, nil)
	result, _ := dc.DecideDC(net)
	fmt.Println(result)
	// Output: DC
}

// ExampleDecideDC_inconsistentSTN shows AllMax failing on the very
// first round: the fixed A->[6,6]B edge conflicts with the [0,5]
// round trip back from B to A, forming a -6 cycle in the simple
// projection.
func ExampleDecideDC_inconsistentSTN() {
	net, err := network.New(2, []network.ControllableEdge{
		{From: 1, To: 2, Lower: 6, Upper: 6},
		{From: 2, To: 1, Lower: 0, Upper: 5},
	}, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	result, _ := dc.DecideDC(net)
	fmt.Println(result)
	// Output: NotDC
}

// ExampleDecideDC_morrisCanonical is Morris's textbook DC example: the
// executor may wait for the contingent B to complete before scheduling
// C, so no squeeze ever arises.
func ExampleDecideDC_morrisCanonical() {
	net, _ := network.New(3,
		[]network.ControllableEdge{
			{From: 1, To: 3, Lower: 0, Upper: 10},
			{From: 2, To: 3, Lower: 0, Upper: 10},
		},
		[]network.ContingentEdge{{From: 1, To: 2, Lower: 1, Upper: 3}},
	)
	result, _ := dc.DecideDC(net)
	fmt.Println(result)
	// Output: DC
}

// ExampleDecideDC_squeeze is the classical not-DC squeeze: C must be
// fixed at exactly 5 before B's contingent duration is known, but the
// requirement C=B leaves no room for B to land anywhere in [1,10].
func ExampleDecideDC_squeeze() {
	net, _ := network.New(3,
		[]network.ControllableEdge{
			{From: 1, To: 3, Lower: 5, Upper: 5},
			{From: 3, To: 2, Lower: 0, Upper: 0},
		},
		[]network.ContingentEdge{{From: 1, To: 2, Lower: 1, Upper: 10}},
	)
	result, _ := dc.DecideDC(net)
	fmt.Println(result)
	// Output: NotDC
}

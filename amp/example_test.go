package amp_test

import (
	"context"
	"fmt"

	"github.com/hexaflex/intcode/amp"
	"github.com/hexaflex/intcode/cpu"
	"github.com/hexaflex/intcode/perm"
)

// Shows how to find the best phase ordering for a feedback ring.
func ExampleMaxSignal() {
	program, err := cpu.Parse("3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5")
	if err != nil {
		panic(err)
	}

	res, err := amp.MaxSignal(context.Background(), program, perm.Of([]int64{5, 6, 7, 8, 9}), amp.Feedback)
	if err != nil {
		panic(err)
	}

	fmt.Println(res.Signal, res.Tried)

	// Output:
	// 139629729 120
}

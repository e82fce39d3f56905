package steps_test

import (
	"fmt"

	"github.com/katalvlaran/bigo/steps"
)

// ExampleCounter shows the counter used as a plain Tracer.
func ExampleCounter() {
	var c steps.Counter
	var tr steps.Tracer = &c
	for i := 0; i < 5; i++ {
		tr.Step(steps.Compare, 1)
	}
	tr.Step(steps.Move, 5)
	fmt.Println(c.Load(steps.Compare), c.Load(steps.Move), c.Total())
	// Output:
	// 5 5 10
}

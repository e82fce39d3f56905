package mergesort_test

import (
	"fmt"

	"github.com/katalvlaran/bigo/mergesort"
)

// ExampleSort orders a shuffled hand of cards without touching the original hand.
func ExampleSort() {
	hand := []int{5, 3, 1, 4, 2}
	sorted := mergesort.Sort(hand)
	fmt.Println(sorted, hand)
	// Output:
	// [1 2 3 4 5] [5 3 1 4 2]
}

// ExampleSortFunc sorts by a key and keeps equal keys in arrival order.
func ExampleSortFunc() {
	type job struct {
		Name     string
		Priority int
	}
	jobs := []job{{"backup", 2}, {"deploy", 1}, {"report", 2}, {"alert", 1}}
	out, err := mergesort.SortFunc(jobs, func(a, b job) int { return a.Priority - b.Priority })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, j := range out {
		fmt.Print(j.Name, " ")
	}
	fmt.Println()
	// Output:
	// deploy alert backup report
}

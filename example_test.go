package strjoin_test

import (
	"fmt"

	"go.trai.ch/strjoin"
)

func ExampleJoiner() {
	j := strjoin.NewFramed(", ", "[", "]").
		Add("red").
		Add("green").
		Add("blue")
	fmt.Println(j)
	// Output: [red, green, blue]
}

func ExampleJoiner_SetEmptyValue() {
	j := strjoin.NewFramed(", ", "[", "]").SetEmptyValue("(none)")
	fmt.Println(j)

	j.Add("red")
	fmt.Println(j)
	// Output:
	// (none)
	// [red]
}

func ExampleJoiner_Merge() {
	inner := strjoin.NewDelimited("-").Add("x").Add("y")
	outer := strjoin.New().Add("a").Merge(inner)
	fmt.Println(outer)
	// Output: a,x-y
}

func ExampleAddIf() {
	isPositive := func(n int) bool { return n > 0 }

	j := strjoin.New()
	strjoin.AddIf(j, "width=", 80, isPositive)
	strjoin.AddIf(j, "height=", -1, isPositive)
	fmt.Println(j)
	// Output: width=80
}

func ExampleJoiner_AddIfNotEmpty() {
	j := strjoin.NewDelimited("&").
		AddIfNotEmpty("user=", "alice").
		AddIfNotEmpty("team=", "")
	fmt.Println(j)
	// Output: user=alice
}

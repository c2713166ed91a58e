package valley_test

import (
	"fmt"

	"honnef.co/go/valley"
)

func ExampleBSpline_Sample() {
	ctrl := valley.BSpline{
		valley.Pt(0, 0),
		valley.Pt(100, 100),
		valley.Pt(200, 0),
	}
	// A quadratic curve with two samples per control point interval. The
	// padding makes the curve rest on its end points for a while.
	for _, pt := range ctrl.Sample(2, 2) {
		fmt.Println(pt)
	}
	// Output:
	// (0, 0)
	// (0, 0)
	// (0, 0)
	// (12.5, 12.5)
	// (50, 50)
	// (100, 75)
	// (150, 50)
	// (187.5, 12.5)
	// (200, 0)
	// (200, 0)
	// (200, 0)
}

func ExampleKnots() {
	fmt.Println(valley.Knots(7, 2))
	// Output:
	// [2 2 2 3 4 5 6 7 8]
}

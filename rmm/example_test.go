package rmm_test

import (
	"fmt"

	"github.com/katalvlaran/rmmcurve/rmm"
)

// ExampleTradingCurve prints the reserves of an at-the-money pool and of a
// 40% fractional LP token on the same pool.
func ExampleTradingCurve() {
	x, y, err := rmm.TradingCurve([]float64{3}, 3, 0.5, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	xs, ys, _ := rmm.TradingCurve([]float64{3}, 3, 0.5, 2, rmm.WithScale(0.4))
	fmt.Printf("full: x=%.4f y=%.4f\n", x[0], y[0])
	fmt.Printf("0.4:  x=%.4f y=%.4f\n", xs[0], ys[0])
	// Output:
	// full: x=0.3618 y=1.0855
	// 0.4:  x=0.1447 y=0.4342
}

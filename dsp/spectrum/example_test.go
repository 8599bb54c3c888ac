package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-window/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExampleFrequencyResponse() {
	r, _ := spectrum.FrequencyResponse([]float64{1, 1, 1, 1}, spectrum.WithMinBins(8))
	mag := r.Magnitude()
	fmt.Println(r.Len())
	fmt.Printf("%.1f %.1f\n", mag[0], mag[4])
	// Output:
	// 8
	// 4.0 0.0
}

func ExampleAxis() {
	ax, _ := spectrum.Axis(spectrum.UnitNyquist, 4, 4)
	fmt.Println(ax)
	// Output:
	// [-1 -0.5 0 0.5]
}

package dust_test

import (
	"fmt"

	"github.com/katalvlaran/sedfit/dust"
)

func ExampleAttenuation() {
	for _, w := range []float64{3551, 5000, 8932} {
		a, _ := dust.Attenuation(w, 1)
		fmt.Printf("%.0f Å: %.4f\n", w, a)
	}
	// Output:
	// 3551 Å: 0.2806
	// 5000 Å: 0.3679
	// 8932 Å: 0.5136
}

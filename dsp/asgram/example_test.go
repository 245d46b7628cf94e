package asgram_test

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-asgram/dsp/asgram"
)

func ExampleEstimator() {
	const n = 16

	est, err := asgram.New(n)
	if err != nil {
		panic(err)
	}
	defer est.Close()

	tone := make([]complex128, n)
	for i := range tone {
		tone[i] = cmplx.Exp(complex(0, 2*math.Pi*0.25*float64(i)))
	}
	est.Push(tone)

	line := est.Render()
	fmt.Println(line.Symbols)
	fmt.Printf("peak at %.2f\n", line.PeakFreq)
	fmt.Println(line.PeakMarker())
	// Output:
	// ...........@@@..
	// peak at 0.25
	//             ^
}

func ExampleMap() {
	db := []float64{-60, -30, -20, -10, 0}
	fmt.Println(asgram.Map(db, asgram.Scale{RefLevelDB: -30, DivisorDB: 10}, "0123"))
	// Output: 00123
}

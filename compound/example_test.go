package compound_test

import (
	"fmt"

	"github.com/athanor-lab/athanor/compound"
	"github.com/athanor-lab/athanor/element"
	"github.com/athanor-lab/athanor/resonance"
)

// ExamplePredict aggregates table salt and reads its coarse prediction.
func ExamplePredict() {
	tbl := element.NewTable()

	p, err := compound.Predict(tbl, []string{"Na", "Cl"}, resonance.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("mass=%.2f amu\n", p.TotalMass)
	fmt.Printf("mean match=%.3f stability=%s\n", p.MeanMatch, p.Stability)
	// Output:
	// mass=58.44 amu
	// mean match=0.513 stability=ionic-dominant
}

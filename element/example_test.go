package element_test

import (
	"fmt"

	"github.com/athanor-lab/athanor/element"
)

// ExampleTable_Lookup resolves one symbol and reads its raw constants.
func ExampleTable_Lookup() {
	tbl := element.NewTable()

	rec, err := tbl.Lookup("Cu")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s (%s), Z=%d, block=%s\n", rec.Name, rec.Symbol, rec.Number, rec.Block)
	fmt.Printf("E_ion=%.3f eV, χ=%.2f, r=%.0f pm\n", rec.Ionization, rec.Electronegativity, rec.Radius)
	// Output:
	// Copper (Cu), Z=29, block=d
	// E_ion=7.726 eV, χ=1.90, r=145 pm
}

// ExampleTable_PlanetaryMetals walks the seven classical correspondences.
func ExampleTable_PlanetaryMetals() {
	tbl := element.NewTable()

	for _, pm := range tbl.PlanetaryMetals() {
		fmt.Printf("%s → %s\n", pm.Symbol, pm.Planet)
	}
	// Output:
	// Au → Sun
	// Ag → Moon
	// Hg → Mercury
	// Cu → Venus
	// Fe → Mars
	// Sn → Jupiter
	// Pb → Saturn
}

package element

// rawRecords is the built-in element data, ordered by atomic number.
// Values are NIST / CRC Handbook constants: mass in amu, first ionization
// energy in eV, Pauling electronegativity (HasElectronegativity=false for
// noble gases), atomic radius in pm.
//
// The set covers periods 1-4 completely plus the heavier elements the
// framework references: the seven planetary metals, the alkali/alkaline
// extensions (Rb, Sr, Cs, Ba), iodine, and uranium.
var rawRecords = []Record{
	// Period 1
	{Symbol: "H", Name: "Hydrogen", Number: 1, Mass: 1.008, Ionization: 13.598, Electronegativity: 2.20, HasElectronegativity: true, Radius: 53, Block: BlockS, Config: "1s1"},
	{Symbol: "He", Name: "Helium", Number: 2, Mass: 4.003, Ionization: 24.587, Radius: 31, Block: BlockS, Config: "1s2"},

	// Period 2
	{Symbol: "Li", Name: "Lithium", Number: 3, Mass: 6.941, Ionization: 5.392, Electronegativity: 0.98, HasElectronegativity: true, Radius: 167, Block: BlockS, Config: "[He]2s1"},
	{Symbol: "Be", Name: "Beryllium", Number: 4, Mass: 9.012, Ionization: 9.323, Electronegativity: 1.57, HasElectronegativity: true, Radius: 112, Block: BlockS, Config: "[He]2s2"},
	{Symbol: "B", Name: "Boron", Number: 5, Mass: 10.81, Ionization: 8.298, Electronegativity: 2.04, HasElectronegativity: true, Radius: 87, Block: BlockP, Config: "[He]2s2 2p1"},
	{Symbol: "C", Name: "Carbon", Number: 6, Mass: 12.01, Ionization: 11.260, Electronegativity: 2.55, HasElectronegativity: true, Radius: 77, Block: BlockP, Config: "[He]2s2 2p2"},
	{Symbol: "N", Name: "Nitrogen", Number: 7, Mass: 14.01, Ionization: 14.534, Electronegativity: 3.04, HasElectronegativity: true, Radius: 75, Block: BlockP, Config: "[He]2s2 2p3"},
	{Symbol: "O", Name: "Oxygen", Number: 8, Mass: 16.00, Ionization: 13.618, Electronegativity: 3.44, HasElectronegativity: true, Radius: 73, Block: BlockP, Config: "[He]2s2 2p4"},
	{Symbol: "F", Name: "Fluorine", Number: 9, Mass: 19.00, Ionization: 17.423, Electronegativity: 3.98, HasElectronegativity: true, Radius: 71, Block: BlockP, Config: "[He]2s2 2p5"},
	{Symbol: "Ne", Name: "Neon", Number: 10, Mass: 20.18, Ionization: 21.565, Radius: 69, Block: BlockP, Config: "[He]2s2 2p6"},

	// Period 3
	{Symbol: "Na", Name: "Sodium", Number: 11, Mass: 22.99, Ionization: 5.139, Electronegativity: 0.93, HasElectronegativity: true, Radius: 190, Block: BlockS, Config: "[Ne]3s1"},
	{Symbol: "Mg", Name: "Magnesium", Number: 12, Mass: 24.31, Ionization: 7.646, Electronegativity: 1.31, HasElectronegativity: true, Radius: 160, Block: BlockS, Config: "[Ne]3s2"},
	{Symbol: "Al", Name: "Aluminum", Number: 13, Mass: 26.98, Ionization: 5.986, Electronegativity: 1.61, HasElectronegativity: true, Radius: 143, Block: BlockP, Config: "[Ne]3s2 3p1"},
	{Symbol: "Si", Name: "Silicon", Number: 14, Mass: 28.09, Ionization: 8.152, Electronegativity: 1.90, HasElectronegativity: true, Radius: 118, Block: BlockP, Config: "[Ne]3s2 3p2"},
	{Symbol: "P", Name: "Phosphorus", Number: 15, Mass: 30.97, Ionization: 10.487, Electronegativity: 2.19, HasElectronegativity: true, Radius: 110, Block: BlockP, Config: "[Ne]3s2 3p3"},
	{Symbol: "S", Name: "Sulfur", Number: 16, Mass: 32.07, Ionization: 10.360, Electronegativity: 2.58, HasElectronegativity: true, Radius: 103, Block: BlockP, Config: "[Ne]3s2 3p4"},
	{Symbol: "Cl", Name: "Chlorine", Number: 17, Mass: 35.45, Ionization: 12.968, Electronegativity: 3.16, HasElectronegativity: true, Radius: 99, Block: BlockP, Config: "[Ne]3s2 3p5"},
	{Symbol: "Ar", Name: "Argon", Number: 18, Mass: 39.95, Ionization: 15.760, Radius: 97, Block: BlockP, Config: "[Ne]3s2 3p6"},

	// Period 4
	{Symbol: "K", Name: "Potassium", Number: 19, Mass: 39.10, Ionization: 4.341, Electronegativity: 0.82, HasElectronegativity: true, Radius: 243, Block: BlockS, Config: "[Ar]4s1"},
	{Symbol: "Ca", Name: "Calcium", Number: 20, Mass: 40.08, Ionization: 6.113, Electronegativity: 1.00, HasElectronegativity: true, Radius: 194, Block: BlockS, Config: "[Ar]4s2"},
	{Symbol: "Sc", Name: "Scandium", Number: 21, Mass: 44.96, Ionization: 6.561, Electronegativity: 1.36, HasElectronegativity: true, Radius: 184, Block: BlockD, Config: "[Ar]3d1 4s2"},
	{Symbol: "Ti", Name: "Titanium", Number: 22, Mass: 47.87, Ionization: 6.828, Electronegativity: 1.54, HasElectronegativity: true, Radius: 176, Block: BlockD, Config: "[Ar]3d2 4s2"},
	{Symbol: "V", Name: "Vanadium", Number: 23, Mass: 50.94, Ionization: 6.746, Electronegativity: 1.63, HasElectronegativity: true, Radius: 171, Block: BlockD, Config: "[Ar]3d3 4s2"},
	{Symbol: "Cr", Name: "Chromium", Number: 24, Mass: 52.00, Ionization: 6.767, Electronegativity: 1.66, HasElectronegativity: true, Radius: 166, Block: BlockD, Config: "[Ar]3d5 4s1"},
	{Symbol: "Mn", Name: "Manganese", Number: 25, Mass: 54.94, Ionization: 7.434, Electronegativity: 1.55, HasElectronegativity: true, Radius: 161, Block: BlockD, Config: "[Ar]3d5 4s2"},
	{Symbol: "Fe", Name: "Iron", Number: 26, Mass: 55.85, Ionization: 7.902, Electronegativity: 1.83, HasElectronegativity: true, Radius: 156, Block: BlockD, Config: "[Ar]3d6 4s2"},
	{Symbol: "Co", Name: "Cobalt", Number: 27, Mass: 58.93, Ionization: 7.881, Electronegativity: 1.88, HasElectronegativity: true, Radius: 152, Block: BlockD, Config: "[Ar]3d7 4s2"},
	{Symbol: "Ni", Name: "Nickel", Number: 28, Mass: 58.69, Ionization: 7.640, Electronegativity: 1.91, HasElectronegativity: true, Radius: 149, Block: BlockD, Config: "[Ar]3d8 4s2"},
	{Symbol: "Cu", Name: "Copper", Number: 29, Mass: 63.55, Ionization: 7.726, Electronegativity: 1.90, HasElectronegativity: true, Radius: 145, Block: BlockD, Config: "[Ar]3d10 4s1"},
	{Symbol: "Zn", Name: "Zinc", Number: 30, Mass: 65.38, Ionization: 9.394, Electronegativity: 1.65, HasElectronegativity: true, Radius: 142, Block: BlockD, Config: "[Ar]3d10 4s2"},
	{Symbol: "Ga", Name: "Gallium", Number: 31, Mass: 69.72, Ionization: 5.999, Electronegativity: 1.81, HasElectronegativity: true, Radius: 136, Block: BlockP, Config: "[Ar]3d10 4s2 4p1"},
	{Symbol: "Ge", Name: "Germanium", Number: 32, Mass: 72.63, Ionization: 7.900, Electronegativity: 2.01, HasElectronegativity: true, Radius: 125, Block: BlockP, Config: "[Ar]3d10 4s2 4p2"},
	{Symbol: "As", Name: "Arsenic", Number: 33, Mass: 74.92, Ionization: 9.815, Electronegativity: 2.18, HasElectronegativity: true, Radius: 114, Block: BlockP, Config: "[Ar]3d10 4s2 4p3"},
	{Symbol: "Se", Name: "Selenium", Number: 34, Mass: 78.97, Ionization: 9.752, Electronegativity: 2.55, HasElectronegativity: true, Radius: 103, Block: BlockP, Config: "[Ar]3d10 4s2 4p4"},
	{Symbol: "Br", Name: "Bromine", Number: 35, Mass: 79.90, Ionization: 11.814, Electronegativity: 2.96, HasElectronegativity: true, Radius: 94, Block: BlockP, Config: "[Ar]3d10 4s2 4p5"},
	{Symbol: "Kr", Name: "Krypton", Number: 36, Mass: 83.80, Ionization: 14.000, Radius: 88, Block: BlockP, Config: "[Ar]3d10 4s2 4p6"},

	// Heavier elements referenced by the framework
	{Symbol: "Rb", Name: "Rubidium", Number: 37, Mass: 85.47, Ionization: 4.177, Electronegativity: 0.82, HasElectronegativity: true, Radius: 265, Block: BlockS, Config: "[Kr]5s1"},
	{Symbol: "Sr", Name: "Strontium", Number: 38, Mass: 87.62, Ionization: 5.695, Electronegativity: 0.95, HasElectronegativity: true, Radius: 219, Block: BlockS, Config: "[Kr]5s2"},
	{Symbol: "Ag", Name: "Silver", Number: 47, Mass: 107.87, Ionization: 7.576, Electronegativity: 1.93, HasElectronegativity: true, Radius: 165, Block: BlockD, Config: "[Kr]4d10 5s1"},
	{Symbol: "Sn", Name: "Tin", Number: 50, Mass: 118.71, Ionization: 7.344, Electronegativity: 1.96, HasElectronegativity: true, Radius: 145, Block: BlockP, Config: "[Kr]4d10 5s2 5p2"},
	{Symbol: "I", Name: "Iodine", Number: 53, Mass: 126.90, Ionization: 10.451, Electronegativity: 2.66, HasElectronegativity: true, Radius: 133, Block: BlockP, Config: "[Kr]4d10 5s2 5p5"},
	{Symbol: "Cs", Name: "Cesium", Number: 55, Mass: 132.91, Ionization: 3.894, Electronegativity: 0.79, HasElectronegativity: true, Radius: 298, Block: BlockS, Config: "[Xe]6s1"},
	{Symbol: "Ba", Name: "Barium", Number: 56, Mass: 137.33, Ionization: 5.212, Electronegativity: 0.89, HasElectronegativity: true, Radius: 253, Block: BlockS, Config: "[Xe]6s2"},
	{Symbol: "Au", Name: "Gold", Number: 79, Mass: 196.97, Ionization: 9.226, Electronegativity: 2.54, HasElectronegativity: true, Radius: 174, Block: BlockD, Config: "[Xe]4f14 5d10 6s1"},
	{Symbol: "Hg", Name: "Mercury", Number: 80, Mass: 200.59, Ionization: 10.438, Electronegativity: 2.00, HasElectronegativity: true, Radius: 171, Block: BlockD, Config: "[Xe]4f14 5d10 6s2"},
	{Symbol: "Pb", Name: "Lead", Number: 82, Mass: 207.2, Ionization: 7.417, Electronegativity: 2.33, HasElectronegativity: true, Radius: 154, Block: BlockP, Config: "[Xe]4f14 5d10 6s2 6p2"},
	{Symbol: "U", Name: "Uranium", Number: 92, Mass: 238.03, Ionization: 6.194, Electronegativity: 1.38, HasElectronegativity: true, Radius: 196, Block: BlockF, Config: "[Rn]5f3 6d1 7s2"},
}

// rawPlanetary is the fixed classical metal↔planet correspondence set.
var rawPlanetary = []PlanetaryMetal{
	{Symbol: "Au", Planet: "Sun", Glyph: "☉", Day: "Sunday", Quality: "Perfection, illumination"},
	{Symbol: "Ag", Planet: "Moon", Glyph: "☽", Day: "Monday", Quality: "Reflection, intuition"},
	{Symbol: "Hg", Planet: "Mercury", Glyph: "☿", Day: "Wednesday", Quality: "Transformation, communication"},
	{Symbol: "Cu", Planet: "Venus", Glyph: "♀", Day: "Friday", Quality: "Love, beauty, harmony"},
	{Symbol: "Fe", Planet: "Mars", Glyph: "♂", Day: "Tuesday", Quality: "Strength, action, will"},
	{Symbol: "Sn", Planet: "Jupiter", Glyph: "♃", Day: "Thursday", Quality: "Expansion, abundance"},
	{Symbol: "Pb", Planet: "Saturn", Glyph: "♄", Day: "Saturday", Quality: "Structure, limitation, time"},
}

package testcases

var basicCases = []Case{
	// a single cell with a linear gradient along x
	grid("gradient", 2,
		[]float64{0, 0},
		[]float64{10, 10}),
	grid("gradient_fine", 6,
		[]float64{0, 0},
		[]float64{10, 10}),

	// a single saddle cell, the centre value equals the middle level
	grid("saddle", 3,
		[]float64{0, 10},
		[]float64{10, 0}),

	grid("peak", 5,
		[]float64{0, 0, 0},
		[]float64{0, 8, 0},
		[]float64{0, 0, 0}),
	grid("pit", 5,
		[]float64{4, 4, 4},
		[]float64{4, -4, 4},
		[]float64{4, 4, 4}),
	grid("ramp", 4,
		[]float64{0, 1, 2, 3},
		[]float64{1, 2, 3, 4},
		[]float64{2, 3, 4, 5}),

	{
		Name: "uneven_axes",
		X:    []float64{-1, -0.5, 0.75, 3},
		Y:    []float64{0, 0.1, 2},
		Z: [][]float64{
			{0, 1, 4},
			{2, 3, 1},
			{5, 0, 2},
			{1, 1, 6},
		},
		Contours: 5,
	},
}

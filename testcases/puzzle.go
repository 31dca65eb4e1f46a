package testcases

var puzzleCases = []TestCase{
	{
		Name:          "example",
		Polygon:       pts(7, 1, 11, 1, 11, 7, 9, 7, 9, 5, 2, 5, 2, 3, 7, 3),
		Area:          24,
		Unconstrained: 50,
	},
	{
		// the same outline traversed in the opposite direction
		Name:          "example_reversed",
		Polygon:       pts(7, 3, 2, 3, 2, 5, 9, 5, 9, 7, 11, 7, 11, 1, 7, 1),
		Area:          24,
		Unconstrained: 50,
	},
}

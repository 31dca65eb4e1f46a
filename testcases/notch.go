package testcases

var notchCases = []TestCase{
	{
		// the pair (0,3)-(3,0) covers the notch at the top right
		Name:          "l_shape",
		Polygon:       pts(0, 0, 0, 3, 2, 3, 2, 1, 3, 1, 3, 0),
		Area:          12,
		Unconstrained: 16,
	},
	{
		Name:          "u_shape",
		Polygon:       pts(0, 0, 6, 0, 6, 5, 4, 5, 4, 2, 2, 2, 2, 5, 0, 5),
		Area:          18,
		Unconstrained: 42,
	},
	{
		Name: "plus",
		Polygon: pts(
			2, 0, 4, 0, 4, 2, 6, 2, 6, 4, 4, 4,
			4, 6, 2, 6, 2, 4, 0, 4, 0, 2, 2, 2),
		Area:          21,
		Unconstrained: 25,
	},
	{
		Name:          "staircase",
		Polygon:       pts(0, 0, 6, 0, 6, 2, 4, 2, 4, 4, 2, 4, 2, 6, 0, 6),
		Area:          25,
		Unconstrained: 49,
	},
	{
		// three teeth standing on a base of height one
		Name: "comb",
		Polygon: pts(
			0, 0, 5, 0, 5, 3, 4, 3, 4, 1, 3, 1,
			3, 3, 2, 3, 2, 1, 1, 1, 1, 3, 0, 3),
		Area:          10,
		Unconstrained: 24,
	},
}

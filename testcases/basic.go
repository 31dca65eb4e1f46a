package testcases

var basicCases = []TestCase{
	{
		Name: "empty",
	},
	{
		Name:    "single_vertex",
		Polygon: pts(3, 4),
	},
	{
		Name:          "unit_square",
		Polygon:       pts(0, 0, 0, 1, 1, 1, 1, 0),
		Area:          4,
		Unconstrained: 4,
	},
	{
		Name:          "rectangle",
		Polygon:       pts(2, 3, 10, 3, 10, 7, 2, 7),
		Area:          45,
		Unconstrained: 45,
	},
	{
		Name:          "negative_coordinates",
		Polygon:       pts(-5, -5, -5, -2, -1, -2, -1, -5),
		Area:          20,
		Unconstrained: 20,
	},
	{
		// all vertices on one horizontal line
		Name:          "collinear",
		Polygon:       pts(0, 0, 5, 0, 9, 0, 2, 0),
		Area:          0,
		Unconstrained: 10,
	},
}

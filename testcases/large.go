package testcases

var largeCases = []TestCase{
	{
		Name:          "wide_rectangle",
		Polygon:       pts(100000, 200000, 197000, 200000, 197000, 250000, 100000, 250000),
		Area:          97001 * 50001,
		Unconstrained: 97001 * 50001,
	},
	{
		// the example polygon with every coordinate multiplied by 10000
		Name: "example_scaled",
		Polygon: pts(
			70000, 10000, 110000, 10000, 110000, 70000, 90000, 70000,
			90000, 50000, 20000, 50000, 20000, 30000, 70000, 30000),
		Area:          70001 * 20001,
		Unconstrained: 90001 * 40001,
	},
}

// Command export writes the test polygons and expected results to JSON,
// for checking other implementations against the same catalogue.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/maxrect/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name          string   `json:"name"`
	Polygon       [][2]int `json:"polygon"`
	Area          int      `json:"area"`
	Unconstrained int      `json:"unconstrained"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:          category + "_" + tc.Name,
		Polygon:       make([][2]int, len(tc.Polygon)),
		Area:          tc.Area,
		Unconstrained: tc.Unconstrained,
	}
	for i, p := range tc.Polygon {
		jtc.Polygon[i] = [2]int{p.X, p.Y}
	}
	return jtc
}

package testcases

// All contains all scenarios, grouped by category.
// The category name is used as a prefix in generated file names.
var All = map[string][]Case{
	"basic":      basicCases,
	"degenerate": degenerateCases,
	"surface":    surfaceCases,
	"large":      largeCases,
}

package testcases

// All contains all scenes, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]Scene{
	"shapes":    shapeScenes,
	"crossings": crossingScenes,
	"edges":     edgeScenes,
	"large":     largeScenes,
}

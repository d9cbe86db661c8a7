package lecturer

// weightDivisor normalises the summed category weights.
const weightDivisor = 12

var qualificationWeights = map[string]int{
	"Certificate": 5 * 2,
	"Degree":      5 * 3,
	"Masters":     5 * 4,
	"PhD":         5 * 5,
}

var experienceWeights = map[string]int{
	"0-5 years":      4 * 3,
	"6-10 years":     4 * 4,
	"Above 10 years": 4 * 5,
}

var publicationWeights = map[string]int{
	"1-3":     3 * 3,
	"4-6":     3 * 4,
	"Above 7": 3 * 5,
}

// AverageWeight scores a lecturer from three categorical inputs. Unknown
// categories contribute nothing.
func AverageWeight(qualification, experience, publications string) float64 {
	sum := qualificationWeights[qualification] + experienceWeights[experience] + publicationWeights[publications]
	return float64(sum) / weightDivisor
}

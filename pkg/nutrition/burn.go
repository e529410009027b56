package nutrition

import (
	"regexp"
	"strconv"
	"strings"
)

// burnRates maps exercise keywords to a rough kcal/minute rate. Deliberately
// coarse: this backs the chat coach's quick estimate, not medical advice.
var burnRates = []struct {
	keyword string
	rate    int
}{
	{"run", 10},
	{"jog", 10},
	{"walk", 4},
	{"cycling", 6},
	{"bike", 6},
	{"gym", 5},
	{"swim", 8},
}

const (
	defaultBurnRate        = 5
	defaultDurationMinutes = 30
)

var durationPattern = regexp.MustCompile(`(\d+)\s*(minutes?|mins?|hours?|hrs?)`)

// ParseDuration extracts an exercise duration in minutes from free text
// ("ran for 45 minutes", "2 hours at the gym"). Hours are converted to
// minutes; text without a duration defaults to 30.
func ParseDuration(text string) int {
	m := durationPattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return defaultDurationMinutes
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return defaultDurationMinutes
	}
	if strings.HasPrefix(m[2], "h") {
		n *= 60
	}
	return n
}

// EstimateBurn estimates calories burned from a free-text activity
// description: keyword rate times parsed duration.
func EstimateBurn(text string) (calories, durationMinutes int) {
	durationMinutes = ParseDuration(text)
	lower := strings.ToLower(text)

	rate := defaultBurnRate
	for _, r := range burnRates {
		if strings.Contains(lower, r.keyword) {
			rate = r.rate
			break
		}
	}
	return rate * durationMinutes, durationMinutes
}

package quiz

import "learnquiz/internal/spec"

// Result is the tally of one quiz run.
type Result struct {
	AttemptID string
	Correct   int
	Total     int
}

// Percentage returns 100*correct/total, 0 when nothing was answered.
func (r Result) Percentage() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total) * 100
}

// Band is one feedback band of the grade scale.
type Band struct {
	MinPercent int
	Message    string
}

// Grade classifies a percentage into the first band whose threshold it
// meets. Bands are ordered by descending threshold and end with a zero
// band; config validation enforces both.
func Grade(percentage float64, bands []Band) Band {
	for _, band := range bands {
		if percentage >= float64(band.MinPercent) {
			return band
		}
	}
	if len(bands) == 0 {
		return Band{}
	}
	return bands[len(bands)-1]
}

// BandsFromConfig converts config grade bands for the runner.
func BandsFromConfig(grades []spec.GradeBand) []Band {
	bands := make([]Band, 0, len(grades))
	for _, grade := range grades {
		bands = append(bands, Band{MinPercent: grade.MinPercent, Message: grade.Message})
	}
	return bands
}

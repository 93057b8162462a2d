package query

import (
	"fmt"
	"strings"

	"github.com/flatfinder/rentals-backend-go/internal/stats"
)

// Summary holds the aggregate statistics and the narrative for a filtered
// view. The string fields read "N/A" when the view is empty, and
// AvgDistance also when no distance query is active.
type Summary struct {
	AvgPrice    string
	MedianPrice string
	AvgDistance string
	Narrative   string
}

// Summarize computes the statistics panel over the filtered view. prices
// and distances are aligned; distances may be nil when distanceActive is
// false.
func Summarize(totalCount int, prices, distances []float64, distanceActive bool) Summary {
	count := len(prices)

	s := Summary{
		AvgPrice:    "N/A",
		MedianPrice: "N/A",
		AvgDistance: "N/A",
	}
	if count > 0 {
		s.AvgPrice = fmt.Sprintf("£%.0f", stats.Mean(prices))
		s.MedianPrice = fmt.Sprintf("£%.0f", stats.Median(prices))
		if distanceActive {
			s.AvgDistance = fmt.Sprintf("%.1f km", stats.Mean(distances))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d properties matching your criteria out of %d total listings. ",
		count, totalCount)
	if count > 0 {
		fmt.Fprintf(&b, "The average monthly rent is %s. ", s.AvgPrice)
		if distanceActive {
			fmt.Fprintf(&b, "Properties are on average %s from your selected location. ",
				s.AvgDistance)
		}
		b.WriteString("Explore the map and charts below to find your perfect flat!")
	} else {
		b.WriteString("Try adjusting your filters to see more results.")
	}
	s.Narrative = b.String()

	return s
}

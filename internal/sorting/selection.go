package sorting

import "github.com/rcypher/bidsort/internal/model"

// Selection orders bids ascending by title using selection sort.
//
// O(n²) comparisons, O(n) swaps, no extra memory. Ties keep their original
// relative order because the scan takes the first minimum it encounters.
func Selection(bids []model.Bid) {
	for pos := 0; pos < len(bids)-1; pos++ {
		min := pos
		for j := pos + 1; j < len(bids); j++ {
			if bids[j].Title < bids[min].Title {
				min = j
			}
		}
		bids[pos], bids[min] = bids[min], bids[pos]
	}
}

package sorting

import "github.com/rcypher/bidsort/internal/model"

// Quick orders bids ascending by title using quicksort with Hoare
// partitioning. Expected O(n log n); the midpoint pivot is deterministic, so
// adversarial inputs can hit the O(n²) worst case. Not stable.
func Quick(bids []model.Bid) {
	if len(bids) < 2 {
		return
	}
	quick(bids, 0, len(bids)-1)
}

func quick(bids []model.Bid, begin, end int) {
	if begin >= end {
		return
	}
	split := partition(bids, begin, end)
	quick(bids, begin, split)
	quick(bids, split+1, end)
}

// partition rearranges bids[begin..end] around the midpoint title and
// returns the split index. Both inner scans use strict inequality, so
// elements equal to the pivot may end up on either side; this keeps the
// scans bounded when duplicates exist.
func partition(bids []model.Bid, begin, end int) int {
	pivot := bids[(begin+end)/2].Title
	low := begin
	high := end

	for {
		for bids[low].Title < pivot {
			low++
		}
		for pivot < bids[high].Title {
			high--
		}

		if low >= high {
			return high
		}

		bids[low], bids[high] = bids[high], bids[low]
		low++
		high--
	}
}

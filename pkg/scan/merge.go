package scan

import "github.com/KaminaDuck/hd2-tracker/pkg/stats"

// fieldWinner is the current best candidate for one statistic during a
// merge, along with the index of the result that supplied it.
type fieldWinner struct {
	value      int
	confidence Confidence
	origin     int
}

// selectWinners picks the winning candidate for every statistic that
// appears in at least one result. Results are visited in input order
// and a later candidate displaces the current winner only when its
// confidence ranks strictly higher, so ties keep the earliest value.
func selectWinners(results []ParseResult) map[stats.Key]fieldWinner {
	winners := make(map[stats.Key]fieldWinner)
	for i, result := range results {
		for k, v := range result.Stats {
			conf, ok := result.Confidence[k]
			if !ok {
				// A statistic needs both a value and a confidence to
				// be a candidate.
				continue
			}
			candidate := fieldWinner{
				value:      v,
				confidence: conf,
				origin:     i,
			}
			current, seen := winners[k]
			if !seen || candidate.confidence.Rank() > current.confidence.Rank() {
				winners[k] = candidate
			}
		}
	}
	return winners
}

// Merge reconciles ordered parse results from multiple screenshots of
// the same career card into a single consensus result.
//
// Each statistic is resolved independently: the value whose confidence
// ranks highest wins, and when several screenshots report a statistic
// at the same confidence the earliest upload wins. The consensus
// player name is the first non-nil name in input order. A statistic
// extracted from any screenshot always survives the merge, so the
// output is exactly as sparse as the union of its inputs.
//
// Merge never mutates its inputs. Merging no results yields an empty
// result; merging one returns it unchanged.
func Merge(results []ParseResult) ParseResult {
	if len(results) == 0 {
		return ParseResult{
			Stats:      make(map[stats.Key]int),
			Confidence: make(map[stats.Key]Confidence),
		}
	}
	if len(results) == 1 {
		return results[0]
	}

	winners := selectWinners(results)
	merged := ParseResult{
		Stats:      make(map[stats.Key]int, len(winners)),
		Confidence: make(map[stats.Key]Confidence, len(winners)),
	}
	for k, w := range winners {
		merged.Stats[k] = w.value
		merged.Confidence[k] = w.confidence
	}
	for _, result := range results {
		if result.PlayerName != nil {
			name := *result.PlayerName
			merged.PlayerName = &name
			break
		}
	}
	return merged
}

// Origins reports which input supplied each merged statistic, as an
// index into the results slice. It applies the same winner selection
// as Merge, so Origins(results) describes Merge(results) exactly.
func Origins(results []ParseResult) map[stats.Key]int {
	winners := selectWinners(results)
	origins := make(map[stats.Key]int, len(winners))
	for k, w := range winners {
		origins[k] = w.origin
	}
	return origins
}

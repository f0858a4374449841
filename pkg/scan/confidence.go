package scan

// Confidence describes how a scanned value was located in the
// screenshot. It decides which value wins when several screenshots
// report the same statistic.
type Confidence string

// String returns the string representation of the confidence level.
func (c Confidence) String() string {
	return string(c)
}

// Confidence levels.
const (
	ConfidencePosition Confidence = "position" // Value found by its expected screen position alone
	ConfidenceLabel    Confidence = "label"    // Value found next to its matching on-screen label
)

// confidenceRanks orders confidence levels for merging. A higher rank
// displaces a lower one; equal ranks keep the earlier screenshot's
// value.
var confidenceRanks = map[Confidence]int{
	ConfidencePosition: 1,
	ConfidenceLabel:    2,
}

// Rank returns the merge priority of the confidence level. Unknown
// levels rank zero, below every valid level.
func (c Confidence) Rank() int {
	return confidenceRanks[c]
}

// Valid reports whether the confidence level is known.
func (c Confidence) Valid() bool {
	_, ok := confidenceRanks[c]
	return ok
}

package table

import (
	"time"

	"github.com/KaminaDuck/hd2-tracker/internal/cmd/emoji"
	"github.com/KaminaDuck/hd2-tracker/pkg/scan"
)

// MergedToTableData converts a scan outcome's merged statistics to
// table format. Each row carries the winning value, the confidence it
// was located with, and the screenshot that supplied it. Values read
// by screen position alone are marked for review.
func MergedToTableData(outcome *scan.Outcome) Data {
	headers := []string{"STAT", "VALUE", "CONFIDENCE", "SOURCE", "REVIEW"}
	sources := scannedImages(outcome.Attempts)

	rows := make([][]string, 0, len(outcome.Merged.Stats))
	for _, key := range outcome.Merged.Keys() {
		source := emoji.Optional
		if idx, ok := outcome.Origins[key]; ok && idx < len(sources) {
			source = sources[idx]
		}

		review := ""
		if outcome.Merged.Confidence[key] == scan.ConfidencePosition {
			review = emoji.Warning
		}

		rows = append(rows, []string{
			key.Label(),
			FormatNumber(outcome.Merged.Stats[key]),
			outcome.Merged.Confidence[key].String(),
			source,
			review,
		})
	}

	return Data{
		Headers: headers,
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignDefault, // STAT
			AlignRight,   // VALUE
			AlignDefault, // CONFIDENCE
			AlignDefault, // SOURCE
			AlignCenter,  // REVIEW
		},
	}
}

// AttemptsToTableData converts per-screenshot scan attempts to table
// format.
func AttemptsToTableData(attempts []scan.Attempt) Data {
	headers := []string{"IMAGE", "STATUS", "FIELDS", "DURATION"}

	rows := make([][]string, 0, len(attempts))
	for _, a := range attempts {
		status := emoji.Success + " scanned"
		fields := FormatNumber(a.Fields)
		if a.Err != nil {
			status = emoji.Error + " " + a.Err.Error()
			fields = emoji.Optional
		}

		rows = append(rows, []string{
			a.Image,
			status,
			fields,
			a.Duration.Round(time.Millisecond).String(),
		})
	}

	return Data{
		Headers: headers,
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignDefault, // IMAGE
			AlignDefault, // STATUS
			AlignRight,   // FIELDS
			AlignRight,   // DURATION
		},
	}
}

// scannedImages returns the names of the screenshots that scanned
// successfully, in upload order. Outcome origins index this list.
func scannedImages(attempts []scan.Attempt) []string {
	var names []string
	for _, a := range attempts {
		if a.Err == nil {
			names = append(names, a.Image)
		}
	}
	return names
}

package table

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KaminaDuck/hd2-tracker/pkg/stats"
)

// PlayersToTableData converts roster records to table format. The
// standard view shows the headline career numbers; wide adds accuracy,
// samples, and the record timestamps.
func PlayersToTableData(records []*stats.Record, wide bool) Data {
	headers := []string{"PLAYER", "MISSIONS WON", "ENEMY KILLS", "DEATHS", "TOTAL XP", "UPDATED"}
	if wide {
		headers = append(headers, "ACCURACY", "SAMPLES", "CREATED")
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := []string{
			rec.Player,
			FormatNumber(rec.Value(stats.KeyMissionsWon)),
			FormatNumber(rec.Value(stats.KeyEnemyKills)),
			FormatNumber(rec.Value(stats.KeyDeaths)),
			FormatNumber(rec.Value(stats.KeyTotalXP)),
			rec.UpdatedAt.Format(time.DateOnly),
		}
		if wide {
			row = append(row,
				fmt.Sprintf("%d%%", rec.Value(stats.KeyAccuracy)),
				FormatNumber(rec.Value(stats.KeySamplesCollected)),
				rec.CreatedAt.Format(time.DateOnly),
			)
		}
		rows = append(rows, row)
	}

	alignment := []Align{
		AlignDefault, // PLAYER
		AlignRight,   // MISSIONS WON
		AlignRight,   // ENEMY KILLS
		AlignRight,   // DEATHS
		AlignRight,   // TOTAL XP
		AlignDefault, // UPDATED
	}
	if wide {
		alignment = append(alignment,
			AlignRight,   // ACCURACY
			AlignRight,   // SAMPLES
			AlignDefault, // CREATED
		)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: alignment,
	}
}

// RecordToTableData converts a single player record to a grouped
// statistics table. The group name appears only on the first row of
// each group.
func RecordToTableData(rec *stats.Record) Data {
	headers := []string{"GROUP", "STAT", "VALUE"}

	var rows [][]string
	caser := cases.Title(language.English)
	for _, group := range stats.Groups() {
		for i, key := range stats.GroupKeys(group) {
			groupName := ""
			if i == 0 {
				groupName = caser.String(group.String())
			}
			rows = append(rows, []string{
				groupName,
				key.Label(),
				FormatNumber(rec.Value(key)),
			})
		}
	}

	return Data{
		Headers: headers,
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignDefault, // GROUP
			AlignDefault, // STAT
			AlignRight,   // VALUE
		},
	}
}

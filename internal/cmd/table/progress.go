package table

import (
	"fmt"

	"github.com/KaminaDuck/hd2-tracker/internal/cmd/emoji"
	"github.com/KaminaDuck/hd2-tracker/pkg/achievements"
)

// ProgressToTableData converts achievement progress to table format.
func ProgressToTableData(progress []achievements.Progress) Data {
	headers := []string{"ACHIEVEMENT", "STAT", "PROGRESS", "PERCENT", "UNLOCKED"}

	rows := make([][]string, 0, len(progress))
	for _, p := range progress {
		unlocked := emoji.Optional
		if p.Unlocked {
			unlocked = emoji.Success
		}

		rows = append(rows, []string{
			p.Achievement.Name,
			p.Achievement.Stat.Label(),
			fmt.Sprintf("%s / %s", FormatNumber(p.Value), FormatNumber(p.Achievement.Threshold)),
			fmt.Sprintf("%.0f%%", p.Percent),
			unlocked,
		})
	}

	return Data{
		Headers: headers,
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignDefault, // ACHIEVEMENT
			AlignDefault, // STAT
			AlignRight,   // PROGRESS
			AlignRight,   // PERCENT
			AlignCenter,  // UNLOCKED
		},
	}
}

// AchievementsToTableData converts the achievement catalog to table
// format.
func AchievementsToTableData(list []achievements.Achievement) Data {
	headers := []string{"ID", "NAME", "STAT", "THRESHOLD", "DESCRIPTION"}

	rows := make([][]string, 0, len(list))
	for _, a := range list {
		rows = append(rows, []string{
			a.ID,
			a.Name,
			a.Stat.Label(),
			FormatNumber(a.Threshold),
			a.Description,
		})
	}

	return Data{
		Headers: headers,
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignDefault, // ID
			AlignDefault, // NAME
			AlignDefault, // STAT
			AlignRight,   // THRESHOLD
			AlignDefault, // DESCRIPTION
		},
	}
}

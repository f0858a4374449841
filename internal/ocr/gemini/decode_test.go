package gemini

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
	"github.com/KaminaDuck/hd2-tracker/pkg/scan"
	"github.com/KaminaDuck/hd2-tracker/pkg/stats"
)

func TestDecodeReply(t *testing.T) {
	raw := `{
		"player_name": "Helldiver1",
		"stats": [
			{"key": "enemyKills", "value": 1523, "matched_label": true},
			{"key": "shotsFired", "value": 80211, "matched_label": false},
			{"key": "deaths", "value": 0, "matched_label": true}
		]
	}`

	result, err := decodeReply(raw)
	if err != nil {
		t.Fatalf("decodeReply failed: %v", err)
	}

	if len(result.Stats) != 3 {
		t.Fatalf("Expected 3 stats, got %d", len(result.Stats))
	}
	if result.Stats[stats.KeyEnemyKills] != 1523 {
		t.Errorf("Expected enemyKills 1523, got %d", result.Stats[stats.KeyEnemyKills])
	}
	if result.Stats[stats.KeyDeaths] != 0 {
		t.Errorf("Expected deaths 0, got %d", result.Stats[stats.KeyDeaths])
	}

	if result.Confidence[stats.KeyEnemyKills] != scan.ConfidenceLabel {
		t.Errorf("Expected label confidence for enemyKills, got %s", result.Confidence[stats.KeyEnemyKills])
	}
	if result.Confidence[stats.KeyShotsFired] != scan.ConfidencePosition {
		t.Errorf("Expected position confidence for shotsFired, got %s", result.Confidence[stats.KeyShotsFired])
	}

	if result.PlayerName == nil {
		t.Fatal("Expected player name to be set")
	}
	if *result.PlayerName != "Helldiver1" {
		t.Errorf("Expected player name 'Helldiver1', got '%s'", *result.PlayerName)
	}
}

func TestDecodeReplyResolvesLabels(t *testing.T) {
	// The model occasionally echoes the on-screen label instead of
	// the machine key it was given.
	raw := `{
		"player_name": "",
		"stats": [
			{"key": "Enemy Kills", "value": 42, "matched_label": true},
			{"key": "total xp earned", "value": 9000, "matched_label": false}
		]
	}`

	result, err := decodeReply(raw)
	if err != nil {
		t.Fatalf("decodeReply failed: %v", err)
	}

	if result.Stats[stats.KeyEnemyKills] != 42 {
		t.Errorf("Expected label 'Enemy Kills' to resolve to enemyKills, got stats %v", result.Stats)
	}
	if result.Stats[stats.KeyTotalXP] != 9000 {
		t.Errorf("Expected label 'total xp earned' to resolve to totalXP, got stats %v", result.Stats)
	}
}

func TestDecodeReplyDropsInventedFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[stats.Key]int
	}{
		{
			name: "unknown key",
			raw:  `{"stats": [{"key": "bossKills", "value": 7, "matched_label": true}, {"key": "deaths", "value": 12, "matched_label": true}]}`,
			want: map[stats.Key]int{stats.KeyDeaths: 12},
		},
		{
			name: "negative value",
			raw:  `{"stats": [{"key": "enemyKills", "value": -5, "matched_label": true}, {"key": "deaths", "value": 12, "matched_label": true}]}`,
			want: map[stats.Key]int{stats.KeyDeaths: 12},
		},
		{
			name: "repeated key keeps first",
			raw:  `{"stats": [{"key": "deaths", "value": 12, "matched_label": true}, {"key": "deaths", "value": 99, "matched_label": true}]}`,
			want: map[stats.Key]int{stats.KeyDeaths: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := decodeReply(tt.raw)
			if err != nil {
				t.Fatalf("decodeReply failed: %v", err)
			}
			if len(result.Stats) != len(tt.want) {
				t.Fatalf("Expected %d stats, got %d: %v", len(tt.want), len(result.Stats), result.Stats)
			}
			for k, v := range tt.want {
				if result.Stats[k] != v {
					t.Errorf("Expected %s=%d, got %d", k, v, result.Stats[k])
				}
			}
		})
	}
}

func TestDecodeReplyPlayerName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string // "" means nil
	}{
		{
			name: "trimmed",
			raw:  `{"player_name": "  Helldiver1  ", "stats": []}`,
			want: "Helldiver1",
		},
		{
			name: "empty stays nil",
			raw:  `{"player_name": "", "stats": []}`,
			want: "",
		},
		{
			name: "whitespace stays nil",
			raw:  `{"player_name": "   ", "stats": []}`,
			want: "",
		},
		{
			name: "oversized is dropped",
			raw:  `{"player_name": "` + strings.Repeat("x", 65) + `", "stats": []}`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := decodeReply(tt.raw)
			if err != nil {
				t.Fatalf("decodeReply failed: %v", err)
			}
			if tt.want == "" {
				if result.PlayerName != nil {
					t.Errorf("Expected nil player name, got '%s'", *result.PlayerName)
				}
				return
			}
			if result.PlayerName == nil {
				t.Fatal("Expected player name to be set")
			}
			if *result.PlayerName != tt.want {
				t.Errorf("Expected player name '%s', got '%s'", tt.want, *result.PlayerName)
			}
		})
	}
}

func TestDecodeReplyEmptyStats(t *testing.T) {
	result, err := decodeReply(`{"player_name": "", "stats": []}`)
	if err != nil {
		t.Fatalf("decodeReply failed: %v", err)
	}
	if len(result.Stats) != 0 {
		t.Errorf("Expected empty stats, got %v", result.Stats)
	}
	if len(result.Confidence) != 0 {
		t.Errorf("Expected empty confidence, got %v", result.Confidence)
	}
}

func TestDecodeReplyMalformedJSON(t *testing.T) {
	_, err := decodeReply(`{"stats": [`)
	if err == nil {
		t.Fatal("Expected an error for malformed JSON")
	}

	var parseErr *errors.ParseError
	if !stderrors.As(err, &parseErr) {
		t.Fatalf("Expected a ParseError, got %T: %v", err, err)
	}
}

// Package stats defines the canonical set of Helldivers 2 career
// statistics tracked for each clan member. Every stat has a stable
// machine key, the on-screen label it appears under in the game's
// career card, and a display group used when rendering tables.
//
// The key set is closed: parse results, records, and achievements all
// reference stats by Key, and validation rejects anything outside the
// enumeration.
package stats

import "strings"

// Key identifies a single tracked statistic.
type Key string

// String returns the string representation of the key.
func (k Key) String() string {
	return string(k)
}

// Statistic keys, grouped the way the game's career card groups them.
const (
	// Kills.
	KeyEnemyKills     Key = "enemyKills"     // Total enemy kills across all factions
	KeyTerminidKills  Key = "terminidKills"  // Kills against the Terminid faction
	KeyAutomatonKills Key = "automatonKills" // Kills against the Automaton faction
	KeyFriendlyKills  Key = "friendlyKills"  // Friendly fire kills
	KeyGrenadeKills   Key = "grenadeKills"   // Kills with grenades
	KeyMeleeKills     Key = "meleeKills"     // Kills with melee attacks
	KeyEagleKills     Key = "eagleKills"     // Kills with Eagle stratagems

	// Accuracy.
	KeyShotsFired Key = "shotsFired" // Total shots fired
	KeyShotsHit   Key = "shotsHit"   // Total shots on target
	KeyAccuracy   Key = "accuracy"   // Accuracy percentage as reported by the game

	// Stratagems.
	KeyOrbitalsUsed        Key = "orbitalsUsed"        // Orbital stratagems called in
	KeyDefensiveStratagems Key = "defensiveStratagems" // Defensive stratagems called in
	KeyEagleStratagems     Key = "eagleStratagems"     // Eagle stratagems called in
	KeySupplyStratagems    Key = "supplyStratagems"    // Supply stratagems called in
	KeyReinforceStratagems Key = "reinforceStratagems" // Reinforce stratagems called in
	KeyTotalStratagems     Key = "totalStratagems"     // All stratagems called in

	// Missions.
	KeyMissionsPlayed Key = "missionsPlayed" // Missions started
	KeyMissionsWon    Key = "missionsWon"    // Missions completed successfully

	// Other.
	KeyDeaths           Key = "deaths"           // Times killed in action
	KeySamplesCollected Key = "samplesCollected" // Samples extracted
	KeyTotalXP          Key = "totalXP"          // Career experience earned
)

// Group categorizes keys for display purposes.
type Group string

// String returns the string representation of the group.
func (g Group) String() string {
	return string(g)
}

// Display groups in rendering order.
const (
	GroupKills      Group = "kills"
	GroupAccuracy   Group = "accuracy"
	GroupStratagems Group = "stratagems"
	GroupMissions   Group = "missions"
	GroupOther      Group = "other"
)

// keyOrder is the canonical enumeration order. Tables, zero-filled
// records, and review output all iterate in this order.
var keyOrder = []Key{
	KeyEnemyKills,
	KeyTerminidKills,
	KeyAutomatonKills,
	KeyFriendlyKills,
	KeyGrenadeKills,
	KeyMeleeKills,
	KeyEagleKills,
	KeyShotsFired,
	KeyShotsHit,
	KeyAccuracy,
	KeyOrbitalsUsed,
	KeyDefensiveStratagems,
	KeyEagleStratagems,
	KeySupplyStratagems,
	KeyReinforceStratagems,
	KeyTotalStratagems,
	KeyMissionsPlayed,
	KeyMissionsWon,
	KeyDeaths,
	KeySamplesCollected,
	KeyTotalXP,
}

// groupOrder is the canonical group rendering order.
var groupOrder = []Group{
	GroupKills,
	GroupAccuracy,
	GroupStratagems,
	GroupMissions,
	GroupOther,
}

// keyDetails carries the per-key metadata that is not derivable from
// the key itself.
type keyDetails struct {
	label string // On-screen label in the game's career card
	group Group
}

var details = map[Key]keyDetails{
	KeyEnemyKills:          {label: "Enemy Kills", group: GroupKills},
	KeyTerminidKills:       {label: "Terminid Kills", group: GroupKills},
	KeyAutomatonKills:      {label: "Automaton Kills", group: GroupKills},
	KeyFriendlyKills:       {label: "Friendly Kills", group: GroupKills},
	KeyGrenadeKills:        {label: "Grenade Kills", group: GroupKills},
	KeyMeleeKills:          {label: "Melee Kills", group: GroupKills},
	KeyEagleKills:          {label: "Eagle Kills", group: GroupKills},
	KeyShotsFired:          {label: "Shots Fired", group: GroupAccuracy},
	KeyShotsHit:            {label: "Shots Hit", group: GroupAccuracy},
	KeyAccuracy:            {label: "Accuracy", group: GroupAccuracy},
	KeyOrbitalsUsed:        {label: "Orbitals Used", group: GroupStratagems},
	KeyDefensiveStratagems: {label: "Defensive Stratagems Used", group: GroupStratagems},
	KeyEagleStratagems:     {label: "Eagle Stratagems Used", group: GroupStratagems},
	KeySupplyStratagems:    {label: "Supply Stratagems Used", group: GroupStratagems},
	KeyReinforceStratagems: {label: "Reinforce Stratagems Used", group: GroupStratagems},
	KeyTotalStratagems:     {label: "Total Stratagems Used", group: GroupStratagems},
	KeyMissionsPlayed:      {label: "Missions Played", group: GroupMissions},
	KeyMissionsWon:         {label: "Missions Won", group: GroupMissions},
	KeyDeaths:              {label: "Deaths", group: GroupOther},
	KeySamplesCollected:    {label: "Samples Collected", group: GroupOther},
	KeyTotalXP:             {label: "Total XP Earned", group: GroupOther},
}

// Keys returns all statistic keys in canonical order.
func Keys() []Key {
	keys := make([]Key, len(keyOrder))
	copy(keys, keyOrder)
	return keys
}

// Valid reports whether the key is part of the tracked enumeration.
func (k Key) Valid() bool {
	_, ok := details[k]
	return ok
}

// Label returns the on-screen label the statistic appears under in the
// game's career card, or the key itself if the key is unknown.
func (k Key) Label() string {
	if d, ok := details[k]; ok {
		return d.label
	}
	return string(k)
}

// Group returns the display group the key belongs to. Unknown keys
// fall into GroupOther.
func (k Key) Group() Group {
	if d, ok := details[k]; ok {
		return d.group
	}
	return GroupOther
}

// KeyForLabel resolves an on-screen label back to its key. Matching is
// case-insensitive because OCR output does not reliably preserve the
// game's capitalization.
func KeyForLabel(label string) (Key, bool) {
	trimmed := strings.TrimSpace(label)
	for _, k := range keyOrder {
		if strings.EqualFold(details[k].label, trimmed) {
			return k, true
		}
	}
	return "", false
}

// Groups returns all display groups in rendering order.
func Groups() []Group {
	groups := make([]Group, len(groupOrder))
	copy(groups, groupOrder)
	return groups
}

// GroupKeys returns the keys belonging to a group, in canonical order.
func GroupKeys(g Group) []Key {
	var keys []Key
	for _, k := range keyOrder {
		if details[k].group == g {
			keys = append(keys, k)
		}
	}
	return keys
}

package model

import "strconv"

// Gender is the restriction tag shared by players and events.
type Gender int

const (
	GenderMens   Gender = 1
	GenderWomens Gender = 2
	// GenderCoed on an event admits everyone.
	GenderCoed Gender = 3
)

// Valid reports whether g is one of the three recognized tags.
func (g Gender) Valid() bool {
	return g == GenderMens || g == GenderWomens || g == GenderCoed
}

// Restricted reports whether an event with this tag limits who may join.
func (g Gender) Restricted() bool {
	return g != GenderCoed
}

// Admits reports whether an event tagged g accepts a player tagged p.
func (g Gender) Admits(p Gender) bool {
	return !g.Restricted() || g == p
}

func (g Gender) String() string {
	switch g {
	case GenderMens:
		return "MENS"
	case GenderWomens:
		return "WOMENS"
	case GenderCoed:
		return "CO_ED"
	default:
		return "GENDER_" + strconv.Itoa(int(g))
	}
}

package household

import (
	"fmt"
	"strings"
)

// Biography renders the human-readable summary of a Person:
// "<Name> is a <living|dead> <sex-noun>, <N> years old, <marital summary>"
// where marital summary is "<status>" or "<status> with <N> child(ren)".
func Biography(p *Person) string {
	marital := p.MarriageStatus.Adjective
	if n := len(p.Children); n > 0 {
		noun := "child"
		if n != 1 {
			noun = "children"
		}
		marital = fmt.Sprintf("%s with %d %s", marital, n, noun)
	}
	return fmt.Sprintf("%s is a %s %s, %d years old, %s", p.Name, p.LifeStatus.Adjective, p.Sex.Noun, p.Age, marital)
}

// Census renders the human-readable summary of a House:
// "a <classification> household with <N> person(s) residing" followed by
// either " with no owner" or " owned by <Name> (<shares> shares), …".
func Census(h *House) string {
	noun := "person"
	if len(h.Occupants) != 1 {
		noun = "persons"
	}
	base := fmt.Sprintf("a %s household with %d %s residing", Classify(h), len(h.Occupants), noun)

	entries := h.SharesList()
	if len(entries) == 0 {
		return base + " with no owner"
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		shareNoun := "share"
		if e.Shares != 1 {
			shareNoun = "shares"
		}
		parts[i] = fmt.Sprintf("owned by %s (%d %s)", e.Person.Name, e.Shares, shareNoun)
	}
	return base + " " + strings.Join(parts, ", ")
}

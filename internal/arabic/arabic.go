// Package arabic prefills the Arabic script field when the user adds
// a custom zikr type. It is a convenience heuristic only; the user can
// always override the suggestion.
package arabic

import (
	"strings"

	"github.com/donikhodjaev/misbaha/internal/models"
)

type entry struct {
	key    string
	script string
}

// transliterations maps lowercased transliterations to Arabic script.
// Kept as an ordered slice so that substring lookup is deterministic:
// the first matching entry wins.
var transliterations = []entry{
	{"субхан", "سُبْحَانَ اللَّهِ"},
	{"субханаллах", "سُبْحَانَ اللَّهِ"},
	{"альхамду", "الْحَمْدُ لِلَّهِ"},
	{"альхамдулиллах", "الْحَمْدُ لِلَّهِ"},
	{"аллаху акбар", "اللَّهُ أَكْبَرُ"},
	{"аллаху", "اللَّهُ"},
	{"аллах", "اللَّهُ"},
	{"акбар", "أَكْبَرُ"},
	{"астагфиру", "أَسْتَغْفِرُ اللَّه"},
	{"астагфируллах", "أَسْتَغْفِرُ اللَّه"},
	{"ля иляха илля ллах", "لَا إِلَٰهَ إِلَّا اللَّٰهُ"},
	{"ля иляха илля", "لَا إِلَٰهَ إِلَّا اللَّٰهُ"},
	{"ля иляха", "لَا إِلَٰهَ إِلَّا اللَّٰهُ"},
	{"ла илаха илла ллах", "لَا إِلَٰهَ إِلَّا اللَّٰهُ"},
	{"ла илаха илла", "لَا إِلَٰهَ إِلَّا اللَّٰهُ"},
	{"ла илаха", "لَا إِلَٰهَ إِلَّا اللَّٰهُ"},
}

// Suggest returns Arabic script for a free-text name, or "" when
// nothing matches. Lookup order: exact dictionary match, substring
// match in either direction against dictionary keys, then substring
// match in either direction against existing type names (borrowing
// that type's script).
func Suggest(name string, existing []models.ZikrType) string {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return ""
	}

	for _, e := range transliterations {
		if e.key == needle {
			return e.script
		}
	}

	for _, e := range transliterations {
		if strings.Contains(needle, e.key) || strings.Contains(e.key, needle) {
			return e.script
		}
	}

	for _, zt := range existing {
		if zt.Arabic == "" {
			continue
		}
		typeName := strings.ToLower(zt.Name)
		if strings.Contains(typeName, needle) || strings.Contains(needle, typeName) {
			return zt.Arabic
		}
	}

	return ""
}

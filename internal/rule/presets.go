package rule

import (
	"sort"
	"strings"
)

// Presets maps well-known rule names to their rule strings.
var Presets = map[string]string{
	"life":             "B3/S23",
	"highlife":         "B36/S23",
	"seeds":            "B2/S",
	"daynight":         "B3678/S34678",
	"maze":             "B3/S12345",
	"mazectric":        "B3/S1234",
	"2x2":              "B36/S125",
	"replicator":       "B1357/S1357",
	"diamoeba":         "B35678/S5678",
	"morley":           "B368/S245",
	"anneal":           "B4678/S35678",
	"lifewithoutdeath": "B3/S012345678",
	"coral":            "B3/S45678",
}

// Resolve compiles name as a preset when it names one, and as a rule string
// otherwise. Preset lookup ignores case.
func Resolve(name string) (Rule, error) {
	if s, ok := Presets[strings.ToLower(name)]; ok {
		return Parse(s)
	}
	return Parse(name)
}

// PresetNames lists preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package titanfall

const (
	UnknownMapName = "Unknown"

	mapImageDir = "assets/img/maps/"
	mapImageExt = ".webp"
)

type Map struct {
	Code string
	Name string
}

var (
	// every map code the leaderboards have been run on, in menu order
	maps = []Map{
		{"mp_angel_city", "Angel City"},
		{"mp_black_water_canal", "Black Water Canal"},
		{"mp_coliseum", "Coliseum"},
		{"mp_colony02", "Colony"},
		{"mp_complex03", "Complex"},
		{"mp_crashsite3", "Crash Site"},
		{"mp_drydock", "Drydock"},
		{"mp_eden", "Eden"},
		{"mp_forwardbase_kodai", "Forwardbase Kodai"},
		{"mp_glitch", "Glitch"},
		{"mp_grave", "Boomtown"},
		{"mp_homestead", "Homestead"},
		{"mp_relic02", "Relic"},
		{"mp_rise", "Rise"},
		{"mp_thaw", "Exoplanet"},
		{"mp_wargames", "War Games"},

		// live fire
		{"mp_lf_deck", "Deck"},
		{"mp_lf_meadow", "Meadow"},
		{"mp_lf_stacks", "Stacks"},
		{"mp_lf_township", "Township"},
		{"mp_lf_traffic", "Traffic"},
		{"mp_lf_uma", "UMA"},
		{"mp_coliseum_column", "Pillars"},
	}

	mapNames = func() map[string]string {
		m := make(map[string]string, len(maps))
		for _, v := range maps {
			m[v.Code] = v.Name
		}
		return m
	}()
)

// Maps returns a copy of the map table.
func Maps() []Map {
	r := make([]Map, len(maps))
	copy(r, maps)
	return r
}

func IsKnownMap(code string) bool {
	_, ok := mapNames[code]
	return ok
}

// MapName returns the display name of a map code. Unknown codes resolve to
// the code itself when fallbackToCode is set, "Unknown" otherwise.
func MapName(code string, fallbackToCode bool) string {
	if name, ok := mapNames[code]; ok {
		return name
	}
	if fallbackToCode {
		return code
	}
	return UnknownMapName
}

// MapImage returns the illustration path of a map code. With unknownImage
// set, unknown codes point at unknown.webp instead of a missing file.
func MapImage(code string, unknownImage bool) string {
	if unknownImage && !IsKnownMap(code) {
		return mapImageDir + "unknown" + mapImageExt
	}
	return mapImageDir + code + mapImageExt
}

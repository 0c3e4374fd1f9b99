package category

// DefaultIcon is used for any icon identifier the table does not know.
const DefaultIcon = "package"

// knownIcons enumerates the icon identifiers the frontend actually ships.
// Identifiers stored in the database outside this set resolve to
// DefaultIcon instead of being looked up dynamically.
var knownIcons = map[string]struct{}{
	"store":          {},
	"shopping-cart":  {},
	"briefcase":      {},
	"newspaper":      {},
	"globe":          {},
	"camera":         {},
	"utensils":       {},
	"graduation-cap": {},
	"heart-pulse":    {},
	"palette":        {},
	"rocket":         {},
	"package":        {},
}

// ResolveIcon maps a stored icon identifier to a renderable symbol name.
func ResolveIcon(name string) string {
	if _, ok := knownIcons[name]; ok {
		return name
	}
	return DefaultIcon
}

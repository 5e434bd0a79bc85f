package extract

import "strings"

// knownProjectNames is the fixed vocabulary of project codenames used for
// short display names. First case-insensitive substring match wins.
var knownProjectNames = []string{
	"ALMA MATER", "MARA", "CENEPA", "BEETHOVEN",
	"BIOMEDICAS", "BIOMEDIC", "FRANKLIN", "ROOSEVELT",
}

const shortNameMaxRunes = 30

/*
ShortProjectName derives a short display name from the full project name:
a known codename when the full name contains one, otherwise the full name
truncated to 30 characters. An empty full name yields "PROYECTO".
*/
func ShortProjectName(fullName string) string {
	upper := strings.ToUpper(fullName)
	for _, known := range knownProjectNames {
		if strings.Contains(upper, known) {
			return known
		}
	}

	if fullName == "" {
		return "PROYECTO"
	}

	runes := []rune(fullName)
	if len(runes) > shortNameMaxRunes {
		return string(runes[:shortNameMaxRunes])
	}
	return fullName
}

package matching

import "fmt"

// Importance classifies how strongly a posting requires a skill.
type Importance int

const (
	ImportanceRequired Importance = iota
	ImportancePreferred
	ImportanceNiceToHave
)

// importanceWeights is the single source of truth for skill weighting.
// Required outweighs Preferred outweighs NiceToHave.
var importanceWeights = map[Importance]int{
	ImportanceRequired:   3,
	ImportancePreferred:  2,
	ImportanceNiceToHave: 1,
}

var importanceLabels = map[Importance]string{
	ImportanceRequired:   "Required",
	ImportancePreferred:  "Preferred",
	ImportanceNiceToHave: "Nice to have",
}

func (i Importance) Weight() int {
	if w, ok := importanceWeights[i]; ok {
		return w
	}
	return importanceWeights[ImportanceNiceToHave]
}

func (i Importance) String() string {
	if s, ok := importanceLabels[i]; ok {
		return s
	}
	return "Nice to have"
}

// ParseImportance maps the stored label onto the closed enum.
func ParseImportance(s string) (Importance, error) {
	switch s {
	case "Required":
		return ImportanceRequired, nil
	case "Preferred":
		return ImportancePreferred, nil
	case "Nice to have":
		return ImportanceNiceToHave, nil
	}
	return ImportanceNiceToHave, fmt.Errorf("unknown importance: %q", s)
}

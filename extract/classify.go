package extract

import (
	"strings"
	"unicode"
)

// Split describes a token that fuses a location word with a nature word.
type Split struct {
	Token    string
	Location string
	Nature   string
}

// Exceptions holds the corpus-specific data the classifier consults.
type Exceptions struct {
	// NatureKeywords are upper-case tokens that belong to the nature even
	// when the nature is still empty.
	NatureKeywords []string

	// Splits break run-together tokens into a location and a nature part.
	Splits []Split
}

// DefaultExceptions returns the exception table observed in published summaries.
func DefaultExceptions() Exceptions {
	return Exceptions{
		NatureKeywords: []string{"MVA", "COP", "EMS", "RAMPMVA"},
		Splits: []Split{
			{Token: "HWYMotorist", Location: "HWY", Nature: "Motorist"},
			{Token: "RAMPMotorist", Location: "RAMP", Nature: "Motorist"},
			{Token: "RAMPMVA", Location: "RAMP", Nature: "MVA"},
		},
	}
}

// State is the classification in progress.
type State struct {
	Location []string
	Nature   []string
}

// Rule assigns a token to the location, the nature or both.
type Rule struct {
	Name  string
	Match func(s *State, token string) bool
	Apply func(s *State, token string)
}

// Rules builds the ordered rule table for ex.
func Rules(ex Exceptions) []Rule {
	keywords := make(map[string]bool, len(ex.NatureKeywords))
	for _, k := range ex.NatureKeywords {
		keywords[k] = true
	}
	splits := make(map[string]Split, len(ex.Splits))
	for _, sp := range ex.Splits {
		splits[sp.Token] = sp
	}

	return []Rule{
		{
			Name: "location",
			Match: func(s *State, token string) bool {
				return len(s.Nature) == 0 && !keywords[token] && isLocationToken(token)
			},
			Apply: func(s *State, token string) {
				s.Location = append(s.Location, token)
			},
		},
		{
			Name: "run-together",
			Match: func(_ *State, token string) bool {
				_, ok := splits[token]
				return ok
			},
			Apply: func(s *State, token string) {
				sp := splits[token]
				s.Location = append(s.Location, sp.Location)
				s.Nature = append(s.Nature, sp.Nature)
			},
		},
		{
			Name:  "nature",
			Match: func(*State, string) bool { return true },
			Apply: func(s *State, token string) {
				s.Nature = append(s.Nature, token)
			},
		},
	}
}

// Classifier partitions the middle tokens of a record into location and nature.
type Classifier struct {
	rules []Rule
}

// NewClassifier returns a Classifier using the rule table built from ex.
func NewClassifier(ex Exceptions) *Classifier {
	return &Classifier{rules: Rules(ex)}
}

// Classify scans tokens in order, applying the first matching rule to each.
// A trailing multi-digit number left on the location is then moved to the
// front of the nature.
func (c *Classifier) Classify(tokens []string) (location, nature string) {
	var s State
	for _, tok := range tokens {
		for _, r := range c.rules {
			if r.Match(&s, tok) {
				r.Apply(&s, tok)
				break
			}
		}
	}

	if n := len(s.Location); n > 0 {
		last := s.Location[n-1]
		if isNumeric(last) && len([]rune(last)) > 1 {
			s.Nature = append([]string{last}, s.Nature...)
			s.Location = s.Location[:n-1]
		}
	}

	return strings.Join(s.Location, " "), strings.Join(s.Nature, " ")
}

func isLocationToken(token string) bool {
	return isDecimal(token) || isUpper(token) || token == "/" || token == "1/2" || strings.Contains(token, ";")
}

// isUpper reports whether token has at least one cased letter and no lower
// case ones. Digits and punctuation are ignored, so I35 and 12TH qualify.
func isUpper(token string) bool {
	cased := false
	for _, r := range token {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}

func isDecimal(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.Is(unicode.Nd, r) {
			return false
		}
	}
	return true
}

func isNumeric(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Petto di Pollo", "petto pollo"},
		{"Passata di pomodoro", "passata pomodoro"},
		{"Farina 00", "farina 00"},
		{"  Olio extravergine di oliva  ", "olio extravergine oliva"},
		{"Cosce della nonna, al forno!", "cosce nonna forno"},
		{"", ""},
		{"di del della", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Key(tt.raw), "Key(%q)", tt.raw)
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name       string
		pantry     string
		ingredient string
		want       bool
	}{
		{"alias plural", "Pomodori", "Pomodoro", true},
		{"alias variant phrase", "Passata di pomodoro", "Pomodoro", true},
		{"substring on normalized names", "Farina", "Farina 00", true},
		{"chicken cuts", "Petto di pollo", "Pollo", true},
		{"pancetta substitutes guanciale", "Pancetta", "Guanciale", true},
		{"egg singular plural", "Uovo", "Uova", true},
		{"unrelated", "Zucchine", "Pollo", false},
		{"empty pantry name", "", "Pollo", false},
		{"empty ingredient name", "Pollo", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.pantry, tt.ingredient))
		})
	}
}

// The substring rule is intentionally permissive and produces plausible
// false positives (any name containing "pomodoro" matches plain tomatoes).
// Tightening it to whole-word overlap is an open item; until then this
// documents the behavior without enforcing it either way.
func TestMatchesPermissiveness(t *testing.T) {
	t.Skip("substring matching is intentionally permissive; tightening is an open item")
}

package availability

import (
	"strings"
	"unicode"
)

// Italian articles and prepositions stripped during normalization.
var stopwords = map[string]struct{}{
	"di": {}, "del": {}, "della": {}, "dello": {}, "dei": {}, "degli": {},
	"delle": {}, "al": {}, "allo": {}, "alla": {}, "ai": {}, "agli": {},
	"alle": {}, "lo": {}, "la": {}, "il": {}, "i": {}, "gli": {}, "le": {},
}

// aliasTable maps a canonical ingredient root to its recognized name
// variants. It is the union of the per-view tables found in the original
// dashboard, recipe card and recipe detail code paths.
var aliasTable = map[string][]string{
	"pollo":      {"petto di pollo", "cosce di pollo", "sovracosce di pollo", "fusi di pollo", "pollo intero"},
	"pomodoro":   {"pomodori", "pomodorini", "passata di pomodoro", "polpa di pomodoro", "pelati", "concentrato di pomodoro"},
	"cipolla":    {"cipolle", "cipolla rossa", "cipolla bianca", "cipollotto"},
	"aglio":      {"spicchio di aglio", "spicchi di aglio", "aglio in polvere"},
	"uova":       {"uovo", "uova fresche", "albume", "tuorlo"},
	"farina":     {"farina 00", "farina 0", "farina integrale", "farina di semola"},
	"latte":      {"latte intero", "latte parzialmente scremato", "latte fresco"},
	"parmigiano": {"parmigiano reggiano", "grana padano", "formaggio grattugiato"},
	"pecorino":   {"pecorino romano"},
	"guanciale":  {"pancetta", "pancetta affumicata"},
	"basilico":   {"basilico fresco", "foglie di basilico"},
	"pasta":      {"spaghetti", "penne", "rigatoni", "fusilli", "linguine", "bucatini"},
	"riso":       {"riso carnaroli", "riso arborio", "riso basmati"},
	"olio":       {"olio extravergine di oliva", "olio di oliva", "olio evo", "olio di semi"},
	"burro":      {"burro salato"},
	"mozzarella": {"mozzarella di bufala", "fior di latte"},
	"macinato":   {"carne macinata", "macinato di manzo", "carne trita", "macinato misto"},
	"brodo":      {"brodo vegetale", "brodo di carne", "dado"},
	"zucchero":   {"zucchero semolato", "zucchero di canna"},
	"sale":       {"sale fino", "sale grosso"},
	"pepe":       {"pepe nero"},
}

// Key normalizes a free-text ingredient name: lowercase, punctuation to
// spaces, stopwords dropped as whole words, whitespace collapsed.
func Key(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	kept := fields[:0]
	for _, word := range fields {
		if _, ok := stopwords[word]; !ok {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " ")
}

// expand returns the normalized candidate set for a name: its own key
// plus, when the key touches an alias group, every member of that group.
func expand(raw string) []string {
	key := Key(raw)
	if key == "" {
		return nil
	}

	out := []string{key}
	seen := map[string]struct{}{key: {}}

	for root, variants := range aliasTable {
		group := make([]string, 0, len(variants)+1)
		group = append(group, root)
		group = append(group, variants...)

		hit := false
		for _, member := range group {
			memberKey := Key(member)
			if strings.Contains(key, memberKey) || strings.Contains(memberKey, key) {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}

		for _, member := range group {
			memberKey := Key(member)
			if _, ok := seen[memberKey]; ok {
				continue
			}
			seen[memberKey] = struct{}{}
			out = append(out, memberKey)
		}
	}

	return out
}

// Matches reports whether a pantry item name and a recipe ingredient name
// denote the same ingredient. Both sides are expanded through the alias
// table and every candidate pair is compared by substring in either
// direction. Deliberately permissive: "passata di pomodoro" matches
// "pomodoro", and so does "pomodorini".
func Matches(pantryName, ingredientName string) bool {
	left, right := expand(pantryName), expand(ingredientName)
	if len(left) == 0 || len(right) == 0 {
		return false
	}
	for _, a := range left {
		for _, b := range right {
			if strings.Contains(a, b) || strings.Contains(b, a) {
				return true
			}
		}
	}
	return false
}

package harness

import "sort"

// DefaultCategories maps the coarse user-facing category tokens to the
// concrete suite names they cover.
var DefaultCategories = map[string][]string{
	"cpu":    {"cpu_instructions", "cpu_timing", "cpu_interrupts"},
	"ppu":    {"ppu_vbl_nmi", "ppu_sprite", "ppu_misc"},
	"mapper": {"mmc3"},
	"apu":    {"apu"},
}

// ResolveCategories turns requested category tokens into the set of suite
// names to load, returned sorted and deduplicated. A token that is not a
// known category but matches a configured suite name is taken as a direct
// suite request; anything else is ignored. With no tokens at all, every
// configured suite is selected.
func ResolveCategories(requested []string, categories map[string][]string, cfg Config) []string {
	if categories == nil {
		categories = DefaultCategories
	}

	selected := map[string]bool{}
	if len(requested) == 0 {
		for name := range cfg.TestSuites {
			selected[name] = true
		}
	} else {
		for _, token := range requested {
			if suites, ok := categories[token]; ok {
				for _, s := range suites {
					selected[s] = true
				}
			} else if _, ok := cfg.TestSuites[token]; ok {
				selected[token] = true
			}
		}
	}

	names := make([]string, 0, len(selected))
	for name := range selected {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Package synergy builds the keyword-to-category lookup used to detect
// cross-industry business opportunities between room occupants.
package synergy

import (
	"regexp"
	"strings"
)

// Entry is a named category: keywords identify membership, opportunities
// suggest talking points, and targets name other categories this one is
// compatible with. Targets are directional: A listing B does not imply B
// lists A.
type Entry struct {
	Category      string   `json:"category"`
	Keywords      []string `json:"keywords"`
	Opportunities []string `json:"opportunities,omitempty"`
	Targets       []string `json:"targets,omitempty"`
}

// Index is the keyword-to-entry lookup built from a synergy table. Entries
// keep insertion order; each keyword belongs to exactly one entry (first
// claim wins). Immutable once built.
type Index struct {
	entries   []*Entry
	byKeyword map[string]*Entry
}

// valueSep splits list fields on ASCII or fullwidth commas.
var valueSep = regexp.MustCompile(`[,，]`)

// ParseTable parses a synergy table, one category per line:
//
//	category | keywords | opportunities | target-categories
//
// Keywords, opportunities, and targets are comma-separated; trailing fields
// are optional. Rows with fewer than 2 fields are skipped, not an error.
func ParseTable(text string) *Index {
	ix := &Index{byKeyword: make(map[string]*Entry)}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) < 2 {
			continue
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		category := fields[0]
		if category == "" {
			continue
		}

		entry := &Entry{
			Category:      category,
			Keywords:      splitValues(fields[1], true),
			Opportunities: splitValues(listField(fields, 2), false),
			Targets:       splitValues(listField(fields, 3), false),
		}
		ix.entries = append(ix.entries, entry)

		for _, kw := range entry.Keywords {
			if _, taken := ix.byKeyword[kw]; !taken {
				ix.byKeyword[kw] = entry
			}
		}
	}

	return ix
}

// Keyword returns the entry owning an exact keyword, or nil. A keyword
// belongs to the first entry that listed it.
func (ix *Index) Keyword(kw string) *Entry {
	return ix.byKeyword[normalize(kw)]
}

// Entries returns the parsed entries in insertion order.
func (ix *Index) Entries() []*Entry {
	return ix.entries
}

// Len returns the number of entries.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Match finds the entry owning the given raw industry string. Matching is
// substring-symmetric: the industry contains a keyword, or a keyword
// contains the industry, case-insensitive after trimming. The first entry
// in insertion order wins; nil when nothing matches.
func (ix *Index) Match(industry string) *Entry {
	ind := normalize(industry)
	if ind == "" {
		return nil
	}
	for _, e := range ix.entries {
		if e.matches(ind) {
			return e
		}
	}
	return nil
}

// Synergy reports whether a person with industry a has a synergy match
// against a person with industry b, from a's perspective: a must map to an
// entry, and b must either direct-match that entry or belong to an entry
// named in a's target list. Directional; call twice to test both sides.
func (ix *Index) Synergy(a, b string) bool {
	ea := ix.Match(a)
	if ea == nil {
		return false
	}
	if ea.matches(normalize(b)) {
		return true
	}
	eb := ix.Match(b)
	if eb == nil {
		return false
	}
	for _, t := range ea.Targets {
		if t == eb.Category {
			return true
		}
	}
	return false
}

// PlacementSynergy is the cheaper symmetric estimate used only during
// greedy placement scoring: true when both industries map to the same
// entry or either entry targets the other. Final room tags come from
// Synergy, never from this.
func (ix *Index) PlacementSynergy(a, b string) bool {
	ea := ix.Match(a)
	eb := ix.Match(b)
	if ea == nil || eb == nil {
		return false
	}
	if ea == eb {
		return true
	}
	return targets(ea, eb.Category) || targets(eb, ea.Category)
}

// matches reports whether a normalized industry hits any keyword of e.
func (e *Entry) matches(ind string) bool {
	if ind == "" {
		return false
	}
	for _, kw := range e.Keywords {
		if strings.Contains(ind, kw) || strings.Contains(kw, ind) {
			return true
		}
	}
	return false
}

// MatchesIndustry reports whether the raw industry string hits any keyword.
func (e *Entry) MatchesIndustry(industry string) bool {
	return e.matches(normalize(industry))
}

func targets(e *Entry, category string) bool {
	for _, t := range e.Targets {
		if t == category {
			return true
		}
	}
	return false
}

// listField returns fields[i] or "" when the trailing field is absent.
func listField(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

// splitValues splits a comma-separated list, trimming each value and
// dropping empties. Keywords are additionally lowercased.
func splitValues(s string, lower bool) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, v := range valueSep.Split(s, -1) {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if lower {
			v = strings.ToLower(v)
		}
		out = append(out, v)
	}
	return out
}

// normalize trims and lowercases an industry string for keyword matching.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

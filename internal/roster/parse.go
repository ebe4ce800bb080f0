package roster

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"
)

// fieldSep splits a roster line into fields on commas or tabs.
var fieldSep = regexp.MustCompile(`[,\t]`)

// roleKeyword pairs a substring with the role it selects. Checked in order;
// the first keyword contained in the override field wins. Both English and
// the original CJK labels are accepted.
var roleKeywords = []struct {
	keyword string
	role    Role
}{
	{"guest", RoleGuest},
	{"來賓", RoleGuest},
	{"member", RoleMember},
	{"會員", RoleMember},
	{"host", RoleHost},
	{"leader", RoleHost},
	{"房長", RoleHost},
}

// Parse converts free-text line input into Person records. Each line is
// `name, industry[, role-override]`, comma or tab separated. Malformed
// lines never fail: a missing name defaults to "unnamed-N" (N = 1-based
// ordinal among parsed lines) and a missing industry defaults to "general".
// The optional third field overrides defaultRole by substring keyword match.
func Parse(text string, defaultRole Role) []Person {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var people []Person
	seen := make(map[string]int)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := fieldSep.Split(line, -1)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		name := field(parts, 0)
		if name == "" {
			name = fmt.Sprintf("unnamed-%d", len(people)+1)
		}
		industry := field(parts, 1)
		if industry == "" {
			industry = "general"
		}

		role := defaultRole
		if override := field(parts, 2); override != "" {
			role = overrideRole(override, defaultRole)
		}

		key := name + "\x00" + industry + "\x00" + string(role)
		seq := seen[key]
		seen[key] = seq + 1

		people = append(people, Person{
			ID:       stableID(name, industry, role, seq),
			Name:     name,
			Industry: industry,
			Role:     role,
		})
	}

	return people
}

// field returns parts[i] or "" when out of range.
func field(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

// overrideRole maps a role-override field to a Role by substring keyword.
func overrideRole(s string, fallback Role) Role {
	lower := strings.ToLower(s)
	for _, rk := range roleKeywords {
		if strings.Contains(lower, rk.keyword) {
			return rk.role
		}
	}
	return fallback
}

// stableID hashes (name, industry, role, seq) into a short base36 token.
// Re-parsing identical input yields identical IDs; seq disambiguates exact
// duplicate lines within one parse.
func stableID(name, industry string, role Role, seq int) string {
	h := fnv.New64a()
	h.Write([]byte(name))
	h.Write([]byte{0})
	h.Write([]byte(industry))
	h.Write([]byte{0})
	h.Write([]byte(role))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(seq)))
	return strconv.FormatUint(h.Sum64(), 36)
}

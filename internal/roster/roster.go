package roster

// Role classifies a person's function at the event.
type Role string

const (
	RoleHost   Role = "host"
	RoleMember Role = "member"
	RoleGuest  Role = "guest"
)

// Person is a single attendee. Immutable once created; the industry string
// is compared case-insensitively after trimming.
type Person struct {
	// ID is stable across re-parses of the same line: it is derived from
	// a hash of (name, industry, role) plus a disambiguating occurrence
	// index for exact duplicates.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Industry is the free-text industry label as entered.
	Industry string `json:"industry"`

	// Role is one of host, member, guest.
	Role Role `json:"role"`
}

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleHost, RoleMember, RoleGuest:
		return true
	}
	return false
}

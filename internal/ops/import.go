package ops

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/yctsai/chamber/internal/errors"
	"github.com/yctsai/chamber/internal/roster"
)

// ImportInput contains parameters for the Import operation. Exactly one of
// Path or CSVText must be set.
type ImportInput struct {
	Path    string // CSV file to read
	CSVText string // inline CSV content
}

// ImportOutput contains the roster text blocks produced from tabular input,
// ready to feed into Group.
type ImportOutput struct {
	HostsText   string `json:"hosts_text"`
	MembersText string `json:"members_text"`
	GuestsText  string `json:"guests_text"`
	Hosts       int    `json:"hosts"`
	Members     int    `json:"members"`
	Guests      int    `json:"guests"`
	Skipped     int    `json:"skipped"`
}

// headerNames maps recognized header cells to canonical column meanings.
// Both English and the original CJK headers are accepted.
var headerNames = map[string]string{
	"name":     "name",
	"姓名":       "name",
	"industry": "industry",
	"產業":       "industry",
	"行業":       "industry",
	"role":     "role",
	"身分":       "role",
	"身份":       "role",
}

// Import converts tabular CSV rows into the line-oriented roster text the
// parser consumes. Columns are resolved from a header row when one is
// present, positionally (name, industry, role) otherwise. Rows without a
// name or industry are skipped; a row without a recognizable role keyword
// defaults to guest.
func Import(input ImportInput) (*ImportOutput, error) {
	if (input.Path == "") == (input.CSVText == "") {
		return nil, errors.NewInvalidRequest("specify exactly one of path or csv_text")
	}

	text := input.CSVText
	if input.Path != "" {
		data, err := os.ReadFile(input.Path)
		if err != nil {
			return nil, errors.NewInvalidRequest(fmt.Sprintf("cannot read %s: %v", input.Path, err))
		}
		text = string(data)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewInvalidRequest("invalid CSV: " + err.Error())
	}
	if len(records) == 0 {
		return &ImportOutput{}, nil
	}

	nameCol, industryCol, roleCol := 0, 1, 2
	rows := records
	if cols, ok := detectHeader(records[0]); ok {
		nameCol, industryCol, roleCol = cols[0], cols[1], cols[2]
		rows = records[1:]
	}

	out := &ImportOutput{}
	var hosts, members, guests []string

	for _, row := range rows {
		name := cell(row, nameCol)
		industry := cell(row, industryCol)
		if name == "" || industry == "" {
			out.Skipped++
			continue
		}

		line := fmt.Sprintf("%s, %s", name, industry)
		switch importRole(cell(row, roleCol)) {
		case roster.RoleHost:
			hosts = append(hosts, line)
		case roster.RoleMember:
			members = append(members, line)
		default:
			guests = append(guests, line)
		}
	}

	out.HostsText = strings.Join(hosts, "\n")
	out.MembersText = strings.Join(members, "\n")
	out.GuestsText = strings.Join(guests, "\n")
	out.Hosts = len(hosts)
	out.Members = len(members)
	out.Guests = len(guests)
	return out, nil
}

// detectHeader reports whether the first record is a header row and, if
// so, returns the (name, industry, role) column indexes. A row counts as a
// header when it names at least the name and industry columns.
func detectHeader(row []string) ([3]int, bool) {
	cols := [3]int{-1, -1, -1}
	for i, c := range row {
		switch headerNames[strings.ToLower(strings.TrimSpace(c))] {
		case "name":
			cols[0] = i
		case "industry":
			cols[1] = i
		case "role":
			cols[2] = i
		}
	}
	if cols[0] == -1 || cols[1] == -1 {
		return cols, false
	}
	if cols[2] == -1 {
		// No role column: point past the row so every cell reads empty.
		cols[2] = len(row)
	}
	return cols, true
}

// cell returns the trimmed cell at index i, or "" when out of range.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// importRole maps a role cell to a roster role, defaulting to guest when
// no keyword is recognized.
var importKeywords = []struct {
	keyword string
	role    roster.Role
}{
	{"host", roster.RoleHost},
	{"leader", roster.RoleHost},
	{"房長", roster.RoleHost},
	{"member", roster.RoleMember},
	{"會員", roster.RoleMember},
}

func importRole(s string) roster.Role {
	lower := strings.ToLower(s)
	for _, rk := range importKeywords {
		if strings.Contains(lower, rk.keyword) {
			return rk.role
		}
	}
	return roster.RoleGuest
}

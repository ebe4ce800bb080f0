package ops

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yctsai/chamber/internal/errors"
)

func TestImport_HeaderDriven(t *testing.T) {
	csvText := "Role,Name,Industry\nHost,Alice,Finance\nMember,Bob,Design\nGuest,Carol,Retail\n,Dave,Legal"

	out, err := Import(ImportInput{CSVText: csvText})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if out.Hosts != 1 || out.Members != 1 || out.Guests != 2 {
		t.Errorf("hosts/members/guests = %d/%d/%d, want 1/1/2", out.Hosts, out.Members, out.Guests)
	}
	if out.HostsText != "Alice, Finance" {
		t.Errorf("HostsText = %q", out.HostsText)
	}
	if out.MembersText != "Bob, Design" {
		t.Errorf("MembersText = %q", out.MembersText)
	}
	// Missing role defaults to guest.
	if !strings.Contains(out.GuestsText, "Dave, Legal") {
		t.Errorf("GuestsText = %q, want Dave as guest", out.GuestsText)
	}
}

func TestImport_LocalizedHeader(t *testing.T) {
	csvText := "姓名,產業,身分\n張三,會計師,房長\n李四,室內設計,會員\n王五,餐廳,來賓"

	out, err := Import(ImportInput{CSVText: csvText})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if out.Hosts != 1 || out.Members != 1 || out.Guests != 1 {
		t.Errorf("hosts/members/guests = %d/%d/%d, want 1/1/1", out.Hosts, out.Members, out.Guests)
	}
	if out.HostsText != "張三, 會計師" {
		t.Errorf("HostsText = %q", out.HostsText)
	}
}

func TestImport_PositionalColumns(t *testing.T) {
	csvText := "Alice,Finance,host\nBob,Design\nCarol,Retail,member"

	out, err := Import(ImportInput{CSVText: csvText})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if out.Hosts != 1 || out.Members != 1 || out.Guests != 1 {
		t.Errorf("hosts/members/guests = %d/%d/%d, want 1/1/1", out.Hosts, out.Members, out.Guests)
	}
}

func TestImport_SkipsIncompleteRows(t *testing.T) {
	csvText := "Alice,Finance\n,Design\nBob,"

	out, err := Import(ImportInput{CSVText: csvText})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if out.Guests != 1 {
		t.Errorf("Guests = %d, want 1", out.Guests)
	}
	if out.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", out.Skipped)
	}
}

func TestImport_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.csv")
	if err := os.WriteFile(path, []byte("Name,Industry\nAlice,Finance"), 0600); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	out, err := Import(ImportInput{Path: path})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if out.Guests != 1 {
		t.Errorf("Guests = %d, want 1", out.Guests)
	}
}

func TestImport_AddressingErrors(t *testing.T) {
	if _, err := Import(ImportInput{}); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Fatalf("err = %v, want INVALID_REQUEST for neither input", err)
	}
	if _, err := Import(ImportInput{Path: "x", CSVText: "y"}); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Fatalf("err = %v, want INVALID_REQUEST for both inputs", err)
	}
	if _, err := Import(ImportInput{Path: "/nonexistent/roster.csv"}); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Fatalf("err = %v, want INVALID_REQUEST for missing file", err)
	}
}

func TestImport_RoundTripIntoGroup(t *testing.T) {
	csvText := "Name,Industry,Role\nAlice,Finance,host\nBob,Accounting,guest\nCarol,Consulting,member"

	imported, err := Import(ImportInput{CSVText: csvText})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	doc, err := Group(testCfg(), GroupInput{
		HostsText:   imported.HostsText,
		MembersText: imported.MembersText,
		GuestsText:  imported.GuestsText,
		TableText:   stringPtr(testTable),
		Seed:        int64Ptr(1),
	})
	if err != nil {
		t.Fatalf("Group failed: %v", err)
	}
	if doc.Stats.TotalPeople != 3 {
		t.Errorf("TotalPeople = %d, want 3", doc.Stats.TotalPeople)
	}
}

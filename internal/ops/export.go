package ops

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/yctsai/chamber/internal/errors"
)

// ExportInput contains parameters for the Export operation.
type ExportInput struct {
	Doc *ResultDoc // required
}

// ExportOutput contains the CSV rendering of a result document.
type ExportOutput struct {
	CSV  string `json:"csv"`
	Rows int    `json:"rows"`
}

// Export flattens a result document into CSV, one row per occupant.
func Export(input ExportInput) (*ExportOutput, error) {
	if input.Doc == nil {
		return nil, errors.NewInvalidRequest("result document is required")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"room_id", "person_id", "name", "industry", "role", "conflict", "synergy"}
	if err := w.Write(header); err != nil {
		return nil, errors.NewInternal(err)
	}

	rows := 0
	for _, room := range input.Doc.Rooms {
		for _, p := range room.Occupants() {
			record := []string{
				room.ID,
				p.ID,
				p.Name,
				p.Industry,
				string(p.Role),
				strconv.FormatBool(idInList(room.ConflictIDs, p.ID)),
				strconv.FormatBool(idInList(room.SynergyIDs, p.ID)),
			}
			if err := w.Write(record); err != nil {
				return nil, errors.NewInternal(err)
			}
			rows++
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &ExportOutput{CSV: buf.String(), Rows: rows}, nil
}

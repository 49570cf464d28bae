package upload

import (
	"errors"
	"fmt"
	"net/http"

	"care-payroll/internal/storage/sheet"
)

const (
	FieldRecords = "records"
	FieldCover   = "cover"
)

var ErrNoRecords = errors.New("records file is required")

// Sheets — номера листов для загруженных книг.
type Sheets struct {
	Records int
	Cover   int
	MaxSize int64
}

// Source собирает источник из multipart-формы: records обязателен, cover нет.
func Source(r *http.Request, sheets Sheets) (*sheet.Storage, error) {
	if err := r.ParseMultipartForm(sheets.MaxSize); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}

	recFile, recHeader, err := r.FormFile(FieldRecords)
	if err != nil {
		return nil, ErrNoRecords
	}
	defer recFile.Close()

	records, err := sheet.ReadAll(recHeader.Filename, recFile, sheets.Records)
	if err != nil {
		return nil, err
	}

	coverFile, coverHeader, err := r.FormFile(FieldCover)
	if errors.Is(err, http.ErrMissingFile) {
		return sheet.New(records, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cover: %w", err)
	}
	defer coverFile.Close()

	cover, err := sheet.ReadAll(coverHeader.Filename, coverFile, sheets.Cover)
	if err != nil {
		return nil, err
	}

	return sheet.New(records, cover), nil
}

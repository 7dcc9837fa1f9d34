package sheets

import (
	"context"
)

// SheetsAPI defines the subset of Google Sheets operations the round store needs.
//
// The Google Sheets API (google.golang.org/api/sheets/v4) uses [][]interface{}
// for cell values. Keep interface{} at this boundary and use the Cell wrapper
// for type-safe value extraction everywhere else.
type SheetsAPI interface {
	// ReadSheet reads values from a sheet range.
	// Use NewCell() to wrap values for type-safe access.
	ReadSheet(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error)

	// UpdateRange updates values in a sheet range
	UpdateRange(ctx context.Context, spreadsheetID, range_ string, values [][]interface{}) error

	// AppendRows appends rows to a sheet
	AppendRows(ctx context.Context, spreadsheetID, range_ string, rows [][]interface{}) error

	// CreateSheet creates a new sheet in the spreadsheet
	CreateSheet(ctx context.Context, spreadsheetID, sheetName string) error

	// SheetExists checks if a sheet with the given name exists
	SheetExists(ctx context.Context, spreadsheetID, sheetName string) (bool, error)
}

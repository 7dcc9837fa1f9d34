package mocks

import (
	"context"
	"sync"
)

// MockSheetsAPI is a test double for sheets.SheetsAPI.
// Reads are answered from Ranges keyed by the exact range string.
type MockSheetsAPI struct {
	mutex sync.Mutex

	// Responses to return
	Ranges         map[string][][]interface{}
	ExistingSheets map[string]bool

	// Errors to return
	ReadSheetError   error
	ReadSheetFailN   int
	UpdateRangeError error
	AppendRowsError  error
	CreateSheetError error
	SheetExistsError error

	// Call tracking
	ReadSheetCalls int
	Updated        map[string][][]interface{}
	Appended       map[string][][]interface{}
	CreatedSheets  []string
}

// NewMockSheetsAPI creates an empty mock
func NewMockSheetsAPI() *MockSheetsAPI {
	return &MockSheetsAPI{
		Ranges:         make(map[string][][]interface{}),
		ExistingSheets: make(map[string]bool),
		Updated:        make(map[string][][]interface{}),
		Appended:       make(map[string][][]interface{}),
	}
}

// ReadSheet returns the configured rows for range_. The first ReadSheetFailN calls fail with ReadSheetError.
func (m *MockSheetsAPI) ReadSheet(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.ReadSheetCalls++
	if m.ReadSheetError != nil && (m.ReadSheetFailN == 0 || m.ReadSheetCalls <= m.ReadSheetFailN) {
		return nil, m.ReadSheetError
	}
	return m.Ranges[range_], nil
}

func (m *MockSheetsAPI) UpdateRange(ctx context.Context, spreadsheetID, range_ string, values [][]interface{}) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.UpdateRangeError != nil {
		return m.UpdateRangeError
	}
	m.Updated[range_] = values
	return nil
}

func (m *MockSheetsAPI) AppendRows(ctx context.Context, spreadsheetID, range_ string, rows [][]interface{}) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.AppendRowsError != nil {
		return m.AppendRowsError
	}
	m.Appended[range_] = append(m.Appended[range_], rows...)
	return nil
}

func (m *MockSheetsAPI) CreateSheet(ctx context.Context, spreadsheetID, sheetName string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.CreateSheetError != nil {
		return m.CreateSheetError
	}
	m.CreatedSheets = append(m.CreatedSheets, sheetName)
	m.ExistingSheets[sheetName] = true
	return nil
}

func (m *MockSheetsAPI) SheetExists(ctx context.Context, spreadsheetID, sheetName string) (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.ExistingSheets[sheetName], m.SheetExistsError
}

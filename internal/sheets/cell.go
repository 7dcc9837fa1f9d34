package sheets

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell provides type-safe access to Google Sheets cell values.
// The Google Sheets API returns [][]interface{}, which we cannot change.
type Cell struct {
	raw interface{}
}

// NewCell creates a Cell from a raw interface{} value from Google Sheets API
func NewCell(raw interface{}) Cell {
	return Cell{raw: raw}
}

// CellAt returns the cell at index i of row, or an empty cell when the row is short.
// The Sheets API drops trailing empty cells from each row.
func CellAt(row []interface{}, i int) Cell {
	if i < 0 || i >= len(row) {
		return Cell{}
	}
	return NewCell(row[i])
}

// String returns the cell value as a trimmed string
func (c Cell) String() string {
	if c.raw == nil {
		return ""
	}
	if s, ok := c.raw.(string); ok {
		return strings.TrimSpace(s)
	}
	return fmt.Sprintf("%v", c.raw)
}

// Int returns the cell value as an int
func (c Cell) Int() int {
	if c.raw == nil {
		return 0
	}
	switch v := c.raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return 0
}

// IntPtr returns the cell value as *int, or nil if empty or not a number
func (c Cell) IntPtr() *int {
	f := c.Float64Ptr()
	if f == nil {
		return nil
	}
	i := int(*f)
	return &i
}

// Float64Ptr returns the cell value as *float64, or nil if empty or not a number
func (c Cell) Float64Ptr() *float64 {
	if c.IsEmpty() {
		return nil
	}
	switch v := c.raw.(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return &f
		}
	}
	return nil
}

// Bool interprets TRUE/Y/YES/1 as true and everything else as false
func (c Cell) Bool() bool {
	b := c.BoolPtr()
	return b != nil && *b
}

// BoolPtr returns nil for an empty cell, otherwise the parsed boolean.
// Unrecognised text is treated as false.
func (c Cell) BoolPtr() *bool {
	if c.IsEmpty() {
		return nil
	}
	var result bool
	switch v := c.raw.(type) {
	case bool:
		result = v
	case float64:
		result = v != 0
	case int:
		result = v != 0
	default:
		switch strings.ToUpper(c.String()) {
		case "TRUE", "Y", "YES", "1", "HIT":
			result = true
		}
	}
	return &result
}

// IsEmpty returns true if the cell contains nil or a blank string
func (c Cell) IsEmpty() bool {
	if c.raw == nil {
		return true
	}
	if s, ok := c.raw.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// Raw returns the underlying interface{} value for Google Sheets API calls.
// This should only be used at the API boundary.
func (c Cell) Raw() interface{} {
	return c.raw
}

package export

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Orders"

var (
	ErrExportNotFound     = errors.New("no orders have been exported yet")
	ErrStorageCorrupt     = errors.New("export file is unreadable")
	ErrStorageWriteFailed = errors.New("export file write failed")
)

// Store owns the orders xlsx file on disk. The backing format has no
// partial updates, so every append loads the full row set, rewrites it to a
// staging file and swaps it into place. The mutex serializes the whole
// load-mutate-write cycle; two overlapping appends would otherwise both
// read the same before-state and one would overwrite the other's row.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// EnsureInitialized creates the file with the header row and column widths
// if it does not exist yet. Calling it on an existing file is a no-op.
func (s *Store) EnsureInitialized() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", ErrStorageCorrupt, err)
	}
	return s.writeAll(nil)
}

// Append adds rec as the last data row. The file is created lazily on the
// first append, so no export file exists until an order has been exported.
func (s *Store) Append(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.loadRows()
	if err != nil {
		return err
	}
	return s.writeAll(append(rows, rec.row()))
}

// Download returns the raw file contents. The swap-on-write in writeAll
// keeps the file on disk complete at all times, so a plain read is safe.
func (s *Store) Download() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrExportNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageCorrupt, err)
	}
	return data, nil
}

func (s *Store) loadRows() ([][]string, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, nil
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageCorrupt, err)
	}
	defer f.Close()

	all, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageCorrupt, err)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[1:], nil
}

func (s *Store) writeAll(rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
	}

	header := make([]interface{}, 0, len(Columns()))
	for _, col := range Columns() {
		header = append(header, col)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
	}
	lastHeaderCell, err := excelize.CoordinatesToCellName(len(Columns()), 1)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastHeaderCell, bold); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
		}
		vals := make([]interface{}, len(row))
		for j, v := range row {
			vals[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &vals); err != nil {
			return fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
		}
	}

	// Widths are presentation state, recomputed relative to the current
	// schema on every write.
	for i, col := range Columns() {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
		}
		width := 15.0
		if wideColumns[col] {
			width = 30.0
		}
		if err := f.SetColWidth(sheetName, name, name, width); err != nil {
			return fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
		}
	}

	// Stage and swap: a failed save leaves the previous file intact.
	// excelize rejects SaveAs targets without a workbook extension, so the
	// staging file must keep the .xlsx suffix.
	tmp := s.path + ".tmp.xlsx"
	if err := f.SaveAs(tmp); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
	}
	return nil
}

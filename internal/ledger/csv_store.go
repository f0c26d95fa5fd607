package ledger

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CSVStore appends quoted, comma-separated rows to a single file,
// writing the header before the first data row. Reads go through
// encoding/csv; writes are rendered by hand because every field is
// double-quoted regardless of content.
type CSVStore struct {
	path   string
	header []string
}

func NewCSVStore(path string, header []string) *CSVStore {
	return &CSVStore{path: path, header: header}
}

func (s *CSVStore) Append(row []string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}
	if info.Size() == 0 {
		if _, err := f.WriteString(quoteLine(s.header)); err != nil {
			f.Close()
			return err
		}
	}

	if _, err := f.WriteString(quoteLine(row)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Find scans existing rows for the dedup key. A missing file simply
// has no rows yet.
func (s *CSVStore) Find(key Key) (bool, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if header {
			header = false
			continue
		}
		if len(record) < 4 {
			continue
		}
		if record[1] == key.BaseIP && record[2] == key.BaseMask && record[3] == key.Requested {
			return true, nil
		}
	}
}

func quoteLine(fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",") + "\n"
}

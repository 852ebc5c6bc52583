// Render delimited tables (TSV / CSV) for the gene and summary outputs

package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Row is one line of a table, fields in header order.
type Row interface {
	Fields() []string
}

type TableOptions struct {
	Delimiter rune
	UseCRLF   bool
}

var (
	// Tab-separated with CRLF, as Python's csv.DictWriter writes.
	TSV = TableOptions{Delimiter: '\t', UseCRLF: true}
	CSV = TableOptions{Delimiter: ',', UseCRLF: false}
)

// WriteTable writes header then every row. The header is written even when rows is empty.
// The record terminator follows opts; newlines inside a quoted field are kept as they are.
func WriteTable[R Row](w io.Writer, header []string, rows []R, opts TableOptions) error {

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if opts.Delimiter != 0 {
		writer.Comma = opts.Delimiter
	}

	terminator := []byte("\n")
	if opts.UseCRLF {
		terminator = []byte("\r\n")
	}

	// One record at a time so only the final "\n" becomes the terminator.
	writeRecord := func(fields []string) error {
		buf.Reset()
		if err := writer.Write(fields); err != nil {
			return err
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return err
		}
		record := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
		if _, err := w.Write(record); err != nil {
			return err
		}
		_, err := w.Write(terminator)
		return err
	}

	if err := writeRecord(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		if err := writeRecord(row.Fields()); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	return nil
}

// WriteTableFile creates path and writes the table into it.
func WriteTableFile[R Row](path string, header []string, rows []R, opts TableOptions) (err error) {

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := WriteTable(f, header, rows, opts); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// StagedTable is a table written to a temporary file next to its destination.
// Nothing appears at Path until Commit.
type StagedTable struct {
	Path string
	tmp  string
}

// StageTableFile writes the table into a temporary file in the directory of path.
func StageTableFile[R Row](path string, header []string, rows []R, opts TableOptions) (staged *StagedTable, err error) {

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, err
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(f.Name())
			staged = nil
		}
	}()

	// CreateTemp makes the file 0600
	if err := f.Chmod(0o644); err != nil {
		return nil, err
	}

	if err := WriteTable(f, header, rows, opts); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &StagedTable{Path: path, tmp: f.Name()}, nil
}

// Commit moves the staged file into place.
func (s *StagedTable) Commit() error {
	return os.Rename(s.tmp, s.Path)
}

// Discard removes the staged file.
func (s *StagedTable) Discard() {
	_ = os.Remove(s.tmp)
}

// CommitAll moves every staged table into place. After the first failure the rest are discarded.
func CommitAll(staged []*StagedTable) error {
	for i, s := range staged {
		if err := s.Commit(); err != nil {
			DiscardAll(staged[i:])
			return fmt.Errorf("%s: %w", s.Path, err)
		}
	}
	return nil
}

// DiscardAll removes every staged table.
func DiscardAll(staged []*StagedTable) {
	for _, s := range staged {
		s.Discard()
	}
}

package mapping

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// translatorRelPath locates the code translator source relative to the
// tool's own location in the cranelift tree.
const translatorRelPath = "../../../../wasm/src/code_translator.rs"

// ReadOperators loads the operator catalog from two-column CSV rows of
// (operator, proposal) with no header. Catalog order is preserved.
func ReadOperators(r io.Reader) ([]Operator, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	ops := []Operator{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading operator catalog: %w", err)
		}
		ops = append(ops, Operator{Op: row[0], Proposal: row[1]})
	}
	return ops, nil
}

// SourcePath returns the default path of the code translator source,
// resolved against the directory containing the running executable.
func SourcePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), translatorRelPath), nil
}

// Package mapping assembles and persists the wasm-to-CLIF dataset: the
// operator catalog joined with the translations extracted from the code
// translator source. The dataset is the boundary artifact between the
// extraction pipeline and tag derivation; the two sides are correlated
// only by operator name, never by index.
package mapping

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mmcloughlin/arrival/internal/extractor"
)

// Operator is one catalog entry: a wasm operator and the proposal it
// belongs to.
type Operator struct {
	Op       string `json:"op"`
	Proposal string `json:"proposal"`
}

// Dataset is the persisted mapping artifact.
type Dataset struct {
	Operators    []Operator              `json:"operators"`
	Translations []extractor.Translation `json:"translations"`
}

// Build assembles the dataset from the catalog and translation list. It
// performs no cross-referencing: a translation may name an operator
// absent from the catalog, and the tag deriver tolerates that by
// skipping it.
func Build(ops []Operator, translations []extractor.Translation) Dataset {
	return Dataset{
		Operators:    ops,
		Translations: translations,
	}
}

// Write serializes the dataset as tab-indented JSON with a trailing
// newline. The byte output is deterministic for a given dataset.
func Write(w io.Writer, ds Dataset) error {
	data, err := json.MarshalIndent(ds, "", "\t")
	if err != nil {
		return fmt.Errorf("marshaling dataset: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}
	return nil
}

// Read deserializes a dataset written by Write.
func Read(r io.Reader) (Dataset, error) {
	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return Dataset{}, fmt.Errorf("decoding dataset: %w", err)
	}
	return ds, nil
}

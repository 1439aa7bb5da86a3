// Package tags derives per-instruction tag sets from an assembled
// mapping dataset: each CLIF instruction is labeled with the proposals
// and semantic categories of the wasm operators that can produce it.
package tags

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	log "github.com/xuperchain/log15"

	"github.com/mmcloughlin/arrival/internal/mapping"
)

var logger = log.New("module", "tags")

// Scope controls which operators contribute tags: the proposal must be
// in scope and the category must not be ignored.
type Scope struct {
	Proposals        map[string]bool
	IgnoreCategories map[string]bool
}

// NewScope builds a Scope from proposal and ignored-category lists.
func NewScope(proposals, ignoreCategories []string) Scope {
	s := Scope{
		Proposals:        make(map[string]bool, len(proposals)),
		IgnoreCategories: make(map[string]bool, len(ignoreCategories)),
	}
	for _, p := range proposals {
		s.Proposals[p] = true
	}
	for _, c := range ignoreCategories {
		s.IgnoreCategories[c] = true
	}
	return s
}

// UnclassifiedOperatorError reports an operator matching no
// classification rule. Every known operator must have a category, so
// this is fatal.
type UnclassifiedOperatorError struct {
	Op string
}

func (e *UnclassifiedOperatorError) Error() string {
	return fmt.Sprintf("no category for %s", e.Op)
}

// Build derives the tag map from a dataset. Operators without a catalog
// entry are logged and skipped: partial proposal coverage in the catalog
// is tolerated, and other operators sharing the translation still
// contribute. Tag lists are returned sorted per instruction.
func Build(ds mapping.Dataset, scope Scope, classifier *Classifier) (map[string][]string, error) {
	proposals := make(map[string]string, len(ds.Operators))
	for _, op := range ds.Operators {
		proposals[op.Op] = op.Proposal
	}

	tagSets := make(map[string]map[string]bool)
	for _, translation := range ds.Translations {
		for _, op := range translation.Operators {
			proposal, ok := proposals[op]
			if !ok {
				logger.Warn("operator missing from catalog", "op", op)
				continue
			}
			if !scope.Proposals[proposal] {
				logger.Debug("proposal not in scope", "op", op, "proposal", proposal)
				continue
			}

			category, ok := classifier.Category(op)
			if !ok {
				return nil, &UnclassifiedOperatorError{Op: op}
			}
			if scope.IgnoreCategories[category] {
				logger.Debug("category not in scope", "op", op, "category", category)
				continue
			}

			for _, instruction := range translation.Instructions {
				set, ok := tagSets[instruction]
				if !ok {
					set = make(map[string]bool)
					tagSets[instruction] = set
				}
				set["wasm_proposal_"+proposal] = true
				set["wasm_category_"+category] = true
			}
		}
	}

	tagMap := make(map[string][]string, len(tagSets))
	for instruction, set := range tagSets {
		list := make([]string, 0, len(set))
		for tag := range set {
			list = append(list, tag)
		}
		sort.Strings(list)
		tagMap[instruction] = list
	}
	return tagMap, nil
}

// Write serializes a tag map as tab-indented JSON with a trailing
// newline. Map keys serialize in sorted order, so output is
// deterministic.
func Write(w io.Writer, tagMap map[string][]string) error {
	data, err := json.MarshalIndent(tagMap, "", "\t")
	if err != nil {
		return fmt.Errorf("marshaling tags: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing tags: %w", err)
	}
	return nil
}

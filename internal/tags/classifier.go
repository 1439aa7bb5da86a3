package tags

import "strings"

// Classifier assigns wasm operators to semantic categories. The
// structural rules are tried first, in order; operators matching none of
// them fall through to the exact-match table. The classifier is plain
// data so tests can substitute alternate tables.
type Classifier struct {
	LocalPrefix  string
	GlobalPrefix string
	LoadMarker   string
	StoreMarker  string
	ConstSuffix  string
	Exact        map[string]string
}

// DefaultClassifier returns the standard wasm operator classification.
func DefaultClassifier() *Classifier {
	return &Classifier{
		LocalPrefix:  "Local",
		GlobalPrefix: "Global",
		LoadMarker:   "Load",
		StoreMarker:  "Store",
		ConstSuffix:  "Const",
		Exact:        defaultCategories,
	}
}

// Category classifies an operator name. The second return is false when
// the operator matches no rule and has no table entry.
func (c *Classifier) Category(op string) (string, bool) {
	switch {
	case strings.HasPrefix(op, c.LocalPrefix):
		return "locals", true
	case strings.HasPrefix(op, c.GlobalPrefix):
		return "globals", true
	case strings.Contains(op, c.LoadMarker):
		return "loads", true
	case strings.Contains(op, c.StoreMarker):
		return "stores", true
	case strings.HasSuffix(op, c.ConstSuffix):
		return "const", true
	}
	category, ok := c.Exact[op]
	return category, ok
}

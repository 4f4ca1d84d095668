package query

// UsesSimplifiedDialect reports whether node or any descendant carries an
// "and", "or" or "not" key. It recurses into object values and list
// elements, including below canonical compound keys, so a simplified
// fragment buried inside an otherwise canonical tree is still detected.
//
// Callers use this to skip Canonicalize when it would be a no-op; the
// probe is an allocation-free optimization, not a correctness requirement,
// since canonicalization is idempotent on trees lacking simplified keys.
func UsesSimplifiedDialect(node any) bool {
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			if key == keyAnd || key == keyOr || key == keyNot {
				return true
			}
			if UsesSimplifiedDialect(child) {
				return true
			}
		}
	case []any:
		for _, child := range v {
			if UsesSimplifiedDialect(child) {
				return true
			}
		}
	}
	return false
}

package render

import "github.com/zoobzio/relq/internal/types"

// Dialect is the policy a Compiler consults: quoting, placeholders, feature
// set and refusal hints.
type Dialect interface {
	Name() string
	EscapeIdentifier(name string) string
	FormatPlaceholder(index int) string
	Capabilities() Capabilities
	// Hint suggests an alternative for an unsupported feature, or "".
	Hint(feature string) string
}

// UpsertWriter is implemented by dialects whose upsert clause differs from
// ON CONFLICT.
type UpsertWriter interface {
	WriteUpsert(c *Compiler, w *Writer, stmt *types.InsertStatement)
}

// PaginationWriter is implemented by dialects whose paging clause differs
// from LIMIT/OFFSET.
type PaginationWriter interface {
	WritePagination(c *Compiler, w *Writer, stmt *types.SelectStatement)
}

// EscapeQuoted wraps name in open/close, doubling every close character.
func EscapeQuoted(name string, open, close byte) string {
	buf := make([]byte, 0, len(name)+2)
	buf = append(buf, open)
	for i := 0; i < len(name); i++ {
		if name[i] == close {
			buf = append(buf, close)
		}
		buf = append(buf, name[i])
	}
	buf = append(buf, close)
	return string(buf)
}

package render

import (
	"fmt"
	"strings"

	"github.com/zoobzio/relq/internal/types"
)

// Writer accumulates SQL text and the bind values referenced by it. Every
// placeholder is written through PushValue, which appends the value in the
// same step, so the Nth placeholder always corresponds to the Nth value.
//
// A Writer records the first error it sees; later writes are no-ops and
// Finish returns that error.
type Writer struct {
	err    error
	sql    strings.Builder
	values types.Values
	offset int
}

// NewWriter returns a writer whose first placeholder index is offset+1.
// Nested statements are compiled with the parent's Position as offset so
// positional placeholders keep counting across the splice.
func NewWriter(offset int) *Writer {
	return &Writer{offset: offset}
}

// Err returns the first recorded error.
func (w *Writer) Err() error {
	return w.err
}

// Fail records err unless an earlier error is already recorded.
func (w *Writer) Fail(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Position is the number of placeholders emitted so far, including the
// offset the writer started at.
func (w *Writer) Position() int {
	return w.offset + len(w.values)
}

// Push appends raw text.
func (w *Writer) Push(s string) {
	if w.err != nil {
		return
	}
	w.sql.WriteString(s)
}

// PushSpace appends a single space unless the buffer is empty or already
// ends in a space or an opening parenthesis.
func (w *Writer) PushSpace() {
	if w.err != nil || w.sql.Len() == 0 {
		return
	}
	s := w.sql.String()
	switch s[len(s)-1] {
	case ' ', '(':
		return
	}
	w.sql.WriteByte(' ')
}

// PushKeyword appends a keyword separated from the preceding text.
func (w *Writer) PushKeyword(kw string) {
	w.PushSpace()
	w.Push(kw)
}

// PushIdentifier appends name quoted by escape.
func (w *Writer) PushIdentifier(name string, escape func(string) string) {
	if w.err != nil {
		return
	}
	if name == "" {
		w.Fail(fmt.Errorf("%w: empty identifier", ErrInvalidExpr))
		return
	}
	w.sql.WriteString(escape(name))
}

// PushValue appends the placeholder for v and records v.
func (w *Writer) PushValue(v types.Value, placeholder func(int) string) {
	if w.err != nil {
		return
	}
	if !v.IsValid() {
		w.Fail(fmt.Errorf("%w: cannot bind value of type %T", ErrInvalidExpr, v.Raw()))
		return
	}
	w.values = append(w.values, v)
	w.sql.WriteString(placeholder(w.Position()))
}

// AppendValues records values already referenced by spliced text.
func (w *Writer) AppendValues(values types.Values) {
	if w.err != nil {
		return
	}
	w.values = append(w.values, values...)
}

// Splice appends the output of a nested compilation: its text and its
// values, in that order.
func (w *Writer) Splice(sql string, values types.Values, err error) {
	if err != nil {
		w.Fail(err)
		return
	}
	w.Push(sql)
	w.AppendValues(values)
}

// Finish returns the accumulated text and values, or the first error.
func (w *Writer) Finish() (string, types.Values, error) {
	if w.err != nil {
		return "", nil, w.err
	}
	return w.sql.String(), w.values, nil
}

// PushList writes each item with fn, separated by sep.
func PushList[T any](w *Writer, items []T, sep string, fn func(*Writer, T)) {
	for i, item := range items {
		if w.err != nil {
			return
		}
		if i > 0 {
			w.Push(sep)
		}
		fn(w, item)
	}
}

package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindBytes
	KindTime
	KindJSON
	KindArray
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindNull:    "null",
	KindBool:    "bool",
	KindInt:     "int64",
	KindUint:    "uint64",
	KindFloat:   "float64",
	KindString:  "string",
	KindBytes:   "bytes",
	KindTime:    "time",
	KindJSON:    "json",
	KindArray:   "array",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a single bindable SQL value. Values are immutable once constructed;
// byte slices are copied on the way in.
type Value struct {
	raw   any
	s     string
	t     time.Time
	bytes []byte
	arr   []Value
	i     int64
	u     uint64
	f     float64
	kind  Kind
	b     bool
}

// Null returns the SQL NULL value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns a signed integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Uint returns an unsigned integer value.
func Uint(u uint64) Value { return Value{kind: KindUint, u: u} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a text value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Bytes returns a binary value.
func Bytes(b []byte) Value {
	if b == nil {
		return Null()
	}
	return Value{kind: KindBytes, bytes: append([]byte(nil), b...)}
}

// Time returns a timestamp value.
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// JSON returns a JSON document value. The document is not validated.
func JSON(doc []byte) Value {
	if doc == nil {
		return Null()
	}
	return Value{kind: KindJSON, bytes: append([]byte(nil), doc...)}
}

// Array returns an array value. Only dialects with native array types can bind it.
func Array(items ...Value) Value {
	return Value{kind: KindArray, arr: append([]Value(nil), items...)}
}

// NewValue converts a Go value into a Value. Unsupported types produce a
// KindInvalid value, which fails when it is written into a statement.
func NewValue(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Uint(uint64(x))
	case uint8:
		return Uint(uint64(x))
	case uint16:
		return Uint(uint64(x))
	case uint32:
		return Uint(uint64(x))
	case uint64:
		return Uint(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case string:
		return String(x)
	case []byte:
		return Bytes(x)
	case json.RawMessage:
		return JSON(x)
	case time.Time:
		return Time(x)
	case driver.Valuer:
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return Null()
		}
		dv, err := x.Value()
		if err != nil {
			return Value{kind: KindInvalid, raw: v}
		}
		return NewValue(dv)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return Null()
		}
		return NewValue(rv.Elem().Interface())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Uint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())
		for i := range items {
			items[i] = NewValue(rv.Index(i).Interface())
		}
		return Value{kind: KindArray, arr: items}
	}
	return Value{kind: KindInvalid, raw: v}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether the value can be bound.
func (v Value) IsValid() bool {
	if v.kind == KindInvalid {
		return false
	}
	for _, item := range v.arr {
		if !item.IsValid() {
			return false
		}
	}
	return true
}

// Items returns the elements of an array value.
func (v Value) Items() []Value { return append([]Value(nil), v.arr...) }

// Raw returns the unconverted Go value behind an invalid value.
func (v Value) Raw() any { return v.raw }

// Interface returns the value in the shape database/sql drivers accept.
// Arrays come back as []any and need a dialect specific conversion.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindUint:
		return v.u
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindBytes:
		return append([]byte(nil), v.bytes...)
	case KindTime:
		return v.t
	case KindJSON:
		return string(v.bytes)
	case KindArray:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Interface()
		}
		return out
	case KindInvalid:
		return v.raw
	default:
		return nil
	}
}

// String renders the value for logs and error messages. It is never used to
// build SQL text.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindUint:
		return strconv.FormatUint(v.u, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.s)
	case KindBytes:
		return fmt.Sprintf("bytes(%d)", len(v.bytes))
	case KindTime:
		return v.t.Format(time.RFC3339Nano)
	case KindJSON:
		return string(v.bytes)
	case KindArray:
		s := "["
		for i, item := range v.arr {
			if i > 0 {
				s += ", "
			}
			s += item.String()
		}
		return s + "]"
	default:
		return fmt.Sprintf("invalid(%T)", v.raw)
	}
}

// Values is the ordered list of bind values produced by a compilation.
// Position i holds the value for the i-th placeholder in the SQL text.
type Values []Value

// Len returns the number of values.
func (vs Values) Len() int { return len(vs) }

// Args returns the values as driver arguments, in placeholder order.
func (vs Values) Args() []any {
	args := make([]any, len(vs))
	for i, v := range vs {
		args[i] = v.Interface()
	}
	return args
}

// Strings renders every value with Value.String.
func (vs Values) Strings() []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}

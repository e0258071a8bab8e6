package relq

import (
	"github.com/zoobzio/relq/internal/render"
	"github.com/zoobzio/relq/internal/types"
)

// Dialect is a QueryBuilder that also reports its name and feature set.
// Implementations live in the postgres, mysql, sqlite and mssql packages.
type Dialect interface {
	types.QueryBuilder
	Name() string
	Capabilities() Capabilities
}

// Capabilities describes the SQL features supported by a dialect.
type Capabilities = render.Capabilities

// RowLockingLevel indicates the level of row-level locking support.
type RowLockingLevel = render.RowLockingLevel

// Re-export row locking levels for public API.
const (
	RowLockingNone  = render.RowLockingNone
	RowLockingBasic = render.RowLockingBasic
	RowLockingFull  = render.RowLockingFull
)

// UnsupportedFeatureError is returned when a statement uses a construct the
// dialect cannot express.
type UnsupportedFeatureError = render.UnsupportedFeatureError

// Errors returned for malformed statements. Match with errors.Is.
var (
	ErrNoTable        = render.ErrNoTable
	ErrRowLength      = render.ErrRowLength
	ErrEmptyStatement = render.ErrEmptyStatement
	ErrEmptyList      = render.ErrEmptyList
	ErrInvalidExpr    = render.ErrInvalidExpr
)

// IsUnsupported reports whether err is, or wraps, an UnsupportedFeatureError.
func IsUnsupported(err error) bool {
	return render.IsUnsupported(err)
}

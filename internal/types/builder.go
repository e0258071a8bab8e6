package types

// QueryBuilder compiles statements for one SQL dialect. Implementations are
// stateless and safe for concurrent use.
type QueryBuilder interface {
	// EscapeIdentifier quotes name, doubling any embedded quote character.
	EscapeIdentifier(name string) string
	// FormatPlaceholder returns the placeholder for the 1-based value index.
	FormatPlaceholder(index int) string

	BuildSelect(stmt *SelectStatement) (string, Values, error)
	BuildInsert(stmt *InsertStatement) (string, Values, error)
	BuildUpdate(stmt *UpdateStatement) (string, Values, error)
	BuildDelete(stmt *DeleteStatement) (string, Values, error)

	BuildCreateTable(stmt *CreateTableStatement) (string, Values, error)
	BuildDropTable(stmt *DropTableStatement) (string, Values, error)
	BuildCreateIndex(stmt *CreateIndexStatement) (string, Values, error)
	BuildDropIndex(stmt *DropIndexStatement) (string, Values, error)
	BuildTruncate(stmt *TruncateStatement) (string, Values, error)
}

// Statement is any compilable statement.
type Statement interface {
	Build(qb QueryBuilder) (string, Values, error)
}

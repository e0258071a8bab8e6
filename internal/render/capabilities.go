package render

// RowLockingLevel indicates the level of row-level locking support.
type RowLockingLevel int

const (
	RowLockingNone  RowLockingLevel = iota // No row locking
	RowLockingBasic                        // FOR UPDATE, FOR SHARE
	RowLockingFull                         // + FOR NO KEY UPDATE, FOR KEY SHARE
)

// Feature names used in UnsupportedFeatureError.
const (
	FeatureReturning              = "RETURNING"
	FeatureFullOuterJoin          = "FULL OUTER JOIN"
	FeatureJoinUsing              = "JOIN USING"
	FeatureDistinctOn             = "DISTINCT ON"
	FeatureDistinctRow            = "DISTINCTROW"
	FeatureIntersect              = "INTERSECT"
	FeatureExcept                 = "EXCEPT"
	FeatureIndexHints             = "index hints"
	FeatureILike                  = "ILIKE"
	FeatureNullsOrdering          = "NULLS FIRST/LAST"
	FeatureGroupsFrame            = "GROUPS frame"
	FeatureQuantifiedSubquery     = "ANY/ALL/SOME subqueries"
	FeatureUpsert                 = "upsert"
	FeatureRowLocking             = "row locking"
	FeatureArrayValues            = "array values"
	FeatureOffsetWithoutLimit     = "OFFSET without LIMIT"
	FeaturePaginationWithoutOrder = "LIMIT/OFFSET without ORDER BY"
	FeatureTruncate               = "TRUNCATE"
	FeatureTableIfNotExists       = "CREATE TABLE IF NOT EXISTS"
	FeatureIndexIfNotExists       = "CREATE INDEX IF NOT EXISTS"
	FeatureDropIndexIfExists      = "DROP INDEX IF EXISTS"
	FeatureCascade                = "CASCADE"
	FeatureAutoIncrement          = "auto-increment columns"
)

// Capabilities describes the SQL features supported by a dialect.
type Capabilities struct {
	Returning              bool            // RETURNING clause
	FullOuterJoin          bool            // FULL OUTER JOIN
	JoinUsing              bool            // JOIN ... USING (cols)
	DistinctOn             bool            // DISTINCT ON (expr, ...)
	DistinctRow            bool            // DISTINCTROW
	Intersect              bool            // INTERSECT and EXCEPT
	IndexHints             bool            // USE/FORCE/IGNORE INDEX
	CaseInsensitiveLike    bool            // ILIKE operator
	NullsOrdering          bool            // ORDER BY ... NULLS FIRST/LAST
	GroupsFrame            bool            // GROUPS window frames
	QuantifiedSubquery     bool            // ANY/ALL/SOME (subquery)
	Upsert                 bool            // ON CONFLICT / ON DUPLICATE KEY
	ArrayValues            bool            // array bind values
	OffsetWithoutLimit     bool            // OFFSET with no LIMIT
	PaginationWithoutOrder bool            // LIMIT/OFFSET with no ORDER BY
	RecursiveKeyword       bool            // WITH RECURSIVE spelling
	RowLocking             RowLockingLevel // FOR UPDATE/SHARE support

	Truncate           bool // TRUNCATE TABLE
	TableIfNotExists   bool // CREATE TABLE IF NOT EXISTS
	IndexIfNotExists   bool // CREATE INDEX IF NOT EXISTS
	DropIndexIfExists  bool // DROP INDEX IF EXISTS
	DropCascade        bool // DROP TABLE / TRUNCATE ... CASCADE
	IndexNamesPerTable bool // DROP INDEX name ON table
}

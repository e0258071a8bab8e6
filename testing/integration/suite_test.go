package integration

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/dbml"
	"go.uber.org/zap/zaptest"

	"github.com/zoobzio/relq"
	"github.com/zoobzio/relq/exec"
)

// schema names the column types one backend uses. Every backend gets the
// same two tables with the same data so the shared suite can assert
// identical results.
type schema struct {
	integer  string
	username string
	status   string
	boolean  string
	userCols []relq.ColumnDef
}

// orders is described as a DBML table, the way schemas arrive from tooling.
func (s schema) orders() *dbml.Table {
	t := dbml.NewTable("orders")
	t.AddColumn(dbml.NewColumn("id", s.integer))
	t.AddColumn(dbml.NewColumn("user_id", s.integer))
	t.AddColumn(dbml.NewColumn("total", s.integer))
	t.AddColumn(dbml.NewColumn("status", s.status))
	return t
}

func (s schema) statements() []relq.Statement {
	users := relq.CreateTable("users").
		AddColumn(relq.ColumnDef{Name: "id", Type: s.integer, PrimaryKey: true}).
		AddColumn(relq.ColumnDef{Name: "username", Type: s.username, NotNull: true}).
		AddColumn(relq.ColumnDef{Name: "age", Type: s.integer, NotNull: true}).
		AddColumn(relq.ColumnDef{Name: "active", Type: s.boolean, NotNull: true})
	for _, col := range s.userCols {
		users.AddColumn(col)
	}
	return []relq.Statement{
		relq.DropTable("orders").SetIfExists(),
		relq.DropTable("users").SetIfExists(),
		users,
		relq.CreateIndex("idx_username").SetUnique().On("users", "username"),
		relq.CreateTableFromDBML(s.orders()).SetPrimaryKey("id"),
	}
}

func newRunner(t *testing.T, db *sql.DB, d relq.Dialect, s schema) *exec.Runner {
	t.Helper()
	ctx := context.Background()
	r := exec.New(db, d, exec.WithLogger(zaptest.NewLogger(t)))
	for _, stmt := range s.statements() {
		if _, err := r.Exec(ctx, stmt); err != nil {
			t.Fatalf("Failed to execute DDL: %v", err)
		}
	}
	seed(t, r)
	return r
}

func seed(t *testing.T, r *exec.Runner) {
	t.Helper()
	ctx := context.Background()

	_, err := r.Exec(ctx, relq.Insert().
		Into("users").
		SetColumns("id", "username", "age", "active").
		AddRow(1, "alice", 30, true).
		AddRow(2, "bob", 41, true).
		AddRow(3, "carol", 25, false))
	require.NoError(t, err)

	_, err = r.Exec(ctx, relq.Insert().
		Into("orders").
		SetColumns("id", "user_id", "total", "status").
		AddRow(1, 1, 100, "paid").
		AddRow(2, 2, 50, "paid").
		AddRow(3, 3, 10, "paid").
		AddRow(4, 2, 500, "pending"))
	require.NoError(t, err)
}

func queryStrings(t *testing.T, r *exec.Runner, stmt relq.Statement) []string {
	t.Helper()
	rows, err := r.Query(context.Background(), stmt)
	require.NoError(t, err)
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		require.NoError(t, rows.Scan(&s))
		out = append(out, s)
	}
	require.NoError(t, rows.Err())
	return out
}

func queryInt(t *testing.T, r *exec.Runner, stmt relq.Statement) int64 {
	t.Helper()
	row, err := r.QueryRow(context.Background(), stmt)
	require.NoError(t, err)
	var n int64
	require.NoError(t, row.Scan(&n))
	return n
}

// runSuite exercises the statements every dialect can express.
func runSuite(t *testing.T, r *exec.Runner) {
	ctx := context.Background()

	t.Run("select where", func(t *testing.T) {
		names := queryStrings(t, r, relq.Select().
			Columns("username").
			FromTable("users").
			AndWhere(relq.Eq(relq.Col("active"), true)).
			OrderBy("username", relq.Asc))
		assert.Equal(t, []string{"alice", "bob"}, names)
	})

	t.Run("cte with subquery", func(t *testing.T) {
		paid := relq.Select().Columns("user_id").FromTable("orders").AndWhere(relq.Eq(relq.Col("status"), "paid"))
		names := queryStrings(t, r, relq.Select().
			With("paid", paid).
			Columns("username").
			FromTable("users").
			AndWhere(relq.In(relq.Col("id"), relq.Select().Columns("user_id").FromTable("paid"))).
			AndWhere(relq.Gt(relq.Col("age"), 26)).
			OrderBy("username", relq.Asc))
		assert.Equal(t, []string{"alice", "bob"}, names)
	})

	t.Run("join group having", func(t *testing.T) {
		rows, err := r.Query(ctx, relq.Select().
			Column(relq.TCol("u", "username")).
			ExprAs(relq.Sum(relq.TCol("o", "total")), "spent").
			FromTable(relq.TblAs("users", "u")).
			InnerJoin(relq.TblAs("orders", "o"), relq.Eq(relq.TCol("o", "user_id"), relq.TCol("u", "id"))).
			AndWhere(relq.Eq(relq.TCol("o", "status"), "paid")).
			GroupByCol(relq.TCol("u", "username")).
			AndHaving(relq.Gt(relq.Sum(relq.TCol("o", "total")), 20)).
			OrderBy(relq.Col("spent"), relq.Desc))
		require.NoError(t, err)
		defer rows.Close()

		got := map[string]int64{}
		var order []string
		for rows.Next() {
			var name string
			var spent int64
			require.NoError(t, rows.Scan(&name, &spent))
			got[name] = spent
			order = append(order, name)
		}
		require.NoError(t, rows.Err())
		assert.Equal(t, map[string]int64{"alice": 100, "bob": 50}, got)
		assert.Equal(t, []string{"alice", "bob"}, order)
	})

	t.Run("pagination", func(t *testing.T) {
		names := queryStrings(t, r, relq.Select().
			Columns("username").
			FromTable("users").
			OrderBy("id", relq.Asc).
			SetLimit(2).
			SetOffset(1))
		assert.Equal(t, []string{"bob", "carol"}, names)
	})

	t.Run("union all", func(t *testing.T) {
		names := queryStrings(t, r, relq.Select().
			Columns("username").
			FromTable("users").
			AndWhere(relq.Lt(relq.Col("age"), 26)).
			AddUnion(relq.UnionAll, relq.Select().Columns("username").FromTable("users").AndWhere(relq.Gt(relq.Col("age"), 40))))
		assert.ElementsMatch(t, []string{"carol", "bob"}, names)
	})

	t.Run("in list and between", func(t *testing.T) {
		n := queryInt(t, r, relq.Select().
			Expr(relq.Count(nil)).
			FromTable("users").
			CondWhere(relq.Any(
				relq.In(relq.Col("username"), "alice", "carol"),
				relq.Between(relq.Col("age"), 40, 45),
			)))
		assert.Equal(t, int64(3), n)
	})

	t.Run("update expression", func(t *testing.T) {
		res, err := r.Exec(ctx, relq.Update().
			SetTable("users").
			Set("age", relq.Add(relq.Col("age"), 1)).
			AndWhere(relq.Eq(relq.Col("username"), "carol")))
		require.NoError(t, err)
		affected, err := res.RowsAffected()
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		age := queryInt(t, r, relq.Select().Columns("age").FromTable("users").AndWhere(relq.Eq(relq.Col("id"), 3)))
		assert.Equal(t, int64(26), age)
	})

	t.Run("delete", func(t *testing.T) {
		_, err := r.Exec(ctx, relq.Delete().FromTable("orders").AndWhere(relq.Eq(relq.Col("status"), "pending")))
		require.NoError(t, err)

		n := queryInt(t, r, relq.Select().Expr(relq.Count(nil)).FromTable("orders"))
		assert.Equal(t, int64(3), n)
	})

	t.Run("schema statements", func(t *testing.T) {
		run := func(stmt relq.Statement) {
			t.Helper()
			_, err := r.Exec(ctx, stmt)
			require.NoError(t, err)
		}
		caps := r.Dialect().Capabilities()

		run(relq.DropTable("scratch").SetIfExists())
		run(relq.CreateTable("scratch").
			AddColumn(relq.ColumnDef{Name: "id", Type: "INT", PrimaryKey: true}).
			AddColumn(relq.ColumnDef{Name: "n", Type: "INT", NotNull: true, Default: relq.Cust("0")}))
		run(relq.CreateIndex("idx_scratch_n").On("scratch").AddColumnDesc("n"))
		run(relq.Insert().Into("scratch").SetColumns("id").AddRow(1).AddRow(2))
		assert.Equal(t, int64(0), queryInt(t, r, relq.Select().Expr(relq.Sum(relq.Col("n"))).FromTable("scratch")))

		if caps.Truncate {
			run(relq.Truncate("scratch"))
		} else {
			_, err := r.Exec(ctx, relq.Truncate("scratch"))
			require.True(t, relq.IsUnsupported(err))
			run(relq.Delete().FromTable("scratch"))
		}
		assert.Equal(t, int64(0), queryInt(t, r, relq.Select().Expr(relq.Count(nil)).FromTable("scratch")))

		run(relq.DropIndex("idx_scratch_n").On("scratch"))
		run(relq.DropTable("scratch"))
	})
}

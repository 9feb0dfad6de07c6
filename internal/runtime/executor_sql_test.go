package runtime

import (
	"context"
	"testing"

	"github.com/goliatone/go-udos/internal/storage"
	"github.com/goliatone/go-udos/pkg/interfaces"
)

func newTestDB(tb testing.TB) storage.Executor {
	tb.Helper()
	db, err := storage.Open(":memory:")
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	// Every pooled connection sees its own :memory: database; keep one.
	db.SetMaxOpenConns(1)
	tb.Cleanup(func() { db.Close() })

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, `CREATE TABLE crew (name TEXT, role TEXT)`); err != nil {
		tb.Fatalf("create table: %v", err)
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO crew (name, role) VALUES ('Ada', 'pilot'), ('Grace', 'engineer')`); err != nil {
		tb.Fatalf("seed table: %v", err)
	}
	return db
}

func TestSQLExecutorUnconfigured(t *testing.T) {
	ec := newTestContext(t)
	result := (&sqlExecutor{}).Execute(context.Background(), ec, interfaces.Block{
		Type:    interfaces.BlockSQL,
		Content: "SELECT 1",
	})
	if result.Success {
		t.Fatalf("sql without a configured database should fail")
	}
}

func TestSQLExecutorQuery(t *testing.T) {
	ec := newTestContext(t)
	executor := &sqlExecutor{db: newTestDB(t)}

	result := executor.Execute(context.Background(), ec, interfaces.Block{
		Type:    interfaces.BlockSQL,
		Content: "-- into: crew.members\nSELECT name, role FROM crew ORDER BY name\n",
	})
	if !result.Success {
		t.Fatalf("query failed: %s", result.Error)
	}
	if result.Output != "2 rows" {
		t.Fatalf("output = %q", result.Output)
	}

	rows, ok := result.StateChanges["crew.members"].([]any)
	if !ok || len(rows) != 2 {
		t.Fatalf("rows = %#v", result.StateChanges)
	}
	first, ok := rows[0].(map[string]any)
	if !ok || first["name"] != "Ada" || first["role"] != "pilot" {
		t.Fatalf("first row = %#v", rows[0])
	}
}

func TestSQLExecutorDefaultResultPath(t *testing.T) {
	ec := newTestContext(t)
	executor := &sqlExecutor{db: newTestDB(t)}

	result := executor.Execute(context.Background(), ec, interfaces.Block{
		Type:    interfaces.BlockSQL,
		Content: "SELECT name FROM crew ORDER BY name",
	})
	if !result.Success {
		t.Fatalf("query failed: %s", result.Error)
	}
	if _, ok := result.StateChanges["sql.rows"]; !ok {
		t.Fatalf("rows should land at the default path: %#v", result.StateChanges)
	}
}

func TestSQLExecutorStatement(t *testing.T) {
	ec := newTestContext(t)
	executor := &sqlExecutor{db: newTestDB(t)}

	result := executor.Execute(context.Background(), ec, interfaces.Block{
		Type:    interfaces.BlockSQL,
		Content: "DELETE FROM crew WHERE role = 'pilot'",
	})
	if !result.Success {
		t.Fatalf("statement failed: %s", result.Error)
	}
	if result.Output != "1 rows affected" {
		t.Fatalf("output = %q", result.Output)
	}
	if result.StateChanges["sql.rows_affected"] != float64(1) {
		t.Fatalf("changes = %#v", result.StateChanges)
	}
}

func TestSQLExecutorInterpolatesState(t *testing.T) {
	ec := newTestContext(t)
	if err := ec.State.Set("who", "Grace"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	executor := &sqlExecutor{db: newTestDB(t)}

	result := executor.Execute(context.Background(), ec, interfaces.Block{
		Type:    interfaces.BlockSQL,
		Content: "SELECT role FROM crew WHERE name = '$who'",
	})
	if !result.Success {
		t.Fatalf("query failed: %s", result.Error)
	}
	rows := result.StateChanges["sql.rows"].([]any)
	if len(rows) != 1 || rows[0].(map[string]any)["role"] != "engineer" {
		t.Fatalf("rows = %#v", rows)
	}
}

func TestSQLExecutorEmptyBlock(t *testing.T) {
	ec := newTestContext(t)
	executor := &sqlExecutor{db: newTestDB(t)}

	result := executor.Execute(context.Background(), ec, interfaces.Block{
		Type:    interfaces.BlockSQL,
		Content: "   \n",
	})
	if result.Success {
		t.Fatalf("an empty sql block should fail")
	}
}

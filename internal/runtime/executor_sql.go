package runtime

import (
	"context"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-udos/internal/storage"
	"github.com/goliatone/go-udos/pkg/interfaces"
)

const defaultSQLResultPath = "sql.rows"

// sqlExecutor runs the block body against the configured database. A
// leading "-- into: path" directive selects where query rows land in state.
type sqlExecutor struct {
	db storage.Executor
}

func (*sqlExecutor) Kind() interfaces.BlockType { return interfaces.BlockSQL }

func (e *sqlExecutor) Execute(ctx context.Context, ec *interfaces.ExecutionContext, block interfaces.Block) interfaces.ExecutorResult {
	if e.db == nil {
		return interfaces.Failure(goerrors.Wrap(
			fmt.Errorf("runtime: sql storage is not configured"),
			goerrors.CategoryValidation, "sql block rejected").
			WithTextCode(sqlUnconfiguredCode))
	}

	into := defaultSQLResultPath
	for _, line := range splitLines(block.Content) {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "--") {
			break
		}
		if value, ok := strings.CutPrefix(trimmed, "-- into:"); ok {
			into = strings.TrimSpace(value)
		}
	}

	query := ec.State.Interpolate(strings.TrimSpace(block.Content))
	if query == "" {
		return interfaces.Failure(wrapBlockError(block.Type,
			fmt.Errorf("sql block is empty")))
	}

	if isQuery(query) {
		rows, err := e.runQuery(ctx, query)
		if err != nil {
			return interfaces.Failure(wrapBlockError(block.Type, err))
		}
		return interfaces.ExecutorResult{
			Success:      true,
			Output:       fmt.Sprintf("%d rows", len(rows)),
			StateChanges: map[string]any{into: rows},
		}
	}

	result, err := e.db.ExecContext(ctx, query)
	if err != nil {
		return interfaces.Failure(wrapBlockError(block.Type, err))
	}
	affected, _ := result.RowsAffected()
	return interfaces.ExecutorResult{
		Success:      true,
		Output:       fmt.Sprintf("%d rows affected", affected),
		StateChanges: map[string]any{"sql.rows_affected": float64(affected)},
	}
}

func (e *sqlExecutor) runQuery(ctx context.Context, query string) ([]any, error) {
	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := []any{}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}
		record := make(map[string]any, len(columns))
		for i, column := range columns {
			record[column] = normalizeSQLValue(values[i])
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

// normalizeSQLValue coerces driver values into the JSON-shaped types the
// state store accepts.
func normalizeSQLValue(value any) any {
	switch v := value.(type) {
	case []byte:
		return string(v)
	case int64:
		return float64(v)
	default:
		return v
	}
}

// isQuery reports whether the statement produces rows.
func isQuery(query string) bool {
	for _, line := range strings.Split(query, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		keyword := strings.ToUpper(strings.Fields(trimmed)[0])
		return keyword == "SELECT" || keyword == "WITH" || keyword == "PRAGMA"
	}
	return false
}

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"txnloader/models"
)

const insertColumns = "channel_id, unique_id, loc_detail, ts, msg, action, txn_id, nil_action, nil_id"

// MySQL caps a single prepared statement at 65535 parameters
// (ER_PS_MANY_PARAM), so one INSERT statement carries at most
// insertMaxRows rows. Batches above that are split into several
// statements inside the same transaction.
const (
	insertParamsPerRow = 9
	insertMaxParams    = 65535
	insertMaxRows      = insertMaxParams / insertParamsPerRow
)

var (
	sessionFastLoad = []string{"SET UNIQUE_CHECKS=0", "SET FOREIGN_KEY_CHECKS=0"}
	sessionRestore  = []string{"SET UNIQUE_CHECKS=1", "SET FOREIGN_KEY_CHECKS=1"}
)

// BatchWriter owns one exclusive connection to the destination table for
// the lifetime of one worker. Construction disables the session's
// uniqueness and foreign-key checks; Close restores them. The connection
// is never shared across workers.
type BatchWriter struct {
	conn  *sql.Conn
	table string
}

// NewBatchWriter acquires a dedicated connection and prepares its session
// for high-speed inserts.
func NewBatchWriter(ctx context.Context, db *sql.DB, table string) (*BatchWriter, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire writer connection: %w", err)
	}
	for _, stmt := range sessionFastLoad {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			conn.Close()
			return nil, fmt.Errorf("prepare writer session: %w", err)
		}
	}
	return &BatchWriter{conn: conn, table: table}, nil
}

// WriteBatch inserts and commits all records as one unit. On success
// exactly len(records) rows become durably visible; on failure none do.
// Failures are not retried.
func (w *BatchWriter) WriteBatch(ctx context.Context, records []models.Record) error {
	if len(records) == 0 {
		return fmt.Errorf("empty batch")
	}

	tx, err := w.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for start := 0; start < len(records); start += insertMaxRows {
		end := start + insertMaxRows
		if end > len(records) {
			end = len(records)
		}
		query, args := buildInsert(w.table, records[start:end])
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// buildInsert renders one multi-row INSERT statement. len(records) must
// not exceed insertMaxRows.
func buildInsert(table string, records []models.Record) (string, []interface{}) {
	groups := make([]string, 0, len(records))
	args := make([]interface{}, 0, len(records)*insertParamsPerRow)
	for _, r := range records {
		groups = append(groups, "(?,?,?,?,?,?,?,?,?)")
		args = append(args, r.WorkerID, r.UniqueID, r.LocDetail, r.TS, r.Msg, r.Action, r.TxnID, r.NilAction, nil)
	}
	query := fmt.Sprintf("INSERT INTO `%s` (%s) VALUES %s",
		table, insertColumns, strings.Join(groups, ","))
	return query, args
}

// Close re-enables the session checks and releases the connection. Callers
// defer it so restoration runs on failure exits too, not just after a
// completed range.
func (w *BatchWriter) Close() error {
	var restoreErr error
	for _, stmt := range sessionRestore {
		if _, err := w.conn.ExecContext(context.Background(), stmt); err != nil && restoreErr == nil {
			restoreErr = err
		}
	}
	if err := w.conn.Close(); err != nil && restoreErr == nil {
		restoreErr = err
	}
	return restoreErr
}

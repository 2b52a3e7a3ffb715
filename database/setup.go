package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/apex/log"
)

// PrepareTarget drops and recreates the destination table with the same
// shape as the source table. Runs on its own connection before any worker
// starts; any failure here aborts the run.
func PrepareTarget(ctx context.Context, db *sql.DB, source, target string) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire setup connection: %w", err)
	}
	defer conn.Close()

	stmts := []string{
		"SET UNIQUE_CHECKS=0",
		"SET FOREIGN_KEY_CHECKS=0",
		fmt.Sprintf("DROP TABLE IF EXISTS `%s`", target),
		fmt.Sprintf("CREATE TABLE `%s` LIKE `%s`", target, source),
		"SET UNIQUE_CHECKS=1",
		"SET FOREIGN_KEY_CHECKS=1",
	}
	for _, stmt := range stmts {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("prepare target table: %w", err)
		}
	}

	log.Infof("Destination table %s ready (shape of %s)", target, source)
	return nil
}

package utils

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/apex/log"
	_ "github.com/go-sql-driver/mysql"
)

// dsn builds the connection string. interpolateParams makes the driver
// expand placeholders client-side; without it every multi-row INSERT goes
// through a server-side prepared statement, which is capped at 65535
// parameters (ER_PS_MANY_PARAM).
func dsn(host, port, user, password, dbName string) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?interpolateParams=true", user, password, host, port, dbName)
}

// DBConnect establishes a connection pool to the MySQL database. maxOpen
// bounds the pool; the loader needs one connection per worker plus one for
// the setup phase.
func DBConnect(host, port, user, password, dbName string, maxOpen int) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn(host, port, user, password, dbName))
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
		db.SetMaxIdleConns(maxOpen)
	}

	// Test connection with exponential backoff retry
	deadline := time.Now().Add(60 * time.Second)
	waitInterval := time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		pingErr := db.PingContext(ctx)
		cancel()
		if pingErr == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database ping timeout: %w", pingErr)
		}
		log.Infof("Database connection failed, retrying in %v: %v", waitInterval, pingErr)
		time.Sleep(waitInterval)
		waitInterval *= 2
		if waitInterval > 30*time.Second {
			waitInterval = 30 * time.Second
		}
	}

	return db, nil
}

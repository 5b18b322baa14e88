package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/okian/racelens/internal/domain/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

const defaultTable = "results"

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// loadSQLite reads runners from a table with the sheet's column names,
// ordered by overall position.
func loadSQLite(ctx context.Context, path, table string) ([]model.Runner, error) {
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	query := fmt.Sprintf(`SELECT nombre, categoria, sexo, posicion, posicionCategoria, tiempo, puntaje
		FROM %s ORDER BY posicion`, table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Runner
	for rows.Next() {
		var (
			r      model.Runner
			gender string
		)
		if err := rows.Scan(&r.Name, &r.Category, &gender, &r.Position, &r.CategoryPosition, &r.Time, &r.Score); err != nil {
			return nil, err
		}
		r.Gender = model.Gender(gender)
		out = append(out, r)
	}
	return out, rows.Err()
}

// WriteSQLite creates table in the database at path and inserts runners.
// The CLI convert command uses it to build SQLite datasets.
func WriteSQLite(ctx context.Context, path string, runners []model.Runner, opts ...Option) error {
	o := defaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !tableName.MatchString(o.table) {
		return fmt.Errorf("invalid table name %q", o.table)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			nombre TEXT NOT NULL,
			categoria TEXT NOT NULL,
			sexo TEXT NOT NULL,
			posicion INTEGER NOT NULL,
			posicionCategoria INTEGER NOT NULL,
			tiempo REAL NOT NULL,
			puntaje REAL NOT NULL
		);`, o.table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_posicion ON %s(posicion);`, o.table, o.table),
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	insert := fmt.Sprintf(`INSERT INTO %s (nombre, categoria, sexo, posicion, posicionCategoria, tiempo, puntaje)
		VALUES (?, ?, ?, ?, ?, ?, ?)`, o.table)
	for _, r := range runners {
		if _, err := tx.ExecContext(ctx, insert, r.Name, r.Category, string(r.Gender), r.Position, r.CategoryPosition, r.Time, r.Score); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

package sqlset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Import of postgres driver
	_ "github.com/lib/pq"
	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/pbanos/arbor/dataset"
	"github.com/pbanos/arbor/feature"
)

/*
IsSQLSource takes the location of a record source and returns whether Open can
handle it: PostgreSQL connection URLs and SQLite3 (.db) files.
*/
func IsSQLSource(location string) bool {
	return isPostgreSQL(location) || strings.HasSuffix(location, ".db")
}

/*
Open takes the location of a database, a PostgreSQL connection URL
(postgresql:// or postgres://) or a path to an SQLite3 database file, and a
limit on the connections to open (0 means no limit) and returns a *sql.DB
for it or an error.
*/
func Open(location string, maxConns int) (*sql.DB, error) {
	driver := "sqlite3"
	if isPostgreSQL(location) {
		driver = "postgres"
	}
	db, err := sql.Open(driver, location)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %v", driver, err)
	}
	db.SetMaxOpenConns(maxConns)
	return db, nil
}

/*
ReadSet takes a context, a *sql.DB, the name of a table and a
feature.Metadata and returns the features for the columns of the table
along with a set with a record per row, or an error.

Text values are parsed with the feature for their column. Numeric values
are kept as float64 unless the metadata declares the column discrete, in
which case they are formatted as text. NULL values are not supported.
*/
func ReadSet(ctx context.Context, db *sql.DB, table string, md feature.Metadata) ([]feature.Feature, dataset.Set, error) {
	query, err := selectQuery(table)
	if err != nil {
		return nil, nil, err
	}
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("querying table %s: %v", table, err)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("listing columns of table %s: %v", table, err)
	}
	if len(columns) < 2 {
		return nil, nil, fmt.Errorf("table %s needs at least a feature and a label column, got %d columns", table, len(columns))
	}
	features := md.Features(columns)
	var s dataset.Set
	for j := 1; rows.Next(); j++ {
		raw := make([]interface{}, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range raw {
			dest[i] = &raw[i]
		}
		err = rows.Scan(dest...)
		if err != nil {
			return nil, nil, fmt.Errorf("scanning row %d of table %s: %v", j, table, err)
		}
		record := make(dataset.Record, len(columns))
		for i, f := range features {
			record[i], err = dataset.FieldValue(f, raw[i])
			if err != nil {
				return nil, nil, fmt.Errorf("row %d of table %s: %v", j, table, err)
			}
		}
		s = append(s, record)
	}
	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading table %s: %v", table, err)
	}
	return features, s, nil
}

func selectQuery(table string) (string, error) {
	if table == "" {
		return "", fmt.Errorf("no table name given")
	}
	if strings.ContainsAny(table, `"`) {
		return "", fmt.Errorf(`table name '%s' contains invalid character '"'`, table)
	}
	return fmt.Sprintf(`SELECT * FROM "%s"`, table), nil
}

func isPostgreSQL(location string) bool {
	return strings.HasPrefix(location, "postgresql://") || strings.HasPrefix(location, "postgres://")
}

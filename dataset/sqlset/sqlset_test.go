package sqlset

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pbanos/arbor/dataset"
	"github.com/pbanos/arbor/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSQLSource(t *testing.T) {
	assert.True(t, IsSQLSource("postgresql://localhost/db"))
	assert.True(t, IsSQLSource("postgres://localhost/db"))
	assert.True(t, IsSQLSource("data/set.db"))
	assert.False(t, IsSQLSource("data/set.csv"))
	assert.False(t, IsSQLSource(""))
}

func TestSelectQuery(t *testing.T) {
	q, err := selectQuery("records")
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "records"`, q)
	_, err = selectQuery("")
	assert.Error(t, err)
	_, err = selectQuery(`x"; DROP TABLE y; --`)
	assert.Error(t, err)
}

func TestReadSetFromSQLite3(t *testing.T) {
	ctx := context.Background()
	db, err := Open(filepath.Join(t.TempDir(), "set.db"), 1)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.ExecContext(ctx, `CREATE TABLE records (size REAL, colour TEXT, grade INTEGER, label TEXT)`)
	if err != nil && strings.Contains(err.Error(), "cgo") {
		t.Skip("sqlite3 driver built without cgo")
	}
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO records VALUES (1.5, 'red', 1, 'yes'), (2, 'blue', 2, 'no')`)
	require.NoError(t, err)

	md := feature.Metadata{"grade": {Values: []string{"1", "2"}}}
	features, s, err := ReadSet(ctx, db, "records", md)
	require.NoError(t, err)
	require.Len(t, features, 4)
	assert.Equal(t, "label", features[3].Name())
	assert.Equal(t, dataset.Set{
		{1.5, "red", "1", "yes"},
		{2.0, "blue", "2", "no"},
	}, s)

	_, _, err = ReadSet(ctx, db, "missing", nil)
	assert.Error(t, err)
}

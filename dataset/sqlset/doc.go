/*
Package sqlset loads dataset.Set records from a table on a SQL database.

Every row of the table becomes a record with the table columns as fields in
the order the database reports them, so the label must be the last column.
SQLite3 database files and PostgreSQL connection URLs are supported through
the github.com/mattn/go-sqlite3 and github.com/lib/pq drivers.
*/
package sqlset

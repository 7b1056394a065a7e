package main

import (
	"fmt"
	"os"

	"github.com/pbanos/arbor/dataset"
	"github.com/pbanos/arbor/dataset/csv"
	"github.com/pbanos/arbor/dataset/mongoset"
	"github.com/pbanos/arbor/dataset/sqlset"
	"github.com/pbanos/arbor/feature"
	"github.com/pbanos/arbor/feature/yaml"
	"github.com/spf13/cobra"
)

type setInputConfig struct {
	location   string
	table      string
	columns    []string
	maxDBConns int
}

func (rcc *rootCmdConfig) readMetadata(filepath string) (feature.Metadata, error) {
	if filepath == "" {
		rcc.Logf("No metadata given, feature types will be inferred")
		return nil, nil
	}
	rcc.Logf("Reading metadata from %s...", filepath)
	return yaml.ReadMetadataFromFile(filepath)
}

/*
readSet reads a set from the location in the given configuration with the
given metadata: a MongoDB connection URL, a SQLite3 (.db) file or a
PostgreSQL DB connection URL (all requiring a table or collection), or a CSV
file otherwise ("" reads STDIN). The read set is validated before being
returned.
*/
func (rcc *rootCmdConfig) readSet(sic *setInputConfig, md feature.Metadata, name string) ([]feature.Feature, dataset.Set, error) {
	var features []feature.Feature
	var s dataset.Set
	var err error
	switch {
	case mongoset.IsMongoSource(sic.location):
		features, s, err = rcc.readMongoSet(sic, md, name)
	case sqlset.IsSQLSource(sic.location):
		features, s, err = rcc.readSQLSet(sic, md, name)
	default:
		if sic.location == "" {
			rcc.Logf("Reading %s set from STDIN...", name)
		} else {
			rcc.Logf("Reading %s set from %s...", name, sic.location)
		}
		features, s, err = csv.ReadSetFromFilePath(sic.location, md)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s set: %v", name, err)
	}
	err = s.Validate()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s set: %v", name, err)
	}
	rcc.Logf("Read %s set with %d records and %d features", name, s.Count(), s.FeatureCount())
	return features, s, nil
}

func (rcc *rootCmdConfig) readSQLSet(sic *setInputConfig, md feature.Metadata, name string) ([]feature.Feature, dataset.Set, error) {
	rcc.Logf("Opening DB at %s to read %s set from table %s...", sic.location, name, sic.table)
	db, err := sqlset.Open(sic.location, sic.maxDBConns)
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()
	return sqlset.ReadSet(rcc.Context(), db, sic.table, md)
}

func (rcc *rootCmdConfig) readMongoSet(sic *setInputConfig, md feature.Metadata, name string) ([]feature.Feature, dataset.Set, error) {
	rcc.Logf("Connecting to %s to read %s set from collection %s...", sic.location, name, sic.table)
	session, err := mongoset.Dial(sic.location)
	if err != nil {
		return nil, nil, err
	}
	defer session.Close()
	return mongoset.ReadSet(rcc.Context(), session, sic.table, sic.columns, md)
}

/*
writeSet writes the set as CSV with a header with the names of the features
on the file at the given path, or on STDOUT if the path is "".
*/
func (rcc *rootCmdConfig) writeSet(filepath string, s dataset.Set, features []feature.Feature) error {
	f := os.Stdout
	if filepath != "" {
		var err error
		rcc.Logf("Creating %s to dump set...", filepath)
		f, err = os.Create(filepath)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	return csv.WriteSet(f, s, features)
}

func (sic *setInputConfig) addFlags(cmd *cobra.Command, name, byDefault string) {
	cmd.PersistentFlags().StringVarP(&(sic.location), "input", "i", "", fmt.Sprintf("path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the %s set (defaults to %s)", name, byDefault))
	cmd.PersistentFlags().StringVar(&(sic.table), "table", "", "name of the table or collection holding the set (required for DB inputs)")
	cmd.PersistentFlags().StringSliceVar(&(sic.columns), "columns", nil, "names of the fields of the MongoDB documents to read, label last (defaults to the fields of the first document)")
	cmd.PersistentFlags().IntVar(&(sic.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
}

func (sic *setInputConfig) Validate() error {
	if (sqlset.IsSQLSource(sic.location) || mongoset.IsMongoSource(sic.location)) && sic.table == "" {
		return fmt.Errorf("required table flag was not set for input %s", sic.location)
	}
	if sic.maxDBConns < 0 {
		return fmt.Errorf("max-db-conns flag must not be negative")
	}
	return nil
}

/*
Package mongoset loads dataset.Set records from a MongoDB collection.
*/
package mongoset

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/arbor/dataset"
	"github.com/pbanos/arbor/feature"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

/*
IsMongoSource takes the location of a record source and returns whether it
is a MongoDB connection URL.
*/
func IsMongoSource(location string) bool {
	return strings.HasPrefix(location, "mongodb://")
}

/*
Dial takes a MongoDB connection URL and returns a session on it or an
error. The database named on the URL is the one ReadSet reads from.
*/
func Dial(url string) (*mgo.Session, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %v", err)
	}
	return session, nil
}

/*
ReadSet takes a context, a MongoDB session, the name of a collection, the
names of the fields to read in column order (the label last) and a
feature.Metadata, and returns the features for those fields along with a set
with a record per document in the collection, or an error.

If no field names are given, the fields of the first document are used in
their stored order, excluding "_id".
*/
func ReadSet(ctx context.Context, session *mgo.Session, collection string, columns []string, md feature.Metadata) ([]feature.Feature, dataset.Set, error) {
	for _, c := range columns {
		if err := validColumn(c); err != nil {
			return nil, nil, err
		}
	}
	var features []feature.Feature
	if len(columns) > 0 {
		features = md.Features(columns)
	}
	query := session.DB("").C(collection).Find(nil)
	if len(columns) > 0 {
		selector := bson.M{"_id": 0}
		for _, c := range columns {
			selector[c] = 1
		}
		query = query.Select(selector)
	}
	iter := query.Iter()
	defer iter.Close()
	var s dataset.Set
	var doc bson.D
	for j := 1; iter.Next(&doc); j++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		fields := doc.Map()
		if features == nil {
			for _, e := range doc {
				if e.Name != "_id" {
					columns = append(columns, e.Name)
				}
			}
			if len(columns) < 2 {
				return nil, nil, fmt.Errorf("collection %s needs at least a feature and a label field, got %d fields", collection, len(columns))
			}
			features = md.Features(columns)
		}
		record, err := recordFromFields(fields, features)
		if err != nil {
			return nil, nil, fmt.Errorf("document %d of collection %s: %v", j, collection, err)
		}
		s = append(s, record)
		doc = nil
	}
	if err := iter.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading collection %s: %v", collection, err)
	}
	return features, s, nil
}

func recordFromFields(fields bson.M, features []feature.Feature) (dataset.Record, error) {
	record := make(dataset.Record, len(features))
	for i, f := range features {
		v, err := dataset.FieldValue(f, fields[f.Name()])
		if err != nil {
			return nil, err
		}
		record[i] = v
	}
	return record, nil
}

func validColumn(name string) error {
	if name == "_id" {
		return fmt.Errorf("invalid feature name %q: reserved collection field", "_id")
	}
	if strings.ContainsAny(name, ".$") {
		return fmt.Errorf("invalid feature name %q: contains reserved characters %q or %q", name, ".", "$")
	}
	return nil
}

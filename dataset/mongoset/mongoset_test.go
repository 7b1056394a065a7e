package mongoset

import (
	"testing"

	"github.com/pbanos/arbor/dataset"
	"github.com/pbanos/arbor/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mgo.v2/bson"
)

func TestIsMongoSource(t *testing.T) {
	assert.True(t, IsMongoSource("mongodb://localhost/arbor"))
	assert.False(t, IsMongoSource("postgres://localhost/arbor"))
}

func TestRecordFromFields(t *testing.T) {
	features := feature.Metadata{"grade": {Values: []string{"1", "2"}}}.Features([]string{"size", "grade", "label"})
	r, err := recordFromFields(bson.M{"_id": bson.NewObjectId(), "size": 2.5, "grade": 1, "label": "yes"}, features)
	require.NoError(t, err)
	assert.Equal(t, dataset.Record{2.5, "1", "yes"}, r)

	_, err = recordFromFields(bson.M{"size": 2.5, "label": "yes"}, features)
	assert.Error(t, err, "missing fields are not supported")
}

func TestValidColumn(t *testing.T) {
	assert.NoError(t, validColumn("size"))
	assert.Error(t, validColumn("_id"))
	assert.Error(t, validColumn("a.b"))
	assert.Error(t, validColumn("$size"))
}

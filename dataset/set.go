package dataset

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/pbanos/arbor/feature"
)

/*
Set is an ordered collection of records with the same number of fields.

Sets are never modified by the methods on them: subsets reference the same
records as the set they were obtained from.
*/
type Set []Record

/*
Count returns the number of records in the set.
*/
func (s Set) Count() int {
	return len(s)
}

/*
FeatureCount returns the number of feature columns of the records in the set,
that is, their number of fields minus the label. It returns 0 for an empty
set.
*/
func (s Set) FeatureCount() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0]) - 1
}

/*
Divide takes a feature.Criterion and returns two subsets: the records whose
value for the criterion feature satisfies it, and the rest. The relative order
of records is preserved on both subsets.
*/
func (s Set) Divide(c feature.Criterion) (Set, Set) {
	var trueSet, falseSet Set
	i := c.Feature().Index()
	for _, r := range s {
		if c.SatisfiedBy(r.ValueAt(i)) {
			trueSet = append(trueSet, r)
		} else {
			falseSet = append(falseSet, r)
		}
	}
	return trueSet, falseSet
}

/*
CountLabels returns a new map from each label in the set to the number of
records carrying it.
*/
func (s Set) CountLabels() map[string]int {
	result := make(map[string]int)
	for _, r := range s {
		result[r.Label()]++
	}
	return result
}

/*
Labels returns the distinct labels in the set in order of first occurrence.
*/
func (s Set) Labels() []string {
	seen := linkedhashset.New()
	for _, r := range s {
		seen.Add(r.Label())
	}
	result := make([]string, 0, seen.Size())
	for _, v := range seen.Values() {
		result = append(result, v.(string))
	}
	return result
}

/*
Majority returns the most frequent label in the set. Ties are resolved in
favour of the label occurring first in the set. It returns an empty string
for an empty set.
*/
func (s Set) Majority() string {
	labels := s.Labels()
	if len(labels) == 0 {
		return ""
	}
	counts := s.CountLabels()
	sort.SliceStable(labels, func(i, j int) bool {
		return counts[labels[i]] > counts[labels[j]]
	})
	return labels[0]
}

/*
FeatureValues takes a column index and returns the distinct values the
records in the set take for it, in order of first occurrence.
*/
func (s Set) FeatureValues(i int) []interface{} {
	values := linkedhashset.New()
	for _, r := range s {
		values.Add(r.ValueAt(i))
	}
	return values.Values()
}

/*
Shuffle takes a random source and returns a copy of the set with its records
in random order.
*/
func (s Set) Shuffle(rnd *rand.Rand) Set {
	result := make(Set, len(s))
	copy(result, s)
	rnd.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

/*
Split takes a list of sizes and returns consecutive subsets of the set with
those sizes, in order. It returns an error if the sizes add up to more records
than the set has or any of them is negative.
*/
func (s Set) Split(sizes ...int) ([]Set, error) {
	result := make([]Set, 0, len(sizes))
	start := 0
	for _, size := range sizes {
		if size < 0 {
			return nil, fmt.Errorf("invalid partition size %d", size)
		}
		if start+size > len(s) {
			return nil, fmt.Errorf("cannot take %d records from set with %d remaining", size, len(s)-start)
		}
		result = append(result, s[start:start+size])
		start += size
	}
	return result, nil
}

/*
Validate checks that the set is not empty and that all its records have the
same number of fields, with at least a feature and the label, and only
float64 or string values. It returns an error describing the first problem
found.
*/
func (s Set) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("empty set")
	}
	width := len(s[0])
	if width < 2 {
		return fmt.Errorf("records need at least a feature and a label, got %d fields", width)
	}
	for i, r := range s {
		if len(r) != width {
			return fmt.Errorf("record %d has %d fields, expected %d", i, len(r), width)
		}
		for j, v := range r {
			switch v.(type) {
			case float64, string:
			default:
				return fmt.Errorf("record %d has a %T value on field %d", i, v, j)
			}
		}
	}
	return nil
}

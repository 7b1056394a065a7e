package arbor_test

import (
	"math/rand"

	"github.com/pbanos/arbor/dataset"
)

func set(rows ...dataset.Record) dataset.Set {
	return dataset.Set(rows)
}

func repeat(r dataset.Record, times int) []dataset.Record {
	result := make([]dataset.Record, times)
	for i := range result {
		result[i] = r
	}
	return result
}

func concat(groups ...[]dataset.Record) dataset.Set {
	var s dataset.Set
	for _, g := range groups {
		s = append(s, g...)
	}
	return s
}

// mixedSet is evenly split between labels A and B with a feature that
// separates them perfectly.
func mixedSet() dataset.Set {
	return set(
		dataset.Record{1.0, "A"},
		dataset.Record{1.0, "A"},
		dataset.Record{1.0, "B"},
		dataset.Record{0.0, "B"},
		dataset.Record{0.0, "B"},
		dataset.Record{0.0, "A"},
	)
}

// skewedSet has a split whose false side is pure and whose true side holds
// the only B.
func skewedSet() dataset.Set {
	return concat(
		repeat(dataset.Record{1.0, "A"}, 4),
		repeat(dataset.Record{1.0, "B"}, 1),
		repeat(dataset.Record{0.0, "A"}, 4),
	)
}

func separableSet() dataset.Set {
	return concat(
		repeat(dataset.Record{1.0, "A"}, 3),
		repeat(dataset.Record{0.0, "B"}, 3),
	)
}

// noisySet returns n records with two numeric features in [0, 5) and a
// label mostly determined by them, flipped with a 20% chance.
func noisySet(seed int64, n int) dataset.Set {
	rnd := rand.New(rand.NewSource(seed))
	s := make(dataset.Set, n)
	for i := range s {
		x := float64(rnd.Intn(5))
		y := float64(rnd.Intn(5))
		label := "low"
		if x+y >= 5 {
			label = "high"
		}
		if rnd.Float64() < 0.2 {
			if label == "low" {
				label = "high"
			} else {
				label = "low"
			}
		}
		s[i] = dataset.Record{x, y, label}
	}
	return s
}

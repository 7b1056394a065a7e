package feature

import (
	"fmt"
)

/*
Criterion represents the question a tree node asks about a feature to route
a record down its true or its false branch.

Its Feature method returns the feature on which the criterion is applied.

Its Value method returns the value the feature is compared with: a float64
threshold for continuous criteria or the value to match for discrete ones.

Its SatisfiedBy method takes the value of the feature on a record and returns
a boolean indicating if the record goes down the true branch.
*/
type Criterion interface {
	Feature() Feature
	Value() interface{}
	SatisfiedBy(value interface{}) bool
}

/*
ContinuousCriterion is satisfied by numeric values greater than or equal to
its threshold.
*/
type ContinuousCriterion interface {
	Criterion
	Threshold() float64
}

/*
DiscreteCriterion is satisfied by values equal to its value.
*/
type DiscreteCriterion interface {
	Criterion
	IsDiscrete() bool
}

type continuousCriterion struct {
	feature   Feature
	threshold float64
}

type discreteCriterion struct {
	feature Feature
	value   interface{}
}

/*
NewCriterion takes a feature and a value and returns the criterion to split
on them: a ContinuousCriterion when the value is a number of any integer or
floating point type, with the value converted to float64 as threshold, and a
DiscreteCriterion otherwise.
*/
func NewCriterion(f Feature, value interface{}) Criterion {
	if threshold, ok := number(value); ok {
		return NewContinuousCriterion(f, threshold)
	}
	return NewDiscreteCriterion(f, value)
}

// number returns v as a float64 if it holds a Go number
func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

/*
NewContinuousCriterion takes a feature and a float64 threshold and returns a
ContinuousCriterion with them.
*/
func NewContinuousCriterion(f Feature, threshold float64) ContinuousCriterion {
	return &continuousCriterion{f, threshold}
}

/*
NewDiscreteCriterion takes a feature and a value and returns a
DiscreteCriterion with them.
*/
func NewDiscreteCriterion(f Feature, value interface{}) DiscreteCriterion {
	return &discreteCriterion{f, value}
}

func (cc *continuousCriterion) Feature() Feature {
	return cc.feature
}

func (cc *continuousCriterion) Value() interface{} {
	return cc.threshold
}

func (cc *continuousCriterion) Threshold() float64 {
	return cc.threshold
}

/*
SatisfiedBy returns true if the given value is a number (of any integer or
floating point type) greater than or equal to the threshold. Values of any
other type do not satisfy it.
*/
func (cc *continuousCriterion) SatisfiedBy(value interface{}) bool {
	f, ok := number(value)
	return ok && f >= cc.threshold
}

func (cc *continuousCriterion) String() string {
	return fmt.Sprintf("%s >= %v", cc.feature.Name(), cc.threshold)
}

func (dc *discreteCriterion) Feature() Feature {
	return dc.feature
}

func (dc *discreteCriterion) Value() interface{} {
	return dc.value
}

func (dc *discreteCriterion) IsDiscrete() bool {
	return true
}

/*
SatisfiedBy returns true if the given value equals the criterion value.
*/
func (dc *discreteCriterion) SatisfiedBy(value interface{}) bool {
	return value == dc.value
}

func (dc *discreteCriterion) String() string {
	return fmt.Sprintf("%s == %v", dc.feature.Name(), dc.value)
}

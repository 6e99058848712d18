package modecounter

import (
	"sort"

	dataErrors "bikeshare/domain/errors"
)

// ValueCount pair of a value and the amount of times it was seen
type ValueCount[K comparable] struct {
	Value K   `json:"value"`
	Count int `json:"count"`
}

// ModeCounter counts occurrences of values remembering the order in which each value was first seen.
// + counters: amount of occurrences by value
// + order: values in first-encountered order
type ModeCounter[K comparable] struct {
	counters map[K]int
	order    []K
}

func NewModeCounter[K comparable]() *ModeCounter[K] {
	return &ModeCounter[K]{
		counters: make(map[K]int),
	}
}

// UpdateCounter adds one occurrence of value
func (mc *ModeCounter[K]) UpdateCounter(value K) {
	if _, ok := mc.counters[value]; !ok {
		mc.order = append(mc.order, value)
	}
	mc.counters[value] += 1
}

func (mc *ModeCounter[K]) IsEmpty() bool {
	return len(mc.order) == 0
}

// Mode returns the most frequent value. On ties the value seen first wins
func (mc *ModeCounter[K]) Mode() (K, error) {
	var mode K
	if mc.IsEmpty() {
		return mode, dataErrors.ErrEmptyDataset
	}

	bestCount := 0
	for _, value := range mc.order {
		if mc.counters[value] > bestCount {
			mode = value
			bestCount = mc.counters[value]
		}
	}
	return mode, nil
}

// ValueCounts returns every value with its count, sorted by count descending.
// Values with the same count keep their first-encountered order
func (mc *ModeCounter[K]) ValueCounts() []ValueCount[K] {
	valueCounts := make([]ValueCount[K], 0, len(mc.order))
	for _, value := range mc.order {
		valueCounts = append(valueCounts, ValueCount[K]{Value: value, Count: mc.counters[value]})
	}

	sort.SliceStable(valueCounts, func(i, j int) bool {
		return valueCounts[i].Count > valueCounts[j].Count
	})
	return valueCounts
}

package oset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gclverify/ltlcheck/internal/oset"
)

func TestSorted_OrdersByKey(t *testing.T) {
	in := []string{"banana", "apple", "cherry"}
	out := oset.Sorted(in, func(s string) string { return s })
	assert.Equal(t, []string{"apple", "banana", "cherry"}, out)
}

func TestSorted_DedupesEqualKeysKeepingFirst(t *testing.T) {
	type pair struct {
		key string
		tag int
	}
	in := []pair{{"a", 1}, {"b", 1}, {"a", 2}}
	out := oset.Sorted(in, func(p pair) string { return p.key })
	assert.Equal(t, []pair{{"a", 1}, {"b", 1}}, out)
}

func TestSorted_EmptyInputIsNil(t *testing.T) {
	out := oset.Sorted[string, string](nil, func(s string) string { return s })
	assert.Nil(t, out)
}

func TestSorted_DoesNotMutateInput(t *testing.T) {
	in := []int{3, 1, 2}
	_ = oset.Sorted(in, func(n int) int { return n })
	assert.Equal(t, []int{3, 1, 2}, in)
}

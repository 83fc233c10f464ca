package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/typed-container-go/collection"
)

func Test_Set_DropsDuplicatesAndKeepsInsertionOrder(t *testing.T) {
	set := collection.NewSet(5, 3, 5, 1, 3)

	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []int{5, 3, 1}, set.Slice())
	assert.True(t, set.Contains(3))
	assert.False(t, set.Contains(4))
}

func Test_Set_ZeroValueIsUsable(t *testing.T) {
	var set collection.Set[string]

	assert.False(t, set.Contains("a"))

	set.Add("a")
	set.Add("a")

	assert.Equal(t, 1, set.Len())
	assert.True(t, set.Contains("a"))
}

func Test_Set_InterfaceElementsCompareByDynamicType(t *testing.T) {
	set := collection.NewSet[any](1, 1.0, int64(1), 1)

	assert.Equal(t, 3, set.Len())
}

func Test_Set_NonComparableDynamicValuesAreAlwaysDistinct(t *testing.T) {
	set := collection.NewSet[any]("x")

	assert.NotPanics(t, func() {
		set.Add([]int{1})
		set.Add([]int{1})
		set.Add(map[string]int{"a": 1})
		set.Add("x")
	})

	assert.Equal(t, 4, set.Len())
	assert.False(t, set.Contains([]int{1}))
	assert.True(t, set.Contains("x"))
	assert.Equal(t, []any{"x", []int{1}, []int{1}, map[string]int{"a": 1}}, set.Slice())
}

type labelled struct {
	label string
	value any
}

func Test_Set_StructWithInterfaceFieldHoldingSlice(t *testing.T) {
	set := collection.NewSet(labelled{label: "a", value: 1}, labelled{label: "a", value: 1})

	assert.NotPanics(t, func() { set.Add(labelled{label: "b", value: []string{"x"}}) })

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(labelled{label: "a", value: 1}))
	assert.False(t, set.Contains(labelled{label: "b", value: []string{"x"}}))
}

func Test_Set_ZeroValueContainsNothing(t *testing.T) {
	var set collection.Set[any]

	assert.False(t, set.Contains([]int{1}))
	assert.False(t, set.Contains(nil))

	set.Add(nil)

	assert.True(t, set.Contains(nil))
}

package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/typed-container-go/aggregate"
	"github.com/AntonStoeckl/typed-container-go/collection"
	"github.com/AntonStoeckl/typed-container-go/variance"
)

func Test_Flatten_NoSources(t *testing.T) {
	got := aggregate.Flatten[string]()

	assert.NotNil(t, got)
	assert.Equal(t, 0, got.Len())
}

func Test_Flatten_SingleSourceIsACopy(t *testing.T) {
	src := collection.NewList("friends", "romans", "countrymen")

	got := aggregate.Flatten(src.ReadOnly())
	src.Add("lend me your ears")

	assert.Equal(t, []string{"friends", "romans", "countrymen"}, got.Slice())
}

func Test_Flatten_ConcatenatesInArgumentOrder(t *testing.T) {
	got := aggregate.Flatten(
		collection.Of(1, 2),
		collection.Of[int](),
		collection.Of(3),
		collection.Of(4, 5),
	)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, got.Slice())
}

func Test_Flatten_KeepsDuplicates(t *testing.T) {
	got := aggregate.Flatten(collection.Of("a"), collection.Of("a"))

	assert.Equal(t, []string{"a", "a"}, got.Slice())
}

func Test_Flatten_DoesNotTouchCallerSlice(t *testing.T) {
	first := collection.Of(1)
	second := collection.Of(2)
	sources := []collection.Producer[int]{first, second}

	got := aggregate.Flatten(sources...)
	got.Add(3)

	assert.Equal(t, first, sources[0])
	assert.Equal(t, second, sources[1])
	assert.Equal(t, []int{1, 2, 3}, got.Slice())
}

func Test_Flatten_ResultIsIndependentOfLaterCalls(t *testing.T) {
	sources := []collection.Producer[int]{collection.Of(1)}

	first := aggregate.Flatten(sources...)
	sources[0] = collection.Of(2)
	second := aggregate.Flatten(sources...)

	assert.Equal(t, []int{1}, first.Slice())
	assert.Equal(t, []int{2}, second.Slice())
}

func Test_Flatten_SubtypeSourcesOverCommonBound(t *testing.T) {
	got := aggregate.Flatten(
		variance.MustUpcast[any](collection.Of(1, 2)),
		variance.MustUpcast[any](collection.Of("three")),
	)

	assert.Equal(t, []any{1, 2, "three"}, got.Slice())
}

func Test_FlattenAll(t *testing.T) {
	lists := collection.NewList(
		collection.Of("a", "b"),
		collection.Of("c"),
	)

	got := aggregate.FlattenAll[string](lists)

	assert.Equal(t, []string{"a", "b", "c"}, got.Slice())
}

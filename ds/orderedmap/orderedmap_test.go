package orderedmap_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/controlactions/ds/orderedmap"
)

func TestOrderedMap_Size(t *testing.T) {
	orderedMap := orderedmap.New[int, int]()

	require.Equal(t, 0, orderedMap.Size())
	require.True(t, orderedMap.IsEmpty())

	orderedMap.Set(1, 1)
	orderedMap.Set(3, 1)
	orderedMap.Set(2, 1)
	require.Equal(t, 3, orderedMap.Size())

	orderedMap.Set(2, 2)
	require.Equal(t, 3, orderedMap.Size())

	deletedValue, deleted := orderedMap.Delete(2)
	require.True(t, deleted)
	require.Equal(t, 2, deletedValue)
	require.Equal(t, 2, orderedMap.Size())

	_, deleted = orderedMap.Delete(2)
	require.False(t, deleted)

	orderedMap.Delete(1)
	orderedMap.Delete(3)
	require.True(t, orderedMap.IsEmpty())
}

func TestSetDelete(t *testing.T) {
	orderedMap := orderedmap.New[string, string]()

	_, previousValueExisted := orderedMap.Set("key", "value")
	require.False(t, previousValueExisted)

	previousValue, previousValueExisted := orderedMap.Set("key", "value2")
	require.True(t, previousValueExisted)
	require.Equal(t, "value", previousValue)

	deletedValue, deleted := orderedMap.Delete("key")
	require.True(t, deleted)
	require.Equal(t, "value2", deletedValue)

	_, deleted = orderedMap.Delete("key")
	require.False(t, deleted)
}

func TestInsertionOrder(t *testing.T) {
	orderedMap := orderedmap.New[int, string]()
	orderedMap.Set(3, "c")
	orderedMap.Set(1, "a")
	orderedMap.Set(2, "b")
	orderedMap.Set(1, "A")

	require.Equal(t, []int{3, 1, 2}, orderedMap.Keys())

	values := make([]string, 0)
	orderedMap.ForEach(func(_ int, value string) bool {
		values = append(values, value)

		return true
	})
	require.Equal(t, []string{"c", "A", "b"}, values)

	orderedMap.Delete(3)
	orderedMap.Delete(2)
	orderedMap.Set(4, "d")
	require.Equal(t, []int{1, 4}, orderedMap.Keys())
}

func TestForEach_DeleteDuringIteration(t *testing.T) {
	orderedMap := orderedmap.New[int, int]()
	for i := 0; i < 5; i++ {
		orderedMap.Set(i, i)
	}

	visited := make([]int, 0)
	orderedMap.ForEach(func(key int, _ int) bool {
		visited = append(visited, key)

		// deleting the current and the next entry must neither stop the iteration nor visit the deleted entry
		if key == 1 {
			orderedMap.Delete(1)
			orderedMap.Delete(2)
		}

		return true
	})

	require.Equal(t, []int{0, 1, 3, 4}, visited)
	require.Equal(t, []int{0, 3, 4}, orderedMap.Keys())
}

func TestForEach_Abort(t *testing.T) {
	orderedMap := orderedmap.New[int, int]()
	for i := 0; i < 5; i++ {
		orderedMap.Set(i, i)
	}

	visited := 0
	require.False(t, orderedMap.ForEach(func(key int, _ int) bool {
		visited++

		return key < 2
	}))
	require.Equal(t, 3, visited)
}

func TestConcurrentSet(t *testing.T) {
	orderedMap := orderedmap.New[int, int]()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			orderedMap.Set(i, i)
		}(i)
	}
	wg.Wait()

	require.Equal(t, 100, orderedMap.Size())
}

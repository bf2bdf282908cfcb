package orderedmap

import (
	"github.com/iotaledger/controlactions/runtime/syncutils"
)

// OrderedMap provides a concurrent-safe map that remembers the insertion order of its keys.
//
// ForEach does not hold the lock while the consumer runs, so the consumer may add or delete entries of the map it
// iterates over. Deleted entries keep their successor link, so deleting the current entry does not end the iteration.
type OrderedMap[K comparable, V any] struct {
	head       *element[K, V]
	tail       *element[K, V]
	dictionary map[K]*element[K, V]
	mutex      syncutils.RWMutex
}

// element is a single entry of the OrderedMap.
type element[K comparable, V any] struct {
	key   K
	value V
	prev  *element[K, V]
	next  *element[K, V]
}

// New returns a new empty OrderedMap.
func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		dictionary: make(map[K]*element[K, V]),
	}
}

// Set adds a key-value pair to the map. Updating an existing key keeps its position.
func (o *OrderedMap[K, V]) Set(key K, newValue V) (previousValue V, previousValueExisted bool) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if existing, exists := o.dictionary[key]; exists {
		previousValue = existing.value
		existing.value = newValue

		return previousValue, true
	}

	newElement := &element[K, V]{key: key, value: newValue, prev: o.tail}
	if o.head == nil {
		o.head = newElement
	} else {
		o.tail.next = newElement
	}
	o.tail = newElement
	o.dictionary[key] = newElement

	return previousValue, false
}

// Delete removes the given key (and its value) from the map and returns the removed value.
func (o *OrderedMap[K, V]) Delete(key K) (deletedValue V, deleted bool) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	entry, exists := o.dictionary[key]
	if !exists {
		return deletedValue, false
	}

	delete(o.dictionary, key)

	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		o.head = entry.next
	}

	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		o.tail = entry.prev
	}

	return entry.value, true
}

// ForEach iterates through the map in insertion order and calls the consumer for every entry that still exists when
// it is reached. The iteration can be aborted by returning false in the consumer.
func (o *OrderedMap[K, V]) ForEach(consumer func(key K, value V) bool) bool {
	if o == nil {
		return true
	}

	o.mutex.RLock()
	currentEntry := o.head
	o.mutex.RUnlock()

	for currentEntry != nil {
		o.mutex.RLock()
		stillExists := o.dictionary[currentEntry.key] == currentEntry
		o.mutex.RUnlock()

		if stillExists && !consumer(currentEntry.key, currentEntry.value) {
			return false
		}

		o.mutex.RLock()
		currentEntry = currentEntry.next
		o.mutex.RUnlock()
	}

	return true
}

// Keys returns a snapshot of all keys in insertion order.
func (o *OrderedMap[K, V]) Keys() []K {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	keys := make([]K, 0, len(o.dictionary))
	for currentEntry := o.head; currentEntry != nil; currentEntry = currentEntry.next {
		keys = append(keys, currentEntry.key)
	}

	return keys
}

// Size returns the number of entries in the map.
func (o *OrderedMap[K, V]) Size() int {
	if o == nil {
		return 0
	}

	o.mutex.RLock()
	defer o.mutex.RUnlock()

	return len(o.dictionary)
}

// IsEmpty returns true if the map does not contain any entries.
func (o *OrderedMap[K, V]) IsEmpty() bool {
	return o.Size() == 0
}

package control

// AssociationKey identifies an object that is associated with a Control. Keys are compared by identity, so two keys
// created with the same name are still distinct.
type AssociationKey struct {
	name string
}

// NewAssociationKey creates a new unique AssociationKey.
func NewAssociationKey(name string) *AssociationKey {
	return &AssociationKey{name: name}
}

// String returns the name of the key.
func (a *AssociationKey) String() string {
	return a.name
}

// AssociatedObject returns the object that is associated with the control under the given key.
func (c *Control) AssociatedObject(key *AssociationKey) (object any, exists bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	object, exists = c.associations[key]

	return object, exists
}

// SetAssociatedObject associates the object with the control under the given key (nil removes the association).
func (c *Control) SetAssociatedObject(key *AssociationKey, object any) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if object == nil {
		delete(c.associations, key)

		return
	}

	c.initialize()
	c.associations[key] = object
}

// AssociatedObjectOrInit returns the object that is associated with the control under the given key. If no object is
// associated yet, the init function is called (exactly once) and its result is associated.
func (c *Control) AssociatedObjectOrInit(key *AssociationKey, init func() any) (object any, created bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if object, exists := c.associations[key]; exists {
		return object, false
	}

	c.initialize()

	object = init()
	c.associations[key] = object

	return object, true
}

package camera

// Settings binds the option box schema to a Store. All reads and writes go
// through the injected store, so tests can substitute an in-memory one.
type Settings struct {
	store Store
}

// NewSettings creates a Settings facade over the given store.
func NewSettings(store Store) *Settings {
	return &Settings{store: store}
}

// Store returns the underlying store.
func (s *Settings) Store() Store {
	return s.store
}

// EnsureDefaults writes the schema default for every setting that has no
// stored value yet, or for every setting when force is set. Calling it
// twice with force false is a no-op. The node count is seeded alongside the
// schema so command assembly never sees a missing entry.
func (s *Settings) EnsureDefaults(force bool) {
	for _, def := range schema {
		if !force && s.store.Exists(def.Name) {
			continue
		}
		switch def.Type {
		case FloatSetting:
			s.store.SetFloat(def.Name, def.Default.(float64))
		case IntSetting:
			s.store.SetInt(def.Name, def.Default.(int))
		case BoolSetting:
			s.store.SetBool(def.Name, def.Default.(bool))
		}
	}
	if force || !s.store.Exists(KeyNodeCount) {
		s.store.SetInt(KeyNodeCount, 1)
	}
}

// NodeCount returns the stored creation variant selector, defaulting to a
// plain camera when nothing has been stored yet.
func (s *Settings) NodeCount() int {
	if !s.store.Exists(KeyNodeCount) {
		return 1
	}
	return s.store.Int(KeyNodeCount)
}

// SetNodeCount stores the creation variant selector.
func (s *Settings) SetNodeCount(n int) {
	s.store.SetInt(KeyNodeCount, n)
}

// Variant returns the creation variant selected by the stored node count.
func (s *Settings) Variant() Variant {
	return VariantForNodeCount(s.NodeCount())
}

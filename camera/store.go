package camera

// Store is the persistent key/value service the host supplies for camera
// settings. Values are keyed by setting name and survive across sessions.
// Writes are assumed to succeed; implementations report their own I/O
// failures through logging rather than through this interface.
type Store interface {
	// Exists reports whether a value has ever been written for name.
	Exists(name string) bool

	Float(name string) float64
	Int(name string) int
	Bool(name string) bool

	SetFloat(name string, value float64)
	SetInt(name string, value int)
	SetBool(name string, value bool)
}

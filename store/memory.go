// Package store provides camera.Store implementations: an in-memory map
// for tests and one-shot runs, an adapter over fyne preferences for the
// desktop dialog, and a SQLite database for headless persistence.
package store

import "sync"

// Memory is a map-backed store. Values do not survive the process; it
// serves tests and one-shot command assembly.
type Memory struct {
	mu   sync.Mutex
	data map[string]any
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]any)}
}

// Exists reports whether a value has been written for name.
func (m *Memory) Exists(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[name]
	return ok
}

// Float returns the stored float for name, zero when absent or mistyped.
func (m *Memory) Float(name string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, _ := m.data[name].(float64)
	return v
}

// Int returns the stored int for name, zero when absent or mistyped.
func (m *Memory) Int(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, _ := m.data[name].(int)
	return v
}

// Bool returns the stored bool for name, false when absent or mistyped.
func (m *Memory) Bool(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, _ := m.data[name].(bool)
	return v
}

// SetFloat stores a float value under name.
func (m *Memory) SetFloat(name string, value float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[name] = value
}

// SetInt stores an int value under name.
func (m *Memory) SetInt(name string, value int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[name] = value
}

// SetBool stores a bool value under name.
func (m *Memory) SetBool(name string, value bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[name] = value
}

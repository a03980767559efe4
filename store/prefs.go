package store

import "fyne.io/fyne/v2"

// trackedKeysKey holds the list of keys ever written through the adapter.
// fyne preferences expose no existence check of their own.
const trackedKeysKey = "cameraSettingKeys"

// Prefs adapts fyne.Preferences to the camera store contract, so the
// desktop dialog persists settings wherever the fyne app keeps its
// preferences.
type Prefs struct {
	p fyne.Preferences
}

// NewPrefs creates a store over the given preferences.
func NewPrefs(p fyne.Preferences) *Prefs {
	return &Prefs{p: p}
}

// Exists reports whether name was ever written through this adapter.
func (s *Prefs) Exists(name string) bool {
	for _, k := range s.p.StringList(trackedKeysKey) {
		if k == name {
			return true
		}
	}
	return false
}

func (s *Prefs) track(name string) {
	if s.Exists(name) {
		return
	}
	s.p.SetStringList(trackedKeysKey, append(s.p.StringList(trackedKeysKey), name))
}

// Float returns the stored float for name.
func (s *Prefs) Float(name string) float64 {
	return s.p.Float(name)
}

// Int returns the stored int for name.
func (s *Prefs) Int(name string) int {
	return s.p.Int(name)
}

// Bool returns the stored bool for name.
func (s *Prefs) Bool(name string) bool {
	return s.p.Bool(name)
}

// SetFloat stores a float value under name.
func (s *Prefs) SetFloat(name string, value float64) {
	s.p.SetFloat(name, value)
	s.track(name)
}

// SetInt stores an int value under name.
func (s *Prefs) SetInt(name string, value int) {
	s.p.SetInt(name, value)
	s.track(name)
}

// SetBool stores a bool value under name.
func (s *Prefs) SetBool(name string, value bool) {
	s.p.SetBool(name, value)
	s.track(name)
}

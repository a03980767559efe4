package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("PushesStoredValues", func(t *testing.T) {
		st := newFakeStore()
		s := NewSettings(st)
		s.EnsureDefaults(false)
		st.SetFloat(KeyFocalLength, 85)
		st.SetBool(KeyOrthographic, true)
		st.SetInt(KeyFilmFit, 2)

		form := fullFakeForm()
		s.Load(form)

		assert.Equal(t, 85.0, form.floats[KeyFocalLength].v)
		assert.True(t, form.bools[KeyOrthographic].checked)
		assert.Equal(t, 2, form.selects[KeyFilmFit].idx)
	})

	t.Run("EstablishesDefaultsFirst", func(t *testing.T) {
		st := newFakeStore()
		s := NewSettings(st)

		form := fullFakeForm()
		s.Load(form)

		assert.Equal(t, 35.0, form.floats[KeyFocalLength].v)
		assert.Equal(t, 5.0, form.floats[KeyCenterOfInterest].v)
		assert.True(t, st.Exists(KeyZoom))
	})

	t.Run("SkipsMissingWidgets", func(t *testing.T) {
		st := newFakeStore()
		s := NewSettings(st)

		form := newFakeForm()
		form.floats[KeyFocalLength] = &fakeFloatWidget{}

		s.Load(form)

		assert.Equal(t, 35.0, form.floats[KeyFocalLength].v)
		// Defaults still written for settings without widgets.
		assert.True(t, st.Exists(KeyOrthographicWidth))
	})

	t.Run("FilmFitGuardSkipsZeroSentinel", func(t *testing.T) {
		st := newFakeStore()
		s := NewSettings(st)
		s.EnsureDefaults(true) // film fit defaults to the zero sentinel

		form := fullFakeForm()
		form.selects[KeyFilmFit].idx = 3 // widget shows Fill already
		s.Load(form)

		assert.Equal(t, 3, form.selects[KeyFilmFit].idx, "zero sentinel must not deselect")
	})

	t.Run("FilmFitGuardSkipsNegative", func(t *testing.T) {
		st := newFakeStore()
		s := NewSettings(st)
		s.EnsureDefaults(false)
		st.SetInt(KeyFilmFit, -1)

		form := fullFakeForm()
		form.selects[KeyFilmFit].idx = 2
		s.Load(form)

		assert.Equal(t, 2, form.selects[KeyFilmFit].idx)
	})
}

func TestSave(t *testing.T) {
	t.Run("WritesWidgetValues", func(t *testing.T) {
		st := newFakeStore()
		s := NewSettings(st)
		s.EnsureDefaults(false)

		form := fullFakeForm()
		form.floats[KeyFocalLength].v = 135
		form.floats[KeyNearClipPlane].v = 0.01
		form.bools[KeyPanZoomEnabled].checked = true
		form.selects[KeyFilmFit].idx = 4

		s.Save(form)

		assert.Equal(t, 135.0, st.Float(KeyFocalLength))
		assert.Equal(t, 0.01, st.Float(KeyNearClipPlane))
		assert.True(t, st.Bool(KeyPanZoomEnabled))
		assert.Equal(t, 4, st.Int(KeyFilmFit))
	})

	t.Run("MissingWidgetKeepsStoredValue", func(t *testing.T) {
		st := newFakeStore()
		s := NewSettings(st)
		s.EnsureDefaults(false)
		st.SetFloat(KeyOrthographicWidth, 123.5)

		form := fullFakeForm()
		delete(form.floats, KeyOrthographicWidth)
		form.floats[KeyFocalLength].v = 50
		s.Save(form)

		assert.Equal(t, 123.5, st.Float(KeyOrthographicWidth))
		assert.Equal(t, 50.0, st.Float(KeyFocalLength))
	})

	t.Run("FilmFitSavedWithoutGuard", func(t *testing.T) {
		st := newFakeStore()
		s := NewSettings(st)
		s.EnsureDefaults(false)
		st.SetInt(KeyFilmFit, 2)

		// The save path has no positive-index guard; a deselected widget
		// writes its zero index back.
		form := fullFakeForm()
		form.selects[KeyFilmFit].idx = 0
		s.Save(form)

		assert.Equal(t, 0, st.Int(KeyFilmFit))
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := newFakeStore()
	s := NewSettings(st)
	s.EnsureDefaults(false)

	form := fullFakeForm()
	form.floats[KeyFocalLength].v = 24
	form.floats[KeyZoom].v = 2.5
	form.bools[KeyOrthographic].checked = true
	form.selects[KeyFilmFit].idx = 1

	s.Save(form)

	// Scramble the widgets, then load them back from the store.
	form.floats[KeyFocalLength].v = 0
	form.floats[KeyZoom].v = 0
	form.bools[KeyOrthographic].checked = false
	form.selects[KeyFilmFit].idx = 0

	s.Load(form)

	assert.Equal(t, 24.0, form.floats[KeyFocalLength].v)
	assert.Equal(t, 2.5, form.floats[KeyZoom].v)
	assert.True(t, form.bools[KeyOrthographic].checked)
	assert.Equal(t, 1, form.selects[KeyFilmFit].idx)
}

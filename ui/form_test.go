package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/jonntd/anima/camera"
	"github.com/jonntd/anima/store"
)

func TestFloatEntry(t *testing.T) {
	test.NewApp()

	def := camera.Setting{Name: camera.KeyFocalLength, Type: camera.FloatSetting, Min: 2.5, Max: 3500}
	e := newFloatEntry(def)

	e.SetValue(35)
	assert.Equal(t, "35", e.entry.Text)
	assert.Equal(t, 35.0, e.Value())

	e.entry.SetText("85.5")
	assert.Equal(t, 85.5, e.Value())

	// Unparsable text falls back to the last valid value.
	e.entry.SetText("85.5x")
	assert.Equal(t, 85.5, e.Value())
}

func TestFloatValidator(t *testing.T) {
	def := camera.Setting{Name: camera.KeyFocalLength, Type: camera.FloatSetting, Min: 2.5, Max: 3500}
	validate := floatValidator(def)

	assert.NoError(t, validate("35"))
	assert.NoError(t, validate("2.5"))
	assert.Error(t, validate("1"))
	assert.Error(t, validate("9999"))
	assert.Error(t, validate("abc"))

	// No range hint means any number passes.
	open := floatValidator(camera.Setting{Name: camera.KeyHorizontalPan, Type: camera.FloatSetting})
	assert.NoError(t, open("-123.4"))
}

func TestFilmFitSelectIndexConvention(t *testing.T) {
	test.NewApp()

	f := NewForm()
	sel := f.SelectWidget(camera.KeyFilmFit)
	assert.NotNil(t, sel)

	// Nothing selected reads as the zero sentinel.
	assert.Equal(t, 0, sel.SelectedIndex())

	sel.SetSelectedIndex(2)
	assert.Equal(t, 2, sel.SelectedIndex())
	assert.Equal(t, "Vertical", f.selects[camera.KeyFilmFit].sel.Selected)

	sel.SetSelectedIndex(4)
	assert.Equal(t, "Overscan", f.selects[camera.KeyFilmFit].sel.Selected)
}

func TestFormLazyPanZoomSection(t *testing.T) {
	test.NewApp()

	st := store.NewMemory()
	settings := camera.NewSettings(st)
	settings.EnsureDefaults(false)
	st.SetFloat(camera.KeyHorizontalPan, 0.25)

	form := NewForm()
	assert.False(t, form.PanZoomBuilt())
	assert.Nil(t, form.FloatWidget(camera.KeyHorizontalPan))

	// Loading with the section unbuilt skips its widgets.
	settings.Load(form)
	assert.NotNil(t, form.FloatWidget(camera.KeyFocalLength))

	form.BuildPanZoomSection()
	assert.True(t, form.PanZoomBuilt())

	// The reload after construction picks up the stored value.
	settings.Load(form)
	assert.Equal(t, 0.25, form.FloatWidget(camera.KeyHorizontalPan).Value())
}

func TestFormSaveRoundTrip(t *testing.T) {
	test.NewApp()

	st := store.NewMemory()
	settings := camera.NewSettings(st)

	form := NewForm()
	form.BuildPanZoomSection()
	settings.Load(form)

	form.FloatWidget(camera.KeyFocalLength).SetValue(50)
	form.BoolWidget(camera.KeyOrthographic).SetChecked(true)
	form.SelectWidget(camera.KeyFilmFit).SetSelectedIndex(1)

	settings.Save(form)

	assert.Equal(t, 50.0, st.Float(camera.KeyFocalLength))
	assert.True(t, st.Bool(camera.KeyOrthographic))
	assert.Equal(t, 1, st.Int(camera.KeyFilmFit))
	assert.Contains(t, settings.Assemble(), "-filmFit Horizontal")
}

func TestShowOptionBox(t *testing.T) {
	a := test.NewApp()

	st := store.NewMemory()
	settings := camera.NewSettings(st)
	settings.SetNodeCount(2)
	box := camera.NewOptionBox(settings, nil)

	w := ShowOptionBox(a, box, settings.Variant())
	assert.NotNil(t, w)

	// The form was loaded from the freshly defaulted store.
	assert.Equal(t, 35.0, w.Form().FloatWidget(camera.KeyFocalLength).Value())
	assert.Equal(t, "Create Camera and Aim Options", w.win.Title())
}

func TestPanZoomToggleBuildsSection(t *testing.T) {
	a := test.NewApp()

	st := store.NewMemory()
	settings := camera.NewSettings(st)
	box := camera.NewOptionBox(settings, nil)

	w := ShowOptionBox(a, box, settings.Variant())
	assert.False(t, w.Form().PanZoomBuilt())

	w.Form().BoolWidget(camera.KeyPanZoomEnabled).SetChecked(true)
	assert.True(t, w.Form().PanZoomBuilt())
	assert.Equal(t, 1.0, w.Form().FloatWidget(camera.KeyZoom).Value())
}

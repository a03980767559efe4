package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/jonntd/anima/camera"
	"github.com/jonntd/anima/util/log"
)

// OptionBoxWindow presents the option box dialog for one creation
// variant.
type OptionBoxWindow struct {
	win  fyne.Window
	form *Form
	box  *camera.OptionBox
}

// ShowOptionBox opens the option box for the given variant. The window
// title and help tag follow the variant; the form is populated from the
// stored settings before it appears.
func ShowOptionBox(a fyne.App, box *camera.OptionBox, variant camera.Variant) *OptionBoxWindow {
	w := &OptionBoxWindow{
		win:  a.NewWindow(variant.Title()),
		form: NewForm(),
		box:  box,
	}

	settings := box.Settings()
	w.form.OnPanZoomToggled = func(enabled bool) {
		if enabled && !w.form.PanZoomBuilt() {
			// Widgets skipped as missing so far exist now; reload so they
			// pick up their stored values.
			w.form.BuildPanZoomSection()
			settings.Load(w.form)
		}
	}
	settings.Load(w.form)

	create := widget.NewButton("Create", func() {
		settings.Save(w.form)
		if _, err := box.Do(camera.ActionExecute); err != nil {
			log.Printf("camera creation failed: %v", err)
			dialog.ShowError(err, w.win)
			return
		}
		w.win.Close()
	})
	create.Importance = widget.HighImportance

	apply := widget.NewButton("Apply", func() {
		settings.Save(w.form)
	})

	reset := widget.NewButton("Reset Settings", func() {
		settings.EnsureDefaults(true)
		settings.Load(w.form)
	})

	closeBtn := widget.NewButton("Close", func() {
		settings.Save(w.form)
		w.win.Close()
	})

	buttons := container.NewGridWithColumns(4, create, apply, reset, closeBtn)
	w.win.SetContent(container.NewBorder(
		nil, buttons, nil, nil,
		container.NewVScroll(w.form.Content()),
	))
	w.win.Resize(fyne.NewSize(480, 560))
	w.win.Show()

	log.Debugf("option box shown for %s (%s)", variant, variant.HelpTag())
	return w
}

// Form returns the window's form, mainly for tests.
func (w *OptionBoxWindow) Form() *Form {
	return w.form
}

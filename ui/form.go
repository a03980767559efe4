package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/jonntd/anima/camera"
)

// filmFitOptions lists the film fit choices. Their 1-based positions are
// the stored codes (Horizontal 1, Vertical 2, Fill 3, Overscan 4).
var filmFitOptions = []string{"Horizontal", "Vertical", "Fill", "Overscan"}

// displayNames maps setting keys to their row labels.
var displayNames = map[string]string{
	camera.KeyCenterOfInterest:       "Center of Interest",
	camera.KeyFocalLength:            "Focal Length",
	camera.KeyLensSqueezeRatio:       "Lens Squeeze Ratio",
	camera.KeyCameraScale:            "Camera Scale",
	camera.KeyHorizontalFilmAperture: "Horizontal Film Aperture",
	camera.KeyVerticalFilmAperture:   "Vertical Film Aperture",
	camera.KeyHorizontalFilmOffset:   "Horizontal Film Offset",
	camera.KeyVerticalFilmOffset:     "Vertical Film Offset",
	camera.KeyFilmFit:                "Film Fit",
	camera.KeyFilmFitOffset:          "Film Fit Offset",
	camera.KeyOverscan:               "Overscan",
	camera.KeyShutterAngle:           "Shutter Angle",
	camera.KeyNearClipPlane:          "Near Clip Plane",
	camera.KeyFarClipPlane:           "Far Clip Plane",
	camera.KeyOrthographic:           "Orthographic",
	camera.KeyOrthographicWidth:      "Orthographic Width",
	camera.KeyPanZoomEnabled:         "Enable Pan/Zoom",
	camera.KeyHorizontalPan:          "Horizontal Pan",
	camera.KeyVerticalPan:            "Vertical Pan",
	camera.KeyZoom:                   "Zoom",
}

// panZoomKeys are built lazily, once the pan/zoom checkbox is enabled.
var panZoomKeys = map[string]bool{
	camera.KeyHorizontalPan: true,
	camera.KeyVerticalPan:   true,
	camera.KeyZoom:          true,
}

// floatEntry adapts a fyne entry to the float widget contract. The last
// successfully parsed value backs reads while the entry text is invalid.
type floatEntry struct {
	entry *widget.Entry
	last  float64
}

func newFloatEntry(def camera.Setting) *floatEntry {
	e := &floatEntry{entry: widget.NewEntry()}
	e.entry.Validator = floatValidator(def)
	e.entry.OnChanged = func(text string) {
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			e.last = v
		}
	}
	return e
}

// Value returns the entry's current float, falling back to the last valid
// one while the text does not parse.
func (e *floatEntry) Value() float64 {
	if v, err := strconv.ParseFloat(e.entry.Text, 64); err == nil {
		return v
	}
	return e.last
}

// SetValue pushes a float into the entry.
func (e *floatEntry) SetValue(v float64) {
	e.last = v
	e.entry.SetText(strconv.FormatFloat(v, 'f', -1, 64))
}

// floatValidator builds an entry validator from the setting's advisory
// range hint.
func floatValidator(def camera.Setting) fyne.StringValidator {
	return func(text string) error {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("%s must be a number", displayNames[def.Name])
		}
		if def.Min == 0 && def.Max == 0 {
			return nil
		}
		if v < def.Min || v > def.Max {
			return fmt.Errorf("%s must be between %v and %v", displayNames[def.Name], def.Min, def.Max)
		}
		return nil
	}
}

// boolCheck adapts a fyne check to the bool widget contract.
type boolCheck struct {
	check *widget.Check
}

func (c *boolCheck) Checked() bool {
	return c.check.Checked
}

func (c *boolCheck) SetChecked(checked bool) {
	c.check.SetChecked(checked)
}

// filmFitSelect adapts a fyne select to the 1-based select contract; zero
// means no selection.
type filmFitSelect struct {
	sel *widget.Select
}

func (s *filmFitSelect) SelectedIndex() int {
	return s.sel.SelectedIndex() + 1
}

func (s *filmFitSelect) SetSelectedIndex(i int) {
	s.sel.SetSelectedIndex(i - 1)
}

// Form owns the option box widgets and implements camera.Form. The
// pan/zoom rows are only constructed once that section is enabled;
// until then their widgets read as nil and the sync layer skips them.
type Form struct {
	floats  map[string]*floatEntry
	bools   map[string]*boolCheck
	selects map[string]*filmFitSelect

	content *fyne.Container
	panZoom *fyne.Container

	// OnPanZoomToggled fires when the pan/zoom checkbox changes.
	OnPanZoomToggled func(enabled bool)
}

// NewForm builds the option box form without its pan/zoom section.
func NewForm() *Form {
	f := &Form{
		floats:  make(map[string]*floatEntry),
		bools:   make(map[string]*boolCheck),
		selects: make(map[string]*filmFitSelect),
	}

	f.content = container.NewVBox(CreateSectionTitleLabel("Camera Properties"))
	for _, def := range camera.Schema() {
		if panZoomKeys[def.Name] {
			continue
		}
		f.content.Add(f.buildRow(def))
	}

	f.panZoom = container.NewVBox()
	f.content.Add(f.panZoom)
	return f
}

func (f *Form) buildRow(def camera.Setting) *fyne.Container {
	label := CreateSettingTitleLabel(displayNames[def.Name])
	var control fyne.CanvasObject

	switch def.Type {
	case camera.FloatSetting:
		entry := newFloatEntry(def)
		f.floats[def.Name] = entry
		control = entry.entry
	case camera.BoolSetting:
		check := &boolCheck{check: widget.NewCheck("", func(bool) {})}
		if def.Name == camera.KeyPanZoomEnabled {
			check.check.OnChanged = func(enabled bool) {
				if f.OnPanZoomToggled != nil {
					f.OnPanZoomToggled(enabled)
				}
			}
		}
		f.bools[def.Name] = check
		control = check.check
	case camera.IntSetting:
		sel := &filmFitSelect{sel: widget.NewSelect(filmFitOptions, func(string) {})}
		f.selects[def.Name] = sel
		control = sel.sel
	}

	return NewSplitRow(label, control, SplitProportion.TwoFifths)
}

// PanZoomBuilt reports whether the pan/zoom rows exist yet.
func (f *Form) PanZoomBuilt() bool {
	return f.floats[camera.KeyHorizontalPan] != nil
}

// BuildPanZoomSection constructs the pan/zoom rows. The caller reloads
// the form afterwards so the new widgets pick up their stored values.
func (f *Form) BuildPanZoomSection() {
	if f.PanZoomBuilt() {
		return
	}
	f.panZoom.Add(CreateSectionTitleLabel("Pan/Zoom"))
	for _, def := range camera.Schema() {
		if panZoomKeys[def.Name] {
			f.panZoom.Add(f.buildRow(def))
		}
	}
	f.panZoom.Refresh()
}

// Content returns the form's canvas tree.
func (f *Form) Content() fyne.CanvasObject {
	return f.content
}

// FloatWidget returns the float control for name, nil when not built.
func (f *Form) FloatWidget(name string) camera.FloatWidget {
	if w, ok := f.floats[name]; ok {
		return w
	}
	return nil
}

// BoolWidget returns the check control for name, nil when not built.
func (f *Form) BoolWidget(name string) camera.BoolWidget {
	if w, ok := f.bools[name]; ok {
		return w
	}
	return nil
}

// SelectWidget returns the select control for name, nil when not built.
func (f *Form) SelectWidget(name string) camera.SelectWidget {
	if w, ok := f.selects[name]; ok {
		return w
	}
	return nil
}

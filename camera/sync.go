package camera

// FloatWidget is a form control holding one float setting.
type FloatWidget interface {
	Value() float64
	SetValue(v float64)
}

// BoolWidget is a form control holding one boolean setting.
type BoolWidget interface {
	Checked() bool
	SetChecked(checked bool)
}

// SelectWidget is a multi-choice form control. Indices are 1-based, after
// the host's option menu convention; zero means nothing is selected.
type SelectWidget interface {
	SelectedIndex() int
	SetSelectedIndex(i int)
}

// Form exposes the option box widgets, one per setting name. A nil return
// means the widget has not been constructed yet; Load and Save skip such
// settings and the caller re-runs Load once the widget exists.
type Form interface {
	FloatWidget(name string) FloatWidget
	BoolWidget(name string) BoolWidget
	SelectWidget(name string) SelectWidget
}

// Load pushes stored values into the form. Defaults are established first
// so every schema entry has a value to push. The film fit select is only
// touched when the stored index is positive; the zero sentinel would
// deselect the control.
func (s *Settings) Load(form Form) {
	s.EnsureDefaults(false)
	for _, def := range schema {
		switch def.Type {
		case FloatSetting:
			if w := form.FloatWidget(def.Name); w != nil {
				w.SetValue(s.store.Float(def.Name))
			}
		case BoolSetting:
			if w := form.BoolWidget(def.Name); w != nil {
				w.SetChecked(s.store.Bool(def.Name))
			}
		case IntSetting:
			if w := form.SelectWidget(def.Name); w != nil {
				if idx := s.store.Int(def.Name); idx > 0 {
					w.SetSelectedIndex(idx)
				}
			}
		}
	}
}

// Save writes current widget values back into the store. Settings whose
// widget does not exist keep their stored value. Unlike Load, the film fit
// selection is written back unconditionally.
func (s *Settings) Save(form Form) {
	for _, def := range schema {
		switch def.Type {
		case FloatSetting:
			if w := form.FloatWidget(def.Name); w != nil {
				s.store.SetFloat(def.Name, w.Value())
			}
		case BoolSetting:
			if w := form.BoolWidget(def.Name); w != nil {
				s.store.SetBool(def.Name, w.Checked())
			}
		case IntSetting:
			if w := form.SelectWidget(def.Name); w != nil {
				s.store.SetInt(def.Name, w.SelectedIndex())
			}
		}
	}
}

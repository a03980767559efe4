package camera

// SettingType identifies the scalar type of a persisted camera setting.
type SettingType int

// Scalar types used by the option box schema.
const (
	FloatSetting SettingType = iota
	IntSetting
	BoolSetting
)

// Persistence keys for every camera-creation setting. The keys are stable
// across sessions; renaming one orphans the stored value.
const (
	KeyCenterOfInterest       = "cameraCenterOfInterest"
	KeyFocalLength            = "cameraFocalLength"
	KeyLensSqueezeRatio       = "cameraLensSqueezeRatio"
	KeyCameraScale            = "cameraScale"
	KeyHorizontalFilmAperture = "cameraHorizontalFilmAperture"
	KeyVerticalFilmAperture   = "cameraVerticalFilmAperture"
	KeyHorizontalFilmOffset   = "cameraHorizontalFilmOffset"
	KeyVerticalFilmOffset     = "cameraVerticalFilmOffset"
	KeyFilmFit                = "cameraFilmFit"
	KeyFilmFitOffset          = "cameraFilmFitOffset"
	KeyOverscan               = "cameraOverscan"
	KeyShutterAngle           = "cameraShutterAngle"
	KeyNearClipPlane          = "cameraNearClipPlane"
	KeyFarClipPlane           = "cameraFarClipPlane"
	KeyOrthographic           = "cameraOrthographic"
	KeyOrthographicWidth      = "cameraOrthographicWidth"
	KeyPanZoomEnabled         = "cameraPanZoomEnabled"
	KeyHorizontalPan          = "cameraHorizontalPan"
	KeyVerticalPan            = "cameraVerticalPan"
	KeyZoom                   = "cameraZoom"
)

// KeyNodeCount selects the creation variant (1 camera only, 2 camera and
// aim, 3 camera, aim, and up). It is not part of the edited schema; the
// variant is chosen from the menu item, not the option box form.
const KeyNodeCount = "cameraNodeCount"

// Setting describes one named, typed, persisted scalar of the option box.
type Setting struct {
	Name    string      // persistence key
	Type    SettingType // scalar type of the stored value
	Flag    string      // camera command flag the value renders as
	Default any         // literal of the declared type

	// Advisory range for the form. Both zero means no hint; the core never
	// enforces it.
	Min, Max float64
}

// schema lists every edited setting in display order. The film fit default
// is the zero sentinel: it renders as the Fill token and the load path
// skips applying it to the select widget.
var schema = []Setting{
	{Name: KeyCenterOfInterest, Type: FloatSetting, Flag: "centerOfInterest", Default: 5.0, Min: 0.001, Max: 10000},
	{Name: KeyFocalLength, Type: FloatSetting, Flag: "focalLength", Default: 35.0, Min: 2.5, Max: 3500},
	{Name: KeyLensSqueezeRatio, Type: FloatSetting, Flag: "lensSqueezeRatio", Default: 1.0, Min: 0.01, Max: 5},
	{Name: KeyCameraScale, Type: FloatSetting, Flag: "cameraScale", Default: 1.0, Min: 0.01, Max: 10},
	{Name: KeyHorizontalFilmAperture, Type: FloatSetting, Flag: "horizontalFilmAperture", Default: 1.41732},
	{Name: KeyVerticalFilmAperture, Type: FloatSetting, Flag: "verticalFilmAperture", Default: 0.94488},
	{Name: KeyHorizontalFilmOffset, Type: FloatSetting, Flag: "horizontalFilmOffset", Default: 0.0},
	{Name: KeyVerticalFilmOffset, Type: FloatSetting, Flag: "verticalFilmOffset", Default: 0.0},
	{Name: KeyFilmFit, Type: IntSetting, Flag: "filmFit", Default: 0},
	{Name: KeyFilmFitOffset, Type: FloatSetting, Flag: "filmFitOffset", Default: 0.0},
	{Name: KeyOverscan, Type: FloatSetting, Flag: "overscan", Default: 1.0, Min: 0.01, Max: 1000},
	{Name: KeyShutterAngle, Type: FloatSetting, Flag: "shutterAngle", Default: 144.0, Min: 1, Max: 360},
	{Name: KeyNearClipPlane, Type: FloatSetting, Flag: "nearClipPlane", Default: 0.1, Min: 0.001, Max: 10000},
	{Name: KeyFarClipPlane, Type: FloatSetting, Flag: "farClipPlane", Default: 10000.0, Min: 0.001, Max: 1000000},
	{Name: KeyOrthographic, Type: BoolSetting, Flag: "orthographic", Default: false},
	{Name: KeyOrthographicWidth, Type: FloatSetting, Flag: "orthographicWidth", Default: 30.0, Min: 0.001, Max: 10000},
	{Name: KeyPanZoomEnabled, Type: BoolSetting, Flag: "panZoomEnabled", Default: false},
	{Name: KeyHorizontalPan, Type: FloatSetting, Flag: "horizontalPan", Default: 0.0},
	{Name: KeyVerticalPan, Type: FloatSetting, Flag: "verticalPan", Default: 0.0},
	{Name: KeyZoom, Type: FloatSetting, Flag: "zoom", Default: 1.0, Min: 0.001, Max: 1000},
}

// Schema returns the ordered list of edited settings. The returned slice is
// shared; callers must treat it as read only.
func Schema() []Setting {
	return schema
}

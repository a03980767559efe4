package camera

// Variant identifies which camera creation command the option box
// configures: a plain camera, a camera with an aim locator, or a camera
// with aim and up locators.
type Variant int

// Creation variants, selected by the stored node count.
const (
	VariantCamera Variant = iota
	VariantCameraAim
	VariantCameraAimUp
)

// VariantForNodeCount maps a node count to its variant. Counts 2 and 3
// select the aim variants; anything else is a plain camera.
func VariantForNodeCount(n int) Variant {
	switch n {
	case 2:
		return VariantCameraAim
	case 3:
		return VariantCameraAimUp
	default:
		return VariantCamera
	}
}

// NodeCount returns the node count the variant creates.
func (v Variant) NodeCount() int {
	switch v {
	case VariantCameraAim:
		return 2
	case VariantCameraAimUp:
		return 3
	default:
		return 1
	}
}

// Title returns the option box window title for the variant.
func (v Variant) Title() string {
	switch v {
	case VariantCameraAim:
		return "Create Camera and Aim Options"
	case VariantCameraAimUp:
		return "Create Camera, Aim, and Up Options"
	default:
		return "Create Camera Options"
	}
}

// HelpTag returns the help anchor associated with the variant's menu item.
func (v Variant) HelpTag() string {
	switch v {
	case VariantCameraAim:
		return "CreateCameraAim"
	case VariantCameraAimUp:
		return "CreateCameraAimUp"
	default:
		return "CreateCameraOnly"
	}
}

func (v Variant) String() string {
	switch v {
	case VariantCameraAim:
		return "camera and aim"
	case VariantCameraAimUp:
		return "camera, aim, and up"
	default:
		return "camera"
	}
}

package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilmFitToken(t *testing.T) {
	tests := []struct {
		code  int
		token string
	}{
		{1, "Horizontal"},
		{2, "Vertical"},
		{4, "Overscan"},
		{0, "Fill"},
		{3, "Fill"}, // gap in the mapping, falls back
		{-1, "Fill"},
		{5, "Fill"},
		{99, "Fill"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.token, FilmFitToken(tc.code), "code %d", tc.code)
	}
}

func TestCommandDefaults(t *testing.T) {
	st := newFakeStore()
	s := NewSettings(st)
	s.EnsureDefaults(true)

	out := s.Assemble()

	assert.Contains(t, out, "camera -centerOfInterest 5")
	assert.Contains(t, out, "-focalLength 35")
	assert.Contains(t, out, "-lensSqueezeRatio 1")
	assert.Contains(t, out, "-horizontalFilmAperture 1.41732")
	assert.Contains(t, out, "-verticalFilmAperture 0.94488")
	assert.Contains(t, out, "-filmFit Fill")
	assert.Contains(t, out, "-shutterAngle 144")
	assert.Contains(t, out, "-nearClipPlane 0.1")
	assert.Contains(t, out, "-farClipPlane 10000")
	assert.Contains(t, out, "-orthographic 0")
	assert.Contains(t, out, "-panZoomEnabled 0")
	assert.Contains(t, out, "-zoom 1")
	assert.Contains(t, out, `select -cl; cameraMakeNode 1 "";`)
}

func TestCommandFilmFitVariants(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{1, "-filmFit Horizontal"},
		{2, "-filmFit Vertical"},
		{4, "-filmFit Overscan"},
		{3, "-filmFit Fill"},
		{0, "-filmFit Fill"},
		{-2, "-filmFit Fill"},
	}
	for _, tc := range tests {
		st := newFakeStore()
		s := NewSettings(st)
		s.EnsureDefaults(false)
		st.SetInt(KeyFilmFit, tc.code)

		assert.Contains(t, s.Assemble(), tc.want, "code %d", tc.code)
	}
}

func TestCommandFlagOrder(t *testing.T) {
	st := newFakeStore()
	s := NewSettings(st)
	cmd := s.Command()

	assert.Equal(t, "camera", cmd.Name)
	assert.Len(t, cmd.Flags, len(Schema()))
	for i, def := range Schema() {
		assert.Equal(t, def.Flag, cmd.Flags[i].Name)
	}
}

func TestCommandReadsStoreOnly(t *testing.T) {
	st := newFakeStore()
	s := NewSettings(st)
	s.EnsureDefaults(false)
	st.SetFloat(KeyFocalLength, 50)
	st.SetInt(KeyFilmFit, 2)
	before := st.snapshot()

	_ = s.Assemble()
	_ = s.Command()

	assert.Equal(t, before, st.data, "assembly must not mutate the store")
}

func TestCommandBoolRendering(t *testing.T) {
	st := newFakeStore()
	s := NewSettings(st)
	s.EnsureDefaults(false)
	st.SetBool(KeyOrthographic, true)
	st.SetFloat(KeyOrthographicWidth, 12.5)

	out := s.Assemble()
	assert.Contains(t, out, "-orthographic 1")
	assert.Contains(t, out, "-orthographicWidth 12.5")
}

func TestCommandNodeCount(t *testing.T) {
	st := newFakeStore()
	s := NewSettings(st)
	s.EnsureDefaults(false)
	s.SetNodeCount(3)

	cmd := s.Command()
	assert.Equal(t, 3, cmd.NodeCount)
	assert.Contains(t, cmd.String(), `cameraMakeNode 3 "";`)
}

func TestCommandStringRendering(t *testing.T) {
	cmd := Command{
		Name: "camera",
		Flags: []Flag{
			{Name: "focalLength", Value: "35"},
			{Name: "filmFit", Value: "Fill"},
		},
		NodeCount: 2,
	}
	assert.Equal(t,
		`camera -focalLength 35 -filmFit Fill; select -cl; cameraMakeNode 2 "";`,
		cmd.String())
}

// Saving a form with a missing widget must leave the assembled command
// reflecting the untouched stored value.
func TestAssembleAfterPartialSave(t *testing.T) {
	st := newFakeStore()
	s := NewSettings(st)
	s.EnsureDefaults(false)
	st.SetFloat(KeyOrthographicWidth, 77)

	form := fullFakeForm()
	delete(form.floats, KeyOrthographicWidth)
	s.Save(form)

	assert.Contains(t, s.Assemble(), "-orthographicWidth 77")
}

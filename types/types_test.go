package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
		valid    bool
	}{
		{name: "empty defaults to ply", input: "", expected: FormatPLY, valid: true},
		{name: "ply", input: "ply", expected: FormatPLY, valid: true},
		{name: "glb upper case", input: "GLB", expected: FormatGLB, valid: true},
		{name: "surrounding whitespace", input: "  ply ", expected: FormatPLY, valid: true},
		{name: "unknown", input: "obj", expected: Format("obj"), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := ParseFormat(tt.input)
			assert.Equal(t, tt.expected, f)
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestFormat_OutputKind(t *testing.T) {
	assert.Equal(t, OutputKindSplat, FormatPLY.OutputKind())
	assert.Equal(t, OutputKindMesh, FormatGLB.OutputKind())
	assert.Equal(t, "ply", FormatPLY.Extension())
}

func TestSupportedFormats_PreferenceOrder(t *testing.T) {
	assert.Equal(t, []Format{FormatPLY, FormatGLB}, SupportedFormats)
}

func TestNewModelCreatedEvent(t *testing.T) {
	event := NewModelCreatedEvent("sam3d/test", ModelCreatedData{
		ModelID: "0b1c5f3e-6f0c-4d59-9d5f-3b7a4c1fd0a2",
		Format:  FormatPLY,
		Size:    128,
		ETag:    "bafkreiabc",
	})

	require.NoError(t, event.Validate())
	assert.Equal(t, EventModelCreated, event.Type())
	assert.Equal(t, "sam3d/test", event.Source())
	assert.Equal(t, "0b1c5f3e-6f0c-4d59-9d5f-3b7a4c1fd0a2", event.ID())

	var data ModelCreatedData
	require.NoError(t, json.Unmarshal(event.Data(), &data))
	assert.Equal(t, FormatPLY, data.Format)
	assert.Equal(t, 128, data.Size)
}

package toolhub

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listFilesDescriptor() ToolDescriptor {
	return ToolDescriptor{
		Name:        "list_files",
		Description: "List files in a directory",
		Params: map[string]ParamSpec{
			"path":    {Type: "string", Description: "Directory to list", Required: true},
			"hidden":  {Type: "boolean", Description: "Include hidden files", Default: false},
			"max_depth": {Type: "integer", Description: "Max depth"},
		},
	}
}

func TestValidateArgsAccepts(t *testing.T) {
	desc := listFilesDescriptor()
	err := ValidateArgs(desc, map[string]interface{}{
		"path":    ".",
		"hidden":  true,
		"max_depth": float64(2), // JSON numbers decode as float64
	})
	assert.NoError(t, err)
}

func TestValidateArgsMissingRequired(t *testing.T) {
	desc := listFilesDescriptor()
	err := ValidateArgs(desc, map[string]interface{}{"hidden": true})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "list_files", verr.Tool)
	assert.Contains(t, verr.Reason, "path")
}

func TestValidateArgsWrongType(t *testing.T) {
	desc := listFilesDescriptor()
	err := ValidateArgs(desc, map[string]interface{}{"path": 42})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected string")
}

func TestValidateArgsNonIntegralNumber(t *testing.T) {
	desc := listFilesDescriptor()
	err := ValidateArgs(desc, map[string]interface{}{"path": ".", "max_depth": 1.5})
	require.Error(t, err)
}

func TestValidateArgsUnknownKey(t *testing.T) {
	desc := listFilesDescriptor()
	err := ValidateArgs(desc, map[string]interface{}{"path": ".", "colour": "red"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestValidateArgsNoSchemaAcceptsAnything(t *testing.T) {
	desc := ToolDescriptor{Name: "free_form"}
	assert.NoError(t, ValidateArgs(desc, map[string]interface{}{"whatever": 1}))
}

func TestApplyDefaults(t *testing.T) {
	desc := listFilesDescriptor()
	in := map[string]interface{}{"path": "."}
	out := ApplyDefaults(desc, in)

	assert.Equal(t, false, out["hidden"])
	assert.Equal(t, ".", out["path"])
	// Input map is untouched.
	_, present := in["hidden"]
	assert.False(t, present)
}

func TestDescriptorDef(t *testing.T) {
	def := listFilesDescriptor().Def()
	assert.Equal(t, "list_files", def.Name)

	params, ok := def.Parameters["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, params, "path")

	required, ok := def.Parameters["required"].([]string)
	require.True(t, ok)
	assert.Equal(t, []string{"path"}, required)
}

package usegrantmcp

import (
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usegrant/usegrant-mcp/usegrant"
)

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema[CreateClientArgs]()
	require.NoError(t, err)

	assert.Equal(t, "object", schema.Type)
	assert.ElementsMatch(t, []string{"providerId", "name"}, schema.Required)
	require.Contains(t, schema.Properties, "scopes")
	assert.Equal(t, "array", schema.Properties["scopes"].Type)
	assert.Equal(t, "Provider ID", schema.Properties["providerId"].Description)

	require.NotNil(t, schema.Properties["providerId"].MinLength)
	assert.Equal(t, 1, *schema.Properties["providerId"].MinLength)
	assert.Nil(t, schema.Properties["description"].MinLength, "optional strings may be empty")
	assert.Nil(t, schema.Properties["name"].MinLength, "only identifiers are length checked")
}

func TestGenerateSchema_RequestTypes(t *testing.T) {
	schema, err := GenerateSchema[usegrant.CreateTenantRequest]()
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, schema.Required)

	schema, err = GenerateSchema[NoArgs]()
	require.NoError(t, err)
	assert.Equal(t, "object", schema.Type)
	assert.Empty(t, schema.Required)
}

func TestRequireNonEmpty(t *testing.T) {
	schema := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"id":          {Type: "string"},
			"tenantId":    {Type: "string"},
			"accessToken": {Type: "string"},
			"name":        {Type: "string"},
			"count":       {Type: "integer"},
			"note":        {Type: "string"},
		},
		Required: []string{"id", "tenantId", "accessToken", "name", "count", "missing"},
	}

	requireNonEmpty(schema)

	for _, name := range []string{"id", "tenantId"} {
		require.NotNil(t, schema.Properties[name].MinLength, name)
		assert.Equal(t, 1, *schema.Properties[name].MinLength, name)
	}
	for _, name := range []string{"accessToken", "name", "count", "note"} {
		assert.Nil(t, schema.Properties[name].MinLength, name)
	}
}

func TestGenerateSchema_PromptArguments(t *testing.T) {
	schema, err := GenerateSchema[ValidateAccessTokenArgs]()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"tenantId", "accessToken"}, schema.Required)
	require.NotNil(t, schema.Properties["tenantId"].MinLength)
	assert.Nil(t, schema.Properties["accessToken"].MinLength, "an empty token is forwarded for validation")
}

func TestPromptArguments(t *testing.T) {
	schema := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"zeta":  {Type: "string", Description: "optional z"},
			"beta":  {Type: "string", Description: "required b"},
			"alpha": {Type: "string", Description: "optional a"},
			"gamma": {Type: "string", Description: "required g"},
		},
		Required: []string{"gamma", "beta"},
	}

	args := promptArguments(schema)
	require.Len(t, args, 4)

	names := []string{args[0].Name, args[1].Name, args[2].Name, args[3].Name}
	assert.Equal(t, []string{"beta", "gamma", "alpha", "zeta"}, names)
	assert.True(t, args[0].Required)
	assert.True(t, args[1].Required)
	assert.False(t, args[2].Required)
	assert.Equal(t, "required b", args[0].Description)
}

package usegrantmcp

import (
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GenerateSchema is a thin wrapper around jsonschema.For[T]() that also
// rejects empty required identifiers.
func GenerateSchema[T any]() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, err
	}
	requireNonEmpty(schema)
	return schema, nil
}

// requireNonEmpty sets minLength 1 on every required string identifier
// ("id" or a name ending in "Id"). Identifiers become URL path segments;
// other strings are forwarded as given.
func requireNonEmpty(schema *jsonschema.Schema) {
	one := 1
	for _, name := range schema.Required {
		property, ok := schema.Properties[name]
		if !ok || property.Type != "string" || !isIdentifier(name) {
			continue
		}
		property.MinLength = &one
	}
}

func isIdentifier(name string) bool {
	return name == "id" || strings.HasSuffix(name, "Id")
}

// promptArguments derives MCP prompt arguments from an object schema.
// Required arguments come first; each group is sorted by name.
func promptArguments(schema *jsonschema.Schema) []*mcp.PromptArgument {
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if required[names[i]] != required[names[j]] {
			return required[names[i]]
		}
		return names[i] < names[j]
	})

	args := make([]*mcp.PromptArgument, 0, len(names))
	for _, name := range names {
		args = append(args, &mcp.PromptArgument{
			Name:        name,
			Description: schema.Properties[name].Description,
			Required:    required[name],
		})
	}
	return args
}

package settings

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/msto63/textkit/foundation/core/errors"
)

// Encode renders settings as toml, yaml or json
func Encode(s Settings, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "toml", "":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(s); err != nil {
			return nil, errors.OperationFailed(errors.ModuleSettings, "encode", err)
		}
		return buf.Bytes(), nil
	case "yaml", "yml":
		out, err := yaml.Marshal(s)
		if err != nil {
			return nil, errors.OperationFailed(errors.ModuleSettings, "encode", err)
		}
		return out, nil
	case "json":
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, errors.OperationFailed(errors.ModuleSettings, "encode", err)
		}
		return append(out, '\n'), nil
	default:
		return nil, errors.InvalidInput(errors.ModuleSettings, "encode", format, "toml, yaml or json")
	}
}

// Schema returns the JSON Schema of the configuration file
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
	}
	schema := reflector.Reflect(&Settings{})
	schema.Title = "textkit configuration"

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, errors.OperationFailed(errors.ModuleSettings, "schema", err)
	}
	return append(out, '\n'), nil
}

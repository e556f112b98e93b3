package reel

import (
	"encoding/json"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Codec defines the deserialization contract for deck files.
type Codec interface {
	// Unmarshal deserializes bytes into a value.
	Unmarshal(data []byte, v any) error

	// ContentType returns the MIME type for observability and debugging.
	ContentType() string
}

// JSONCodec implements Codec using encoding/json.
type JSONCodec struct{}

// Unmarshal deserializes JSON bytes into v.
func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// ContentType returns the JSON MIME type.
func (JSONCodec) ContentType() string {
	return "application/json"
}

// YAMLCodec implements Codec using gopkg.in/yaml.v3.
type YAMLCodec struct{}

// Unmarshal deserializes YAML bytes into v.
func (YAMLCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// ContentType returns the YAML MIME type.
func (YAMLCodec) ContentType() string {
	return "application/x-yaml"
}

// TOMLCodec implements Codec using pelletier/go-toml/v2.
type TOMLCodec struct{}

// Unmarshal deserializes TOML bytes into v.
func (TOMLCodec) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}

// ContentType returns the TOML MIME type.
func (TOMLCodec) ContentType() string {
	return "application/toml"
}

// CodecFor picks a codec from a file extension. Unknown extensions use YAML,
// which also accepts plain JSON.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSONCodec{}
	case ".toml":
		return TOMLCodec{}
	default:
		return YAMLCodec{}
	}
}

var (
	_ Codec = JSONCodec{}
	_ Codec = YAMLCodec{}
	_ Codec = TOMLCodec{}
)

package profile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed profile.schema.json
var schemaBytes []byte

var schema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("profile.schema.json", bytes.NewReader(schemaBytes)); err != nil {
		panic(err)
	}
	s, err := compiler.Compile("profile.schema.json")
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks a raw profile payload against the profile schema.
func Validate(payload []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()
	var v any
	if err := decoder.Decode(&v); err != nil {
		return fmt.Errorf("%w: %w", ErrProfileInvalid, err)
	}
	if err := schema.Validate(v); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("%w: %s", ErrProfileInvalid, formatValidationError(validationErr))
		}
		return fmt.Errorf("%w: %w", ErrProfileInvalid, err)
	}
	return nil
}

func formatValidationError(err *jsonschema.ValidationError) string {
	var messages []string
	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, location+": "+e.Message)
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)
	if len(messages) == 0 {
		return err.Error()
	}
	return strings.Join(messages, "; ")
}

// Decode validates and decodes a raw profile payload.
func Decode(payload []byte) (*Profile, error) {
	if err := Validate(payload); err != nil {
		return nil, err
	}
	p := new(Profile)
	if err := json.Unmarshal(payload, p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProfileInvalid, err)
	}
	return p, nil
}

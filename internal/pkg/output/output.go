package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

type Formatter interface {
	Format(v any) error
}

// New returns the formatter for format, json or yaml.
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "json", "":
		return &JSONFormatter{writer: w}, nil
	case "yaml", "yml":
		return &YAMLFormatter{writer: w}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}

type JSONFormatter struct {
	writer io.Writer
}

func (f *JSONFormatter) Format(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

type YAMLFormatter struct {
	writer io.Writer
}

func (f *YAMLFormatter) Format(v any) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2), yaml.IndentSequence(true))
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

// Package config holds the render style, loaded from an optional YAML file on
// top of built-in defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Style controls how a correspondence is drawn. Colours are #rrggbb.
type Style struct {
	Title string `yaml:"title"`

	// LeftColor and RightColor outline the vertices of each side.
	LeftColor  string `yaml:"leftColor" validate:"required,hexcolor"`
	RightColor string `yaml:"rightColor" validate:"required,hexcolor"`

	// LowColor and HighColor are the ends of the vertex value ramp.
	LowColor  string `yaml:"lowColor" validate:"required,hexcolor"`
	HighColor string `yaml:"highColor" validate:"required,hexcolor"`

	EdgeColor      string `yaml:"edgeColor" validate:"required,hexcolor"`
	StructureColor string `yaml:"structureColor" validate:"required,hexcolor"`

	NodeSize   float64 `yaml:"nodeSize" validate:"gt=0,lte=100"`
	EdgeWidth  float64 `yaml:"edgeWidth" validate:"gt=0,lte=20"`
	TikzScale  float64 `yaml:"tikzScale" validate:"gt=0"`
	ShowLabels bool    `yaml:"showLabels"`
}

func DefaultStyle() Style {
	return Style{
		Title:          "graphpair",
		LeftColor:      "#e57373",
		RightColor:     "#64b5f6",
		LowColor:       "#fff3e0",
		HighColor:      "#bf360c",
		EdgeColor:      "#9e9e9e",
		StructureColor: "#424242",
		NodeSize:       10,
		EdgeWidth:      1,
		TikzScale:      0.8,
		ShowLabels:     false,
	}
}

// LoadStyle reads a YAML style file. Keys missing from the file keep their
// default value. An empty path returns the defaults.
func LoadStyle(path string) (Style, error) {
	style := DefaultStyle()
	if path == "" {
		return style, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&style); err != nil && !errors.Is(err, io.EOF) {
		return Style{}, fmt.Errorf("decode style %s: %w", path, err)
	}

	if err := style.Validate(); err != nil {
		return Style{}, fmt.Errorf("invalid style %s: %w", path, err)
	}
	return style, nil
}

func (s Style) Validate() error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatFieldError(e))
	}
	return errors.New(strings.Join(messages, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex colour, got %q", field, e.Value())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

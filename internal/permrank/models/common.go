package models

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config file formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

var formatsByExt = map[string]string{
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".json": FormatJSON,
}

// DecodeFile decodes file at path into v, format is chosen by file extension.
func DecodeFile(path string, v any) error {
	ext := strings.ToLower(filepath.Ext(path))

	format, ok := formatsByExt[ext]
	if !ok {
		return errors.Errorf("unknown file format %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.New(err.Error())
	}
	defer f.Close()

	return DecodeReader(format, f, v)
}

// DecodeReader decodes r in the given format into v and then overrides values from environment.
// Unknown fields are rejected, empty input leaves v untouched.
func DecodeReader(format string, r io.Reader, v any) error {
	var decode func(any) error

	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(r)
		decoder.KnownFields(true)
		decode = decoder.Decode
	case FormatJSON:
		decoder := json.NewDecoder(r)
		decoder.DisallowUnknownFields()
		decode = decoder.Decode
	default:
		return errors.Errorf("format %q is not supported", format)
	}

	if err := decode(v); err != nil && !errors.Is(err, io.EOF) {
		return errors.New(err.Error())
	}

	if err := cleanenv.ReadEnv(v); err != nil {
		return errors.New(err.Error())
	}

	return nil
}

// joinErrors renders validation errors as a list, lines ending with ':' start a nested section.
func joinErrors(errs []error) string {
	lines := make([]string, len(errs))

	for i, err := range errs {
		line := err.Error()
		if !strings.HasSuffix(line, ":") {
			line = "- " + line
		}

		lines[i] = line
	}

	return strings.Join(lines, "\n")
}

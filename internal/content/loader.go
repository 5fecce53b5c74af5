package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format names the encoding of a content document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

//go:embed portfolio.json
var defaultDocument []byte

var validate = validator.New()

// FormatFromPath picks the decoder from the file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and validates the content document at path.
func Load(path string) (p Portfolio, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Errorf("content file not found: %s", path)
			return p, err
		}
		err = errors.Wrapf(err, "failed to read content file: %s", path)
		return p, err
	}

	p, err = Parse(data, FormatFromPath(path))
	if err != nil {
		err = errors.Wrapf(err, "invalid content file: %s", path)
		return p, err
	}

	return p, err
}

// Parse decodes and validates a content document.
func Parse(data []byte, format Format) (p Portfolio, err error) {
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &p)
	case FormatJSON:
		err = json.Unmarshal(data, &p)
	default:
		err = errors.Errorf("unsupported content format %q", format)
		return p, err
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to parse %s content", format)
		return p, err
	}

	err = p.Validate()
	return p, err
}

// Default returns the sample document embedded in the binary.
func Default() (p Portfolio) {
	p, err := Parse(defaultDocument, FormatJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded portfolio.json is invalid: %v", err))
	}
	return p
}

// Validate checks that the fields every section prints are present. Optional
// fields are not looked at.
func (p *Portfolio) Validate() (err error) {
	err = validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "content validation failed")
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s is required", strings.TrimPrefix(fe.Namespace(), "Portfolio.")))
	}
	err = errors.New(strings.Join(msgs, "; "))
	return err
}

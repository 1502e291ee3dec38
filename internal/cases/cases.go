package cases

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	flerror "github.com/msto63/faultlab/foundation/core/error"
	"github.com/msto63/faultlab/foundation/core/errors"
	"github.com/msto63/faultlab/foundation/core/validation"
)

//go:embed builtin.yaml
var builtinCases []byte

// Format is the encoding of a case file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension; anything other
// than .toml is read as YAML
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Case is one expected outcome of a catalog operation. Exactly one of Want
// and WantError is set.
type Case struct {
	Name      string       `yaml:"name" toml:"name" json:"name"`
	Operation string       `yaml:"operation" toml:"operation" json:"operation"`
	Args      []string     `yaml:"args" toml:"args" json:"args"`
	Want      *string      `yaml:"want,omitempty" toml:"want,omitempty" json:"want,omitempty"`
	WantError flerror.Code `yaml:"want_error,omitempty" toml:"want_error,omitempty" json:"want_error,omitempty"`
}

// Expectation describes the expected outcome as text
func (c Case) Expectation() string {
	if c.WantError != "" {
		return "error " + c.WantError.String()
	}
	if c.Want != nil {
		return *c.Want
	}
	return ""
}

type caseFile struct {
	Cases []Case `yaml:"cases" toml:"cases"`
}

// Load reads and validates a case file. An unreadable file is CONFIG_ERROR,
// malformed or invalid content INVALID_INPUT.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleCases).
			Operation("load").
			Messagef("cannot read case file %s", path).
			Cause(err).
			Code(flerror.CodeConfigError).
			Detail("file_path", path).
			Build()
	}

	cases, err := Parse(data, FormatFromPath(path))
	if err != nil {
		if flErr, ok := flerror.As(err); ok {
			flErr.WithDetail("file_path", path)
		}
		return nil, err
	}
	return cases, nil
}

// Parse decodes and validates case file content
func Parse(data []byte, format Format) ([]Case, error) {
	var file caseFile
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &file)
	default:
		err = yaml.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleCases).
			Operation("parse").
			Messagef("malformed %s case file", format).
			Cause(err).
			Code(flerror.CodeInvalidInput).
			Detail("format", string(format)).
			Build()
	}

	for i, c := range file.Cases {
		if result := caseValidator.Validate(c); !result.Valid {
			return nil, errors.NewErrorBuilder(errors.ModuleCases).
				Operation("validate").
				Messagef("case %d (%s): %s", i+1, c.Name, strings.Join(result.ErrorMessages(), "; ")).
				Code(flerror.CodeInvalidInput).
				Detail("case_index", i).
				Detail("validation_codes", result.ErrorCodes()).
				Build()
		}
	}
	return file.Cases, nil
}

// Builtin returns the embedded cases covering every catalog operation
func Builtin() ([]Case, error) {
	return Parse(builtinCases, FormatYAML)
}

// caseValidator reports every structural problem of a case
var caseValidator = validation.NewValidatorChain("case").
	AddFunc(validation.Required("name", func(v interface{}) interface{} { return v.(Case).Name })).
	AddFunc(validation.Required("operation", func(v interface{}) interface{} { return v.(Case).Operation })).
	AddFunc(validateExpectation)

func validateExpectation(v interface{}) validation.ValidationResult {
	c := v.(Case)
	switch {
	case c.Want != nil && c.WantError != "":
		return validation.NewFieldError(validation.CodeConflict, "want_error",
			"want and want_error are mutually exclusive", c.WantError.String())
	case c.Want == nil && c.WantError == "":
		return validation.NewFieldError(validation.CodeRequired, "want",
			"one of want or want_error is required", nil)
	case c.WantError != "" && !c.WantError.IsValid():
		return validation.NewFieldError(validation.CodeUnknown, "want_error",
			"unknown error code "+c.WantError.String(), c.WantError.String())
	}
	return validation.NewValidationResult()
}

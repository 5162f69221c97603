package report

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema is the JSON schema of the JSON report format.
//
//go:embed schema.json
var Schema string

const schemaURL = "report.schema.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ValidationErrors collects every schema violation of a report.
type ValidationErrors []error

// Error implements the error interface for ValidationErrors
func (ve ValidationErrors) Error() string {
	var sb strings.Builder
	for i, err := range ve {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func reportSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, strings.NewReader(Schema)); err != nil {
			compileErr = fmt.Errorf("invalid report schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("invalid report schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks a JSON report against Schema. Schema violations are returned
// as ValidationErrors.
func Validate(data []byte) error {
	schema, err := reportSchema()
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return extractValidationErrors(validationErr)
		}
		return ValidationErrors{err}
	}
	return nil
}

// extractValidationErrors flattens the leaf causes of a jsonschema.ValidationError.
func extractValidationErrors(err *jsonschema.ValidationError) ValidationErrors {
	if len(err.Causes) == 0 {
		return ValidationErrors{fmt.Errorf("%s: %s", location(err.InstanceLocation), err.Message)}
	}

	var errs ValidationErrors
	for _, cause := range err.Causes {
		errs = append(errs, extractValidationErrors(cause)...)
	}
	return errs
}

func location(ptr string) string {
	if ptr == "" {
		return "/"
	}
	return ptr
}

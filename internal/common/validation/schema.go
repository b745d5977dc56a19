// Package validation wraps JSON Schema checking for the two data contracts
// the application enforces: the catalog dataset and the narrative reply.
package validation

import (
	"github.com/xeipuuv/gojsonschema"
)

// CheckDocument validates raw JSON bytes against an inline schema. It returns
// the violation descriptions, empty when the document conforms, and a non-nil
// error only when the schema or document cannot be evaluated at all.
func CheckDocument(schema string, document []byte) ([]string, error) {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, err
	}

	if result.Valid() {
		return nil, nil
	}

	violations := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		violations[i] = desc.String()
	}
	return violations, nil
}

// Package schemas carries the JSON Schema documents that validate
// structured artifacts: generative-model analysis responses and
// job-description files supplied to the CLI. Schemas are embedded at
// compile time.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Schema file names.
const (
	AnalysisResponse = "analysis_response.schema.json"
	JobDescription   = "job_description.schema.json"
)

// Get returns the schema document for a file name.
func Get(name string) (string, error) {
	data, err := schemaFiles.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read schema %s: %w", name, err)
	}
	return string(data), nil
}

// MustGet returns the schema document, panicking if it is not embedded.
// Use this for schemas that are required at initialization time.
func MustGet(name string) string {
	schema, err := Get(name)
	if err != nil {
		panic(fmt.Sprintf("failed to load schema: %v", err))
	}
	return schema
}

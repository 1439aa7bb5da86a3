// Package validator guards the JSON artifacts with embedded CUE
// schemas. The mapping dataset and the tag map are contracts between
// separate tool runs; writing or consuming a malformed artifact should
// crash immediately with a clear error instead of letting a later run
// silently misbehave.
package validator

import (
	"embed"
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed dataset_schema.cue
var datasetSchemaFS embed.FS

//go:embed tags_schema.cue
var tagsSchemaFS embed.FS

// DatasetValidator validates mapping datasets against the dataset
// schema contract.
type DatasetValidator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewDatasetValidator compiles the embedded dataset schema.
func NewDatasetValidator() (*DatasetValidator, error) {
	ctx, schema, err := compileSchema(datasetSchemaFS, "dataset_schema.cue")
	if err != nil {
		return nil, err
	}
	return &DatasetValidator{ctx: ctx, schema: schema}, nil
}

// Validate checks that the dataset conforms to the schema. Returns nil
// if valid, or an error explaining what failed.
func (v *DatasetValidator) Validate(data any) error {
	return validate(v.ctx, v.schema, "#Dataset", data)
}

// ValidateJSON validates JSON bytes directly against the dataset schema.
func (v *DatasetValidator) ValidateJSON(jsonBytes []byte) error {
	return validateJSON(v.ctx, v.schema, "#Dataset", jsonBytes)
}

// TagsValidator validates tag maps against the tag map schema contract.
type TagsValidator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewTagsValidator compiles the embedded tag map schema.
func NewTagsValidator() (*TagsValidator, error) {
	ctx, schema, err := compileSchema(tagsSchemaFS, "tags_schema.cue")
	if err != nil {
		return nil, err
	}
	return &TagsValidator{ctx: ctx, schema: schema}, nil
}

// Validate checks that the tag map conforms to the schema.
func (v *TagsValidator) Validate(data any) error {
	return validate(v.ctx, v.schema, "#TagMap", data)
}

func compileSchema(fs embed.FS, name string) (*cue.Context, cue.Value, error) {
	ctx := cuecontext.New()

	schemaBytes, err := fs.ReadFile(name)
	if err != nil {
		return nil, cue.Value{}, fmt.Errorf("loading embedded schema %s: %w", name, err)
	}

	schema := ctx.CompileBytes(schemaBytes)
	if schema.Err() != nil {
		return nil, cue.Value{}, fmt.Errorf("compiling schema %s: %w", name, schema.Err())
	}
	return ctx, schema, nil
}

func validate(ctx *cue.Context, schema cue.Value, path string, data any) error {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling data to JSON: %w", err)
	}
	return validateJSON(ctx, schema, path, jsonBytes)
}

func validateJSON(ctx *cue.Context, schema cue.Value, path string, jsonBytes []byte) error {
	dataValue := ctx.CompileBytes(jsonBytes)
	if dataValue.Err() != nil {
		return fmt.Errorf("compiling data as CUE: %w", dataValue.Err())
	}

	def := schema.LookupPath(cue.ParsePath(path))
	if def.Err() != nil {
		return fmt.Errorf("looking up %s definition: %w", path, def.Err())
	}

	unified := def.Unify(dataValue)
	if err := unified.Validate(); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// Package schema validates exported artifact records before they are imported.
package schema

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/dotcommander/artscore/internal/artifact"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

const artifactDef = "#Artifact"

// ValidationError is one schema violation in a record file.
// Index is the position in a list export, or -1 for a single record.
type ValidationError struct {
	File    string `json:"file"`
	Index   int    `json:"index"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

func (e ValidationError) String() string {
	loc := e.File
	if e.Index >= 0 {
		loc = fmt.Sprintf("%s[%d]", loc, e.Index)
	}
	if e.Path != "" {
		loc += " " + e.Path
	}
	return loc + ": " + e.Message
}

// Validator checks records against the embedded CUE schema.
type Validator struct {
	ctx *cue.Context
	def cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	content, err := schemaFS.ReadFile("schemas/artifact.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	ctx := cuecontext.New()
	inst := ctx.CompileBytes(content, cue.Filename("artifact.cue"))
	if err := inst.Err(); err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	def := inst.LookupPath(cue.ParsePath(artifactDef))
	if !def.Exists() {
		return nil, fmt.Errorf("schema has no %s definition", artifactDef)
	}

	return &Validator{ctx: ctx, def: def}, nil
}

// Validate checks JSON data holding one record or a list of records.
// A non-nil error means data could not be read as JSON at all.
func (v *Validator) Validate(file string, data []byte) ([]ValidationError, error) {
	val := v.ctx.CompileBytes(data, cue.Filename(file))
	if err := val.Err(); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", file, err)
	}

	if val.Kind() != cue.ListKind {
		return v.validateOne(file, -1, val), nil
	}

	iter, err := val.List()
	if err != nil {
		return nil, fmt.Errorf("reading list in %s: %w", file, err)
	}
	var issues []ValidationError
	for i := 0; iter.Next(); i++ {
		issues = append(issues, v.validateOne(file, i, iter.Value())...)
	}
	return issues, nil
}

func (v *Validator) validateOne(file string, index int, val cue.Value) []ValidationError {
	unified := v.def.Unify(val)
	err := unified.Err()
	if err == nil {
		err = unified.Validate(cue.Concrete(true))
	}
	if err == nil {
		return nil
	}

	var issues []ValidationError
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		issues = append(issues, ValidationError{
			File:    file,
			Index:   index,
			Path:    strings.Join(e.Path(), "."),
			Message: fmt.Sprintf(format, args...),
		})
	}
	return issues
}

// ReadJSON reads a record file and returns it as JSON. YAML files
// (.yaml, .yml) are converted; anything else is read as JSON.
func ReadJSON(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s to JSON: %w", path, err)
		}
		return out, nil
	default:
		return data, nil
	}
}

// DecodeArtifacts decodes JSON holding one record or a list of records.
func DecodeArtifacts(data []byte) ([]artifact.Artifact, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var arts []artifact.Artifact
		if err := json.Unmarshal(data, &arts); err != nil {
			return nil, fmt.Errorf("error decoding records: %w", err)
		}
		return arts, nil
	}

	var a artifact.Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("error decoding record: %w", err)
	}
	return []artifact.Artifact{a}, nil
}

// Load reads, validates and decodes a record file. Records are only decoded
// when the whole file is valid.
func (v *Validator) Load(path string) ([]artifact.Artifact, []ValidationError, error) {
	data, err := ReadJSON(path)
	if err != nil {
		return nil, nil, err
	}

	issues, err := v.Validate(path, data)
	if err != nil {
		return nil, nil, err
	}
	if len(issues) > 0 {
		return nil, issues, nil
	}

	arts, err := DecodeArtifacts(data)
	if err != nil {
		return nil, nil, err
	}
	return arts, nil, nil
}

// Package catalog loads the skill vocabulary, role corpus and report texts that
// drive resume analysis.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-checker/internal/schemas"
	schemafiles "github.com/jonathan/resume-checker/schemas"
)

const schemaFile = "catalog.schema.json"

//go:embed default_catalog.yaml
var defaultCatalogYAML []byte

// Role is one entry of the role corpus.
type Role struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	// Coaching is an optional role-specific suggestion emitted when the role
	// is the top recommendation.
	Coaching string `yaml:"coaching,omitempty" json:"coaching,omitempty"`
}

// SampleJob is a canned job description the CLI can analyze against.
type SampleJob struct {
	Name  string `yaml:"name" json:"name"`
	Title string `yaml:"title,omitempty" json:"title,omitempty"`
	Text  string `yaml:"text" json:"text"`
}

// Catalog is the static configuration data used by the analysis components.
type Catalog struct {
	Skills                []string    `yaml:"skills" json:"skills"`
	Roles                 []Role      `yaml:"roles" json:"roles"`
	MeasurableTerms       []string    `yaml:"measurable_terms,omitempty" json:"measurable_terms,omitempty"`
	DefaultJobDescription string      `yaml:"default_job_description,omitempty" json:"default_job_description,omitempty"`
	SampleJobs            []SampleJob `yaml:"sample_jobs,omitempty" json:"sample_jobs,omitempty"`
	Tips                  []string    `yaml:"tips,omitempty" json:"tips,omitempty"`
}

// Default returns a fresh copy of the built-in catalog.
func Default() *Catalog {
	cat, err := Parse(defaultCatalogYAML, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return cat
}

// Format identifies the encoding of a catalog file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the catalog format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", &LoadError{Path: path, Message: "unsupported catalog extension (use .yaml, .yml or .json)"}
	}
}

// Load reads, validates and decodes a catalog file.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return nil, &LoadError{Message: "catalog path is empty"}
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	cat, err := Parse(data, format)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) && loadErr.Path == "" {
			loadErr.Path = path
		}
		return nil, err
	}
	return cat, nil
}

// LoadOrDefault loads the catalog at path, or returns the built-in catalog when
// path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes catalog data, validates it against catalog.schema.json and
// checks the constraints the schema cannot express.
func Parse(data []byte, format Format) (*Catalog, error) {
	var raw any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, &LoadError{Message: "failed to parse JSON", Cause: err}
		}
	default:
		return nil, &LoadError{Message: fmt.Sprintf("unknown catalog format %q", format)}
	}

	doc, err := json.Marshal(raw)
	if err != nil {
		return nil, &LoadError{Message: "catalog is not representable as JSON", Cause: err}
	}

	if err := ValidateDocument(string(doc)); err != nil {
		return nil, err
	}

	var cat Catalog
	if err := json.Unmarshal(doc, &cat); err != nil {
		return nil, &LoadError{Message: "failed to decode catalog", Cause: err}
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// ValidateDocument checks a JSON catalog document against the catalog schema.
func ValidateDocument(doc string) error {
	schema, err := schemafiles.Read(schemaFile)
	if err != nil {
		return &LoadError{Message: "failed to read embedded catalog schema", Cause: err}
	}
	if err := schemas.ValidateJSONString(schema, doc); err != nil {
		return &LoadError{Message: "catalog does not match schema", Cause: err}
	}
	return nil
}

// Validate checks cross-entry constraints: role and sample names must be unique.
func (c *Catalog) Validate() error {
	seenRoles := make(map[string]bool, len(c.Roles))
	for _, role := range c.Roles {
		key := strings.ToLower(strings.TrimSpace(role.Name))
		if seenRoles[key] {
			return &ValidationError{Field: "roles", Message: fmt.Sprintf("duplicate role %q", role.Name)}
		}
		seenRoles[key] = true
	}

	seenSamples := make(map[string]bool, len(c.SampleJobs))
	for _, sample := range c.SampleJobs {
		if seenSamples[sample.Name] {
			return &ValidationError{Field: "sample_jobs", Message: fmt.Sprintf("duplicate sample %q", sample.Name)}
		}
		seenSamples[sample.Name] = true
	}
	return nil
}

// RoleNames returns role names in catalog order.
func (c *Catalog) RoleNames() []string {
	names := make([]string, len(c.Roles))
	for i, r := range c.Roles {
		names[i] = r.Name
	}
	return names
}

// FindRole looks a role up by exact name.
func (c *Catalog) FindRole(name string) (Role, bool) {
	for _, r := range c.Roles {
		if r.Name == name {
			return r, true
		}
	}
	return Role{}, false
}

// FindSampleJob looks a sample job description up by name, case-insensitively.
func (c *Catalog) FindSampleJob(name string) (SampleJob, bool) {
	for _, s := range c.SampleJobs {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return SampleJob{}, false
}

// IsMeasurable reports whether a keyword belongs to the measurable term set.
func (c *Catalog) IsMeasurable(keyword string) bool {
	kw := strings.ToLower(keyword)
	for _, term := range c.MeasurableTerms {
		if strings.ToLower(term) == kw {
			return true
		}
	}
	return false
}

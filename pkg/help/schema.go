// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package help

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/samber/oops"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// SchemaID is the $id of the help file schema.
const SchemaID = "https://holomush.dev/schemas/help.schema.json"

// Document describes a help file for schema generation. Keys other than
// managerMessages and defaults are sections.
type Document struct {
	ManagerMessages *MessagesDoc `json:"managerMessages,omitempty" jsonschema:"description=Manager-wide message templates"`
	Defaults        *SectionDoc  `json:"defaults,omitempty" jsonschema:"description=Options and format applied where a section sets none"`
}

// JSONSchemaExtend allows section keys alongside the reserved ones.
func (Document) JSONSchemaExtend(s *jsonschema.Schema) {
	s.AdditionalProperties = &jsonschema.Schema{Ref: "#/$defs/SectionDoc"}
}

// MessagesDoc describes the managerMessages key.
type MessagesDoc struct {
	InvalidPage    string `json:"invalidPage,omitempty"`
	NoDescription  string `json:"noDescription,omitempty"`
	SectionInfo    string `json:"sectionInfo,omitempty"`
	UnknownSection string `json:"unknownSection,omitempty"`
	NoPermission   string `json:"noPermission,omitempty"`
}

// SectionDoc describes one section. Keys other than options, format and
// messages are child sections.
type SectionDoc struct {
	Options  *OptionsDoc `json:"options,omitempty"`
	Format   *FormatDoc  `json:"format,omitempty"`
	Messages []string    `json:"messages,omitempty"`
}

// JSONSchemaExtend allows child section keys.
func (SectionDoc) JSONSchemaExtend(s *jsonschema.Schema) {
	s.AdditionalProperties = &jsonschema.Schema{Ref: "#/$defs/SectionDoc"}
}

// OptionsDoc describes a section's options key.
type OptionsDoc struct {
	Permission  string `json:"permission,omitempty" jsonschema:"description=Permission required to view the section"`
	PermMessage string `json:"permMessage,omitempty"`
	Description string `json:"description,omitempty"`
}

// FormatDoc describes a section's format key.
type FormatDoc struct {
	Header       string `json:"header,omitempty"`
	Title        string `json:"title,omitempty"`
	Footer       string `json:"footer,omitempty"`
	PageNotice   string `json:"pageNotice,omitempty"`
	ItemsPerPage int    `json:"itemsPerPage,omitempty" jsonschema:"minimum=1"`
}

var compiledSchema = sync.OnceValues(compileSchema)

// GenerateSchema generates the JSON Schema for help files.
func GenerateSchema() ([]byte, error) {
	r := jsonschema.Reflector{}
	schema := r.Reflect(&Document{})

	schema.ID = jsonschema.ID(SchemaID)
	schema.Title = "Help Menu Definitions"
	schema.Description = "Schema for help.yml section definitions"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, oops.In("help").Wrapf(err, "marshal schema")
	}
	return data, nil
}

// ValidateSchema validates YAML help definitions against the schema.
func ValidateSchema(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return oops.In("help").Code(CodeConfigLoad).Errorf("help definitions are empty")
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return oops.In("help").Code(CodeConfigLoad).Wrapf(err, "invalid YAML")
	}

	// round-trip through JSON so numbers and maps have the types the
	// validator expects
	encoded, err := json.Marshal(doc)
	if err != nil {
		return oops.In("help").Code(CodeInvalidSection).Wrapf(err, "help definitions are not JSON compatible")
	}
	inst, err := jschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return oops.In("help").Code(CodeInvalidSection).Wrapf(err, "decode help definitions")
	}

	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(inst); err != nil {
		return oops.In("help").Code(CodeInvalidSection).Wrapf(err, "schema validation failed")
	}
	return nil
}

func compileSchema() (*jschema.Schema, error) {
	schemaBytes, err := GenerateSchema()
	if err != nil {
		return nil, err
	}
	schemaData, err := jschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, oops.In("help").Wrapf(err, "parse schema JSON")
	}

	c := jschema.NewCompiler()
	if err := c.AddResource(SchemaID, schemaData); err != nil {
		return nil, oops.In("help").Wrapf(err, "add schema resource")
	}
	sch, err := c.Compile(SchemaID)
	if err != nil {
		return nil, oops.In("help").Wrapf(err, "compile schema")
	}
	return sch, nil
}

// FormatSchemaError returns the validator's message without the wrapping
// prefix.
func FormatSchemaError(err error) string {
	if err == nil {
		return ""
	}
	return strings.TrimPrefix(err.Error(), "schema validation failed: ")
}

package service

import (
	"bytes"
	"context"
	"fmt"
	"os"

	validation "github.com/jellydator/validation"
	"gopkg.in/yaml.v2"

	apperrors "github.com/allisson/encrypted-fields/internal/errors"
	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
	customValidation "github.com/allisson/encrypted-fields/internal/validation"
)

// FieldsFile is the on-disk description of managed record types.
//
//	record_types:
//	  - name: customers
//	    table: customers
//	    id_column: id
//	    columns: [name]
//	    fields:
//	      - name: email
//	      - name: ssn
//	        key: env:SSN_KEY
//	      - name: profile
//	        json: true
//	        elements: [phone, address]
//	      - name: notes
//	        use_master_key: true
type FieldsFile struct {
	RecordTypes []RecordTypeSpec `yaml:"record_types"`
}

// RecordTypeSpec describes one record type and, optionally, the table that stores it.
type RecordTypeSpec struct {
	Name     string      `yaml:"name"`
	Table    string      `yaml:"table"`
	IDColumn string      `yaml:"id_column"`
	Columns  []string    `yaml:"columns"`
	Fields   []FieldSpec `yaml:"fields"`
}

// FieldSpec describes one encrypted field.
type FieldSpec struct {
	Name         string   `yaml:"name"`
	Elements     []string `yaml:"elements"`
	UseMasterKey bool     `yaml:"use_master_key"`
	Key          string   `yaml:"key"`
	JSON         bool     `yaml:"json"`
}

// Validate checks the field description.
func (f FieldSpec) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, customValidation.Identifier),
		validation.Field(&f.Key, customValidation.KeyOrReference),
		validation.Field(&f.Elements, validation.Each(validation.Required)),
	)
}

// Validate checks the record type description. Table-backed types need an id column.
func (r RecordTypeSpec) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Table, customValidation.Identifier),
		validation.Field(&r.IDColumn,
			validation.When(r.Table != "", validation.Required),
			customValidation.Identifier,
		),
		validation.Field(&r.Columns, validation.Each(validation.Required, customValidation.Identifier)),
		validation.Field(&r.Fields, validation.Required),
	)
}

// YAMLSource reads field registrations and table descriptors from a YAML document.
type YAMLSource struct {
	file FieldsFile
}

// LoadYAMLSource reads and validates the file at path.
func LoadYAMLSource(path string) (*YAMLSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to read fields config")
	}
	return ParseYAMLSource(data)
}

// ParseYAMLSource parses and validates a YAML document. Unknown keys are rejected.
func ParseYAMLSource(data []byte) (*YAMLSource, error) {
	var file FieldsFile
	if err := yaml.UnmarshalStrict(bytes.TrimSpace(data), &file); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, fmt.Sprintf("failed to parse fields config: %v", err))
	}

	seen := make(map[string]struct{}, len(file.RecordTypes))
	for i, rt := range file.RecordTypes {
		if err := rt.Validate(); err != nil {
			return nil, customValidation.WrapValidationError(fmt.Errorf("record_types[%d]: %w", i, err))
		}
		if _, dup := seen[rt.Name]; dup {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput, fmt.Sprintf("duplicate record type %q", rt.Name))
		}
		seen[rt.Name] = struct{}{}
	}

	return &YAMLSource{file: file}, nil
}

// Discover returns one registration per declared field.
func (s *YAMLSource) Discover(_ context.Context) ([]fieldsDomain.Registration, error) {
	var registrations []fieldsDomain.Registration
	for _, rt := range s.file.RecordTypes {
		for _, f := range rt.Fields {
			registrations = append(registrations, fieldsDomain.Registration{
				RecordType: rt.Name,
				FieldName:  f.Name,
				Option: fieldsDomain.FieldOption{
					Elements:     f.Elements,
					UseMasterKey: f.UseMasterKey,
					Key:          f.Key,
				},
			})
		}
	}
	return registrations, nil
}

// Tables returns the descriptors of record types stored in a table. Encrypted fields come
// first, followed by the plain columns.
func (s *YAMLSource) Tables() []fieldsDomain.TableDescriptor {
	var tables []fieldsDomain.TableDescriptor
	for _, rt := range s.file.RecordTypes {
		if rt.Table == "" {
			continue
		}

		columns := make([]fieldsDomain.Column, 0, len(rt.Fields)+len(rt.Columns))
		for _, f := range rt.Fields {
			columns = append(columns, fieldsDomain.Column{Name: f.Name, JSON: f.JSON})
		}
		for _, c := range rt.Columns {
			columns = append(columns, fieldsDomain.Column{Name: c})
		}

		tables = append(tables, fieldsDomain.TableDescriptor{
			RecordType: rt.Name,
			Table:      rt.Table,
			IDColumn:   rt.IDColumn,
			Columns:    columns,
		})
	}
	return tables
}

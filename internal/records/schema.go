package records

import (
	"bytes"
	_ "embed"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed record.schema.json
var recordSchemaJSON []byte

// defaultPrinter is used to format schema validation error messages.
var defaultPrinter = message.NewPrinter(language.English)

// recordSchema is the compiled JSON Schema for record files.
var recordSchema = mustCompileSchema(recordSchemaJSON, "record.schema.json")

func mustCompileSchema(raw []byte, name string) *jsonschema.Schema {
	schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// Validate checks raw record bytes against the record schema and returns one
// message per violation. A nil result means the record is valid.
func Validate(data []byte) []string {
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return []string{fmt.Sprintf("JSON parse error: %v", err)}
	}

	err = recordSchema.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	var errs []string
	collectSchemaErrors(ve, instance, nil, &errs)
	return errs
}

// collectSchemaErrors flattens ve into one message per leaf cause. A cause
// without an instance location of its own is reported at its nearest located
// ancestor. Property-name violations carry no location at all, so they are
// placed at the object in instance that holds the offending key.
func collectSchemaErrors(ve *jsonschema.ValidationError, instance any, parent []string, errs *[]string) {
	loc := ve.InstanceLocation
	if len(loc) == 0 {
		loc = parent
		if pn, ok := ve.ErrorKind.(*kind.PropertyNames); ok && len(loc) == 0 {
			loc, _ = findKey(instance, pn.Property, nil)
		}
	}
	if len(ve.Causes) == 0 {
		*errs = append(*errs, fmt.Sprintf("/%s: %s", strings.Join(loc, "/"), ve.ErrorKind.LocalizedString(defaultPrinter)))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, instance, loc, errs)
	}
}

// findKey returns the location of the first object, in key order, that has
// a property named key.
func findKey(v any, key string, path []string) ([]string, bool) {
	switch v := v.(type) {
	case map[string]any:
		if _, ok := v[key]; ok {
			return path, true
		}
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			if loc, ok := findKey(v[name], key, append(slices.Clip(path), name)); ok {
				return loc, true
			}
		}
	case []any:
		for i, item := range v {
			if loc, ok := findKey(item, key, append(slices.Clip(path), strconv.Itoa(i))); ok {
				return loc, true
			}
		}
	}
	return nil, false
}

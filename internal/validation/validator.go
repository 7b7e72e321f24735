// Package validation valida cuerpos JSON contra un JSON Schema antes de que
// lleguen al store. Los fallos llevan una lista de Detail con la forma
// {"loc": [...], "msg": "...", "type": "..."}.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	TypeMissing       = "missing"
	TypeJSONInvalid   = "json_invalid"
	TypeIntParsing    = "int_parsing"
	TypeBoolParsing   = "bool_parsing"
	TypeLessThanEqual = "less_than_equal"
	TypeEnum          = "enum"
	TypeType          = "type_error"
)

// Detail describe un fallo de validación.
type Detail struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Error agrupa los fallos de un request. Se responde como 422.
type Error struct {
	Details []Detail
}

func (e *Error) Error() string {
	if len(e.Details) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(d.Loc, "."), d.Msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewError arma un Error de un solo Detail.
func NewError(loc []string, msg, typ string) *Error {
	return &Error{Details: []Detail{{Loc: loc, Msg: msg, Type: typ}}}
}

// Validator valida y decodifica cuerpos JSON contra un schema compilado.
type Validator struct {
	schema *jsonschema.Schema
}

// New compila schema (cualquier valor serializable a JSON).
func New(name string, schema any) (*Validator, error) {
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(name, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	s, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Validator{schema: s}, nil
}

// Decode lee r, valida contra el schema y decodifica en dst.
// Cualquier fallo de forma o de tipos devuelve *Error.
func (v *Validator) Decode(r io.Reader, dst any) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return NewError([]string{"body"}, "JSON decode error", TypeJSONInvalid)
	}

	if err := v.schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if !errors.As(err, &verr) {
			return fmt.Errorf("validate body: %w", err)
		}
		out := &Error{}
		collect(verr, out)
		return out
	}

	// El schema acepta 1.0 como integer; json no lo decodifica en int.
	if err := json.Unmarshal(raw, dst); err != nil {
		var terr *json.UnmarshalTypeError
		if errors.As(err, &terr) {
			return NewError(append([]string{"body"}, splitField(terr.Field)...),
				"Input should be a valid integer", TypeIntParsing)
		}
		return NewError([]string{"body"}, "JSON decode error", TypeJSONInvalid)
	}
	return nil
}

// quoted extrae los nombres de "missing properties: 'a', 'b'".
var quoted = regexp.MustCompile(`'([^']*)'`)

// collect baja recursivamente hasta las hojas de Causes.
func collect(err *jsonschema.ValidationError, out *Error) {
	if len(err.Causes) == 0 {
		loc := append([]string{"body"}, splitPointer(err.InstanceLocation)...)
		typ := keywordType(err.KeywordLocation)

		if typ == TypeMissing {
			if fields := quoted.FindAllStringSubmatch(err.Message, -1); len(fields) > 0 {
				for _, f := range fields {
					out.Details = append(out.Details, Detail{
						Loc:  append(append([]string{}, loc...), f[1]),
						Msg:  "Field required",
						Type: TypeMissing,
					})
				}
				return
			}
		}

		out.Details = append(out.Details, Detail{Loc: loc, Msg: err.Message, Type: typ})
		return
	}
	for _, cause := range err.Causes {
		collect(cause, out)
	}
}

func keywordType(keywordLocation string) string {
	kw := keywordLocation
	if i := strings.LastIndex(kw, "/"); i >= 0 {
		kw = kw[i+1:]
	}
	switch kw {
	case "required":
		return TypeMissing
	case "enum":
		return TypeEnum
	case "type":
		return TypeType
	default:
		return kw
	}
}

func splitPointer(p string) []string {
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return nil
	}
	parts := strings.Split(p, "/")
	for i, s := range parts {
		s = strings.ReplaceAll(s, "~1", "/")
		parts[i] = strings.ReplaceAll(s, "~0", "~")
	}
	return parts
}

func splitField(f string) []string {
	if f == "" {
		return nil
	}
	return strings.Split(f, ".")
}

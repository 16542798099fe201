package panel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"dairy_admin/internal/entity"
)

// Form is the overlay form state for one create or edit. Values hold the
// user's entries as text, exactly as typed; parsing happens at submit.
type Form struct {
	EditingID string            `json:"editingId,omitempty"` // empty for a create
	Values    map[string]string `json:"values"`
	Images    []string          `json:"images,omitempty"` // encoded image blobs, max entity.MaxImages

	// carried from the pre-edit record, never editable
	createdAt  time.Time
	immutables map[string]any
}

// ValidationError reports a form value that failed a domain constraint.
// The operation aborts before the gate or the store is touched.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// parse validates the form against the schema and returns the typed
// field map to be written. prev is the pre-edit record for updates, used
// to keep secret hashes when the field is left blank.
func parse(schema entity.Schema, form *Form, prev *entity.Record) (map[string]any, error) {
	fields := make(map[string]any, len(schema.Fields))

	for _, f := range schema.Fields {
		if f.Immutable {
			continue
		}
		if f.Kind == entity.Images {
			if len(form.Images) > entity.MaxImages {
				return nil, &ValidationError{Field: f.Name, Message: fmt.Sprintf("at most %d images allowed", entity.MaxImages)}
			}
			fields[f.Name] = append([]string(nil), form.Images...)
			continue
		}

		raw := strings.TrimSpace(form.Values[f.Name])
		if raw == "" {
			if f.Kind == entity.Secret && prev != nil {
				// blank password on edit keeps the stored hash
				fields[f.Name] = prev.String(f.Name)
				continue
			}
			if f.Required {
				return nil, &ValidationError{Field: f.Name, Message: "is required"}
			}
			fields[f.Name] = zeroValue(f)
			continue
		}

		v, err := parseField(f, raw)
		if err != nil {
			return nil, err
		}
		fields[f.Name] = v
	}

	if schema.Check != nil {
		if err := schema.Check(fields); err != nil {
			return nil, &ValidationError{Field: schema.Name, Message: err.Error()}
		}
	}
	return fields, nil
}

func parseField(f entity.Field, raw string) (any, error) {
	switch f.Kind {
	case entity.Number, entity.Integer:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &ValidationError{Field: f.Name, Message: "must be a number"}
		}
		if f.Kind == entity.Integer && n != float64(int64(n)) {
			return nil, &ValidationError{Field: f.Name, Message: "must be a whole number"}
		}
		if f.Positive && n <= 0 {
			return nil, &ValidationError{Field: f.Name, Message: "must be greater than zero"}
		}
		if f.Min != nil && n < *f.Min {
			return nil, &ValidationError{Field: f.Name, Message: fmt.Sprintf("must be at least %g", *f.Min)}
		}
		return n, nil
	case entity.Enum:
		for _, opt := range f.Options {
			if raw == opt {
				return raw, nil
			}
		}
		return nil, &ValidationError{Field: f.Name, Message: "is not a recognized option"}
	case entity.Email:
		if !strings.Contains(raw, "@") {
			return nil, &ValidationError{Field: f.Name, Message: "must be a valid email address"}
		}
		return raw, nil
	case entity.Secret:
		hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
		if err != nil {
			return nil, &ValidationError{Field: f.Name, Message: "could not be secured"}
		}
		return string(hash), nil
	default:
		return raw, nil
	}
}

func zeroValue(f entity.Field) any {
	switch f.Kind {
	case entity.Number, entity.Integer:
		return float64(0)
	default:
		return ""
	}
}

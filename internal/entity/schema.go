package entity

// Kind tells the panel controller how to parse and validate a form value.
type Kind int

const (
	Text Kind = iota
	LongText
	Number
	Integer
	Enum
	Date
	Phone
	Email
	Secret // write-only, stored as a bcrypt hash
	Images // up to MaxImages encoded image blobs
)

// MaxImages caps the encoded image list on a single record.
const MaxImages = 3

// Field describes one editable (or derived) column of an entity.
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool
	Options  []string // Enum: allowed values, first one is the default
	Default  string   // form default as entered text
	Min      *float64 // inclusive lower bound for Number/Integer
	Positive bool     // Number/Integer must be strictly greater than zero
	// Immutable fields are carried over from the existing record on
	// update and never taken from the form (accrual counters, usedBy).
	Immutable bool
}

// Schema is the configuration object one panel controller is built from.
type Schema struct {
	Name         string // collection key: blob key, route segment
	Title        string
	Fields       []Field
	ServerBacked bool
	APIPath      string // remote collection path when server-backed
	ReadOnly     bool   // no mutations at all (support tickets)
	AppendOnly   bool   // no create/update through the panel (payments)
	CSVFile      string
	CSVHeader    []string // exported columns, in order
	// Check runs after per-field validation with the parsed values and
	// may reject cross-field combinations.
	Check func(fields map[string]any) error
}

// Field returns the named field definition.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Defaults returns the blank form values for a create.
func (s Schema) Defaults() map[string]string {
	out := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		if f.Immutable || f.Kind == Images {
			continue
		}
		d := f.Default
		if d == "" && f.Kind == Enum && len(f.Options) > 0 {
			d = f.Options[0]
		}
		out[f.Name] = d
	}
	return out
}

func minOf(v float64) *float64 { return &v }

package model

// Field is a single display label paired with its value. A nil value renders
// as "N/A" in Markdown output.
type Field struct {
	Label string
	Value interface{}
}

// Record is an ordered set of fields extracted from a page or a database row.
// Order is preserved so replies always list fields the same way.
type Record []Field

// Get returns the value for a label, or nil if the label is absent.
func (r Record) Get(label string) interface{} {
	for _, f := range r {
		if f.Label == label {
			return f.Value
		}
	}
	return nil
}

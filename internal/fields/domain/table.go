package domain

// Column describes a stored column of a table-backed record type.
type Column struct {
	Name string
	// JSON marks columns holding a JSON object, decoded to map[string]string.
	JSON bool
}

// TableDescriptor maps a record type onto a database table.
type TableDescriptor struct {
	RecordType string
	Table      string
	IDColumn   string
	Columns    []Column
}

// Column returns the column descriptor by name.
func (t TableDescriptor) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnNames returns the stored column names in declaration order, excluding the id column.
func (t TableDescriptor) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}

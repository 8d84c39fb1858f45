package models

// Column describes one column of a sheet. Only the "tags" type carries a
// select-option cell; other columns are plain text.
type Column struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Column types
const (
	ColumnTypeText = "text"
	ColumnTypeTags = "tags"
)

// Row is one record of a sheet. Tags holds the ids of the selected
// options, in selection order.
type Row struct {
	ID    string   `yaml:"id"`
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags,omitempty"`
}

// Sheet is the on-disk document: the option registry shared by the tag
// column plus the rows that reference it.
type Sheet struct {
	Name    string         `yaml:"name"`
	Columns []Column       `yaml:"columns,omitempty"`
	Options []SelectOption `yaml:"options,omitempty"`
	Rows    []Row          `yaml:"rows,omitempty"`
}

// FindRow returns the index of the row with the given id, or -1
func (s *Sheet) FindRow(id string) int {
	for i, row := range s.Rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}

package output

import "slices"

// Layout describes how a list of records is printed
type Layout struct {
	Name        string
	Description string
	Format      string // "table", "list" or "json"
	Columns     []Column
}

// Column selects one record field
type Column struct {
	Field     string
	Title     string
	Transform string // "upper", "lower", "title", "truncate:N"
}

// SuggestionTable lists every column of a filtered suggestion
var SuggestionTable = Layout{
	Name:        "table",
	Description: "Position, text, abbreviation, group and score",
	Format:      "table",
	Columns: []Column{
		{Field: "index", Title: "#"},
		{Field: "text", Title: "Suggestion", Transform: "truncate:40"},
		{Field: "abbr", Title: "Abbr", Transform: "upper"},
		{Field: "group", Title: "Group", Transform: "title"},
		{Field: "score", Title: "Score"},
	},
}

// SuggestionList prints one bullet per suggestion
var SuggestionList = Layout{
	Name:        "list",
	Description: "One line per suggestion, for narrow terminals",
	Format:      "list",
	Columns: []Column{
		{Field: "text"},
		{Field: "abbr", Transform: "upper"},
	},
}

// SuggestionJSON prints one JSON object per suggestion
var SuggestionJSON = Layout{
	Name:        "json",
	Description: "JSON lines for scripting",
	Format:      "json",
}

// Layouts returns the available layouts
func Layouts() []Layout {
	return []Layout{SuggestionTable, SuggestionList, SuggestionJSON}
}

// LayoutByName finds a layout
func LayoutByName(name string) (Layout, bool) {
	layouts := Layouts()
	i := slices.IndexFunc(layouts, func(l Layout) bool { return l.Name == name })
	if i < 0 {
		return Layout{}, false
	}
	return layouts[i], true
}

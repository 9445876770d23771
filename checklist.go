package doccover

// LineForm identifies the textual shape of a checklist line.
type LineForm string

// Checklist line forms.
const (
	// FormNumbered is a flat numbered list line: "12. title".
	FormNumbered LineForm = "numbered"

	// FormAnnotated is a line carrying an explicit line number: "12→content".
	FormAnnotated LineForm = "annotated"

	// FormHeading is a markdown heading: "## title".
	FormHeading LineForm = "heading"

	// FormPlain is any other non-empty line.
	FormPlain LineForm = "plain"
)

// UnassignedCategory names the pseudo-category holding items that appear
// before the first header.
const UnassignedCategory = ""

// Item represents one enumerable requirement to be verified as covered.
type Item struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Form     LineForm `json:"form"`
	Line     int      `json:"line"`
}

// Category represents a named grouping of consecutive checklist items.
type Category struct {
	Name  string  `json:"name"`
	Items []*Item `json:"items"`
}

// DisplayName returns the category name, or a placeholder for the
// unassigned pseudo-category.
func (c *Category) DisplayName() string {
	return CategoryDisplayName(c.Name)
}

// CategoryDisplayName returns name, or "(uncategorized)" for the
// unassigned pseudo-category.
func CategoryDisplayName(name string) string {
	if name == UnassignedCategory {
		return "(uncategorized)"
	}
	return name
}

// SkippedLine records a checklist line that was not turned into an item or header.
type SkippedLine struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// Checklist is an ordered sequence of categories parsed from checklist text.
type Checklist struct {
	Categories []*Category   `json:"categories"`
	Skipped    []SkippedLine `json:"skipped,omitempty"`
}

// Items returns every item in source order.
func (c *Checklist) Items() []*Item {
	if c == nil {
		return nil
	}
	var items []*Item
	for _, cat := range c.Categories {
		items = append(items, cat.Items...)
	}
	return items
}

// Len returns the total number of items.
func (c *Checklist) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Items)
	}
	return n
}

// Validate returns an error if the checklist cannot be analyzed.
func (c *Checklist) Validate() error {
	if c.Len() == 0 {
		return Errorf(EINVALID, "checklist contains no items")
	}
	return nil
}

// LineKind is the classification decided for a checklist line.
type LineKind string

// Line kinds.
const (
	KindHeader LineKind = "header"
	KindItem   LineKind = "item"
	KindSkip   LineKind = "skip"
)

// LineTrace records how a single checklist line was classified.
type LineTrace struct {
	Line    int      `json:"line"`
	Form    LineForm `json:"form"`
	Content string   `json:"content"`
	Kind    LineKind `json:"kind"`
	Rule    string   `json:"rule"`
}

package domain

import "fmt"

// CustomizationKind identifies one add-on option on a cart line. The set is
// closed so pricing stays exhaustive.
type CustomizationKind string

const (
	CustomizationText    CustomizationKind = "text"
	CustomizationColor   CustomizationKind = "color"
	CustomizationPattern CustomizationKind = "pattern"
	CustomizationDesign  CustomizationKind = "design"
)

// Surcharge returns the fixed per-unit charge for this option kind.
func (k CustomizationKind) Surcharge() float64 {
	switch k {
	case CustomizationText:
		return 5.00
	case CustomizationColor:
		return 3.00
	case CustomizationPattern:
		return 2.00
	case CustomizationDesign:
		return 8.00
	default:
		return 0
	}
}

// Customization is the set of add-on options applied to a cart line. Empty
// fields mean the option is not selected. Multiple options stack additively.
type Customization struct {
	ColorID   string `json:"color_id,omitempty"`
	PatternID string `json:"pattern_id,omitempty"`
	Text      string `json:"text,omitempty"`
	Design    string `json:"design,omitempty"`
}

// Kinds lists the option kinds selected on this customization.
func (c Customization) Kinds() []CustomizationKind {
	var kinds []CustomizationKind
	if c.Text != "" {
		kinds = append(kinds, CustomizationText)
	}
	if c.ColorID != "" {
		kinds = append(kinds, CustomizationColor)
	}
	if c.PatternID != "" {
		kinds = append(kinds, CustomizationPattern)
	}
	if c.Design != "" {
		kinds = append(kinds, CustomizationDesign)
	}
	return kinds
}

// Surcharge is the total per-unit charge for all selected options.
func (c Customization) Surcharge() float64 {
	total := 0.0
	for _, k := range c.Kinds() {
		total += k.Surcharge()
	}
	return total
}

// IsZero reports whether no option is selected.
func (c Customization) IsZero() bool {
	return c.ColorID == "" && c.PatternID == "" && c.Text == "" && c.Design == ""
}

// Label appends customization details to a product name for display on
// order lines.
func (c Customization) Label(name string) string {
	if c.ColorID != "" {
		name += fmt.Sprintf(" - Color ID: %s", c.ColorID)
	}
	if c.PatternID != "" {
		name += fmt.Sprintf(" - Pattern ID: %s", c.PatternID)
	}
	return name
}

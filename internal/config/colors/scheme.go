package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for focus, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // add task form
	Edit   string `yaml:"edit"`   // edit forms
	Delete string `yaml:"delete"` // delete confirmation

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	TaskBorder     string `yaml:"task_border"`
	SelectedBorder string `yaml:"selected_border"`
	DragBorder     string `yaml:"drag_border"` // card or column being held

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Priority badges
	PriorityLow    string `yaml:"priority_low"`
	PriorityMedium string `yaml:"priority_medium"`
	PriorityHigh   string `yaml:"priority_high"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name. Unknown names get the
// default preset.
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values from the named preset
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.fill(preset, false)
}

// MergeFrom copies every non-empty value of other over c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	c.fill(&other, true)
}

// fill copies values from src. With override false only empty fields in c
// are set; with override true only non-empty fields in src are copied.
func (c *ColorScheme) fill(src *ColorScheme, override bool) {
	pairs := []struct {
		dst *string
		src string
	}{
		{&c.Accent, src.Accent},
		{&c.Create, src.Create},
		{&c.Edit, src.Edit},
		{&c.Delete, src.Delete},
		{&c.ColumnBorder, src.ColumnBorder},
		{&c.TaskBorder, src.TaskBorder},
		{&c.SelectedBorder, src.SelectedBorder},
		{&c.DragBorder, src.DragBorder},
		{&c.Title, src.Title},
		{&c.Subtle, src.Subtle},
		{&c.Normal, src.Normal},
		{&c.PriorityLow, src.PriorityLow},
		{&c.PriorityMedium, src.PriorityMedium},
		{&c.PriorityHigh, src.PriorityHigh},
		{&c.InfoFg, src.InfoFg},
		{&c.InfoBg, src.InfoBg},
		{&c.ErrorFg, src.ErrorFg},
		{&c.ErrorBg, src.ErrorBg},
	}

	for _, p := range pairs {
		if override {
			if p.src != "" {
				*p.dst = p.src
			}
			continue
		}
		if *p.dst == "" {
			*p.dst = p.src
		}
	}
}

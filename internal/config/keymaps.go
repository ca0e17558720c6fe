package config

// KeyMappings defines all configurable key bindings of the terminal board
type KeyMappings struct {
	// Tasks
	AddTask    string `yaml:"add_task"`
	EditTask   string `yaml:"edit_task"`
	DeleteTask string `yaml:"delete_task"`

	// Drag
	PickUpTask   string `yaml:"pick_up_task"`
	PickUpColumn string `yaml:"pick_up_column"`
	Drop         string `yaml:"drop"`
	CancelDrag   string `yaml:"cancel_drag"`

	// Columns
	EditColumn string `yaml:"edit_column"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:    "a",
		EditTask:   "e",
		DeleteTask: "d",

		// Drag
		PickUpTask:   "space",
		PickUpColumn: "m",
		Drop:         "enter",
		CancelDrag:   "esc",

		// Columns
		EditColumn: "R",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	pairs := []struct {
		dst *string
		def string
	}{
		{&k.AddTask, defaults.AddTask},
		{&k.EditTask, defaults.EditTask},
		{&k.DeleteTask, defaults.DeleteTask},
		{&k.PickUpTask, defaults.PickUpTask},
		{&k.PickUpColumn, defaults.PickUpColumn},
		{&k.Drop, defaults.Drop},
		{&k.CancelDrag, defaults.CancelDrag},
		{&k.EditColumn, defaults.EditColumn},
		{&k.PrevColumn, defaults.PrevColumn},
		{&k.NextColumn, defaults.NextColumn},
		{&k.PrevTask, defaults.PrevTask},
		{&k.NextTask, defaults.NextTask},
		{&k.ShowHelp, defaults.ShowHelp},
		{&k.Quit, defaults.Quit},
	}
	for _, p := range pairs {
		if *p.dst == "" {
			*p.dst = p.def
		}
	}
}

package host

// DemoStore seeds a store with enough content to exercise every menu kind:
// a flat toggle list, a two-level editable settings tree, and a priority
// grid with unequal column lengths.
func DemoStore() *Store {
	s := NewStore()
	s.SetPlugins([]Plugin{
		{ID: "auto-doors", Name: "Automatic Doors", Author: "mossblaser", Enabled: true},
		{ID: "bulk-craft", Name: "Bulk Crafting", Author: "herron", Enabled: false},
		{ID: "deep-storage", Name: "Deep Storage", Author: "lwm", Enabled: true},
		{ID: "night-owls", Name: "Night Owls", Author: "petrel", Enabled: false},
		{ID: "quarry", Name: "Quarry", Author: "ogre", Enabled: true},
		{ID: "wall-lights", Name: "Wall Lights", Author: "murmur", Enabled: true},
	})
	for _, setting := range []Setting{
		{Key: "speech.rate", Category: "speech", Label: "Speech rate", Value: "180", Description: "Words per minute requested from the speech bridge."},
		{Key: "speech.volume", Category: "speech", Label: "Speech volume", Value: "80", Description: "Output volume from 0 to 100."},
		{Key: "speech.punctuation", Category: "speech", Label: "Punctuation", Value: "some", Description: "How much punctuation is spoken: none, some, or all."},
		{Key: "nav.wrap", Category: "navigation", Label: "Wrap at list edges", Value: "true", Description: "Whether moving past the final item returns to the first."},
		{Key: "nav.echo-keys", Category: "navigation", Label: "Echo typed keys", Value: "false", Description: "Speak each character as it is typed into a search."},
	} {
		s.AddSetting(setting)
	}
	s.SetDuties([]Duty{
		{ID: "cooking", Name: "Cooking", Assignments: []Assignment{
			{Member: "Ash", Priority: 2},
			{Member: "Blair", Priority: 1},
			{Member: "Casey", Priority: 3},
			{Member: "Devon", Priority: 4},
			{Member: "Emery", Priority: 2},
		}},
		{ID: "hauling", Name: "Hauling", Assignments: []Assignment{
			{Member: "Ash", Priority: 3},
			{Member: "Blair", Priority: 2},
		}},
		{ID: "research", Name: "Research", Assignments: []Assignment{
			{Member: "Casey", Priority: 1},
			{Member: "Devon", Priority: 2},
			{Member: "Emery", Priority: 4},
		}},
	})
	return s
}

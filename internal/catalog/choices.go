package catalog

// Choices are the closed option sets offered by the briefing selectors.
type Choices struct {
	Brands      []string `yaml:"brands" validate:"min=1,unique,dive,required"`
	Seasons     []string `yaml:"seasons" validate:"min=1,unique,dive,required"`
	Departments []string `yaml:"departments" validate:"min=1,unique,dive,required"`
}

// DefaultChoices returns the built-in brand, season and department lists.
func DefaultChoices() Choices {
	return Choices{
		Brands:      []string{"Atlas", "Northline", "Verity"},
		Seasons:     []string{"SS24", "FW24", "SS25", "FW25"},
		Departments: []string{"Outerwear", "Knitwear", "Bottoms", "Accessories"},
	}
}

// Contains reports whether v is one of opts.
func Contains(opts []string, v string) bool {
	for _, o := range opts {
		if o == v {
			return true
		}
	}
	return false
}

package config

// EngineConfig tunes the route engine
type EngineConfig struct {
	// How a target commodity name is matched against price quotes: substring or exact
	MatchMode string `mapstructure:"match_mode" validate:"required,oneof=substring exact"`

	SafeHaven SafeHavenConfig `mapstructure:"safe_haven"`

	// Quantity used for the profit projection in route output
	ProjectionUnits int `mapstructure:"projection_units" validate:"min=1"`
}

// SafeHavenConfig configures the safe-haven classifier
type SafeHavenConfig struct {
	// Terminal name fragments, matched case-insensitively
	Fragments []string `mapstructure:"fragments" validate:"required,min=1,dive,required"`

	// Maximum havens listed
	Limit int `mapstructure:"limit" validate:"min=1"`
}

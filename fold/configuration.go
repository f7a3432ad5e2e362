package fold

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// DefaultProgressInterval is the number of elements between two progress messages.
	DefaultProgressInterval = 100000
	maxNameLength           = 128
)

// RunConfiguration configures runs performed by RunSequence. It can be loaded from the
// environment using config.Load.
type RunConfiguration struct {
	// Name identifies the fold in log messages.
	Name string `mapstructure:"name"`
	// ProgressInterval is the number of elements between two progress messages. 0 disables them.
	ProgressInterval int `mapstructure:"progress_interval"`
}

// Validate checks the configuration entries.
func (cfg *RunConfiguration) Validate() error {
	validation.ErrorTag = "mapstructure"
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Name, validation.Length(0, maxNameLength)),
		validation.Field(&cfg.ProgressInterval, validation.Min(0)),
	)
}

// DefaultRunConfiguration returns the default run configuration.
func DefaultRunConfiguration() *RunConfiguration {
	return &RunConfiguration{
		Name:             "fold",
		ProgressInterval: DefaultProgressInterval,
	}
}

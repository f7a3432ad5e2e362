package config

//go:generate mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/golang-folds/$GOPACKAGE IServiceConfiguration

// IServiceConfiguration defines a configuration which can be loaded from the environment.
type IServiceConfiguration interface {
	// Validates configuration entries.
	Validate() error
}

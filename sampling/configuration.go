package sampling

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-folds/commonerrors"
	"github.com/ARM-software/golang-folds/hashing"
)

const (
	DefaultCapacity = 100
	maxLabelLength  = 256
)

// SamplerConfiguration describes a reservoir sampler. The random source is chosen as follows:
// SeedLabel hashed with SeedHash when set, otherwise Seed when not zero, otherwise the current time.
type SamplerConfiguration struct {
	Capacity  int    `mapstructure:"capacity"`
	Seed      uint64 `mapstructure:"seed"`
	SeedLabel string `mapstructure:"seed_label"`
	// SeedHash is the algorithm hashing SeedLabel. Defaults to xxhash.
	SeedHash string `mapstructure:"seed_hash"`
}

func (cfg *SamplerConfiguration) Validate() error {
	validation.ErrorTag = "mapstructure"
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&cfg.SeedLabel, validation.Length(0, maxLabelLength)),
		validation.Field(&cfg.SeedHash, validation.By(isSupportedHash)),
	)
}

func isSupportedHash(value any) error {
	algorithm, _ := value.(string)
	if strings.TrimSpace(algorithm) == "" {
		return nil
	}
	_, err := hashing.NewHashingAlgorithm(algorithm)
	return err
}

// RandomSource returns the random source described by the configuration.
func (cfg *SamplerConfiguration) RandomSource() (IRandomSource, error) {
	switch {
	case cfg.SeedLabel != "":
		algorithm := cfg.SeedHash
		if strings.TrimSpace(algorithm) == "" {
			algorithm = hashing.HashXXHash
		}
		return NewRandomSourceFromHashedLabel(algorithm, cfg.SeedLabel)
	case cfg.Seed != 0:
		return NewRandomSource(cfg.Seed), nil
	default:
		return NewRandomSourceFromTime(), nil
	}
}

// DefaultSamplerConfiguration returns a configuration sampling DefaultCapacity elements with a time based seed.
func DefaultSamplerConfiguration() *SamplerConfiguration {
	return &SamplerConfiguration{
		Capacity: DefaultCapacity,
		SeedHash: hashing.HashXXHash,
	}
}

// NewReservoirFromConfiguration returns the reservoir described by cfg.
func NewReservoirFromConfiguration[T any](cfg *SamplerConfiguration) (*Reservoir[T], error) {
	if cfg == nil {
		return nil, commonerrors.UndefinedParameter("sampler configuration")
	}
	err := cfg.Validate()
	if err != nil {
		return nil, commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid sampler configuration")
	}
	source, err := cfg.RandomSource()
	if err != nil {
		return nil, commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid random source")
	}
	return NewReservoir[T](cfg.Capacity, source)
}

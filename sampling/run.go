package sampling

import (
	"context"
	"iter"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-folds/commonerrors"
	"github.com/ARM-software/golang-folds/config"
	"github.com/ARM-software/golang-folds/fold"
)

const (
	FlagCapacity         = "sample-capacity"
	FlagSeed             = "sample-seed"
	FlagSeedLabel        = "sample-seed-label"
	FlagSeedHash         = "sample-seed-hash"
	FlagProgressInterval = "progress-interval"
)

// SampledRunConfiguration configures a run sampling a sequence (see Sample).
type SampledRunConfiguration struct {
	Run     fold.RunConfiguration `mapstructure:"run"`
	Sampler SamplerConfiguration  `mapstructure:"sampler"`
}

func (cfg *SampledRunConfiguration) Validate() error {
	return config.ValidateEmbedded(cfg)
}

// DefaultSampledRunConfiguration returns the default configuration of a sampled run.
func DefaultSampledRunConfiguration() *SampledRunConfiguration {
	return &SampledRunConfiguration{
		Run:     *fold.DefaultRunConfiguration(),
		Sampler: *DefaultSamplerConfiguration(),
	}
}

// BindFlags declares the flags of a sampled run on flagSet and binds them to the environment variables
// they override, so that values set on the command line take precedence when loading the configuration
// with LoadSampledRunConfiguration.
func BindFlags(viperSession *viper.Viper, envVarPrefix string, flagSet *pflag.FlagSet) (err error) {
	if viperSession == nil {
		err = commonerrors.UndefinedParameter("viper session")
		return
	}
	if flagSet == nil {
		err = commonerrors.UndefinedParameter("flag set")
		return
	}
	flagSet.Int(FlagCapacity, 0, "number of elements to sample")
	flagSet.Uint64(FlagSeed, 0, "seed of the random source")
	flagSet.String(FlagSeedLabel, "", "label the seed of the random source is derived from")
	flagSet.String(FlagSeedHash, "", "algorithm hashing the seed label")
	flagSet.Int(FlagProgressInterval, 0, "number of elements between two progress messages")
	bindings := map[string]string{
		FlagCapacity:         "SAMPLER_CAPACITY",
		FlagSeed:             "SAMPLER_SEED",
		FlagSeedLabel:        "SAMPLER_SEED_LABEL",
		FlagSeedHash:         "SAMPLER_SEED_HASH",
		FlagProgressInterval: "RUN_PROGRESS_INTERVAL",
	}
	for flag, envVar := range bindings {
		err = config.BindFlagToEnv(viperSession, envVarPrefix, envVar, flagSet.Lookup(flag))
		if err != nil {
			return
		}
	}
	return
}

// LoadSampledRunConfiguration loads the configuration of a sampled run from flags bound with BindFlags,
// the environment and DefaultSampledRunConfiguration, in this order of precedence.
func LoadSampledRunConfiguration(viperSession *viper.Viper, envVarPrefix string) (cfg *SampledRunConfiguration, err error) {
	loaded := &SampledRunConfiguration{}
	err = config.LoadFromViper(viperSession, envVarPrefix, loaded, DefaultSampledRunConfiguration())
	if err != nil {
		return
	}
	cfg = loaded
	return
}

// Sample draws a uniform sample of s as configured by cfg, reporting the run through logger (see fold.RunSequence).
// A nil configuration means DefaultSampledRunConfiguration.
func Sample[T any](ctx context.Context, logger logr.Logger, cfg *SampledRunConfiguration, s iter.Seq[T]) (sample []T, err error) {
	if cfg == nil {
		cfg = DefaultSampledRunConfiguration()
	}
	err = cfg.Validate()
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid sampled run configuration")
		return
	}
	reservoir, err := NewReservoirFromConfiguration[T](&cfg.Sampler)
	if err != nil {
		return
	}
	runCfg := cfg.Run
	return fold.RunSequence(ctx, logger, &runCfg, reservoir, s)
}

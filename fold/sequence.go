package fold

import (
	"context"
	"iter"

	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-folds/commonerrors"
	"github.com/ARM-software/golang-folds/idgen"
	"github.com/ARM-software/golang-folds/logs"
)

const (
	logKeyRun      = "run"
	logKeyFold     = "fold"
	logKeyElements = "elements"
)

// RunSequence is the instrumented driver: it behaves like RunWithContext and additionally reports
// the run through logger. Every run is given an identifier attached to all its messages; progress
// is reported at verbosity 1 every cfg.ProgressInterval elements. A nil configuration means
// DefaultRunConfiguration.
func RunSequence[A, B, M any](ctx context.Context, logger logr.Logger, cfg *RunConfiguration, f IFold[A, B, M], s iter.Seq[A]) (result B, err error) {
	if f == nil {
		err = commonerrors.UndefinedParameter("fold")
		return
	}
	if cfg == nil {
		cfg = DefaultRunConfiguration()
	}
	err = cfg.Validate()
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid run configuration")
		return
	}
	if logger.GetSink() == nil {
		logger = logs.NewNoopLogger()
	}
	runID, err := idgen.GenerateRunID()
	if err != nil {
		return
	}
	logger = logger.WithValues(logKeyRun, runID, logKeyFold, cfg.Name)
	logger.V(1).Info("fold run started")

	seen := 0
	state := f.Init()
	for x := range s {
		err = commonerrors.DetermineContextError(ctx)
		if err != nil {
			break
		}
		f.Step(&state, x)
		seen++
		if cfg.ProgressInterval > 0 && seen%cfg.ProgressInterval == 0 {
			logger.V(1).Info("fold run in progress", logKeyElements, seen)
		}
	}
	result = f.Output(state)
	if err != nil {
		logger.Error(err, "fold run interrupted, returning partial result", logKeyElements, seen)
		return
	}
	logger.Info("fold run completed", logKeyElements, seen)
	return
}

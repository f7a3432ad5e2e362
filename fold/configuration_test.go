package fold

import (
	"os"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-folds/commonerrors"
	"github.com/ARM-software/golang-folds/commonerrors/errortest"
	"github.com/ARM-software/golang-folds/config"
)

func TestRunConfiguration_Validate(t *testing.T) {
	require.NoError(t, DefaultRunConfiguration().Validate())
	assert.NoError(t, (&RunConfiguration{}).Validate())
	assert.Error(t, (&RunConfiguration{ProgressInterval: -1}).Validate())
	assert.Error(t, (&RunConfiguration{Name: strings.Repeat("a", maxNameLength+1)}).Validate())
}

func TestRunConfiguration_Load(t *testing.T) {
	os.Clearenv()
	name := faker.Word()
	t.Setenv("FOLD_NAME", name)
	t.Setenv("FOLD_PROGRESS_INTERVAL", "250")
	cfg := &RunConfiguration{}
	require.NoError(t, config.Load("fold", cfg, DefaultRunConfiguration()))
	assert.Equal(t, name, cfg.Name)
	assert.Equal(t, 250, cfg.ProgressInterval)

	t.Setenv("FOLD_PROGRESS_INTERVAL", "-3")
	errortest.AssertError(t, config.Load("fold", &RunConfiguration{}, DefaultRunConfiguration()), commonerrors.ErrInvalid)
}

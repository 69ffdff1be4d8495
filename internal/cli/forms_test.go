package cli

import (
	"testing"

	"github.com/alexanderramin/triagelab/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRating(t *testing.T) {
	assert.NoError(t, validateRating("0"))
	assert.NoError(t, validateRating("100"))
	assert.NoError(t, validateRating(" 55 "))

	assert.Error(t, validateRating("101"))
	assert.Error(t, validateRating("-1"))
	assert.Error(t, validateRating("high"))
	assert.Error(t, validateRating(""))
}

func TestParseRating(t *testing.T) {
	assert.Equal(t, 55, parseRating(" 55 "))
	assert.Equal(t, 0, parseRating("not-a-number"))
}

func TestOnboardingFormListsPackTools(t *testing.T) {
	pack := testutil.NewTestPack()
	var answers onboardingAnswers
	form := newOnboardingForm(pack.ToolIDs(), &answers)
	require.NotNil(t, form)
}

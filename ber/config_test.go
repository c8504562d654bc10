package ber_test

import (
	"testing"

	"github.com/usnistgov/berdecode/ber"
	"go.uber.org/multierr"
)

func TestConfigValidate(t *testing.T) {
	assert, _ := makeAR(t)

	assert.NoError(ber.Config{}.Validate())
	assert.NoError(ber.Config{MaxDepth: ber.MaxMaxDepth, MaxElements: 1000, Extended: true}.Validate())

	e := ber.Config{MaxDepth: -1}.Validate()
	assert.ErrorIs(e, ber.ErrConfig)
	assert.Len(multierr.Errors(e), 1)

	e = ber.Config{MaxDepth: ber.MaxMaxDepth + 1, MaxElements: -1}.Validate()
	assert.ErrorIs(e, ber.ErrConfig)
	if errs := multierr.Errors(e); assert.Len(errs, 2) {
		assert.Contains(errs[0].Error(), "maxDepth")
		assert.Contains(errs[1].Error(), "maxElements")
	}
}

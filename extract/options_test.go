package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyOptions_Defaults(t *testing.T) {
	cfg := applyOptions()
	assert.Equal(t, defaultMaxSynthDepth, cfg.maxSynthDepth)
	assert.NotNil(t, cfg.logger)
}

func TestWithMaxSynthDepth(t *testing.T) {
	cfg := applyOptions(WithMaxSynthDepth(2))
	assert.Equal(t, 2, cfg.maxSynthDepth)
}

func TestWithMaxSynthDepth_InvalidIgnored(t *testing.T) {
	cfg := applyOptions(WithMaxSynthDepth(0))
	assert.Equal(t, defaultMaxSynthDepth, cfg.maxSynthDepth)
}

func TestWithLogger_NilIgnored(t *testing.T) {
	cfg := applyOptions(WithLogger(nil))
	assert.NotNil(t, cfg.logger)
}

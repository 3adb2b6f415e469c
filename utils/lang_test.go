package utils

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/emergency-api/score"
)

func TestSeverityDescriptionWithoutBundle(t *testing.T) {
	bundle = nil
	assert.Equal(t, "Critical - Immediate Response Required", SeverityDescription("en", score.LevelCritical))
}

func TestSeverityDescription(t *testing.T) {
	viper.Set("i18n.dir", "../i18n")
	InitI18NBundle()
	defer func() { bundle = nil }()

	assert.Equal(t, "Minor - Standard Response", SeverityDescription("en", score.LevelMinor))
	assert.Equal(t, "危急 - 需要立即處理", SeverityDescription("zh-TW", score.LevelCritical))
	assert.Equal(t, "Low - Non-urgent Response", SeverityDescription("fr", score.LevelLow))
}

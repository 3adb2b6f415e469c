package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/bitmark-inc/emergency-api/score"
)

var bundle *i18n.Bundle

func InitI18NBundle() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.MustLoadMessageFile(path.Join(viper.GetString("i18n.dir"), "en.yaml"))
	bundle.MustLoadMessageFile(path.Join(viper.GetString("i18n.dir"), "zh_tw.yaml"))
}

func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang)
}

// SeverityDescription returns the description of a severity level in the
// requested language. The english description is used if the bundle is not
// loaded or the message is missing.
func SeverityDescription(lang string, level score.SeverityLevel) string {
	fallback := score.LevelDescriptions[level]
	if bundle == nil {
		return fallback
	}

	messageID := "severity." + string(level)
	description, err := NewLocalizer(lang).Localize(&i18n.LocalizeConfig{
		MessageID: messageID,
		DefaultMessage: &i18n.Message{
			ID:    messageID,
			Other: fallback,
		},
	})
	if err != nil {
		return fallback
	}

	return description
}

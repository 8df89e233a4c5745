package utils

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var bundle *i18n.Bundle

func init() {
	bundle = i18n.NewBundle(language.English)

	for _, m := range []*i18n.Message{
		{ID: "consent.severity.info", Other: "Notice"},
		{ID: "consent.severity.warning", Other: "Warning"},
		{ID: "consent.severity.critical", Other: "Critical"},
		{ID: "consent.cost", Other: "Cost"},
		{ID: "consent.blocked", Other: "{{.Model}} requires your acknowledgment before messages can be sent"},
	} {
		if err := bundle.AddMessages(language.English, m); err != nil {
			panic(err)
		}
	}
}

// NewLocalizer returns a localizer for the given language, falling back to
// English for messages the language does not cover.
func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang, "en")
}

// Package i18n installs the bundled message catalogue used for every
// player-facing string. Messages are looked up by uppercase keys through
// gotext.Get.
package i18n

import (
	"embed"
	"fmt"
	"path"

	"github.com/leonelquinteros/gotext"
)

// Domain is the gettext domain all catalogues are registered under.
const Domain = "default"

// DefaultLanguage is used when the requested language has no catalogue.
const DefaultLanguage = "en_GB"

//go:embed locales
var catalogues embed.FS

// Load parses the bundled catalogue for lang.
func Load(lang string) (*gotext.Po, error) {
	data, err := catalogues.ReadFile(path.Join("locales", lang, Domain+".po"))
	if err != nil {
		return nil, fmt.Errorf("no catalogue for %q: %w", lang, err)
	}
	po := gotext.NewPo()
	po.Parse(data)
	return po, nil
}

// Init installs the catalogue for lang as gotext's global storage, falling
// back to DefaultLanguage. It returns the language actually installed.
func Init(lang string) string {
	po, err := Load(lang)
	if err != nil {
		lang = DefaultLanguage
		po, err = Load(lang)
		if err != nil {
			// Bundled default is always present.
			panic(err)
		}
	}

	locale := gotext.NewLocale("", lang)
	locale.AddTranslator(Domain, po)
	gotext.SetStorage(locale)
	return lang
}

package translate

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DefaultLanguage is used when a language cannot be resolved.
const DefaultLanguage = "en"

// namedVariants maps the language names offered in the web client that the
// CLDR display names do not produce on their own.
var namedVariants = map[string]string{
	"english (american)":     "en",
	"english (british)":      "en",
	"portuguese (brazilian)": "pt",
	"chinese":                "zh-CN",
	"chinese (simplified)":   "zh-CN",
	"chinese (traditional)":  "zh-TW",
}

// Supported are the languages offered for translation, in menu order.
var Supported = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.German,
	language.Italian,
	language.Portuguese,
	language.Russian,
	language.SimplifiedChinese,
	language.TraditionalChinese,
	language.Japanese,
	language.Korean,
	language.Arabic,
	language.Hindi,
	language.Turkish,
	language.Dutch,
	language.Polish,
	language.Indonesian,
	language.Swedish,
	language.Ukrainian,
	language.Vietnamese,
}

// ResolveLanguage turns a language name ("German", "Chinese (Simplified)")
// or code ("de", "pt-BR") into the code the translation endpoint expects.
// Unknown names resolve to DefaultLanguage.
func ResolveLanguage(nameOrCode string) string {
	s := strings.TrimSpace(nameOrCode)
	if s == "" {
		return DefaultLanguage
	}
	key := strings.ToLower(s)
	if code, ok := namedVariants[key]; ok {
		return code
	}

	namer := display.English.Tags()
	for _, tag := range Supported {
		if strings.ToLower(namer.Name(tag)) == key {
			return endpointCode(tag)
		}
	}

	if tag, err := language.Parse(s); err == nil {
		return endpointCode(tag)
	}
	return DefaultLanguage
}

// LanguageName returns the English display name of a language code, or the
// code itself when it is not recognized.
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}

// endpointCode renders tag the way the endpoint expects: a bare language
// code, except for Chinese where the script selects the region variant.
func endpointCode(tag language.Tag) string {
	base, _ := tag.Base()
	if base.String() != "zh" {
		return base.String()
	}
	script, _ := tag.Script()
	region, _ := tag.Region()
	if script.String() == "Hant" || region.String() == "TW" || region.String() == "HK" {
		return "zh-TW"
	}
	return "zh-CN"
}

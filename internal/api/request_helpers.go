package api

import (
	"net/http"

	"github.com/phrazzld/namemagic/internal/domain"
)

// LocaleMatcher negotiates a UI locale from an Accept-Language header.
type LocaleMatcher interface {
	Match(acceptLanguage string) string
}

// requestLocale returns the UI locale for r. An explicit "lang" query
// parameter wins over the Accept-Language header.
func requestLocale(r *http.Request, matcher LocaleMatcher) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return matcher.Match(lang)
	}
	return matcher.Match(r.Header.Get("Accept-Language"))
}

// formInput reads the name and language fields of a posted form. An unknown
// language falls back to english, matching what the select can submit.
func formInput(r *http.Request) (string, domain.Language) {
	name := r.PostFormValue("name")

	lang, err := domain.ParseLanguage(r.PostFormValue("language"))
	if err != nil {
		lang = domain.LanguageEnglish
	}
	return name, lang
}

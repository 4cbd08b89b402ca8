package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/phrazzld/namemagic/internal/api/shared"
	"github.com/phrazzld/namemagic/internal/domain"
	"github.com/phrazzld/namemagic/internal/platform/logger"
	"github.com/phrazzld/namemagic/internal/service"
)

// PageRenderer renders the HTML page for a session snapshot.
type PageRenderer interface {
	Render(w io.Writer, locale string, snap domain.Snapshot) error
}

// PageHandler serves the server-rendered form and result pages. The browser
// holds no state: each post carries the full input and gets a fresh session.
type PageHandler struct {
	meaningService service.MeaningService
	renderer       PageRenderer
	locales        LocaleMatcher
	logger         *slog.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(
	meaningService service.MeaningService,
	renderer PageRenderer,
	locales LocaleMatcher,
	logger *slog.Logger,
) *PageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageHandler{
		meaningService: meaningService,
		renderer:       renderer,
		locales:        locales,
		logger:         logger.With(slog.String("handler", "page")),
	}
}

// Show handles GET / requests with the empty form. A "language" query
// parameter preselects the language.
func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	lang, err := domain.ParseLanguage(r.URL.Query().Get("language"))
	if err != nil {
		lang = domain.LanguageEnglish
	}

	h.render(w, r, http.StatusOK, domain.NewSession("", lang).Snapshot())
}

// Submit handles POST / requests. An empty name re-renders the form unchanged;
// otherwise the result page is rendered, with a fallback meaning if the
// provider failed.
func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if err := r.ParseForm(); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid form", err)
		return
	}

	name, lang := formInput(r)
	session := domain.NewSession(name, lang)

	if _, err := h.meaningService.Submit(r.Context(), session); err != nil {
		if errors.Is(err, domain.ErrEmptyName) {
			log.Debug("empty name submitted, showing form")
			h.render(w, r, http.StatusOK, session.Snapshot())
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	h.render(w, r, http.StatusOK, session.Snapshot())
}

// Reset handles POST /reset requests by returning to the empty form. The
// selected language survives the reset.
func (h *PageHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid form", err)
		return
	}

	name, lang := formInput(r)
	session := domain.NewSession(name, lang)
	if err := h.meaningService.Reset(session); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	location := "/"
	if snap := session.Snapshot(); snap.Language != domain.LanguageEnglish {
		location += "?" + url.Values{"language": {string(snap.Language)}}.Encode()
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, snap domain.Snapshot) {
	locale := requestLocale(r, h.locales)
	shared.RespondWithHTML(w, r, status, func(out io.Writer) error {
		return h.renderer.Render(out, locale, snap)
	})
}

// Health handles GET /health requests.
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithText(w, r, http.StatusOK, "OK")
}

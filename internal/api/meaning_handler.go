package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/namemagic/internal/api/shared"
	"github.com/phrazzld/namemagic/internal/domain"
	"github.com/phrazzld/namemagic/internal/platform/logger"
	"github.com/phrazzld/namemagic/internal/service"
)

// MeaningHandler serves the JSON meanings endpoint.
type MeaningHandler struct {
	meaningService service.MeaningService
	logger         *slog.Logger
}

// NewMeaningHandler creates a new MeaningHandler
func NewMeaningHandler(meaningService service.MeaningService, logger *slog.Logger) *MeaningHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MeaningHandler{
		meaningService: meaningService,
		logger:         logger.With(slog.String("handler", "meaning")),
	}
}

// Reveal handles POST /api/meanings requests. Every request is its own
// session; the response always carries a meaning once the input is valid.
func (h *MeaningHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RevealRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	req.normalize()
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	lang, err := domain.ParseLanguage(req.Language)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	session := domain.NewSession(req.Name, lang)
	result, err := h.meaningService.Submit(r.Context(), session)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newMeaningResponse(session.Snapshot(), result))
}

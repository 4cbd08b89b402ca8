package api

import (
	"strings"

	"github.com/phrazzld/namemagic/internal/domain"
	"github.com/phrazzld/namemagic/internal/service"
)

// RevealRequest defines the payload for the meanings endpoint. Names are
// limited to 100 characters.
type RevealRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Language string `json:"language" validate:"omitempty,oneof=english hindi marathi"`
}

// normalize trims the name and lower-cases the language before validation.
func (r *RevealRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Language = strings.ToLower(strings.TrimSpace(r.Language))
}

// MeaningResponse defines the successful response for the meanings endpoint.
type MeaningResponse struct {
	Name     string          `json:"name"`
	Language domain.Language `json:"language"`
	Meaning  string          `json:"meaning"`
	Phase    domain.Phase    `json:"phase"`

	// Source is "generated" or "fallback"
	Source service.Source `json:"source"`
}

func newMeaningResponse(snap domain.Snapshot, result service.Result) MeaningResponse {
	return MeaningResponse{
		Name:     snap.Name,
		Language: snap.Language,
		Meaning:  snap.Meaning,
		Phase:    snap.Phase,
		Source:   result.Source,
	}
}

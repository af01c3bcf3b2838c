package controllers

import (
	"net/http"

	"github.com/questforge/questledger-backend/api/responses"
	"github.com/questforge/questledger-backend/internal/templates"
	"github.com/questforge/questledger-backend/pkg/logger"
)

// ListPotionTemplates returns the discovered potion recipes.
func ListPotionTemplates(svc templates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listed, err := svc.ListPotionTemplates(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, listed)
	}
}

// ListSpellTemplates returns the discovered spells, ordered by level.
func ListSpellTemplates(svc templates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listed, err := svc.ListSpellTemplates(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, listed)
	}
}

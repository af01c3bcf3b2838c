package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/questforge/questledger-backend/api/responses"
	"github.com/questforge/questledger-backend/api/validators"
	"github.com/questforge/questledger-backend/internal/mastery"
	pkgerrors "github.com/questforge/questledger-backend/pkg/errors"
	"github.com/questforge/questledger-backend/pkg/logger"
)

// CharacterMastery lists the mastery records of one character.
func CharacterMastery(svc mastery.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID, err := uuid.Parse(strings.TrimSpace(chi.URLParam(r, "characterId")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid character id"))
			return
		}

		records, err := svc.ListForCharacter(r.Context(), characterID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, records)
	}
}

// GMMasteryAward adds points to a character's mastery ledger entry.
func GMMasteryAward(svc mastery.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input mastery.AwardInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if input.Points <= 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "points must be a positive integer"))
			return
		}

		record, err := svc.Award(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, record)
	}
}

// GMMasterySet writes an absolute mastery level, clamped to the ledger range.
func GMMasterySet(svc mastery.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input mastery.SetLevelInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.SetLevel(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, record)
	}
}

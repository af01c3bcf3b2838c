package controllers

import (
	"net/http"

	"github.com/questforge/questledger-backend/api/responses"
	"github.com/questforge/questledger-backend/internal/treasury"
	"github.com/questforge/questledger-backend/pkg/logger"
)

// GetTreasury returns the caller's house balance.
func GetTreasury(svc treasury.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		house, err := svc.GetTreasury(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, house)
	}
}

package http

import (
	"net/http"

	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/utils"
)

// auth enforces bearer authentication with tokens of the hosted auth
// provider. On success the token subject is stored in the request context
// as the user id; every other outcome is answered with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

// userIDFromRequest returns the user id stored by auth.
func userIDFromRequest(r *http.Request) (string, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", ErrNoUserInContext
	}
	return userID, nil
}

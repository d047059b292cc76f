package http

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/resume-gate/internal/app"
	"github.com/MKhiriev/resume-gate/internal/logger"
	"github.com/MKhiriev/resume-gate/internal/utils"
)

// adminAuth is an HTTP middleware that enforces JWT-based admin
// authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseAdminToken] and stores the operator name in
// the request context under [utils.OperatorCtxKey]. The request logger gets
// an "operator" field.
//
// Requests without a valid token are rejected with 401 Unauthorized.
func (h *Handler) adminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w, http.StatusText(http.StatusUnauthorized))
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(ErrInvalidAuthorizationHeader).Send()
			unauthorized(w, http.StatusText(http.StatusUnauthorized))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseAdminToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing admin token")
			unauthorized(w, app.MsgTokenIsExpiredOrInvalid)
			return
		}

		ctx = context.WithValue(ctx, utils.OperatorCtxKey, token.Operator)

		l := logger.FromContext(ctx)
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("operator", token.Operator)
		})

		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="resume-gate"`)
	http.Error(w, message, http.StatusUnauthorized)
}

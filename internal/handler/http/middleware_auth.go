package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the "Authorization: Bearer <token>" header, validates the token via
// [service.AuthService.ParseToken] and, on success, binds the caller's user id
// to the request context before delegating to the next handler.
//
// A missing header, a malformed header and any verification failure all get
// the same 401 {"error":"unauthorized"} response; the cause is only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeUnauthorized(w)
			return
		}

		userID, err := h.authenticate(r, authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("token verification failed")
			writeUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	})
}

// optionalAuth binds the caller identity when a bearer token is presented and
// lets anonymous requests through. A presented but invalid token is still
// rejected with 401.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := h.authenticate(r, authHeader)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("token verification failed")
			writeUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	})
}

func (h *Handler) authenticate(r *http.Request, authHeader string) (string, error) {
	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", err
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	if err != nil {
		return "", err
	}

	return token.UserID, nil
}

// callerHandlerFunc is a handler that receives the authenticated caller
// explicitly.
type callerHandlerFunc func(w http.ResponseWriter, r *http.Request, caller models.Caller)

// withCaller extracts the identity bound by auth once and hands it to next.
func (h *Handler) withCaller(next callerHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			logger.FromRequest(r).Error().Err(ErrNoCallerInContext).Str("uri", r.RequestURI).Send()
			writeUnauthorized(w)
			return
		}

		next(w, r, models.Caller{UserID: userID})
	}
}

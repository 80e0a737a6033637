// Package middleware provides session token authentication middleware.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cafechain/pos-terminal/internal/domain/dto"
	"github.com/cafechain/pos-terminal/internal/i18n"
	"github.com/cafechain/pos-terminal/internal/session"
)

const (
	// SessionIDKey is the context key for the terminal session id.
	SessionIDKey ContextKey = "session_id"
	// SessionKey is the context key for the attached *session.Session.
	SessionKey ContextKey = "session"
)

// SessionAuth returns a middleware that validates the Bearer session
// token and attaches the live session to the request context.
func SessionAuth(registry *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyTokenRequired, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" || tokenString == authHeader {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidToken, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		claims, err := registry.Tokens().Verify(tokenString)
		if err != nil {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidToken, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		s, err := registry.Get(claims.Subject)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				message := i18n.GetTranslator().Translate(i18n.ErrKeySessionNotFound, locale)
				errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
					WithRequestID(requestID)
				c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
				return
			}
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, locale)
			errorResp := dto.NewError(dto.ErrCodeInternal, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorResp)
			return
		}

		c.Set(string(SessionIDKey), s.ID)
		c.Set(string(SessionKey), s)
		c.Next()
	}
}

// GetSession retrieves the attached session from the gin context.
func GetSession(c *gin.Context) (*session.Session, bool) {
	if v, exists := c.Get(string(SessionKey)); exists {
		if s, ok := v.(*session.Session); ok {
			return s, true
		}
	}
	return nil, false
}

package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cafechain/pos-terminal/internal/domain/dto"
	"github.com/cafechain/pos-terminal/internal/i18n"
)

// AdminChecker verifies an admin session cookie with the Gateway.
type AdminChecker interface {
	CheckAdminSession(ctx context.Context, cookie string) error
}

// AdminGate returns a middleware guarding the admin routes. The
// Gateway owns admin credentials; the terminal only forwards the
// caller's cookie for verification.
func AdminGate(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := checker.CheckAdminSession(c.Request.Context(), c.GetHeader("Cookie")); err != nil {
			locale := i18n.GetLocale(c)
			requestID := GetRequestID(c)
			message := i18n.GetTranslator().Translate(i18n.ErrKeyAdminRequired, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}
		c.Next()
	}
}

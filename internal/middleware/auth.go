package middleware

import (
	"context"
	"net/http"

	"github.com/Dadminete/dbsismovil/internal/apierror"
	"github.com/Dadminete/dbsismovil/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	SessionCookie = "session"
	ClaimsKey     = "claims"
)

// SessionClaims are the custom claims inside the signed session cookie.
type SessionClaims struct {
	UserID       string  `json:"user_id"`
	Nombre       string  `json:"nombre"`
	Email        *string `json:"email"`
	TokenVersion int     `json:"token_version"`
	LoginAt      string  `json:"login_at"`
	jwt.RegisteredClaims
}

// SessionAuth guards every non-public route. It parses the session cookie
// and re-checks the embedded token_version against the store on each
// request, so a logout anywhere kills every outstanding cookie immediately.
func SessionAuth(secret string, usuarios repository.UsuarioRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
			return
		}

		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(cookie, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			expireSessionCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Sesión inválida o expirada"))
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			expireSessionCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Sesión inválida o expirada"))
			return
		}

		version, err := usuarios.TokenVersion(contextOf(c), userID)
		if err != nil || version != claims.TokenVersion {
			// Stale cookie after a global logout: clear it right away instead
			// of leaving it to linger until the next login.
			expireSessionCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Sesión cerrada en otro dispositivo"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims retrieves typed session claims from the Gin context.
func GetClaims(c *gin.Context) *SessionClaims {
	claims, _ := c.MustGet(ClaimsKey).(*SessionClaims)
	return claims
}

// SetSessionCookie writes the signed session token: http-only, SameSite=Lax.
func SetSessionCookie(c *gin.Context, token string, maxAgeSeconds int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAgeSeconds, "/", "", secure, true)
}

func expireSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}

// ExpireSessionCookie removes the session cookie (logout).
func ExpireSessionCookie(c *gin.Context) { expireSessionCookie(c) }

func contextOf(c *gin.Context) context.Context { return c.Request.Context() }

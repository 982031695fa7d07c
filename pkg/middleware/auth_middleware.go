package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type AuthMiddleware interface {
	ValidateAndExtractJwt() gin.HandlerFunc
	CheckUserPermission(requiredScope string) gin.HandlerFunc
}

const (
	JWTClaimsContextKey = "JWTClaimsContextKey"
	UserIDContextKey    = "UserIDContextKey"
)

type authMiddleware struct {
	secretKey []byte
}

// ValidateAndExtractJwt accepts the token from the Authorization header or,
// for WebSocket upgrades that cannot set headers, the access_token query parameter.
func (a *authMiddleware) ValidateAndExtractJwt() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.disabled() {
			c.Next()
			return
		}
		accessToken := c.Query("access_token")
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			header := strings.Fields(authHeader)
			if len(header) != 2 || header[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is invalid"})
				return
			}
			accessToken = header[1]
		}
		if accessToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is empty"})
			return
		}
		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
			return a.secretKey, nil
		}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid access token"})
			return
		}
		c.Set(JWTClaimsContextKey, claims)
		if userID, ok := claims["user_id"].(string); ok {
			c.Set(UserIDContextKey, userID)
		} else if sub, e := claims.GetSubject(); e == nil && sub != "" {
			c.Set(UserIDContextKey, sub)
		}
		c.Next()
	}
}

func (a *authMiddleware) CheckUserPermission(requiredScope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.disabled() {
			c.Next()
			return
		}
		claims, ok := c.Value(JWTClaimsContextKey).(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing access token"})
			return
		}
		if !slices.Contains(scopesOf(claims), requiredScope) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Permission denied"})
			return
		}
		c.Next()
	}
}

func (a *authMiddleware) disabled() bool {
	return len(a.secretKey) == 0
}

// scopesOf reads the scopes claim as either a JSON array or a space separated string.
func scopesOf(claims jwt.MapClaims) []string {
	switch v := claims["scopes"].(type) {
	case []interface{}:
		scopes := make([]string, 0, len(v))
		for _, s := range v {
			if str, ok := s.(string); ok {
				scopes = append(scopes, str)
			}
		}
		return scopes
	case string:
		return strings.Fields(v)
	default:
		return nil
	}
}

// NewAuthMiddleware verifies HMAC signed tokens with secretKey. An empty
// secret disables authentication.
func NewAuthMiddleware(secretKey string) AuthMiddleware {
	return &authMiddleware{secretKey: []byte(secretKey)}
}

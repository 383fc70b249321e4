package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"society_connect/internal/authz"
	"society_connect/internal/models"
	"society_connect/internal/response"
)

const currentUserKey = "currentUser"

// Auth issues and validates bearer tokens. Revoked tokens are tracked in
// a redis deny-list keyed by jti until their natural expiry.
type Auth struct {
	secret []byte
	ttl    time.Duration
	db     *gorm.DB
	redis  *redis.Client
}

func NewAuth(secret string, ttl time.Duration, db *gorm.DB, rdb *redis.Client) *Auth {
	return &Auth{secret: []byte(secret), ttl: ttl, db: db, redis: rdb}
}

// GenerateToken signs a token carrying the user id, role and a jti.
func (a *Auth) GenerateToken(userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(a.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

func (a *Auth) parse(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// Revoke puts the token's jti on the deny-list until the token expires.
func (a *Auth) Revoke(c *gin.Context, tokenStr string) {
	if a.redis == nil {
		return
	}
	claims, err := a.parse(tokenStr)
	if err != nil {
		return
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return
	}
	ttl := a.ttl
	if exp, ok := claims["exp"].(float64); ok {
		if until := time.Until(time.Unix(int64(exp), 0)); until > 0 {
			ttl = until
		}
	}
	a.redis.Set(c.Request.Context(), "revoked:"+jti, 1, ttl)
}

func (a *Auth) revoked(c *gin.Context, claims jwt.MapClaims) bool {
	if a.redis == nil {
		return false
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return false
	}
	n, err := a.redis.Exists(c.Request.Context(), "revoked:"+jti).Result()
	return err == nil && n > 0
}

// RequireAuth ensures a valid, unrevoked JWT is present and loads the
// authenticated user into the context.
func (a *Auth) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, "Missing or invalid Authorization header")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := a.parse(tokenString)
		if err != nil || a.revoked(c, claims) {
			response.Fail(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		id, ok := claims["user_id"].(float64)
		if !ok {
			response.Fail(c, http.StatusUnauthorized, "Invalid token claims")
			return
		}

		var user models.User
		if err := a.db.First(&user, uint(id)).Error; err != nil || !user.IsActive {
			response.Fail(c, http.StatusUnauthorized, "User no longer exists")
			return
		}

		c.Set(currentUserKey, user)
		c.Set("user_id", user.ID)
		c.Set("role", user.Role)
		c.Set("token", tokenString)
		c.Next()
	}
}

// RequireRoles aborts with 403 unless the authenticated user's role is in
// the given set. Must run after RequireAuth.
func RequireRoles(roles ...authz.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			response.Fail(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		if !authz.HasRole(authz.Role(user.Role), roles...) {
			response.Fail(c, http.StatusForbidden, "You do not have permission to perform this action")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user loaded by RequireAuth.
func CurrentUser(c *gin.Context) (models.User, bool) {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}

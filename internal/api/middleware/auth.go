package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AlexandreJustinRepia/dtr-denr/pkg/jwt"
	"github.com/AlexandreJustinRepia/dtr-denr/pkg/redis"
	"github.com/AlexandreJustinRepia/dtr-denr/pkg/response"
)

// JWTAuth validates the Authorization: Bearer <token> header. rdb may be
// nil; revocation checks are then skipped and tokens only age out.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token invalid or expired")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "invalid token type")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				// Blacklist check failure degrades open: the token is
				// still signature- and expiry-valid.
				logger.Warn("blacklist check failed", zap.Error(err))
			} else if revoked {
				response.Unauthorized(c, 10002, "token revoked")
				c.Abort()
				return
			}
		}

		c.Set("username", claims.Username)
		c.Set("claims", claims)

		c.Next()
	}
}

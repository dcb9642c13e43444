// Package middleware resolves the caller's identity once per request and
// hands the loaded user to the handlers through the gin context.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/v2/bson"

	"my-tube/domain/dto"
	"my-tube/domain/model"
	"my-tube/domain/repository"
	"my-tube/infrastructure/configuration"
)

const callerKey = "caller"

// Caller returns the authenticated user placed in the context by Auth or
// OptionalAuth. The zero user means the request is anonymous.
func Caller(c *gin.Context) model.User {
	if v, ok := c.Get(callerKey); ok {
		if user, ok := v.(model.User); ok {
			return user
		}
	}
	return model.User{}
}

// Auth verifies the access token and loads the user from the store exactly
// once; every protected handler downstream reads the same resolved identity.
func Auth(userRepo repository.IUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolve(c, userRepo)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError(http.StatusUnauthorized, err.Error()))
			return
		}
		c.Set(callerKey, user)
		c.Next()
	}
}

// OptionalAuth resolves the identity when credentials are present and lets
// the request through anonymously otherwise. Listing endpoints use it so
// owners can see their own unpublished videos.
func OptionalAuth(userRepo repository.IUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if user, err := resolve(c, userRepo); err == nil {
				c.Set(callerKey, user)
			}
		}
		c.Next()
	}
}

type authError string

func (e authError) Error() string { return string(e) }

func resolve(c *gin.Context, userRepo repository.IUser) (model.User, error) {
	tokenString := extractToken(c)
	if tokenString == "" {
		return model.User{}, authError("missing access token")
	}

	var claims model.UserClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(configuration.C.Auth.AccessTokenSecret), nil
	})
	if err != nil || !token.Valid {
		return model.User{}, authError("invalid or expired access token")
	}

	userID, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return model.User{}, authError("invalid access token")
	}
	user, err := userRepo.GetByID(c.Request.Context(), userID)
	if err != nil {
		return model.User{}, authError("invalid access token")
	}
	return user, nil
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie("accessToken"); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

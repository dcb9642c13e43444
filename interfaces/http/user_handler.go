package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"my-tube/domain/dto"
	"my-tube/domain/model"
	"my-tube/infrastructure/configuration"
	"my-tube/interfaces/middleware"
	"my-tube/usecase"
)

type IUserHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	RefreshToken(c *gin.Context)
	ChangePassword(c *gin.Context)
	CurrentUser(c *gin.Context)
	ChannelProfile(c *gin.Context)
	WatchHistory(c *gin.Context)
	UpdateAccount(c *gin.Context)
	UpdateAvatar(c *gin.Context)
	UpdateCoverImage(c *gin.Context)
}

type UserHandler struct {
	userUsecase usecase.IUserUsecase
	auth        configuration.Auth
}

func NewUserHandler(userUsecase usecase.IUserUsecase, auth configuration.Auth) IUserHandler {
	return &UserHandler{userUsecase: userUsecase, auth: auth}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		writeBindError(c, err)
		return
	}

	avatar, err := formFile(c, "avatar", true)
	if err != nil {
		writeError(c, err)
		return
	}
	avatarPath, cleanupAvatar, err := saveUpload(c, avatar)
	if err != nil {
		writeError(c, err)
		return
	}
	defer cleanupAvatar()

	coverPath := ""
	if cover, err := formFile(c, "coverImage", false); err == nil && cover != nil {
		path, cleanup, err := saveUpload(c, cover)
		if err != nil {
			writeError(c, err)
			return
		}
		defer cleanup()
		coverPath = path
	}

	user, err := h.userUsecase.Register(c.Request.Context(), req, avatarPath, coverPath)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusCreated, user, "user registered successfully")
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	user, pair, err := h.userUsecase.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	h.setAuthCookies(c, pair)
	writeSuccess(c, http.StatusOK, gin.H{
		"user":         user,
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "logged in successfully")
}

func (h *UserHandler) Logout(c *gin.Context) {
	caller := middleware.Caller(c)
	if err := h.userUsecase.Logout(c.Request.Context(), caller.ID); err != nil {
		writeError(c, err)
		return
	}
	h.clearAuthCookies(c)
	writeSuccess(c, http.StatusOK, nil, "logged out successfully")
}

// RefreshToken accepts the refresh token from the cookie or the body and
// rotates the pair.
func (h *UserHandler) RefreshToken(c *gin.Context) {
	token, _ := c.Cookie("refreshToken")
	if token == "" {
		var req dto.RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}

	_, pair, err := h.userUsecase.RefreshTokens(c.Request.Context(), token)
	if err != nil {
		writeError(c, err)
		return
	}

	h.setAuthCookies(c, pair)
	writeSuccess(c, http.StatusOK, pair, "access token refreshed")
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	caller := middleware.Caller(c)
	if err := h.userUsecase.ChangePassword(c.Request.Context(), caller, req); err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, nil, "password changed successfully")
}

func (h *UserHandler) CurrentUser(c *gin.Context) {
	caller := middleware.Caller(c)
	caller.Password = ""
	caller.RefreshToken = ""
	writeSuccess(c, http.StatusOK, caller, "current user fetched successfully")
}

func (h *UserHandler) ChannelProfile(c *gin.Context) {
	profile, err := h.userUsecase.GetChannelProfile(c.Request.Context(), c.Param("username"), middleware.Caller(c))
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, profile, "channel profile fetched successfully")
}

func (h *UserHandler) WatchHistory(c *gin.Context) {
	caller := middleware.Caller(c)
	history, err := h.userUsecase.GetWatchHistory(c.Request.Context(), caller.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, history, "watch history fetched successfully")
}

func (h *UserHandler) UpdateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	caller := middleware.Caller(c)
	user, err := h.userUsecase.UpdateAccount(c.Request.Context(), caller.ID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, user, "account details updated successfully")
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	h.updateImage(c, "avatar", h.userUsecase.UpdateAvatar)
}

func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	h.updateImage(c, "coverImage", h.userUsecase.UpdateCoverImage)
}

func (h *UserHandler) updateImage(c *gin.Context, field string, update func(ctx context.Context, id bson.ObjectID, path string) (model.User, error)) {
	file, err := formFile(c, field, true)
	if err != nil {
		writeError(c, err)
		return
	}
	path, cleanup, err := saveUpload(c, file)
	if err != nil {
		writeError(c, err)
		return
	}
	defer cleanup()

	caller := middleware.Caller(c)
	user, err := update(c.Request.Context(), caller.ID, path)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, user, field+" updated successfully")
}

func (h *UserHandler) setAuthCookies(c *gin.Context, pair dto.TokenPair) {
	accessMaxAge := h.auth.AccessTokenTTLMin * 60
	refreshMaxAge := h.auth.RefreshTokenTTLMin * 60
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("accessToken", pair.AccessToken, accessMaxAge, "/", "", true, true)
	c.SetCookie("refreshToken", pair.RefreshToken, refreshMaxAge, "/", "", true, true)
}

func (h *UserHandler) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("accessToken", "", -1, "/", "", true, true)
	c.SetCookie("refreshToken", "", -1, "/", "", true, true)
}

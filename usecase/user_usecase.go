package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"my-tube/domain/apperror"
	"my-tube/domain/dto"
	"my-tube/domain/model"
	"my-tube/domain/repository"
	"my-tube/infrastructure/configuration"
	"my-tube/infrastructure/utils"
)

type IUserUsecase interface {
	Register(ctx context.Context, req dto.RegisterRequest, avatarPath, coverPath string) (model.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (model.User, dto.TokenPair, error)
	Logout(ctx context.Context, callerID bson.ObjectID) error
	RefreshTokens(ctx context.Context, refreshToken string) (model.User, dto.TokenPair, error)
	ChangePassword(ctx context.Context, caller model.User, req dto.ChangePasswordRequest) error
	UpdateAccount(ctx context.Context, callerID bson.ObjectID, req dto.UpdateAccountRequest) (model.User, error)
	UpdateAvatar(ctx context.Context, callerID bson.ObjectID, localPath string) (model.User, error)
	UpdateCoverImage(ctx context.Context, callerID bson.ObjectID, localPath string) (model.User, error)
	GetChannelProfile(ctx context.Context, username string, caller model.User) (model.ChannelProfile, error)
	GetWatchHistory(ctx context.Context, callerID bson.ObjectID) ([]model.WatchedVideo, error)
}

type userUsecase struct {
	userRepo repository.IUser
	media    repository.IMediaStorage
	auth     configuration.Auth
}

func NewUserUsecase(userRepo repository.IUser, media repository.IMediaStorage, auth configuration.Auth) IUserUsecase {
	return &userUsecase{userRepo: userRepo, media: media, auth: auth}
}

// Register uploads the avatar (required) and cover image (optional) before
// any document is created, so a failed upload never leaves a user pointing
// at a missing asset.
func (u *userUsecase) Register(ctx context.Context, req dto.RegisterRequest, avatarPath, coverPath string) (model.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" {
		return model.User{}, apperror.InvalidInput("username is required")
	}
	if avatarPath == "" {
		return model.User{}, apperror.InvalidInput("avatar image is required")
	}

	_, err := u.userRepo.GetByUsernameOrEmail(ctx, username, req.Email)
	if err == nil {
		return model.User{}, apperror.Conflict("user already exists")
	}
	if apperror.KindOf(err) != apperror.KindNotFound {
		return model.User{}, err
	}

	avatar, err := u.media.Upload(ctx, avatarPath, "")
	if err != nil {
		return model.User{}, err
	}
	coverURL := ""
	if coverPath != "" {
		cover, err := u.media.Upload(ctx, coverPath, "")
		if err != nil {
			return model.User{}, err
		}
		coverURL = cover.URL
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, apperror.Internal("unable to hash password", err)
	}

	user, err := u.userRepo.Create(ctx, model.User{
		Username:   username,
		Email:      req.Email,
		FullName:   req.FullName,
		Password:   string(hashed),
		Avatar:     avatar.URL,
		CoverImage: coverURL,
	})
	if err != nil {
		return model.User{}, err
	}
	return sanitize(user), nil
}

func (u *userUsecase) Login(ctx context.Context, req dto.LoginRequest) (model.User, dto.TokenPair, error) {
	if req.Username == "" && req.Email == "" {
		return model.User{}, dto.TokenPair{}, apperror.InvalidInput("username or email is required")
	}

	user, err := u.userRepo.GetByUsernameOrEmail(ctx, strings.ToLower(req.Username), req.Email)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			return model.User{}, dto.TokenPair{}, apperror.Unauthorized("invalid credentials")
		}
		return model.User{}, dto.TokenPair{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return model.User{}, dto.TokenPair{}, apperror.Unauthorized("invalid credentials")
	}

	pair, err := u.issueTokens(ctx, user)
	if err != nil {
		return model.User{}, dto.TokenPair{}, err
	}
	return sanitize(user), pair, nil
}

func (u *userUsecase) Logout(ctx context.Context, callerID bson.ObjectID) error {
	return u.userRepo.SetRefreshToken(ctx, callerID, "")
}

// RefreshTokens verifies the supplied refresh JWT and requires it to equal
// the value stored on the user, then rotates both tokens.
func (u *userUsecase) RefreshTokens(ctx context.Context, refreshToken string) (model.User, dto.TokenPair, error) {
	if refreshToken == "" {
		return model.User{}, dto.TokenPair{}, apperror.Unauthorized("refresh token is required")
	}

	var claims jwt.StandardClaims
	token, err := jwt.ParseWithClaims(refreshToken, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.auth.RefreshTokenSecret), nil
	})
	if err != nil || !token.Valid {
		return model.User{}, dto.TokenPair{}, apperror.Unauthorized("invalid or expired refresh token")
	}

	userID, err := bson.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return model.User{}, dto.TokenPair{}, apperror.Unauthorized("invalid refresh token")
	}
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			return model.User{}, dto.TokenPair{}, apperror.Unauthorized("invalid refresh token")
		}
		return model.User{}, dto.TokenPair{}, err
	}
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return model.User{}, dto.TokenPair{}, apperror.Unauthorized("refresh token is expired or already used")
	}

	pair, err := u.issueTokens(ctx, user)
	if err != nil {
		return model.User{}, dto.TokenPair{}, err
	}
	return sanitize(user), pair, nil
}

func (u *userUsecase) ChangePassword(ctx context.Context, caller model.User, req dto.ChangePasswordRequest) error {
	if err := bcrypt.CompareHashAndPassword([]byte(caller.Password), []byte(req.OldPassword)); err != nil {
		return apperror.Unauthorized("old password is incorrect")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal("unable to hash password", err)
	}
	_, err = u.userRepo.UpdateFields(ctx, caller.ID, map[string]interface{}{"password": string(hashed)})
	return err
}

func (u *userUsecase) UpdateAccount(ctx context.Context, callerID bson.ObjectID, req dto.UpdateAccountRequest) (model.User, error) {
	user, err := u.userRepo.UpdateFields(ctx, callerID, map[string]interface{}{
		"fullName": req.FullName,
		"email":    req.Email,
	})
	if err != nil {
		return model.User{}, err
	}
	return sanitize(user), nil
}

func (u *userUsecase) UpdateAvatar(ctx context.Context, callerID bson.ObjectID, localPath string) (model.User, error) {
	return u.updateImage(ctx, callerID, localPath, "avatar")
}

func (u *userUsecase) UpdateCoverImage(ctx context.Context, callerID bson.ObjectID, localPath string) (model.User, error) {
	return u.updateImage(ctx, callerID, localPath, "coverImage")
}

func (u *userUsecase) updateImage(ctx context.Context, callerID bson.ObjectID, localPath, field string) (model.User, error) {
	if localPath == "" {
		return model.User{}, apperror.InvalidInput(field + " image is required")
	}
	uploaded, err := u.media.Upload(ctx, localPath, "")
	if err != nil {
		return model.User{}, err
	}
	user, err := u.userRepo.UpdateFields(ctx, callerID, map[string]interface{}{field: uploaded.URL})
	if err != nil {
		return model.User{}, err
	}
	return sanitize(user), nil
}

func (u *userUsecase) GetChannelProfile(ctx context.Context, username string, caller model.User) (model.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return model.ChannelProfile{}, apperror.InvalidInput("username is required")
	}
	return u.userRepo.GetChannelProfile(ctx, username, caller.ID)
}

func (u *userUsecase) GetWatchHistory(ctx context.Context, callerID bson.ObjectID) ([]model.WatchedVideo, error) {
	return u.userRepo.GetWatchHistory(ctx, callerID)
}

func (u *userUsecase) issueTokens(ctx context.Context, user model.User) (dto.TokenPair, error) {
	now := utils.GetCurrentTime()

	accessClaims := model.UserClaims{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		StandardClaims: jwt.StandardClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(u.auth.AccessTokenTTLMin) * time.Minute).Unix(),
		},
	}
	accessToken, err := utils.GenerateToken(accessClaims, u.auth.AccessTokenSecret)
	if err != nil {
		return dto.TokenPair{}, apperror.Internal("unable to issue access token", err)
	}

	refreshClaims := jwt.StandardClaims{
		Subject:   user.ID.Hex(),
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Duration(u.auth.RefreshTokenTTLMin) * time.Minute).Unix(),
	}
	refreshToken, err := utils.GenerateToken(refreshClaims, u.auth.RefreshTokenSecret)
	if err != nil {
		return dto.TokenPair{}, apperror.Internal("unable to issue refresh token", err)
	}

	if err := u.userRepo.SetRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return dto.TokenPair{}, err
	}
	return dto.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// sanitize strips credential material before a user leaves the usecase.
func sanitize(user model.User) model.User {
	user.Password = ""
	user.RefreshToken = ""
	return user
}

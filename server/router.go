// Package server assembles the gin engine and the /api/v1 route table.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"my-tube/domain/repository"
	httpHandler "my-tube/interfaces/http"
	"my-tube/interfaces/middleware"
)

func InitiateRouter(
	userHandler httpHandler.IUserHandler,
	videoHandler httpHandler.IVideoHandler,
	commentHandler httpHandler.ICommentHandler,
	tweetHandler httpHandler.ITweetHandler,
	playlistHandler httpHandler.IPlaylistHandler,
	likeHandler httpHandler.ILikeHandler,
	subscriptionHandler httpHandler.ISubscriptionHandler,
	dashboardHandler httpHandler.IDashboardHandler,
	healthHandler httpHandler.IHealthHandler,
	userRepository repository.IUser,
	corsOrigin string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler.Healthz)

	auth := middleware.Auth(userRepository)
	optionalAuth := middleware.OptionalAuth(userRepository)

	v1 := router.Group("/api/v1")

	users := v1.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.POST("/login", userHandler.Login)
		users.POST("/refresh-token", userHandler.RefreshToken)
		users.POST("/logout", auth, userHandler.Logout)
		users.POST("/change-password", auth, userHandler.ChangePassword)
		users.GET("/current-user", auth, userHandler.CurrentUser)
		users.GET("/channel/:username", auth, userHandler.ChannelProfile)
		users.GET("/watch-history", auth, userHandler.WatchHistory)
		users.PATCH("/update-account-details", auth, userHandler.UpdateAccount)
		users.PATCH("/avatar", auth, userHandler.UpdateAvatar)
		users.PATCH("/cover-image", auth, userHandler.UpdateCoverImage)
	}

	videos := v1.Group("/videos")
	{
		videos.GET("/get-all-videos", optionalAuth, videoHandler.List)
		videos.POST("/publish-video", auth, videoHandler.Publish)
		videos.GET("/video/:videoId", auth, videoHandler.Get)
		videos.PATCH("/update-video/:videoId", auth, videoHandler.Update)
		videos.DELETE("/delete-video/:videoId", auth, videoHandler.Delete)
		videos.PATCH("/toggle-publish-status/:videoId", auth, videoHandler.TogglePublish)
	}

	tweets := v1.Group("/tweets", auth)
	{
		tweets.POST("/", tweetHandler.Create)
		tweets.GET("/user/:userId", tweetHandler.ListByUser)
		tweets.PATCH("/:tweetId", tweetHandler.Update)
		tweets.DELETE("/:tweetId", tweetHandler.Delete)
	}

	comments := v1.Group("/comments", auth)
	{
		comments.GET("/:videoId", commentHandler.List)
		comments.POST("/:videoId", commentHandler.Add)
		comments.PATCH("/c/:commentId", commentHandler.Update)
		comments.DELETE("/c/:commentId", commentHandler.Delete)
	}

	playlists := v1.Group("/playlists", auth)
	{
		playlists.POST("/", playlistHandler.Create)
		playlists.GET("/:playlistId", playlistHandler.Get)
		playlists.GET("/user/:userId", playlistHandler.ListByUser)
		playlists.PATCH("/:playlistId", playlistHandler.Update)
		playlists.DELETE("/:playlistId", playlistHandler.Delete)
		playlists.PATCH("/add/:videoId/:playlistId", playlistHandler.AddVideo)
		playlists.PATCH("/remove/:videoId/:playlistId", playlistHandler.RemoveVideo)
	}

	likes := v1.Group("/likes", auth)
	{
		likes.POST("/toggle/v/:videoId", likeHandler.ToggleVideoLike)
		likes.POST("/toggle/c/:commentId", likeHandler.ToggleCommentLike)
		likes.POST("/toggle/t/:tweetId", likeHandler.ToggleTweetLike)
		likes.GET("/videos", likeHandler.ListLikedVideos)
	}

	subscriptions := v1.Group("/subscriptions", auth)
	{
		subscriptions.POST("/c/:channelId", subscriptionHandler.Toggle)
		subscriptions.GET("/c/:channelId", subscriptionHandler.ListSubscribers)
		subscriptions.GET("/u/:subscriberId", subscriptionHandler.ListSubscribedChannels)
	}

	dashboard := v1.Group("/dashboard", auth)
	{
		dashboard.GET("/stats", dashboardHandler.ChannelStats)
		dashboard.GET("/videos", dashboardHandler.ChannelVideos)
	}

	return router
}

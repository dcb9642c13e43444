package dto

// PublishVideoRequest carries the multipart text fields; the video file and
// thumbnail travel as multipart files. Duration is an optional hint used when
// the media host cannot probe it from the asset.
type PublishVideoRequest struct {
	Title       string  `form:"title" binding:"required"`
	Description string  `form:"description"`
	Duration    float64 `form:"duration"`
}

type UpdateVideoRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
}

// ListVideosQuery mirrors the get-all-videos query string.
type ListVideosQuery struct {
	Page     int64  `form:"page,default=1"`
	Limit    int64  `form:"limit,default=10"`
	Query    string `form:"query"`
	SortBy   string `form:"sortBy"`
	SortType string `form:"sortType"`
	UserID   string `form:"userId"`
}

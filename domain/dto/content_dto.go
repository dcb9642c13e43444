package dto

// ContentRequest is the shared body for comments and tweets: one text field.
type ContentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type UpdatePlaylistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// PageQuery is the common page/limit query pair for list endpoints.
type PageQuery struct {
	Page  int64 `form:"page,default=1"`
	Limit int64 `form:"limit,default=10"`
}

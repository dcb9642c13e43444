package usecase

import (
	"context"
	"strings"

	"my-tube/domain/apperror"
	"my-tube/domain/dto"
	"my-tube/domain/model"
	"my-tube/domain/repository"
)

type ICommentUsecase interface {
	List(ctx context.Context, videoID string, caller model.User, q dto.PageQuery) (dto.Page, error)
	Add(ctx context.Context, caller model.User, videoID, content string) (model.Comment, error)
	Update(ctx context.Context, caller model.User, commentID, content string) (model.Comment, error)
	Delete(ctx context.Context, caller model.User, commentID string) error
}

type commentUsecase struct {
	commentRepo repository.IComment
	videoRepo   repository.IVideo
}

func NewCommentUsecase(commentRepo repository.IComment, videoRepo repository.IVideo) ICommentUsecase {
	return &commentUsecase{commentRepo: commentRepo, videoRepo: videoRepo}
}

// List returns the comment window for a video. A video with no comments is a
// normal success with an empty page, not an error.
func (u *commentUsecase) List(ctx context.Context, videoID string, caller model.User, q dto.PageQuery) (dto.Page, error) {
	id, err := parseID(videoID, "video id")
	if err != nil {
		return dto.Page{}, err
	}
	if _, err := u.videoRepo.GetByID(ctx, id); err != nil {
		return dto.Page{}, err
	}

	page, limit, skip := NormalizePage(q.Page, q.Limit)
	comments, total, err := u.commentRepo.ListByVideo(ctx, id, caller.ID, skip, limit)
	if err != nil {
		return dto.Page{}, err
	}
	if comments == nil {
		comments = []model.CommentView{}
	}
	return dto.NewPage(comments, total, page, limit), nil
}

func (u *commentUsecase) Add(ctx context.Context, caller model.User, videoID, content string) (model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return model.Comment{}, apperror.InvalidInput("content is required")
	}
	id, err := parseID(videoID, "video id")
	if err != nil {
		return model.Comment{}, err
	}
	if _, err := u.videoRepo.GetByID(ctx, id); err != nil {
		return model.Comment{}, err
	}
	return u.commentRepo.Create(ctx, model.Comment{
		Content: content,
		Owner:   caller.ID,
		Video:   id,
	})
}

func (u *commentUsecase) Update(ctx context.Context, caller model.User, commentID, content string) (model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return model.Comment{}, apperror.InvalidInput("content is required")
	}
	id, err := parseID(commentID, "comment id")
	if err != nil {
		return model.Comment{}, err
	}
	comment, err := u.commentRepo.GetByID(ctx, id)
	if err != nil {
		return model.Comment{}, err
	}
	if err := requireOwner(caller.ID, comment.Owner, "comment"); err != nil {
		return model.Comment{}, err
	}
	return u.commentRepo.UpdateContent(ctx, id, content)
}

func (u *commentUsecase) Delete(ctx context.Context, caller model.User, commentID string) error {
	id, err := parseID(commentID, "comment id")
	if err != nil {
		return err
	}
	comment, err := u.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwner(caller.ID, comment.Owner, "comment"); err != nil {
		return err
	}
	return u.commentRepo.Delete(ctx, id)
}

package persistence

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"my-tube/domain/apperror"
)

// convertMongoError maps driver errors onto the application taxonomy so that
// no store-specific error escapes the persistence layer.
func convertMongoError(err error, notFoundMessage string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperror.NotFound(notFoundMessage)
	}
	if mongo.IsDuplicateKeyError(err) {
		return apperror.Conflict("duplicate document")
	}
	return apperror.Internal("store operation failed", err)
}

package usecase

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"my-tube/domain/apperror"
)

// CanMutate is the single ownership predicate behind every gated mutation:
// only the entity's owner may change or delete it.
func CanMutate(callerID, ownerID bson.ObjectID) bool {
	return callerID == ownerID
}

func requireOwner(callerID, ownerID bson.ObjectID, entity string) error {
	if !CanMutate(callerID, ownerID) {
		return apperror.Forbidden("only the owner can modify this " + entity)
	}
	return nil
}

// parseID validates a path/query identifier before it ever reaches the store.
func parseID(id, label string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, apperror.InvalidInput("invalid " + label)
	}
	return oid, nil
}

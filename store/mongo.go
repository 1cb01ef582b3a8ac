package store

import "go.mongodb.org/mongo-driver/bson/primitive"

// objectID converts a hex path/document id, mapping parse failures to
// ErrInvalidID so callers can answer 400 before touching the database.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

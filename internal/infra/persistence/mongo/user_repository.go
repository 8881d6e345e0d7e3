package mongo

import (
	"context"

	"igpress/internal/domain/entity"
	domainerrors "igpress/internal/domain/errors"
	"igpress/internal/domain/repository"
	"igpress/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository implements repository.UserRepository over the 'users' collection.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(model.CollectionUsers)}
}

// Upsert stores a user profile keyed by its Facebook id, replacing the
// mutable fields of any existing document.
func (repo *userRepository) Upsert(ctx context.Context, profile *entity.UserProfile) error {
	m := model.FromUserDomain(profile)

	filter := bson.M{"facebookId": m.FacebookID}
	update := bson.M{"$set": bson.M{
		"facebookId": m.FacebookID,
		"name":       m.Name,
		"email":      m.Email,
		"lastLogin":  m.LastLogin,
	}}

	if _, err := repo.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return domainerrors.NewPersistenceError(err, "failed to upsert user profile")
	}

	return nil
}

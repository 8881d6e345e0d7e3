package model

import (
	"time"

	"igpress/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserModel mirrors a document in the 'users' collection, keyed by the
// external Facebook user id.
type UserModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	FacebookID string             `bson:"facebookId"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
	LastLogin  time.Time          `bson:"lastLogin"`
}

// CollectionUsers is the collection name for user documents.
const CollectionUsers = "users"

// FromUserDomain maps a domain user profile to its persistence model.
func FromUserDomain(profile *entity.UserProfile) *UserModel {
	return &UserModel{
		FacebookID: profile.FacebookID,
		Name:       profile.Name,
		Email:      profile.Email,
		LastLogin:  profile.LastLogin,
	}
}

// ToUserDomain maps a persistence model back to a pure domain entity.
func ToUserDomain(m *UserModel) *entity.UserProfile {
	return &entity.UserProfile{
		FacebookID: m.FacebookID,
		Name:       m.Name,
		Email:      m.Email,
		LastLogin:  m.LastLogin,
	}
}

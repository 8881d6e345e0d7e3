package model

import (
	"time"

	"igpress/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LinkedAccountModel mirrors a document in the 'instagramAccounts'
// collection, keyed by the external Instagram id.
type LinkedAccountModel struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	InstagramID    string             `bson:"instagramId"`
	Name           string             `bson:"name"`
	Username       string             `bson:"username"`
	ProfilePicture string             `bson:"profilePicture"`
	PageID         string             `bson:"pageId"`
	PageName       string             `bson:"pageName"`
	AccessToken    string             `bson:"accessToken"`
	LastUpdated    time.Time          `bson:"lastUpdated"`
}

// CollectionInstagramAccounts is the collection name for linked account documents.
const CollectionInstagramAccounts = "instagramAccounts"

// FromLinkedAccountDomain maps a domain linked account to its persistence model.
func FromLinkedAccountDomain(account *entity.LinkedAccount) *LinkedAccountModel {
	return &LinkedAccountModel{
		InstagramID:    account.InstagramID,
		Name:           account.Name,
		Username:       account.Username,
		ProfilePicture: account.ProfilePicture,
		PageID:         account.PageID,
		PageName:       account.PageName,
		AccessToken:    account.AccessToken,
		LastUpdated:    account.LastUpdated,
	}
}

// ToLinkedAccountDomain maps a persistence model back to a pure domain entity.
func ToLinkedAccountDomain(m *LinkedAccountModel) *entity.LinkedAccount {
	return &entity.LinkedAccount{
		InstagramID:    m.InstagramID,
		Name:           m.Name,
		Username:       m.Username,
		ProfilePicture: m.ProfilePicture,
		PageID:         m.PageID,
		PageName:       m.PageName,
		AccessToken:    m.AccessToken,
		LastUpdated:    m.LastUpdated,
	}
}

// Package model contains the bson persistence models for the document store.
// Models mirror the stored documents one-to-one; mapping functions convert
// between them and the pure domain entities.
package model

import (
	"time"

	"igpress/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PageModel mirrors a document in the 'pages' collection, keyed by the
// external page id.
type PageModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	PageID      string             `bson:"pageId"`
	Name        string             `bson:"name"`
	AccessToken string             `bson:"accessToken"`
	LastUpdated time.Time          `bson:"lastUpdated"`
}

// CollectionPages is the collection name for page documents.
const CollectionPages = "pages"

// FromPageDomain maps a domain page to its persistence model.
func FromPageDomain(page *entity.Page) *PageModel {
	return &PageModel{
		PageID:      page.PageID,
		Name:        page.Name,
		AccessToken: page.AccessToken,
		LastUpdated: page.LastUpdated,
	}
}

// ToPageDomain maps a persistence model back to a pure domain entity.
func ToPageDomain(m *PageModel) *entity.Page {
	return &entity.Page{
		PageID:      m.PageID,
		Name:        m.Name,
		AccessToken: m.AccessToken,
		LastUpdated: m.LastUpdated,
	}
}

package model

import (
	"time"

	"igpress/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PublicationModel mirrors a document in the append-only 'publications'
// collection.
type PublicationModel struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	InstagramAccountID string             `bson:"instagramAccountId"`
	InstagramUsername  string             `bson:"instagramUsername"`
	Content            string             `bson:"content"`
	MediaID            string             `bson:"mediaId"`
	Timestamp          time.Time          `bson:"timestamp"`
	Status             string             `bson:"status"`
}

// CollectionPublications is the collection name for publication documents.
const CollectionPublications = "publications"

// FromPublicationDomain maps a domain publication record to its persistence model.
func FromPublicationDomain(record *entity.PublicationRecord) *PublicationModel {
	return &PublicationModel{
		InstagramAccountID: record.InstagramAccountID,
		InstagramUsername:  record.InstagramUsername,
		Content:            record.Content,
		MediaID:            record.MediaID,
		Timestamp:          record.Timestamp,
		Status:             string(record.Status),
	}
}

// ToPublicationDomain maps a persistence model back to a pure domain entity.
func ToPublicationDomain(m *PublicationModel) *entity.PublicationRecord {
	return &entity.PublicationRecord{
		InstagramAccountID: m.InstagramAccountID,
		InstagramUsername:  m.InstagramUsername,
		Content:            m.Content,
		MediaID:            m.MediaID,
		Timestamp:          m.Timestamp,
		Status:             entity.PublicationStatus(m.Status),
	}
}

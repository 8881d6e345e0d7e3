package model

import (
	"time"

	"igpress/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SummaryModel mirrors a document in the 'summarizations' collection.
type SummaryModel struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	UserID            string             `bson:"userId"`
	OriginalContent   string             `bson:"originalContent"`
	SummarizedContent string             `bson:"summarizedContent"`
	Timestamp         time.Time          `bson:"timestamp"`
	CharacterCount    struct {
		Original   int `bson:"original"`
		Summarized int `bson:"summarized"`
	} `bson:"characterCount"`
}

// CollectionSummarizations is the collection name for summary documents.
const CollectionSummarizations = "summarizations"

// FromSummaryDomain maps a domain summary record to its persistence model.
func FromSummaryDomain(record *entity.SummaryRecord) *SummaryModel {
	m := &SummaryModel{
		UserID:            record.UserID,
		OriginalContent:   record.OriginalContent,
		SummarizedContent: record.SummarizedContent,
		Timestamp:         record.Timestamp,
	}
	m.CharacterCount.Original = record.OriginalChars
	m.CharacterCount.Summarized = record.SummarizedChars

	return m
}

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

// publicationRepository implements repository.PublicationRepository over the
// append-only 'publications' collection.
type publicationRepository struct {
	coll *mongo.Collection
}

// NewPublicationRepository is the constructor for publicationRepository.
func NewPublicationRepository(db *mongo.Database) repository.PublicationRepository {
	return &publicationRepository{coll: db.Collection(model.CollectionPublications)}
}

// Append persists a new publication record. Records are never updated.
func (repo *publicationRepository) Append(ctx context.Context, record *entity.PublicationRecord) error {
	if _, err := repo.coll.InsertOne(ctx, model.FromPublicationDomain(record)); err != nil {
		return domainerrors.NewPersistenceError(err, "failed to append publication record")
	}

	return nil
}

// ListByAccount returns the most recent publication records for one account,
// newest first, capped at limit.
func (repo *publicationRepository) ListByAccount(ctx context.Context, instagramID string, limit int64) ([]*entity.PublicationRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := repo.coll.Find(ctx, bson.M{"instagramAccountId": instagramID}, opts)
	if err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to list publications")
	}
	defer cursor.Close(ctx)

	var records []*entity.PublicationRecord
	for cursor.Next(ctx) {
		var m model.PublicationModel
		if err := cursor.Decode(&m); err != nil {
			return nil, domainerrors.NewPersistenceError(err, "failed to decode publication record")
		}
		records = append(records, model.ToPublicationDomain(&m))
	}
	if err := cursor.Err(); err != nil {
		return nil, domainerrors.NewPersistenceError(err, "cursor error while listing publications")
	}

	return records, nil
}

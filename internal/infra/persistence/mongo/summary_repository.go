package mongo

import (
	"context"

	"igpress/internal/domain/entity"
	domainerrors "igpress/internal/domain/errors"
	"igpress/internal/domain/repository"
	"igpress/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/mongo"
)

// summaryRepository implements repository.SummaryRepository over the
// 'summarizations' collection.
type summaryRepository struct {
	coll *mongo.Collection
}

// NewSummaryRepository is the constructor for summaryRepository.
func NewSummaryRepository(db *mongo.Database) repository.SummaryRepository {
	return &summaryRepository{coll: db.Collection(model.CollectionSummarizations)}
}

// Append persists a new summary record.
func (repo *summaryRepository) Append(ctx context.Context, record *entity.SummaryRecord) error {
	if _, err := repo.coll.InsertOne(ctx, model.FromSummaryDomain(record)); err != nil {
		return domainerrors.NewPersistenceError(err, "failed to append summary record")
	}

	return nil
}

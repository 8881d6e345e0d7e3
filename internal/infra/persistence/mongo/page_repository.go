package mongo

import (
	"context"

	"igpress/internal/domain/entity"
	domainerrors "igpress/internal/domain/errors"
	"igpress/internal/domain/repository"
	"igpress/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// pageRepository implements repository.PageRepository over the 'pages' collection.
type pageRepository struct {
	coll *mongo.Collection
}

// NewPageRepository is the constructor for pageRepository.
func NewPageRepository(db *mongo.Database) repository.PageRepository {
	return &pageRepository{coll: db.Collection(model.CollectionPages)}
}

// Upsert stores a page keyed by its external page id, replacing the mutable
// fields of any existing document.
func (repo *pageRepository) Upsert(ctx context.Context, page *entity.Page) error {
	m := model.FromPageDomain(page)

	filter := bson.M{"pageId": m.PageID}
	update := bson.M{"$set": bson.M{
		"pageId":      m.PageID,
		"name":        m.Name,
		"accessToken": m.AccessToken,
		"lastUpdated": m.LastUpdated,
	}}

	if _, err := repo.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return domainerrors.NewPersistenceError(err, "failed to upsert page")
	}

	return nil
}

// FindByID retrieves a single page by its external page id.
func (repo *pageRepository) FindByID(ctx context.Context, pageID string) (*entity.Page, error) {
	var m model.PageModel
	if err := repo.coll.FindOne(ctx, bson.M{"pageId": pageID}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrPageNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find page by id")
	}

	return model.ToPageDomain(&m), nil
}

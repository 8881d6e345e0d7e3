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

// linkedAccountRepository implements repository.LinkedAccountRepository over
// the 'instagramAccounts' collection.
type linkedAccountRepository struct {
	coll *mongo.Collection
}

// NewLinkedAccountRepository is the constructor for linkedAccountRepository.
func NewLinkedAccountRepository(db *mongo.Database) repository.LinkedAccountRepository {
	return &linkedAccountRepository{coll: db.Collection(model.CollectionInstagramAccounts)}
}

// Upsert stores a linked account keyed by its external Instagram id,
// replacing the mutable fields of any existing document.
func (repo *linkedAccountRepository) Upsert(ctx context.Context, account *entity.LinkedAccount) error {
	m := model.FromLinkedAccountDomain(account)

	filter := bson.M{"instagramId": m.InstagramID}
	update := bson.M{"$set": bson.M{
		"instagramId":    m.InstagramID,
		"name":           m.Name,
		"username":       m.Username,
		"profilePicture": m.ProfilePicture,
		"pageId":         m.PageID,
		"pageName":       m.PageName,
		"accessToken":    m.AccessToken,
		"lastUpdated":    m.LastUpdated,
	}}

	if _, err := repo.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return domainerrors.NewPersistenceError(err, "failed to upsert linked account")
	}

	return nil
}

// FindByID retrieves a single linked account by its external Instagram id.
func (repo *linkedAccountRepository) FindByID(ctx context.Context, instagramID string) (*entity.LinkedAccount, error) {
	var m model.LinkedAccountModel
	if err := repo.coll.FindOne(ctx, bson.M{"instagramId": instagramID}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrLinkedAccountNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find linked account by id")
	}

	return model.ToLinkedAccountDomain(&m), nil
}

// List returns every linked account currently in the directory.
func (repo *linkedAccountRepository) List(ctx context.Context) ([]*entity.LinkedAccount, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to list linked accounts")
	}
	defer cursor.Close(ctx)

	var accounts []*entity.LinkedAccount
	for cursor.Next(ctx) {
		var m model.LinkedAccountModel
		if err := cursor.Decode(&m); err != nil {
			return nil, domainerrors.NewPersistenceError(err, "failed to decode linked account")
		}
		accounts = append(accounts, model.ToLinkedAccountDomain(&m))
	}
	if err := cursor.Err(); err != nil {
		return nil, domainerrors.NewPersistenceError(err, "cursor error while listing linked accounts")
	}

	return accounts, nil
}

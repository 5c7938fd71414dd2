package firestore

import (
	"context"
	"time"

	"pescastur/internal/domain/constants"
	"pescastur/internal/domain/entity"
	"pescastur/internal/domain/repository"
	"pescastur/internal/errors"
	"pescastur/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type productRepository struct {
	client *firestore.Client
}

// NewProductRepository creates the products/{id} repository
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(constants.ProductsCollection)
}

func (r *productRepository) GetAllProducts(ctx context.Context) ([]*entity.Product, error) {
	iter := r.collection().Documents(ctx)
	defer iter.Stop()

	products := make([]*entity.Product, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "list products")
		}

		products = append(products, model.ProductFromDocument(snap.Ref.ID, snap.Data()))
	}

	return products, nil
}

func (r *productRepository) GetProductByUID(ctx context.Context, productID string) (*entity.Product, error) {
	snap, err := r.collection().Doc(productID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.WithStack(repository.ErrProductNotFound)
		}

		return nil, errors.Wrapf(err, "get product %s", productID)
	}

	return model.ProductFromDocument(snap.Ref.ID, snap.Data()), nil
}

func (r *productRepository) GetProductPhoto(ctx context.Context, productID string) (string, error) {
	snap, err := r.collection().Doc(productID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return "", nil
		}

		return "", errors.Wrapf(err, "get photo of product %s", productID)
	}

	photo, _ := snap.Data()[model.ProductFieldImageURL].(string)

	return photo, nil
}

func (r *productRepository) AddCommentToComments(ctx context.Context, productID, comment string) (time.Time, error) {
	return r.arrayUnion(ctx, productID, model.ProductFieldComments, comment)
}

func (r *productRepository) AddRatingToRatings(ctx context.Context, productID string, rating int) (time.Time, error) {
	return r.arrayUnion(ctx, productID, model.ProductFieldRatings, int64(rating))
}

// arrayUnion appends value unless an equal element is already present.
func (r *productRepository) arrayUnion(ctx context.Context, productID, field string, value any) (time.Time, error) {
	result, err := r.collection().Doc(productID).Update(ctx, []firestore.Update{
		{Path: field, Value: firestore.ArrayUnion(value)},
	})
	if err != nil {
		if isNotFound(err) {
			return time.Time{}, errors.WithStack(repository.ErrProductNotFound)
		}

		return time.Time{}, errors.Wrapf(err, "append to %s of product %s", field, productID)
	}

	return result.UpdateTime, nil
}

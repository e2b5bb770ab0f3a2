package mongodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/gadgetmart/catalog/internal/domain"
	apperrors "github.com/gadgetmart/catalog/pkg/errors"
)

var testTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func brandDoc(id primitive.ObjectID, name, url string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "url", Value: url},
		{Key: "created_at", Value: primitive.NewDateTimeFromTime(testTime)},
		{Key: "updated_at", Value: primitive.NewDateTimeFromTime(testTime)},
	}
}

func TestBrandRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success assigns id and timestamps", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		repo := NewBrandRepository(mt.DB)
		b := domain.Brand{Name: "Apple", URL: "https://www.apple.com"}

		err := repo.Create(context.Background(), &b)

		require.NoError(mt.T, err)
		assert.False(mt.T, b.ID.IsZero())
		assert.False(mt.T, b.CreatedAt.IsZero())
		assert.False(mt.T, b.UpdatedAt.IsZero())
	})

	mt.Run("missing name rejected before insert", func(mt *mtest.T) {
		repo := NewBrandRepository(mt.DB)
		b := domain.Brand{URL: "https://www.apple.com"}

		err := repo.Create(context.Background(), &b)

		require.Error(mt.T, err)
		assert.True(mt.T, errors.Is(err, apperrors.ErrInvalidInput))
	})

	mt.Run("missing url rejected before insert", func(mt *mtest.T) {
		repo := NewBrandRepository(mt.DB)
		b := domain.Brand{Name: "Apple"}

		err := repo.Create(context.Background(), &b)

		require.Error(mt.T, err)
		assert.True(mt.T, errors.Is(err, apperrors.ErrInvalidInput))
	})

	mt.Run("write error propagates", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key",
		}))

		repo := NewBrandRepository(mt.DB)
		b := domain.Brand{Name: "Apple", URL: "https://www.apple.com"}

		err := repo.Create(context.Background(), &b)

		assert.Error(mt.T, err)
	})
}

func TestBrandRepository_GetByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "shop.brands", mtest.FirstBatch,
			brandDoc(id, "Sony", "https://www.sony.com")))

		repo := NewBrandRepository(mt.DB)
		b, err := repo.GetByID(context.Background(), id)

		require.NoError(mt.T, err)
		assert.Equal(mt.T, id, b.ID)
		assert.Equal(mt.T, "Sony", b.Name)
		assert.Equal(mt.T, "https://www.sony.com", b.URL)
		assert.Equal(mt.T, testTime, b.CreatedAt.UTC())
	})

	mt.Run("not found maps to NotFound", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "shop.brands", mtest.FirstBatch))

		repo := NewBrandRepository(mt.DB)
		b, err := repo.GetByID(context.Background(), primitive.NewObjectID())

		require.Error(mt.T, err)
		assert.Nil(mt.T, b)
		assert.True(mt.T, errors.Is(err, apperrors.ErrNotFound))

		var appErr *apperrors.AppError
		require.True(mt.T, errors.As(err, &appErr))
		assert.Equal(mt.T, "Brand not found.", appErr.Message)
	})

	mt.Run("command error propagates", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Message: "interrupted",
			Name:    "InterruptedAtShutdown",
		}))

		repo := NewBrandRepository(mt.DB)
		b, err := repo.GetByID(context.Background(), primitive.NewObjectID())

		assert.Error(mt.T, err)
		assert.Nil(mt.T, b)
		assert.False(mt.T, errors.Is(err, apperrors.ErrNotFound))
	})
}

func TestBrandRepository_ListAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns all brands", func(mt *mtest.T) {
		id1 := primitive.NewObjectID()
		id2 := primitive.NewObjectID()
		first := mtest.CreateCursorResponse(1, "shop.brands", mtest.FirstBatch,
			brandDoc(id1, "Apple", "https://www.apple.com"))
		second := mtest.CreateCursorResponse(0, "shop.brands", mtest.NextBatch,
			brandDoc(id2, "Bose", "https://www.bose.com"))
		mt.AddMockResponses(first, second)

		repo := NewBrandRepository(mt.DB)
		brands, err := repo.ListAll(context.Background())

		require.NoError(mt.T, err)
		require.Len(mt.T, brands, 2)
		assert.Equal(mt.T, "Apple", brands[0].Name)
		assert.Equal(mt.T, "Bose", brands[1].Name)
	})

	mt.Run("empty collection yields empty slice", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "shop.brands", mtest.FirstBatch))

		repo := NewBrandRepository(mt.DB)
		brands, err := repo.ListAll(context.Background())

		require.NoError(mt.T, err)
		assert.NotNil(mt.T, brands)
		assert.Empty(mt.T, brands)
	})
}

func TestBrandRepository_Count(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns count", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "shop.brands", mtest.FirstBatch,
			bson.D{{Key: "n", Value: int32(5)}}))

		repo := NewBrandRepository(mt.DB)
		n, err := repo.Count(context.Background())

		require.NoError(mt.T, err)
		assert.Equal(mt.T, int64(5), n)
	})
}

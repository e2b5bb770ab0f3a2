package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestDropCollections(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("drops both collections", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())

		err := DropCollections(context.Background(), mt.DB)

		assert.NoError(mt.T, err)
	})

	mt.Run("drop failure is reported with the collection name", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Message: "not authorized",
			Name:    "Unauthorized",
		}))

		err := DropCollections(context.Background(), mt.DB)

		require.Error(mt.T, err)
		assert.Contains(mt.T, err.Error(), "drop collection brands")
	})
}

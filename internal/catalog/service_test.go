package catalog

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("valid category", func(t *testing.T) {
		in := NewBook{Title: "Dune", Category: Fiction, IsAvailable: true}
		mockRepo.EXPECT().Create(gomock.Any(), in).Return(Book{ID: 1, Title: "Dune", Category: Fiction}, nil)

		book, err := service.Create(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, 1, book.ID)
	})

	t.Run("invalid category never reaches the repository", func(t *testing.T) {
		_, err := service.Create(context.Background(), NewBook{Title: "It", Category: "Horror"})
		assert.ErrorIs(t, err, ErrInvalidCategory)
		assert.Contains(t, err.Error(), "Fiction, Comedy, Technical")
	})
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("fiction").Valid())
	assert.False(t, Category("").Valid())
}

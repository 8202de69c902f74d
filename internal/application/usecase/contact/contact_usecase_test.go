package contact_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/internal/application/mocks"
	"github.com/khoahotran/portfolio/internal/application/service"
	contactUC "github.com/khoahotran/portfolio/internal/application/usecase/contact"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func TestGetContact_Present(t *testing.T) {
	repo := new(mocks.ContactRepo)
	log := logger.NewNop()
	uc := contactUC.NewContactUseCase(repo, service.NewChangeNotifier(nil, nil, log), log)

	stored := &contact.Contact{ID: 1, Email: "me@example.com"}
	repo.On("Get", mock.Anything).Return(stored, true, nil)

	got, found, err := uc.GetContact(context.Background())

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, stored, got)
}

func TestUpdateContact_ReplacesEveryField(t *testing.T) {
	repo := new(mocks.ContactRepo)
	cache := new(mocks.SnapshotCache)
	log := logger.NewNop()
	uc := contactUC.NewContactUseCase(repo, service.NewChangeNotifier(cache, nil, log), log)

	email, location := "me@example.com", "Hanoi"
	repo.On("Upsert", mock.Anything, &contact.Contact{Email: "me@example.com", Location: &location}).
		Return(&contact.Contact{ID: 1, Email: "me@example.com", Location: &location}, nil)
	cache.On("Invalidate", mock.Anything).Return(nil)

	got, err := uc.UpdateContact(context.Background(), contactUC.UpdateContactInput{
		Email:    &email,
		Location: &location,
	})

	require.NoError(t, err)
	assert.Nil(t, got.Phone)
	assert.Equal(t, "Hanoi", *got.Location)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

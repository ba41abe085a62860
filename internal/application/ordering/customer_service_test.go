package ordering

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/brewery/backend/internal/domain/ordering"
	"github.com/brewery/backend/internal/domain/shared"
)

func TestCustomerService_Create_Success(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	service := NewCustomerService(mockRepo)

	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*ordering.Customer")).Return(nil)

	resp, err := service.Create(context.Background(), CreateCustomerRequest{
		Name:  "Customer 1",
		Email: "c1@example.com",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, 1, resp.Version)
	mockRepo.AssertExpectations(t)
}

func TestCustomerService_UpdateByID_StaleVersion(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	service := NewCustomerService(mockRepo)

	stored, err := ordering.NewCustomer("Customer 1", "c1@example.com")
	require.NoError(t, err)
	mockRepo.On("FindByID", mock.Anything, stored.ID).Return(stored, nil)

	stale := 9
	_, err = service.UpdateByID(context.Background(), stored.ID, UpdateCustomerRequest{
		Version: &stale,
		Name:    "Customer One",
	})

	assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestCustomerService_DeleteByID_NotFound(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	service := NewCustomerService(mockRepo)

	id := uuid.New()
	mockRepo.On("ExistsByID", mock.Anything, id).Return(false, nil)

	err := service.DeleteByID(context.Background(), id)

	assert.ErrorIs(t, err, shared.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Delete")
}

func TestCustomerService_List(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	service := NewCustomerService(mockRepo)

	stored, err := ordering.NewCustomer("Customer 1", "c1@example.com")
	require.NoError(t, err)
	mockRepo.On("FindAll", mock.Anything, shared.PageRequest{Number: 0, Size: 25}).
		Return(shared.NewPage([]ordering.Customer{*stored}, shared.PageRequest{Number: 0, Size: 25}, 1), nil)

	page, err := service.List(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalElements)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Customer 1", page.Content[0].Name)
}

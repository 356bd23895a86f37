package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rohitkr5850/storefront/internal/domain"
	"github.com/rohitkr5850/storefront/internal/pkg/logger"
)

// MockProductRepository is a mock implementation of domain.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*domain.Product, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockSearchCache is a mock implementation of SearchCache
type MockSearchCache struct {
	mock.Mock
}

func (m *MockSearchCache) GetSearchResults(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *MockSearchCache) SetSearchResults(ctx context.Context, filter domain.ProductFilter, products []*domain.Product) error {
	args := m.Called(ctx, filter, products)
	return args.Error(0)
}

func (m *MockSearchCache) InvalidateSearchResults(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestService_Search_CacheMissFiltersAndCaches(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCache := new(MockSearchCache)
	log := logger.New("test")
	service := NewService(mockRepo, mockCache, log)

	products := []*domain.Product{
		catalogProduct("Red Shirt", "", "Clothing", 20, 4.2, 1),
		catalogProduct("Blue Mug", "", "Home", 15, 3.0, 2),
	}
	filter := domain.ProductFilter{Search: "shirt"}

	mockCache.On("GetSearchResults", mock.Anything, filter).Return(nil, domain.ErrNotFound)
	mockRepo.On("List", mock.Anything).Return(products, nil)
	mockCache.On("SetSearchResults", mock.Anything, filter, mock.Anything).Return(nil)

	result, err := service.Search(context.Background(), filter)

	assert.NoError(t, err)
	assert.Equal(t, []string{"Red Shirt"}, titles(result))
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestService_Search_CacheHitSkipsRepository(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCache := new(MockSearchCache)
	log := logger.New("test")
	service := NewService(mockRepo, mockCache, log)

	cached := []*domain.Product{
		catalogProduct("Red Shirt", "", "Clothing", 20, 4.2, 1),
	}
	filter := domain.ProductFilter{Search: "shirt"}

	mockCache.On("GetSearchResults", mock.Anything, filter).Return(cached, nil)

	result, err := service.Search(context.Background(), filter)

	assert.NoError(t, err)
	assert.Equal(t, cached, result)
	mockRepo.AssertNotCalled(t, "List")
}

func TestService_CreateProduct_InvalidatesSearchCache(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCache := new(MockSearchCache)
	log := logger.New("test")
	service := NewService(mockRepo, mockCache, log)

	product := catalogProduct("New Thing", "", "Home", 12, 0, 0)

	mockRepo.On("Create", mock.Anything, product).Return(nil)
	mockCache.On("InvalidateSearchResults", mock.Anything).Return(nil)

	err := service.CreateProduct(context.Background(), product)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestService_CreateProduct_InvalidInput(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCache := new(MockSearchCache)
	log := logger.New("test")
	service := NewService(mockRepo, mockCache, log)

	product := &domain.Product{
		// Missing required title and category
		ID:    uuid.New(),
		Price: 10,
	}

	err := service.CreateProduct(context.Background(), product)

	assert.Error(t, err)
	assert.Equal(t, domain.ErrInvalidInput, err)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_GetByID_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCache := new(MockSearchCache)
	log := logger.New("test")
	service := NewService(mockRepo, mockCache, log)

	id := uuid.New()
	mockRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	product, err := service.GetByID(context.Background(), id)

	assert.Error(t, err)
	assert.Equal(t, domain.ErrNotFound, err)
	assert.Nil(t, product)
}

func TestService_DeleteProduct_InvalidatesSearchCache(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCache := new(MockSearchCache)
	log := logger.New("test")
	service := NewService(mockRepo, mockCache, log)

	id := uuid.New()
	mockRepo.On("Delete", mock.Anything, id).Return(nil)
	mockCache.On("InvalidateSearchResults", mock.Anything).Return(nil)

	err := service.DeleteProduct(context.Background(), id)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

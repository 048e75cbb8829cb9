package services

import (
	"ecoshop/internal/models"
	"ecoshop/internal/repositories"
)

// ProductService handles business logic related to the product catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products, ordered by name.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product and returns its assigned ID.
func (s *ProductService) CreateProduct(product *models.Product) (uint, error) {
	if err := s.repo.Create(product); err != nil {
		return 0, err
	}
	return product.ID, nil
}

// UpdateProduct overwrites an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID and reports how many rows
// were removed.
func (s *ProductService) DeleteProduct(id uint) (int64, error) {
	return s.repo.Delete(id)
}

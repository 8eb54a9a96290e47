package repo

import "github.com/lflopes1997/Projeto-ControleEstoque/internal/models"

// ProductRepository defines the interface for product data operations.
// Update is a full replacement of the three mutable fields.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
}

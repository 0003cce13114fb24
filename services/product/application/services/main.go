package services

import (
	"github.com/ghuser/pantry/pkg/app"
	"github.com/ghuser/pantry/services/product/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Product *ProductService
}

// New wires all product application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewProductRepository(a.Db)
	return &Services{
		Product: NewProductService(repo, a.Logger.With("component", "product_service")),
	}
}

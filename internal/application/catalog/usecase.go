// Package catalog altas, ediciones y bajas de productos y categorías.
// Valida antes de reenviar; el backend decide.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/application/feedback"
	"github.com/jhoicas/storemax-web/internal/application/ports"
	"github.com/jhoicas/storemax-web/internal/application/validation"
	"github.com/jhoicas/storemax-web/internal/domain"
)

// UseCase mutaciones del catálogo.
type UseCase struct {
	gateway ports.CatalogGateway
}

// NewUseCase construye el caso de uso.
func NewUseCase(gateway ports.CatalogGateway) *UseCase {
	return &UseCase{gateway: gateway}
}

// AddProduct alta de producto.
func (uc *UseCase) AddProduct(ctx context.Context, in dto.NewProductRequest) (*dto.MessageResponse, error) {
	in.ProductName = strings.TrimSpace(in.ProductName)
	in.CategoryName = strings.TrimSpace(in.CategoryName)
	in.Location = strings.TrimSpace(in.Location)
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}
	msg, err := uc.gateway.AddProduct(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("catalog: alta de producto: %w", err)
	}
	return &dto.MessageResponse{Notice: feedback.Success(msg, "Product added successfully")}, nil
}

// UpdateProduct edición parcial; al menos un campo debe cambiar.
func (uc *UseCase) UpdateProduct(ctx context.Context, in dto.UpdateProductRequest) (*dto.MessageResponse, error) {
	in.ProductName = strings.TrimSpace(in.ProductName)
	in.NewProductName = strings.TrimSpace(in.NewProductName)
	in.CategoryName = strings.TrimSpace(in.CategoryName)
	in.Location = strings.TrimSpace(in.Location)
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}
	if in.NewProductName == "" && in.Price == nil && in.CategoryName == "" && in.QuantityInStock == nil && in.Location == "" {
		return nil, domain.NewUserError(domain.ErrInvalidInput, "Nothing to update for %s.", in.ProductName)
	}
	msg, err := uc.gateway.UpdateProduct(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("catalog: edición de producto: %w", err)
	}
	return &dto.MessageResponse{Notice: feedback.Success(msg, "Product updated successfully")}, nil
}

// DeleteProduct baja por nombre.
func (uc *UseCase) DeleteProduct(ctx context.Context, productName string) (*dto.MessageResponse, error) {
	name := strings.TrimSpace(productName)
	if name == "" {
		return nil, domain.NewUserError(domain.ErrInvalidInput, "Product name is required")
	}
	msg, err := uc.gateway.DeleteProduct(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("catalog: baja de producto: %w", err)
	}
	return &dto.MessageResponse{Notice: feedback.Success(msg, "Product deleted successfully")}, nil
}

// AddCategory alta de categoría.
func (uc *UseCase) AddCategory(ctx context.Context, in dto.NewCategoryRequest) (*dto.MessageResponse, error) {
	in.CategoryName = strings.TrimSpace(in.CategoryName)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}
	msg, err := uc.gateway.AddCategory(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("catalog: alta de categoría: %w", err)
	}
	return &dto.MessageResponse{Notice: feedback.Success(msg, "Category added successfully")}, nil
}

// UpdateCategory renombra o edita. description se envía siempre.
func (uc *UseCase) UpdateCategory(ctx context.Context, in dto.UpdateCategoryRequest) (*dto.MessageResponse, error) {
	in.CategoryName = strings.TrimSpace(in.CategoryName)
	in.NewCategoryName = strings.TrimSpace(in.NewCategoryName)
	in.Description = strings.TrimSpace(in.Description)
	in.NewLocation = strings.TrimSpace(in.NewLocation)
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}
	msg, err := uc.gateway.UpdateCategory(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("catalog: edición de categoría: %w", err)
	}
	return &dto.MessageResponse{Notice: feedback.Success(msg, "Category updated successfully")}, nil
}

// DeleteCategory baja por nombre.
func (uc *UseCase) DeleteCategory(ctx context.Context, categoryName string) (*dto.MessageResponse, error) {
	name := strings.TrimSpace(categoryName)
	if name == "" {
		return nil, domain.NewUserError(domain.ErrInvalidInput, "Category name is required")
	}
	msg, err := uc.gateway.DeleteCategory(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("catalog: baja de categoría: %w", err)
	}
	return &dto.MessageResponse{Notice: feedback.Success(msg, "Category deleted successfully")}, nil
}

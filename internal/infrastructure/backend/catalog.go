package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
)

// ListProducts catálogo completo.
func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var resp productsResponse
	if err := c.do(ctx, "list_products", http.MethodGet, "/api/product/list", nil, &resp); err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(*resp.Products))
	for _, p := range *resp.Products {
		out = append(out, p.entity())
	}
	return out, nil
}

// AddProduct da de alta un producto.
func (c *Client) AddProduct(ctx context.Context, p dto.NewProductRequest) (string, error) {
	var resp envelope
	if err := c.do(ctx, "add_product", http.MethodPost, "/api/product/add", p, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// UpdateProduct modifica un producto existente.
func (c *Client) UpdateProduct(ctx context.Context, u dto.UpdateProductRequest) (string, error) {
	var resp envelope
	if err := c.do(ctx, "update_product", http.MethodPut, "/api/product/update", u, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// DeleteProduct elimina por nombre.
func (c *Client) DeleteProduct(ctx context.Context, productName string) (string, error) {
	in := struct {
		ProductName string `json:"product_name"`
	}{productName}
	var resp envelope
	if err := c.do(ctx, "delete_product", http.MethodDelete, "/api/product/delete", in, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ListCategories todas las categorías.
func (c *Client) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var resp categoriesResponse
	if err := c.do(ctx, "list_categories", http.MethodGet, "/api/category/list", nil, &resp); err != nil {
		return nil, err
	}
	out := make([]entity.Category, 0, len(resp))
	for _, cat := range resp {
		out = append(out, entity.Category{CategoryName: cat.CategoryName, Description: cat.Description, Location: cat.Location})
	}
	return out, nil
}

// AddCategory da de alta una categoría.
func (c *Client) AddCategory(ctx context.Context, cat dto.NewCategoryRequest) (string, error) {
	var resp envelope
	if err := c.do(ctx, "add_category", http.MethodPost, "/api/category/add", cat, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// UpdateCategory renombra o edita una categoría.
func (c *Client) UpdateCategory(ctx context.Context, u dto.UpdateCategoryRequest) (string, error) {
	var resp envelope
	if err := c.do(ctx, "update_category", http.MethodPut, "/api/category/update", u, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// DeleteCategory elimina por nombre.
func (c *Client) DeleteCategory(ctx context.Context, categoryName string) (string, error) {
	in := struct {
		CategoryName string `json:"category_name"`
	}{categoryName}
	var resp envelope
	if err := c.do(ctx, "delete_category", http.MethodDelete, "/api/category/delete", in, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

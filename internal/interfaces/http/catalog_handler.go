package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storemax-web/internal/application/catalog"
	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/pkg/logger"
)

// CatalogHandler altas, ediciones y bajas de productos y categorías (ruta /inventory).
type CatalogHandler struct {
	responder
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{responder: newResponder(log), uc: uc}
}

// CreateProduct godoc
// @Summary      Crear producto
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NewProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /inventory/products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.NewProductRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	out, err := h.uc.AddProduct(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateProduct godoc
// @Summary      Editar producto
// @Description  Solo se envían los campos presentes; el nombre actual va en la ruta.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        name  path  string                    true  "product_name actual"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /inventory/products/{name} [put]
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	in.ProductName = pathParam(c, "name")
	out, err := h.uc.UpdateProduct(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// DeleteProduct godoc
// @Summary      Eliminar producto
// @Tags         inventory
// @Produce      json
// @Param        name  path  string  true  "product_name"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /inventory/products/{name} [delete]
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	out, err := h.uc.DeleteProduct(c.UserContext(), pathParam(c, "name"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// CreateCategory godoc
// @Summary      Crear categoría
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NewCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /inventory/categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.NewCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	out, err := h.uc.AddCategory(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateCategory godoc
// @Summary      Editar categoría
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        name  path  string                     true  "category_name actual"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Nuevos valores"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /inventory/categories/{name} [put]
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return h.badBody(c)
	}
	in.CategoryName = pathParam(c, "name")
	out, err := h.uc.UpdateCategory(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// DeleteCategory godoc
// @Summary      Eliminar categoría
// @Tags         inventory
// @Produce      json
// @Param        name  path  string  true  "category_name"
// @Success      200   {object}  dto.MessageResponse
// @Router       /inventory/categories/{name} [delete]
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	out, err := h.uc.DeleteCategory(c.UserContext(), pathParam(c, "name"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

package entity

// Category categoría de productos; CategoryName es único en el backend.
type Category struct {
	CategoryName string
	Description  string
	Location     string
}

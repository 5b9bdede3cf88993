package response

import "mart-api/models"

// Storefront view: no buy price, raw stock replaced by the bucket.
type PublicProductView struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url,omitempty"`
	StockLevel  string  `json:"stock_level"`
}

type AdminProductView struct {
	models.Product
	StockLevel string `json:"stock_level"`
}

func PublicProduct(p models.Product) PublicProductView {
	return PublicProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		StockLevel:  p.StockLevel(),
	}
}

func PublicProducts(products []models.Product) []PublicProductView {
	views := make([]PublicProductView, len(products))
	for i, p := range products {
		views[i] = PublicProduct(p)
	}
	return views
}

func AdminProduct(p models.Product) AdminProductView {
	return AdminProductView{Product: p, StockLevel: p.StockLevel()}
}

func AdminProducts(products []models.Product) []AdminProductView {
	views := make([]AdminProductView, len(products))
	for i, p := range products {
		views[i] = AdminProduct(p)
	}
	return views
}

// FilterProductsForRole hides cost data from non-admin callers.
func FilterProductsForRole(products []models.Product, role string) interface{} {
	if role == "admin" {
		return AdminProducts(products)
	}
	return PublicProducts(products)
}

func FilterProductForRole(p models.Product, role string) interface{} {
	if role == "admin" {
		return AdminProduct(p)
	}
	return PublicProduct(p)
}

package inventory

// Product es un ítem del catálogo de la clínica (alimento, medicina,
// insumos). Quantity <= ReorderLevel marca stock bajo.
type Product struct {
	ID int64

	Name     string
	Category string
	SKU      string

	Price        float64
	Quantity     int
	ReorderLevel int

	Description string
	ImageURL    string
}

package entity

// Product is an item of the catalog.
type Product struct {
	ID          string   `json:"uid"`
	Name        string   `json:"nombre"`
	Description string   `json:"descripcion"`
	Brand       string   `json:"marca"`
	Model       string   `json:"modelo"`
	Category    string   `json:"categoria"`
	Price       float64  `json:"precio"`
	Cost        float64  `json:"coste"`
	Discount    float64  `json:"descuento"`
	Dimensions  string   `json:"dimensiones"`
	Weight      string   `json:"peso"`
	Stock       int      `json:"cantidadStock"`
	CreatedAt   string   `json:"fechaCreacion"`
	ImageURL    string   `json:"imagenURL"`
	Comments    []string `json:"comentarios"`
	Ratings     []int    `json:"rating"`

	// Quantity is only meaningful inside a stock update request.
	Quantity int `json:"cantidad"`
}

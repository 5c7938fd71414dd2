package model

import (
	"pescastur/internal/domain/entity"
)

// Field names of a products/{id} document.
const (
	ProductFieldName        = "nombre"
	ProductFieldDescription = "descripcion"
	ProductFieldBrand       = "marca"
	ProductFieldModel       = "modelo"
	ProductFieldCategory    = "categoria"
	ProductFieldPrice       = "precio"
	ProductFieldCost        = "coste"
	ProductFieldDiscount    = "descuento"
	ProductFieldDimensions  = "dimensiones"
	ProductFieldWeight      = "peso"
	ProductFieldStock       = "cantidadStock"
	ProductFieldCreatedAt   = "fechaCreacion"
	ProductFieldImageURL    = "imagenURL"
	ProductFieldComments    = "comentarios"
	ProductFieldRatings     = "rating"
)

// ProductFromDocument maps a product document, using the document ID as product ID.
func ProductFromDocument(id string, data map[string]any) *entity.Product {
	return &entity.Product{
		ID:          id,
		Name:        asString(data[ProductFieldName]),
		Description: asString(data[ProductFieldDescription]),
		Brand:       asString(data[ProductFieldBrand]),
		Model:       asString(data[ProductFieldModel]),
		Category:    asString(data[ProductFieldCategory]),
		Price:       asFloat(data[ProductFieldPrice]),
		Cost:        asFloat(data[ProductFieldCost]),
		Discount:    asFloat(data[ProductFieldDiscount]),
		Dimensions:  asString(data[ProductFieldDimensions]),
		Weight:      asString(data[ProductFieldWeight]),
		Stock:       asInt(data[ProductFieldStock]),
		CreatedAt:   asString(data[ProductFieldCreatedAt]),
		ImageURL:    asString(data[ProductFieldImageURL]),
		Comments:    asStringSlice(data[ProductFieldComments]),
		Ratings:     asIntSlice(data[ProductFieldRatings]),
	}
}

// ProductToDocument renders a catalog entry; the request-only quantity is not stored.
func ProductToDocument(p *entity.Product) map[string]any {
	comments := p.Comments
	if comments == nil {
		comments = []string{}
	}
	ratings := make([]int64, 0, len(p.Ratings))
	for _, r := range p.Ratings {
		ratings = append(ratings, int64(r))
	}

	return map[string]any{
		ProductFieldName:        p.Name,
		ProductFieldDescription: p.Description,
		ProductFieldBrand:       p.Brand,
		ProductFieldModel:       p.Model,
		ProductFieldCategory:    p.Category,
		ProductFieldPrice:       p.Price,
		ProductFieldCost:        p.Cost,
		ProductFieldDiscount:    p.Discount,
		ProductFieldDimensions:  p.Dimensions,
		ProductFieldWeight:      p.Weight,
		ProductFieldStock:       int64(p.Stock),
		ProductFieldCreatedAt:   p.CreatedAt,
		ProductFieldImageURL:    p.ImageURL,
		ProductFieldComments:    comments,
		ProductFieldRatings:     ratings,
	}
}

// ProductStock reads the current stock of a product document.
func ProductStock(data map[string]any) int {
	return asInt(data[ProductFieldStock])
}

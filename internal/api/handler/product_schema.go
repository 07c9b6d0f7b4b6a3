package handler

// createProductRequest is the declarative schema for POST /products.
type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
}

func CreateProductPayload() any { return new(createProductRequest) }

type deleteProductResponse struct {
	Message string `json:"message"`
}

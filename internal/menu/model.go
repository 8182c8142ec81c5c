package menu

type MenuItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	// We store price as a string to avoid rounding errors (NUMERIC in Postgres)
	Price     string `json:"price"`
	Inventory int    `json:"inventory"`
}

// CreateItemRequest payload of creation.
// swagger:model CreateItemRequest
type CreateItemRequest struct {
	Name      string `json:"name"      example:"Flat White"`
	Price     string `json:"price"     example:"3.20"`
	Inventory int    `json:"inventory" example:"12"`
}

// UpdateItemRequest payload of partial update. Absent fields stay unchanged.
// swagger:model UpdateItemRequest
type UpdateItemRequest struct {
	Name      *string `json:"name"`
	Price     *string `json:"price"`
	Inventory *int    `json:"inventory"`
}

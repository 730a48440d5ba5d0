package transport

type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Inventory   uint    `json:"inventory"`
	ImageURL    string  `json:"image_url"`
	Dimensions  string  `json:"dimensions"`
	Weight      string  `json:"weight"`
	Material    string  `json:"material"`
	Capacity    string  `json:"capacity"`
}

type AddCartItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// ItemRemovedResponse confirms a cart-item deletion, either explicit or via
// an update to a non-positive quantity.
type ItemRemovedResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

type CreateOrderRequest struct {
	ShippingAddress string `json:"shipping_address"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

package types

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateUserRequest struct {
	Username            string `json:"username" binding:"required"`
	Email               string `json:"email" binding:"required"`
	Password            string `json:"password" binding:"required"`
	Role                string `json:"role" binding:"omitempty,oneof=admin user"`
	ForcePasswordChange bool   `json:"forcePasswordChange"`
}

// UpdateUserRequest uses pointers so that absent fields are left unchanged.
type UpdateUserRequest struct {
	Username            *string `json:"username"`
	Email               *string `json:"email"`
	Password            *string `json:"password"`
	Role                *string `json:"role" binding:"omitempty,oneof=admin user"`
	ForcePasswordChange *bool   `json:"forcePasswordChange"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

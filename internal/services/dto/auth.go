package dto

// SignupRequest carries every profile field verbatim; the password is
// hashed before it reaches the store.
type SignupRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Gender    string `json:"gender"`
	Age       int    `json:"age" binding:"omitempty,gte=0,lte=120"`
	SkinType  string `json:"skinType" binding:"required" validate:"is-skin-type"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the token alongside denormalized profile
// fields, matching the mobile client's contract.
type LoginResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	UserID   string `json:"userID"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
}

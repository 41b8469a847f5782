package dto

// ProfileUpdateRequest is the portal profile payload.
type ProfileUpdateRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"max=30"`
}

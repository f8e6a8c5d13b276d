package dto

import "roundup-savings/internal/models"

// UpdateUserRequest carries a partial profile update. Nil fields are left
// unchanged.
type UpdateUserRequest struct {
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	Username  *string `json:"username" validate:"omitempty,username"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Password  *string `json:"password" validate:"omitempty,min=8,max=100"`
}

// UserUpdateResponse is returned when a username change invalidates the
// caller's token.
type UserUpdateResponse struct {
	User      *models.User `json:"user"`
	NewToken  string       `json:"new_token"`
	TokenType string       `json:"token_type"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=100"`
}

type UpdatePreferencesRequest struct {
	RoundupEnabled       *bool `json:"roundup_enabled"`
	RoundupMultiplier    *int  `json:"roundup_multiplier" validate:"omitempty,min=1,max=10"`
	NotificationsEnabled *bool `json:"notifications_enabled"`
}

type LinkBankAccountRequest struct {
	ItemID            string `json:"item_id" validate:"required,max=255"`
	ExternalAccountID string `json:"external_account_id" validate:"required,max=255"`
}

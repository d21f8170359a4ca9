package handler

import "recordkeeper/internal/user/models"

// HTTP request DTOs. Text is passed through untouched: byte capacity is
// enforced by the service so overflow maps to field_too_long.

type CreateUserRequest struct {
	FName   string `json:"fname"`
	LName   string `json:"lname"`
	Address string `json:"address"`
	Age     uint32 `json:"age"`
}

func (r *CreateUserRequest) ToCommand() models.CreateCommand {
	return models.CreateCommand{
		FName:   r.FName,
		LName:   r.LName,
		Address: r.Address,
		Age:     r.Age,
	}
}

// UpdateUserRequest is a partial field set; omitted keys stay unchanged.
type UpdateUserRequest struct {
	FName   *string `json:"fname"`
	LName   *string `json:"lname"`
	Address *string `json:"address"`
	Age     *uint32 `json:"age"`
}

func (r *UpdateUserRequest) ToUpdate() models.Update {
	return models.Update{
		FName:   r.FName,
		LName:   r.LName,
		Address: r.Address,
		Age:     r.Age,
	}
}

// MutationResponse acknowledges a committed create, replace, or update.
type MutationResponse struct {
	AccountID string `json:"account_id"`
	Result    string `json:"result"`
}

package request

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (r AdminLoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

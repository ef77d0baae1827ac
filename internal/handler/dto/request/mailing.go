package request

import (
	"strings"

	"baby-registry/internal/usecase/notification"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type BroadcastRequest struct {
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	Recipients *[]string `json:"recipients,omitempty"`
}

func (r BroadcastRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Subject, validation.Required.Error("subject is required")),
		validation.Field(&r.Body, validation.Required.Error("body is required")),
		validation.Field(&r.Recipients, validation.By(optionalEmails)),
	)
}

func (r BroadcastRequest) ToInput() notification.BroadcastInput {
	return notification.BroadcastInput{
		Subject:    r.Subject,
		HTML:       r.Body,
		Recipients: r.Recipients,
	}
}

// SingleEmailRequest requires an explicit, non-empty recipient list.
type SingleEmailRequest struct {
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
	Recipients []string `json:"recipients"`
}

func (r SingleEmailRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Subject, validation.Required.Error("subject is required")),
		validation.Field(&r.Body, validation.Required.Error("body is required")),
		validation.Field(&r.Recipients,
			validation.Required.Error("at least one recipient is required"),
			validation.Each(validation.Required, is.EmailFormat),
		),
	)
}

func (r SingleEmailRequest) ToInput() notification.BroadcastInput {
	recipients := r.Recipients
	return notification.BroadcastInput{
		Subject:    r.Subject,
		HTML:       r.Body,
		Recipients: &recipients,
	}
}

// optionalEmails ignores blank entries; a list with nothing else falls back
// to every contributor.
func optionalEmails(value any) error {
	list, _ := value.(*[]string)
	if list == nil {
		return nil
	}
	filled := make([]string, 0, len(*list))
	for _, e := range *list {
		if strings.TrimSpace(e) != "" {
			filled = append(filled, e)
		}
	}
	return validation.Validate(filled, validation.Each(is.EmailFormat))
}

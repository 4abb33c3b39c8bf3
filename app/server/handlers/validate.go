package handlers

import (
	"errors"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"strings"
)

var errBlank = errors.New("cannot be blank")

// notBlank 和 validation.Required 一样，但只有空白字符也视为空
var notBlank = validation.By(func(value interface{}) error {
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return errBlank
		}
	case *string:
		if v != nil && strings.TrimSpace(*v) == "" {
			return errBlank
		}
	}
	return nil
})

func (r SignupRequest) validatePresence() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Firstname, notBlank),
		validation.Field(&r.Surname, notBlank),
		validation.Field(&r.Email, notBlank),
		validation.Field(&r.Username, notBlank),
		validation.Field(&r.Password, notBlank),
		validation.Field(&r.ConfirmPassword, notBlank),
	)
}

func (r SignupRequest) validateFormat() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, is.Email),
	)
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, notBlank),
		validation.Field(&r.Password, validation.Required),
	)
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Firstname, notBlank),
		validation.Field(&r.Surname, notBlank),
		validation.Field(&r.Email, notBlank, is.Email),
		validation.Field(&r.Username, notBlank),
	)
}

type ProjectInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

func (r ProjectInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, notBlank),
		validation.Field(&r.Description, notBlank),
		validation.Field(&r.Link, notBlank, is.URL),
	)
}

type BlogPostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r BlogPostInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, notBlank),
		validation.Field(&r.Content, notBlank),
	)
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (r ContactInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, notBlank),
		validation.Field(&r.Email, notBlank, is.Email),
		validation.Field(&r.Message, notBlank),
	)
}

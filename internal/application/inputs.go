package application

import "github.com/oksasatya/go-users-tasks-api/internal/domain/apperror"

// CreateUserInput is the body of POST /users. All fields are required.
type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in CreateUserInput) Validate() error {
	switch {
	case in.Name == "":
		return apperror.MissingField("name")
	case in.Email == "":
		return apperror.MissingField("email")
	case in.Password == "":
		return apperror.MissingField("password")
	}
	return nil
}

// UpdateUserInput is the body of PUT /users/:id. At least one field must be present.
type UpdateUserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (in UpdateUserInput) Validate() error {
	if in.Name == nil && in.Email == nil {
		return &apperror.Error{
			Kind:    apperror.KindMissingField,
			Field:   "name",
			Message: "enter the data to update the user",
		}
	}
	return nil
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in LoginInput) Validate() error {
	if in.Email == "" {
		return apperror.MissingField("email")
	}
	if in.Password == "" {
		return apperror.MissingField("password")
	}
	return nil
}

// CreateTaskInput is the body of POST /tasks. Status defaults to todo.
type CreateTaskInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      *int   `json:"status"`
}

func (in CreateTaskInput) Validate() error {
	if in.Name == "" {
		return apperror.MissingField("name")
	}
	return nil
}

type UpdateTaskInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *int    `json:"status"`
}

func (in UpdateTaskInput) Validate() error {
	if in.Name == nil && in.Description == nil && in.Status == nil {
		return &apperror.Error{
			Kind:    apperror.KindMissingField,
			Field:   "name",
			Message: "enter the data to update the task",
		}
	}
	return nil
}

package httperr

import (
	"errors"
	"net/http"
)

// Business error codes. Every component boundary translates storage and
// library failures into one of these; raw errors never reach a client.
const (
	CodeInvalidCredentials   = "invalid_credentials"
	CodeAlreadyAuthenticated = "already_authenticated"
	CodeForbidden            = "forbidden"
	CodeDuplicateEmail       = "duplicate_email"
	CodeInvalidRole          = "invalid_role"
	CodeInvalidRating        = "invalid_rating"
	CodeInvalidArgument      = "invalid_argument"
	CodeInvalidToken         = "invalid_token"
	CodeTokenExpired         = "token_expired"
	CodeEmailDelivery        = "email_delivery_failed"

	CodeUserNotFound       = "user_not_found"
	CodeProfileNotFound    = "profile_not_found"
	CodeRestaurantNotFound = "restaurant_not_found"
	CodeCategoryNotFound   = "category_not_found"
	CodeDishNotFound       = "dish_not_found"
	CodeResetTokenNotFound = "invalid_token"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

func StatusFor(code string) int {
	switch code {
	case CodeInvalidCredentials:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeUserNotFound, CodeProfileNotFound, CodeRestaurantNotFound,
		CodeCategoryNotFound, CodeDishNotFound:
		return http.StatusNotFound
	case CodeAlreadyAuthenticated, CodeDuplicateEmail, CodeInvalidRole,
		CodeInvalidRating, CodeInvalidArgument, CodeInvalidToken, CodeTokenExpired:
		return http.StatusBadRequest
	case CodeEmailDelivery:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func MessageFor(code string) string {
	switch code {
	case CodeInvalidCredentials:
		return "Invalid email or password."
	case CodeAlreadyAuthenticated:
		return "User is already authenticated. Please log out first."
	case CodeForbidden:
		return "You do not have permission to perform this action."
	case CodeDuplicateEmail:
		return "Email already registered."
	case CodeInvalidRole:
		return "Role must be 'superuser' or 'restaurant'."
	case CodeInvalidRating:
		return "Rating must be a decimal between 0.0 and 9.9."
	case CodeInvalidArgument:
		return "Invalid argument."
	case CodeInvalidToken:
		return "Invalid token."
	case CodeTokenExpired:
		return "Token has expired."
	case CodeEmailDelivery:
		return "Failed to deliver email."
	case CodeUserNotFound:
		return "User not found."
	case CodeProfileNotFound:
		return "Profile not found."
	case CodeRestaurantNotFound:
		return "Restaurant not found."
	case CodeCategoryNotFound:
		return "Category not found."
	case CodeDishNotFound:
		return "Dish not found."
	default:
		return "Something went wrong."
	}
}

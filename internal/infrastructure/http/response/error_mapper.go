package response

import (
	"errors"
	"net/http"

	domainErrors "github.com/gerai/storefront-service/internal/domain/errors"
)

type ErrorMapping struct {
	HTTPStatus int
	Status     Status
	Message    string
}

var errorMappings = map[error]ErrorMapping{
	domainErrors.ErrProductNotFound: {
		HTTPStatus: http.StatusNotFound,
		Status:     StatusNotFound,
		Message:    "Product not found",
	},
	domainErrors.ErrProductExists: {
		HTTPStatus: http.StatusConflict,
		Status:     StatusConflict,
		Message:    "Product already exists",
	},
	domainErrors.ErrInvalidProduct: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusValidationError,
		Message:    "Invalid product data",
	},
	domainErrors.ErrSizeRequired: {
		HTTPStatus: http.StatusUnprocessableEntity,
		Status:     StatusValidationError,
		Message:    "Please pick a size before adding this product",
	},
	domainErrors.ErrColorRequired: {
		HTTPStatus: http.StatusUnprocessableEntity,
		Status:     StatusValidationError,
		Message:    "Please pick a color before adding this product",
	},
	domainErrors.ErrInvalidQuantity: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusValidationError,
		Message:    "Quantity must be at least 1",
	},
	domainErrors.ErrLineNotFound: {
		HTTPStatus: http.StatusNotFound,
		Status:     StatusNotFound,
		Message:    "Product is not in the cart",
	},
	domainErrors.ErrCartEmpty: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusError,
		Message:    "Cart is empty",
	},
}

func MapDomainError(err error) (int, *ErrorResponse) {
	for domainErr, mapping := range errorMappings {
		if errors.Is(err, domainErr) {
			return mapping.HTTPStatus, Error(mapping.Status, mapping.Message, err.Error())
		}
	}

	return http.StatusInternalServerError, Error(StatusInternalError, "Internal server error", err.Error())
}

func WriteDomainError(w http.ResponseWriter, err error) {
	statusCode, errorResponse := MapDomainError(err)
	WriteJSON(w, statusCode, errorResponse)
}

package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrAlreadyExists
	ErrInsufficientStock
	ErrUnsupportedMovement
	ErrInvalidAdjustment
	ErrHasReservedStock
	ErrStockInconsistent
	ErrUnauthorize
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrAlreadyExists:       "sku already registered",
	ErrInsufficientStock:   "insufficient stock",
	ErrUnsupportedMovement: "unsupported movement type",
	ErrInvalidAdjustment:   "adjustment would drive stock negative",
	ErrHasReservedStock:    "sku still has reserved stock",
	ErrStockInconsistent:   "stock quantities are inconsistent",
	ErrUnauthorize:         "unauthorize request",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrAlreadyExists:       http.StatusConflict,
	ErrInsufficientStock:   http.StatusBadRequest,
	ErrUnsupportedMovement: http.StatusBadRequest,
	ErrInvalidAdjustment:   http.StatusBadRequest,
	ErrHasReservedStock:    http.StatusConflict,
	ErrStockInconsistent:   http.StatusInternalServerError,
	ErrUnauthorize:         http.StatusUnauthorized,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrAlreadyExists:       "0004",
	ErrInsufficientStock:   "0005",
	ErrUnsupportedMovement: "0006",
	ErrInvalidAdjustment:   "0007",
	ErrHasReservedStock:    "0008",
	ErrStockInconsistent:   "0009",
	ErrUnauthorize:         "0010",
}

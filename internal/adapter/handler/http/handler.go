package http

import (
	"errors"
	"net/http"

	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// ErrorKind is the machine readable class of a failed request.
type ErrorKind string

const (
	KindInvalidInput      ErrorKind = "InvalidInput"
	KindInvalidState      ErrorKind = "InvalidState"
	KindNotFound          ErrorKind = "NotFound"
	KindUnavailable       ErrorKind = "Unavailable"
	KindInsufficientStock ErrorKind = "InsufficientStock"
	KindSignatureInvalid  ErrorKind = "SignatureInvalid"
	KindGatewayError      ErrorKind = "GatewayError"
	KindUnauthorized      ErrorKind = "Unauthorized"
	KindForbidden         ErrorKind = "Forbidden"
	KindInternal          ErrorKind = "Internal"
)

type errorStatus struct {
	err    error
	status int
	kind   ErrorKind
	// opaque errors answer with the sentinel text only
	opaque bool
}

// matched in order with errors.Is; more specific errors come first
var errorStatusMap = []errorStatus{
	{err: domain.ErrInsufficientStock, status: http.StatusConflict, kind: KindInsufficientStock},
	{err: domain.ErrProductUnavailable, status: http.StatusConflict, kind: KindUnavailable},
	{err: domain.ErrProductNotFound, status: http.StatusNotFound, kind: KindNotFound},
	{err: domain.ErrOrderNotFound, status: http.StatusNotFound, kind: KindNotFound},
	{err: domain.ErrCartNotFound, status: http.StatusNotFound, kind: KindNotFound},
	{err: domain.ErrCartItemNotFound, status: http.StatusNotFound, kind: KindNotFound},
	{err: domain.ErrDataNotFound, status: http.StatusNotFound, kind: KindNotFound},
	{err: domain.ErrSignatureInvalid, status: http.StatusBadRequest, kind: KindSignatureInvalid},
	{err: domain.ErrGateway, status: http.StatusBadGateway, kind: KindGatewayError, opaque: true},

	{err: domain.ErrInvalidShippingAddress, status: http.StatusBadRequest, kind: KindInvalidInput},
	{err: domain.ErrInvalidOrderStatus, status: http.StatusBadRequest, kind: KindInvalidInput},
	{err: domain.ErrInvalidQuantity, status: http.StatusBadRequest, kind: KindInvalidInput},
	{err: domain.ErrGatewayOrderMismatch, status: http.StatusBadRequest, kind: KindInvalidInput},
	{err: domain.ErrBadRequest, status: http.StatusBadRequest, kind: KindInvalidInput},

	{err: domain.ErrCartEmpty, status: http.StatusConflict, kind: KindInvalidState},
	{err: domain.ErrInvalidTransition, status: http.StatusConflict, kind: KindInvalidState},
	{err: domain.ErrConflictingData, status: http.StatusConflict, kind: KindInvalidState},

	{err: domain.ErrUnauthorized, status: http.StatusUnauthorized, kind: KindUnauthorized},
	{err: domain.ErrEmptyAuthorizationHeader, status: http.StatusUnauthorized, kind: KindUnauthorized},
	{err: domain.ErrInvalidAuthorizationHeader, status: http.StatusUnauthorized, kind: KindUnauthorized},
	{err: domain.ErrInvalidAuthorizationType, status: http.StatusUnauthorized, kind: KindUnauthorized},
	{err: domain.ErrInvalidToken, status: http.StatusUnauthorized, kind: KindUnauthorized},
	{err: domain.ErrForbidden, status: http.StatusForbidden, kind: KindForbidden},
}

var internalStatus = errorStatus{err: domain.ErrInternal, status: http.StatusInternalServerError,
	kind: KindInternal, opaque: true}

func lookupError(err error) (errorStatus, bool) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e, true
		}
	}
	return internalStatus, false
}

// jsonDecimal writes an amount as a JSON number with its stored scale.
type jsonDecimal decimal.Decimal

func (j jsonDecimal) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(j).String()), nil
}

type errorResponse struct {
	Success bool      `json:"success"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) errorBody(err error) (int, errorResponse) {
	e, ok := lookupError(err)
	if !ok {
		h.logger.Error("error processing request", zap.Error(err))
	}
	message := err.Error()
	if e.opaque {
		message = e.err.Error()
	}
	return e.status, errorResponse{Success: false, Kind: e.kind, Message: message}
}

// handleValidationError answers a request that could not be parsed.
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	h.logger.Debug("bad request", zap.Error(err))
	ctx.JSON(http.StatusBadRequest, errorResponse{Success: false, Kind: KindInvalidInput,
		Message: domain.ErrBadRequest.Error()})
}

// handleAbort sends an error response and stops the handler chain.
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	status, body := h.errorBody(err)
	_ = ctx.Error(err)
	ctx.AbortWithStatusJSON(status, body)
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	status, body := h.errorBody(err)
	_ = ctx.Error(err)
	ctx.JSON(status, body)
}

// handleSuccessWithStatus answers {"success":true,"message":...} merged with data.
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, status int, message string, data gin.H) {
	body := gin.H{"success": true, "message": message}
	for k, v := range data {
		body[k] = v
	}
	ctx.JSON(status, body)
}

func (h *Handler) handleSuccess(ctx *gin.Context, message string, data gin.H) {
	h.handleSuccessWithStatus(ctx, http.StatusOK, message, data)
}

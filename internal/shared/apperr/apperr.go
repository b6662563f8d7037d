package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	Invalid          Kind = "invalid"
	NotFound         Kind = "not_found"
	Configuration    Kind = "configuration"
	Gateway          Kind = "gateway"
	InvalidSignature Kind = "invalid_signature"
	InvalidPayload   Kind = "invalid_payload"
	Internal         Kind = "internal"
)

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	if e.PublicMsg != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.PublicMsg)
	}
	return string(e.Kind)
}

func (e *AppError) Unwrap() error { return e.Err }

// Constructors (PublicMsg must stay short and safe)
func InvalidErr(publicMsg string, fields map[string]string) *AppError {
	return &AppError{Kind: Invalid, PublicMsg: publicMsg, Fields: fields}
}
func NotFoundErr(publicMsg string) *AppError {
	return &AppError{Kind: NotFound, PublicMsg: publicMsg}
}
func ConfigurationErr(publicMsg string) *AppError {
	return &AppError{Kind: Configuration, PublicMsg: publicMsg}
}

// GatewayErr carries the vendor's message verbatim in PublicMsg.
func GatewayErr(publicMsg string, err error) *AppError {
	return &AppError{Kind: Gateway, PublicMsg: publicMsg, Err: err}
}
func InvalidSignatureErr(publicMsg string) *AppError {
	return &AppError{Kind: InvalidSignature, PublicMsg: publicMsg}
}
func InvalidPayloadErr(publicMsg string, err error) *AppError {
	return &AppError{Kind: InvalidPayload, PublicMsg: publicMsg, Err: err}
}

// Wrap: internal error without a public message (default 500)
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Kind: Internal, PublicMsg: "An unexpected error occurred.", Err: err}
}

func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func IsKind(err error, k Kind) bool {
	ae, ok := As(err)
	return ok && ae.Kind == k
}

func HTTPStatus(err error) int {
	if ae, ok := As(err); ok {
		switch ae.Kind {
		case Invalid, Gateway, InvalidSignature, InvalidPayload:
			return http.StatusBadRequest
		case NotFound:
			return http.StatusNotFound
		case Configuration:
			return http.StatusServiceUnavailable
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

func PublicMessage(err error) string {
	if ae, ok := As(err); ok && ae.PublicMsg != "" {
		return ae.PublicMsg
	}
	return "An unexpected error occurred."
}

package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	id "recordkeeper/pkg/domain"
	dErrors "recordkeeper/pkg/domain-errors"
	"recordkeeper/pkg/requestcontext"
)

func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; an encoding error cannot change the status.
	_ = json.NewEncoder(w).Encode(response)
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// WriteError translates a domain error into its HTTP status and body.
// Anything else is reported as an opaque 500.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		WriteJSON(w, DomainCodeToHTTPStatus(domainErr.Code), ErrorResponse{
			Error:       DomainCodeToHTTPCode(domainErr.Code),
			Description: domainErr.Message,
		})
		return
	}

	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: DomainCodeToHTTPCode(dErrors.CodeInternal),
	})
}

// DomainCodeToHTTPStatus translates domain error codes to HTTP status codes.
func DomainCodeToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeInvalidInput,
		dErrors.CodeFieldTooLong, dErrors.CodeInvalidDateFormat:
		return http.StatusBadRequest
	case dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodePrerequisiteMissing:
		return http.StatusPreconditionFailed
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// DomainCodeToHTTPCode translates domain error codes to the "error" field
// of the JSON body.
func DomainCodeToHTTPCode(code dErrors.Code) string {
	switch code {
	case dErrors.CodeNotFound:
		return "not_found"
	case dErrors.CodeBadRequest, dErrors.CodeInvalidInput:
		return "bad_request"
	case dErrors.CodeValidation:
		return "validation_error"
	case dErrors.CodeFieldTooLong:
		return "field_too_long"
	case dErrors.CodeInvalidDateFormat:
		return "invalid_date_format"
	case dErrors.CodeConflict:
		return "conflict"
	case dErrors.CodePrerequisiteMissing:
		return "prerequisite_missing"
	case dErrors.CodeUnauthorized:
		return "unauthorized"
	case dErrors.CodeTimeout:
		return "request_cancelled"
	default:
		return "internal_error"
	}
}

// RequireAccountID extracts the authenticated account from context. A
// missing account behind the auth middleware is a wiring bug, so it is
// reported as internal rather than unauthorized.
func RequireAccountID(ctx context.Context, logger *slog.Logger, requestID string) (id.AccountID, error) {
	acct, ok := requestcontext.AccountID(ctx)
	if !ok {
		if logger != nil {
			logger.ErrorContext(ctx, "account missing from context despite auth middleware",
				"request_id", requestID)
		}
		return id.AccountID{}, dErrors.New(dErrors.CodeInternal, "authentication context error")
	}
	return acct, nil
}

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-notes-auth/internal/utils"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	message := errorMessage(resp)
	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, message)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
}

// errorMessage prefers the message of a JSON error body and falls back to the
// raw body or the status text.
func errorMessage(resp *resty.Response) string {
	var errResp utils.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}

	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}

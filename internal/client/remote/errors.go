package remote

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/bettybooth/bettybooth/internal/common"
)

// apiError is the error envelope the backend returns on failures.
type apiError struct {
	Message string `json:"message"`
}

// statusToError maps a non-2xx response to a sentinel error that callers can
// test with errors.Is. The response message, when present, is kept in the
// wrap for logs.
func statusToError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var ae apiError
	if b, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil {
		_ = json.Unmarshal(b, &ae)
	}
	msg := ae.Message
	if msg == "" {
		msg = resp.Status
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, common.ErrorNotFound)
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", msg, common.ErrorUnauthorized)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%s: %w", msg, common.ErrorUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg)
	}
}

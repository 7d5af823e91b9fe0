package handler

import (
	"errors"
	"net/http"

	"medicare-portal/internal/domain/upstream"
	"medicare-portal/pkg/response"
)

// writeUpstreamError maps a failed clinic platform call onto our response
// envelope: platform-reported 4xx answers pass through with their message,
// everything else (platform 5xx, transport failure) surfaces as 502.
func writeUpstreamError(w http.ResponseWriter, err error, fallback string) {
	var upErr *upstream.Error
	if errors.As(err, &upErr) && upErr.StatusCode >= 400 && upErr.StatusCode < 500 {
		response.Error(w, upErr.StatusCode, upErr.Message, nil)
		return
	}
	response.BadGateway(w, fallback)
}

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/cloudvault/cloudvault/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusServiceUnavailable:
		// the gateway synthesizes 503 {"error":"offline"} when upstream is
		// unreachable; treat that as the transport being down, not as a
		// server-side failure
		if isOfflineBody(resp.Body()) {
			return fmt.Errorf("%w: gateway reported offline", ErrNetworkUnavailable)
		}
		return fmt.Errorf("%w: http %d: %s", ErrRemoteRejected, resp.StatusCode(), body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrRemoteRejected, resp.StatusCode(), body)
	}
}

func isOfflineBody(body []byte) bool {
	var offline models.OfflineResponse
	if err := json.Unmarshal(body, &offline); err != nil {
		return false
	}
	return offline.Error == models.OfflineMarker
}

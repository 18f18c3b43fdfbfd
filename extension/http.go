package extension

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// StatusError is returned for the non 2xx bridge responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to perform request, code: %d, body: %s", e.Code, e.Body)
}

func doJSON(
	ctx context.Context,
	httpClient *http.Client,
	method, url string,
	reqBody any,
	resDecoder func([]byte) error,
) error {
	reqBodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return errors.Errorf("failed to marshal request body, err: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(reqBodyBytes))
	if err != nil {
		return errors.Errorf("failed to build the request, err: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to perform the request")
	}

	defer resp.Body.Close()
	bodyData, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Errorf("failed to read the response body, err: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.WithStack(&StatusError{Code: resp.StatusCode, Body: string(bodyData)})
	}

	if resDecoder == nil {
		return nil
	}
	return resDecoder(bodyData)
}

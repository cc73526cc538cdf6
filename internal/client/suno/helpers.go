package suno

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// fetchJSON issues a GET request against baseURL/uri and decodes the JSON response.
//
//nolint:revive // Go doesn't allow struct methods to be generic.
func fetchJSON[T any](
	c *ClientImpl,
	ctx context.Context,
	baseURL, uri string,
	query url.Values,
) (*fetchJSONResult[T], error) {
	return doJSON[T](c, ctx, http.MethodGet, baseURL, uri, query, nil)
}

// postJSON issues a POST request with an optional JSON body against
// baseURL/uri and decodes the JSON response.
//
//nolint:revive // Go doesn't allow struct methods to be generic.
func postJSON[T any](
	c *ClientImpl,
	ctx context.Context,
	baseURL, uri string,
	query url.Values,
	body any,
) (*fetchJSONResult[T], error) {
	return doJSON[T](c, ctx, http.MethodPost, baseURL, uri, query, body)
}

//nolint:revive // Go doesn't allow struct methods to be generic.
func doJSON[T any](
	c *ClientImpl,
	ctx context.Context,
	method, baseURL, uri string,
	query url.Values,
	body any,
) (*fetchJSONResult[T], error) {
	route, err := url.JoinPath(baseURL, uri)
	if err != nil {
		return nil, err
	}

	var requestBody io.Reader = http.NoBody

	if body != nil {
		encoded, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", marshalErr)
		}

		requestBody = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, route, requestBody)
	if err != nil {
		return nil, err
	}

	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	if query != nil {
		request.URL.RawQuery = query.Encode()
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return &fetchJSONResult[T]{
			Data:       nil,
			StatusCode: response.StatusCode,
		}, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	var result T
	if err = json.NewDecoder(response.Body).Decode(&result); err != nil {
		return &fetchJSONResult[T]{
			Data:       nil,
			StatusCode: response.StatusCode,
		}, err
	}

	return &fetchJSONResult[T]{
		Data:       &result,
		StatusCode: response.StatusCode,
	}, nil
}

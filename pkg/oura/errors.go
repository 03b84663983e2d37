package oura

import "errors"

var (
	// ErrUnauthorized indicates the access token was rejected by the provider.
	ErrUnauthorized = errors.New("oura: access token rejected")

	// ErrTransport indicates a network failure, timeout, or unexpected HTTP status.
	ErrTransport = errors.New("oura: request failed")

	// ErrDecode indicates the response body did not match the expected shape.
	ErrDecode = errors.New("oura: unexpected response body")
)

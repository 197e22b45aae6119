package dto

import "github.com/rathernotsay21/betirement-sub000/domain/model"

// Source tells a caller where the data of a Result came from
type Source string

const (
	SourceNetwork  Source = "network"  // fetched from the provider during this call
	SourceCache    Source = "cache"    // fresh cache hit
	SourceStale    Source = "stale"    // expired cache entry served after a failure
	SourceEmpty    Source = "empty"    // nothing available
	SourceFallback Source = "fallback" // local dataset substituted by the use case
)

// Result is the outcome of a fetch. Fetches never return errors; Err only
// records why a stale or empty result was produced.
type Result[T any] struct {
	Data   T      `json:"data"`
	Source Source `json:"source"`
	Err    error  `json:"-"`
}

// Fresh wraps data fetched from the network
func Fresh[T any](data T) Result[T] {
	return Result[T]{Data: data, Source: SourceNetwork}
}

// Cached wraps a fresh cache hit
func Cached[T any](data T) Result[T] {
	return Result[T]{Data: data, Source: SourceCache}
}

// Stale wraps an expired cache entry served because of err
func Stale[T any](data T, err error) Result[T] {
	return Result[T]{Data: data, Source: SourceStale, Err: err}
}

// Empty returns the zero value of T, with the cause when there is one
func Empty[T any](err error) Result[T] {
	var zero T
	return Result[T]{Data: zero, Source: SourceEmpty, Err: err}
}

// VideoListResult is the result of a list operation
type VideoListResult = Result[[]model.Video]

// VideoResult is the result of a single-video lookup; Data is nil when absent
type VideoResult = Result[*model.Video]

// VideoListRequest represents query parameters for listing videos
type VideoListRequest struct {
	MaxResults int64  `json:"maxResults,omitempty"`
	Category   string `json:"category,omitempty"`
}

// VideoSearchRequest represents query parameters for searching videos
type VideoSearchRequest struct {
	Q          string `json:"q"`
	MaxResults int64  `json:"maxResults,omitempty"`
}

// VideoListResponse is the JSON envelope for list endpoints
type VideoListResponse struct {
	Success bool          `json:"success"`
	Source  Source        `json:"source"`
	Count   int           `json:"count"`
	Data    []model.Video `json:"data"`
}

// VideoResponse is the JSON envelope for single video endpoints
type VideoResponse struct {
	Success bool         `json:"success"`
	Source  Source       `json:"source"`
	Data    *model.Video `json:"data"`
}

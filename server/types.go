package server

import "github.com/martinjakubec/fxproxy/storage/types"

type LatestResponse struct {
	Data *types.Payload `json:"data"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

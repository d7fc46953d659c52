package server

import (
	"net/http"

	"github.com/jonathan/resume-manager/internal/enhance"
	"github.com/jonathan/resume-manager/internal/ingestion"
	"github.com/jonathan/resume-manager/internal/store"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Status codes are assigned here at the boundary only; the inner packages
// return typed errors and know nothing about HTTP.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *store.ValidationError:
		return http.StatusBadRequest
	case *enhance.UnsupportedSectionError:
		return http.StatusBadRequest
	case *ingestion.UnsupportedTypeError:
		return http.StatusBadRequest
	case *store.NotFoundError:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

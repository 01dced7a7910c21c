package utils

import (
	"net/http"
	"strconv"
)

const MaxPageSize = 500

// Paginate describes a window over a list. A zero Size means "everything".
type Paginate struct {
	Offset, Size, Page int
}

// NewPaginate reads page and page_size from the query string.
func NewPaginate(r *http.Request) (Paginate, error) {
	sizeStr := r.URL.Query().Get("page_size")
	pageStr := r.URL.Query().Get("page")
	if sizeStr == "" {
		return Paginate{Page: 1}, nil
	}

	size, err := strconv.Atoi(sizeStr)
	if err != nil || size <= 0 || size > MaxPageSize {
		return Paginate{}, BadRequest("page_size must be between 1 and 500")
	}
	page := 1
	if pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return Paginate{}, BadRequest("page must be a positive integer")
		}
	}

	return Paginate{
		Offset: (page - 1) * size,
		Size:   size,
		Page:   page,
	}, nil
}

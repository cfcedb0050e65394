package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Params struct {
	Page     int
	PageSize int
}

// Parse reads page/page_size query values. Missing values fall back to
// page 1 and the default size; page_size is capped at MaxPageSize.
func Parse(pageStr, sizeStr string) (Params, error) {
	p := Params{Page: 1, PageSize: DefaultPageSize}
	if pageStr != "" {
		n, err := strconv.Atoi(pageStr)
		if err != nil || n < 1 {
			return p, fmt.Errorf("bad page %q", pageStr)
		}
		p.Page = n
	}
	if sizeStr != "" {
		n, err := strconv.Atoi(sizeStr)
		if err != nil || n < 1 {
			return p, fmt.Errorf("bad page_size %q", sizeStr)
		}
		if n > MaxPageSize {
			n = MaxPageSize
		}
		p.PageSize = n
	}
	return p, nil
}

func (p Params) Offset() int { return (p.Page - 1) * p.PageSize }

type Info struct {
	Count          int64   `json:"count"`
	Next           *string `json:"next"`
	Previous       *string `json:"previous"`
	ResultsPerPage int     `json:"results_per_page"`
}

type Envelope struct {
	Info    Info `json:"info"`
	Results any  `json:"results"`
}

// NewEnvelope wraps one shaped page. resultsLen is the number of items on
// the current page; results must marshal to a JSON array.
func NewEnvelope(req *http.Request, p Params, count int64, resultsLen int, results any) Envelope {
	var next, prev *string
	if int64(p.Offset()+p.PageSize) < count {
		next = pageLink(req, p.Page+1)
	}
	if p.Page > 1 {
		prev = pageLink(req, p.Page-1)
	}
	return Envelope{
		Info: Info{
			Count:          count,
			Next:           next,
			Previous:       prev,
			ResultsPerPage: resultsLen,
		},
		Results: results,
	}
}

func pageLink(req *http.Request, page int) *string {
	u := *req.URL
	q := u.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	s := scheme + "://" + req.Host + u.String()
	return &s
}

package model

import "net/http"

// RequestOptions holds optional parameters of a transport request
type RequestOptions struct {
	Method  string
	Headers map[string]string
	Body    []byte
}

// MethodOrDefault returns the request method, GET when unset
func (o RequestOptions) MethodOrDefault() string {
	if o.Method == "" {
		return http.MethodGet
	}
	return o.Method
}

// Response is the status and raw body returned by a transport
type Response struct {
	Status int
	Body   []byte
}

// IsSuccess reports whether the status is in the 2xx range
func (r *Response) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

// RenderOptions holds optional decorations of a rendered result
type RenderOptions struct {
	// Source is the URL the records were loaded from, shown as a footer when set
	Source string
}

package resp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/boss/dispatch"
)

var _ dispatch.Response = (*Response)(nil)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(*Response)

// A Response is written to the client once served.
//
// The zero-value Response writes a bare http.StatusOK.
type Response struct {
	body   []byte
	code   int
	data   any
	header http.Header
	url    string
}

// New constructs a *Response by applying fns in order.
func New(fns ...Fn) *Response {
	r := &Response{header: make(http.Header)}
	for _, fn := range fns {
		fn(r)
	}

	return r
}

// Code sets the response status code.
func Code(c int) Fn {
	return func(r *Response) {
		r.code = c
	}
}

// Data stores v for encoding as JSON when the Response is served.
func Data(v any) Fn {
	return func(r *Response) {
		r.data = v
		r.header.Set("Content-Type", "application/json")
	}
}

// Header sets the header key to val.
func Header(key, val string) Fn {
	return func(r *Response) {
		r.header.Set(key, val)
	}
}

// Text sets the body of the response to s.
func Text(s string) Fn {
	return func(r *Response) {
		r.body = []byte(s)
		if r.header.Get("Content-Type") == "" {
			r.header.Set("Content-Type", "text/plain; charset=utf-8")
		}
	}
}

// Url sets the location to redirect to.
// Without Code, the Response redirects with http.StatusFound.
func Url(u string) Fn {
	return func(r *Response) {
		r.url = u
	}
}

// Status constructs a *Response writing only code.
func Status(code int) *Response { return New(Code(code)) }

// Redirect constructs a *Response redirecting to u with code.
func Redirect(u string, code int) *Response { return New(Url(u), Code(code)) }

// Json constructs a *Response encoding v as JSON with code.
func Json(code int, v any) *Response { return New(Code(code), Data(v)) }

// StatusCode returns the status code the Response writes.
func (r *Response) StatusCode() int {
	switch {
	case r.code != 0:
		return r.code
	case r.url != "":
		return http.StatusFound
	default:
		return http.StatusOK
	}
}

// ServeHTTP writes the Response.
//
// If data set with Data cannot be encoded, ServeHTTP writes http.StatusInternalServerError instead.
// So does a nil *Response.
func (r *Response) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r == nil {
		http.Error(w, fmt.Sprintf("%s: nil response", ErrInvalid), http.StatusInternalServerError)
		return
	}

	if r.url != "" {
		copyHeader(w.Header(), r.header)
		http.Redirect(w, req, r.url, r.StatusCode())
		return
	}

	body := r.body
	if r.data != nil {
		b := new(bytes.Buffer)
		if err := json.NewEncoder(b).Encode(r.data); err != nil {
			http.Error(w, fmt.Sprintf("%s: %s", ErrInvalid, err), http.StatusInternalServerError)
			return
		}

		body = b.Bytes()
	}

	copyHeader(w.Header(), r.header)
	w.WriteHeader(r.StatusCode())
	if len(body) > 0 {
		w.Write(body)
	}
}

func copyHeader(dst, src http.Header) {
	for k, vs := range src {
		for _, v := range vs {
			dst.Add(k, v)
		}
	}
}

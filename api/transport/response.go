package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"golang.org/x/net/http/httpguts"
)

const (
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"

	// ContentTypeJSON is the only content type produced by this package.
	ContentTypeJSON = "application/json; charset=utf-8"
)

// Body is any response body type that can be built from the serialized
// payload by a plain conversion. Every call produces a fresh buffer, so the
// body is owned by the caller and may be handed to another goroutine.
type Body interface {
	~[]byte | ~string
}

// Response is a fully assembled HTTP response: status, headers and body.
// Nothing is written to the network until Write or WriteFastHTTP is called.
type Response[B Body] struct {
	StatusCode StatusCode
	Header     http.Header
	Body       B
}

// Len returns the body size in bytes.
func (r *Response[B]) Len() int {
	return len(r.Body)
}

// Write sends the response through a net/http ResponseWriter.
func (r *Response[B]) Write(w http.ResponseWriter) error {
	h := w.Header()
	for key, values := range r.Header {
		h[key] = append([]string(nil), values...)
	}
	w.WriteHeader(r.StatusCode.Int())
	_, err := w.Write([]byte(r.Body))
	return err
}

// WriteFastHTTP copies the response onto a fasthttp response, typically &ctx.Response.
func (r *Response[B]) WriteFastHTTP(resp *fasthttp.Response) {
	resp.SetStatusCode(r.StatusCode.Int())
	for key, values := range r.Header {
		switch key {
		case HeaderContentType:
			resp.Header.SetContentType(values[0])
		case HeaderContentLength:
			// derived from the body below
		default:
			for _, v := range values {
				resp.Header.Add(key, v)
			}
		}
	}
	resp.SetBody([]byte(r.Body))
	resp.Header.SetContentLength(len(r.Body))
}

// builder mirrors a status -> headers -> body response builder and keeps the
// first error it encounters.
type builder[B Body] struct {
	status StatusCode
	header http.Header
	err    error
}

func newBuilder[B Body]() *builder[B] {
	return &builder[B]{header: make(http.Header, 2)}
}

func (b *builder[B]) Status(code StatusCode) *builder[B] {
	if b.err == nil && !code.Valid() {
		b.err = fmt.Errorf("invalid status code %d", uint16(code))
	}
	b.status = code
	return b
}

func (b *builder[B]) Header(key, value string) *builder[B] {
	if b.err != nil {
		return b
	}
	if !httpguts.ValidHeaderFieldName(key) {
		b.err = fmt.Errorf("invalid header name %q", key)
		return b
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		b.err = fmt.Errorf("invalid value for header %q", key)
		return b
	}
	b.header.Add(key, value)
	return b
}

func (b *builder[B]) Body(body B) (*Response[B], error) {
	if b.err != nil {
		return nil, b.err
	}
	return &Response[B]{
		StatusCode: b.status,
		Header:     b.header,
		Body:       body,
	}, nil
}

// assemble serializes envelope and wraps it into a JSON response with the given status.
func assemble[B Body](code StatusCode, envelope any) (*Response[B], error) {
	payload, err := encode(envelope)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}

	resp, err := newBuilder[B]().
		Status(code).
		Header(HeaderContentLength, strconv.Itoa(len(payload))).
		Header(HeaderContentType, ContentTypeJSON).
		Body(B(payload))
	if err != nil {
		return nil, &ResponseBuildError{Err: err}
	}
	return resp, nil
}

// encode is json.Marshal without HTML escaping so messages such as
// "a <b> & c" reach the client verbatim.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

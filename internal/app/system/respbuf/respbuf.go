// Package respbuf provides an http.ResponseWriter that holds the whole
// response in memory until it is explicitly written out.
package respbuf

import (
	"bytes"
	"net/http"
)

// Recorder buffers status, headers and body.
type Recorder struct {
	header      http.Header
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

// New returns an empty Recorder. Headers already set on base are copied so
// middleware that ran earlier (request ids, cache headers) is preserved.
func New(base http.Header) *Recorder {
	h := http.Header{}
	for k, v := range base {
		h[k] = append([]string(nil), v...)
	}
	return &Recorder{header: h}
}

func (r *Recorder) Header() http.Header { return r.header }

func (r *Recorder) WriteHeader(code int) {
	if r.wroteHeader {
		return
	}
	r.wroteHeader = true
	r.status = code
}

func (r *Recorder) Write(p []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.body.Write(p)
}

// Status returns the recorded status, 200 if the handler never set one.
func (r *Recorder) Status() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// Body returns the buffered body. The slice aliases the buffer.
func (r *Recorder) Body() []byte { return r.body.Bytes() }

// WriteTo copies the buffered response to w.
func (r *Recorder) WriteTo(w http.ResponseWriter) error {
	dst := w.Header()
	for k, v := range r.header {
		dst[k] = v
	}
	w.WriteHeader(r.Status())
	_, err := w.Write(r.body.Bytes())
	return err
}

// Snapshot is an immutable copy of a buffered response.
type Snapshot struct {
	Status int
	Header http.Header
	Body   []byte
}

// Snapshot copies the current response.
func (r *Recorder) Snapshot() Snapshot {
	return Snapshot{
		Status: r.Status(),
		Header: r.header.Clone(),
		Body:   append([]byte(nil), r.body.Bytes()...),
	}
}

// WriteTo replays the snapshot to w.
func (s Snapshot) WriteTo(w http.ResponseWriter) error {
	dst := w.Header()
	for k, v := range s.Header {
		dst[k] = append([]string(nil), v...)
	}
	w.WriteHeader(s.Status)
	_, err := w.Write(s.Body)
	return err
}

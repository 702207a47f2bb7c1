package transport

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"reqparse/internal/http/request"
	"reqparse/internal/middleware"
	"reqparse/internal/version"
)

type httpHandler struct {
	parser         *request.Parser
	readTimeout    time.Duration
	maxRequestSize int64
	middlewares    []middleware.RequestMiddleware
}

func newHTTPHandler(parser *request.Parser, readTimeout time.Duration, maxRequestSize int64, mws ...middleware.RequestMiddleware) *httpHandler {
	return &httpHandler{
		parser:         parser,
		readTimeout:    readTimeout,
		maxRequestSize: maxRequestSize,
		middlewares:    mws,
	}
}

// idleReader turns a read that stays idle for longer than timeout into
// the end of the request, so the parser can drain a connection whose
// client keeps it open while waiting for the answer.
type idleReader struct {
	conn    net.Conn
	timeout time.Duration
}

func (ir *idleReader) Read(p []byte) (int, error) {
	if err := ir.conn.SetReadDeadline(time.Now().Add(ir.timeout)); err != nil {
		return 0, err
	}
	n, err := ir.conn.Read(p)
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return n, io.EOF
	}
	return n, err
}

func (hh *httpHandler) handler(conn net.Conn) {
	defer hh.closeConnection(conn)

	src := io.LimitReader(&idleReader{conn: conn, timeout: hh.readTimeout}, hh.maxRequestSize)
	req, err := hh.parser.Parse(src)
	if err != nil {
		log.Printf("Error parsing request from %s: %v", conn.RemoteAddr(), err)
		_ = writeResponse(conn, http.StatusBadRequest, false, []byte(err.Error()))
		return
	}

	if req.IsEmpty() {
		return
	}

	if err = middleware.Apply(req, hh.middlewares...); err != nil {
		_ = writeResponse(conn, rejectionStatus(err), false, []byte(err.Error()))
		return
	}

	if err = hh.echo(conn, req); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

func (hh *httpHandler) echo(w io.Writer, req *request.Request) error {
	body := append([]byte(req.String()), req.Body()...)
	return writeResponse(w, http.StatusOK, req.Method() == request.HEAD, body)
}

func rejectionStatus(err error) int {
	if errors.Is(err, middleware.ErrMethodNotAllowed) {
		return http.StatusMethodNotAllowed
	}
	return http.StatusBadRequest
}

func writeResponse(w io.Writer, status int, headOnly bool, body []byte) error {
	head := fmt.Sprintf("HTTP/1.1 %d %s\r\n", status, http.StatusText(status)) +
		"Server: " + version.ServerToken() + "\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		fmt.Sprintf("Content-Length: %d\r\n", len(body)) +
		"Connection: close\r\n" +
		"\r\n"
	if _, err := io.WriteString(w, head); err != nil {
		return err
	}
	if headOnly || len(body) == 0 {
		return nil
	}
	_, err := w.Write(body)
	return err
}

func (hh *httpHandler) closeConnection(conn net.Conn) {
	err := conn.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		log.Printf("Error closing connection: %v", err)
	}
}

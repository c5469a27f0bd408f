package transport

import (
	"encoding/base64"
	"net/url"
	"strings"

	"jenkinsclient/pkg/endpoint"
	"jenkinsclient/pkg/jenkins"
)

const ContentTypeForm = "application/x-www-form-urlencoded"

// Validate rejects a request before any I/O is attempted.
func Validate(method string, params []endpoint.Param) error {
	if err := endpoint.ValidateMethod(method); err != nil {
		return err
	}
	return endpoint.ValidateParams(params)
}

// JoinURL returns base + "/" + path with exactly one slash between them.
func JoinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// EncodeForm url-encodes params keeping their order.
func EncodeForm(params []endpoint.Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

func BasicAuth(username, token string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+token))
}

// Check turns a completed exchange into the body text, or into a
// *jenkins.TransportError carrying the status and body when not 2xx.
func Check(method, path string, r Response) (string, error) {
	body := string(r.Body())
	if s := r.StatusCode(); s < 200 || s > 299 {
		return "", &jenkins.TransportError{Method: method, Path: path, StatusCode: s, Body: body}
	}
	return body, nil
}

// Failed wraps an error that prevented a response from being received.
func Failed(method, path string, err error) error {
	return &jenkins.TransportError{Method: method, Path: path, Err: err}
}

package intake

import (
	"io"
	"net"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// HTTPAdapter exposes the intake handler on a plain net/http server by
// translating each request into the same API Gateway event shape the
// Lambda entrypoint receives. Local runs and the Lambda stay on one code
// path.
type HTTPAdapter struct {
	handler *Handler
}

// NewHTTPAdapter wraps an intake handler for net/http serving.
func NewHTTPAdapter(handler *Handler) *HTTPAdapter {
	if handler == nil {
		panic("intake: handler cannot be nil")
	}
	return &HTTPAdapter{handler: handler}
}

func (a *HTTPAdapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	headers := make(map[string]string, len(r.Header))
	for k := range r.Header {
		headers[k] = r.Header.Get(k)
	}

	var body string
	if r.Body != nil {
		raw, err := io.ReadAll(r.Body)
		if err == nil {
			body = string(raw)
		}
	}

	sourceIP := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		sourceIP = host
	}

	evt := events.APIGatewayV2HTTPRequest{
		Headers:         headers,
		Body:            body,
		IsBase64Encoded: false,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method:   r.Method,
				Path:     r.URL.Path,
				SourceIP: sourceIP,
			},
		},
	}

	resp, err := a.handler.Handle(r.Context(), evt)
	if err != nil {
		// Handle never returns an error, but keep the fallback honest.
		http.Error(w, genericErrorMessage, http.StatusInternalServerError)
		return
	}

	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	if resp.Body != "" {
		_, _ = io.WriteString(w, resp.Body)
	}
}

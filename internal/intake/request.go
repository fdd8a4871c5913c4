package intake

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// submissionBody is the JSON shape of an intake request body. userAgent
// and referer are optional overrides for the corresponding headers.
type submissionBody struct {
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Message   string         `json:"message"`
	UTM       map[string]any `json:"utm"`
	UserAgent string         `json:"userAgent"`
	Referer   string         `json:"referer"`
}

// parseBody decodes the event body permissively. An absent body, a failed
// base64 decode or malformed JSON all degrade to the zero value so
// validation rejects the request for missing fields instead of the
// handler failing with a 500. Invalid UTF-8 is replaced, never fatal.
func parseBody(evt events.APIGatewayV2HTTPRequest) submissionBody {
	var body submissionBody

	raw := evt.Body
	if evt.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(evt.Body)
		if err != nil {
			return body
		}
		raw = strings.ToValidUTF8(string(decoded), "�")
	}
	if strings.TrimSpace(raw) == "" {
		return body
	}

	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		return submissionBody{}
	}
	return body
}

// headerValue looks up a header case-insensitively; API Gateway delivers
// keys in either lower or mixed case depending on the transport.
func headerValue(headers map[string]string, key string) string {
	for k, v := range headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// clientIP derives a best-effort client address: the transport-provided
// source IP when present, otherwise the first entry of X-Forwarded-For.
func clientIP(evt events.APIGatewayV2HTTPRequest) string {
	if ip := strings.TrimSpace(evt.RequestContext.HTTP.SourceIP); ip != "" {
		return ip
	}
	if xff := headerValue(evt.Headers, "x-forwarded-for"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	return ""
}

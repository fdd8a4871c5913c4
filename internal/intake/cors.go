package intake

import "strings"

// OriginPolicy decides which CORS headers a response carries. Origins are
// matched exactly against an allow-set; the literal "*" allows any origin.
// A mismatch produces no allow-origin header at all, so the browser fails
// the request by omission rather than explicit denial.
type OriginPolicy struct {
	allowAny bool
	allow    map[string]struct{}
}

// NewOriginPolicy builds a policy from a list of allowed origins.
func NewOriginPolicy(allowedOrigins []string) *OriginPolicy {
	p := &OriginPolicy{allow: map[string]struct{}{}}
	for _, origin := range allowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			p.allowAny = true
			continue
		}
		p.allow[origin] = struct{}{}
	}
	return p
}

// Headers returns the CORS headers for the given request origin. Every
// response path carries at least Vary: Origin.
func (p *OriginPolicy) Headers(origin string) map[string]string {
	if origin != "" && (p.allowAny || p.allowed(origin)) {
		return map[string]string{
			"Access-Control-Allow-Origin":  origin,
			"Access-Control-Allow-Headers": "content-type",
			"Access-Control-Allow-Methods": "OPTIONS,POST",
			"Vary":                         "Origin",
		}
	}
	return map[string]string{"Vary": "Origin"}
}

func (p *OriginPolicy) allowed(origin string) bool {
	_, ok := p.allow[origin]
	return ok
}

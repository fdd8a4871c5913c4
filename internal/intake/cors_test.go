package intake

import "testing"

func TestOriginPolicyAllowsListedOrigin(t *testing.T) {
	p := NewOriginPolicy([]string{"https://a.com", " https://b.com "})

	h := p.Headers("https://b.com")
	if h["Access-Control-Allow-Origin"] != "https://b.com" {
		t.Fatalf("expected trimmed allow-list entry to match, got %v", h)
	}
	if h["Access-Control-Allow-Methods"] != "OPTIONS,POST" {
		t.Fatalf("unexpected methods header %q", h["Access-Control-Allow-Methods"])
	}
	if h["Access-Control-Allow-Headers"] != "content-type" {
		t.Fatalf("unexpected headers header %q", h["Access-Control-Allow-Headers"])
	}
	if h["Vary"] != "Origin" {
		t.Fatal("expected Vary: Origin")
	}
}

func TestOriginPolicyDeniesByOmission(t *testing.T) {
	p := NewOriginPolicy([]string{"https://a.com"})

	for _, origin := range []string{"https://evil.com", ""} {
		h := p.Headers(origin)
		if _, ok := h["Access-Control-Allow-Origin"]; ok {
			t.Fatalf("origin %q: expected no allow-origin header, got %v", origin, h)
		}
		if h["Vary"] != "Origin" {
			t.Fatalf("origin %q: expected Vary: Origin", origin)
		}
	}
}

func TestOriginPolicyWildcard(t *testing.T) {
	p := NewOriginPolicy([]string{"*"})

	h := p.Headers("https://anything.example")
	if h["Access-Control-Allow-Origin"] != "https://anything.example" {
		t.Fatalf("wildcard must echo the origin, got %v", h)
	}
}

func TestOriginPolicyEmptyAllowsNothing(t *testing.T) {
	p := NewOriginPolicy(nil)

	if _, ok := p.Headers("https://a.com")["Access-Control-Allow-Origin"]; ok {
		t.Fatal("empty allow-set must never emit an allow-origin header")
	}
}

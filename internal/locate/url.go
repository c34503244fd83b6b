package locate

import (
	"net/url"
	"strings"
)

// ResolveURL resolves a possibly-relative href against a page's base URL.
// Empty hrefs and javascript: pseudo-links are rejected, as are hrefs that do
// not parse. Returns "" when no usable URL can be produced.
func ResolveURL(href, base string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(strings.ToLower(href), "javascript:") {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return ref.String()
	}
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	return b.ResolveReference(ref).String()
}

// StripTrackingParams removes the query and fragment from a URL. The source
// pages do not rely on query parameters for correctness, so dropping them
// wholesale is safe and makes image deduplication reliable.
func StripTrackingParams(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		if i := strings.IndexAny(raw, "?#"); i >= 0 {
			return raw[:i]
		}
		return raw
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

package locate

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Tokens that mark an image as page chrome rather than content. Matching is
// over both the image URL and the class names of the node, its parent, and
// its grandparent.
var chromeTokens = []string{
	"logo", "icon", "favicon", "badge", "sprite",
	"avatar", "social", "footer", "banner-ad", "header",
}

var contentExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// IsContentImage reports whether an image is substantive page content rather
// than navigational or branding chrome. The filter trades recall for
// precision: rejecting a legitimate small image is acceptable, pulling UI
// chrome into extracted content is not.
func IsContentImage(img *goquery.Selection, resolvedURL string) bool {
	haystack := strings.ToLower(resolvedURL)
	for _, sel := range []*goquery.Selection{img, img.Parent(), img.Parent().Parent()} {
		if class, ok := sel.Attr("class"); ok {
			haystack += " " + strings.ToLower(class)
		}
	}
	for _, token := range chromeTokens {
		if strings.Contains(haystack, token) {
			return false
		}
	}

	if tooSmall(img, "width") || tooSmall(img, "height") {
		return false
	}

	path := strings.ToLower(StripTrackingParams(resolvedURL))
	for _, ext := range contentExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// tooSmall reports whether a declared dimension attribute is 120px or less.
// Undeclared or non-numeric dimensions are not a rejection.
func tooSmall(img *goquery.Selection, attr string) bool {
	raw, ok := img.Attr(attr)
	if !ok {
		return false
	}
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "px")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return false
	}
	return n <= 120
}

// ImageSrc resolves the effective source URL of an image, preferring
// lazy-loading attributes over src: data-src, then data-original, then the
// first candidate in data-srcset/srcset, then src. Empty and data: URIs
// yield "".
func ImageSrc(img *goquery.Selection, base string) string {
	candidate := ""
	for _, attr := range []string{"data-src", "data-original"} {
		if v, ok := img.Attr(attr); ok && strings.TrimSpace(v) != "" {
			candidate = strings.TrimSpace(v)
			break
		}
	}
	if candidate == "" {
		for _, attr := range []string{"data-srcset", "srcset"} {
			if v, ok := img.Attr(attr); ok {
				if first := firstSrcsetCandidate(v); first != "" {
					candidate = first
					break
				}
			}
		}
	}
	if candidate == "" {
		if v, ok := img.Attr("src"); ok {
			candidate = strings.TrimSpace(v)
		}
	}

	if candidate == "" || strings.HasPrefix(strings.ToLower(candidate), "data:") {
		return ""
	}
	return ResolveURL(candidate, base)
}

// firstSrcsetCandidate extracts the URL token of the first srcset entry,
// dropping any width/density descriptor.
func firstSrcsetCandidate(srcset string) string {
	for _, entry := range strings.Split(srcset, ",") {
		fields := strings.Fields(strings.TrimSpace(entry))
		if len(fields) > 0 && fields[0] != "" {
			return fields[0]
		}
	}
	return ""
}

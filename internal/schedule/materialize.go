package schedule

import "strings"

const dataURIPrefix = "data:"

// ExtractMediaURL strips a CSS url(...) wrapper and surrounding matching
// quotes from a stored image value. Older records stored the raw CSS
// background value instead of a plain URL. Idempotent, never fails: worst
// case the input comes back trimmed.
func ExtractMediaURL(value string) string {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return ""
	}
	if strings.HasPrefix(cleaned, "url(") && strings.HasSuffix(cleaned, ")") {
		cleaned = strings.TrimSpace(cleaned[4 : len(cleaned)-1])
	}
	if len(cleaned) >= 2 {
		first, last := cleaned[0], cleaned[len(cleaned)-1]
		if first == last && (first == '\'' || first == '"') {
			cleaned = cleaned[1 : len(cleaned)-1]
		}
	}
	return cleaned
}

// BuildImageSrc resolves a window's stored image fields into one renderable
// source: a direct URL or a data URI. Upload data wins over the raw value
// when the type says so, then legacy rows fall back through whichever field
// is populated. Empty string means the window has nothing to display.
func BuildImageSrc(imageType, rawValue, dataValue string) string {
	imageType = strings.ToLower(strings.TrimSpace(imageType))
	rawValue = strings.TrimSpace(rawValue)
	dataValue = strings.TrimSpace(dataValue)

	if imageType == "upload" && dataValue != "" {
		if strings.HasPrefix(dataValue, dataURIPrefix) {
			return dataValue
		}
		return ExtractMediaURL(dataValue)
	}

	if imageType == "url" && rawValue != "" {
		return ExtractMediaURL(rawValue)
	}

	// Legacy rows predate the type column; take whatever is populated.
	if dataValue != "" {
		if strings.HasPrefix(dataValue, dataURIPrefix) {
			return dataValue
		}
		return ExtractMediaURL(dataValue)
	}
	if rawValue != "" {
		return ExtractMediaURL(rawValue)
	}
	return ""
}

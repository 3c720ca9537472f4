package argparse

import "strings"

const delimiter = "="

// splitToken separates a raw token into an argument name and value. The first prefix, in sorted
// order, that occurs anywhere in the token marks where the name begins; the name runs up to the
// first "=" after it and the value is everything past that "=". A token without "=" has an empty
// value. If no prefix occurs in the token, both results are empty.
//
// The prefix is not anchored at the start of the token: "x--name=1" yields "name".
func splitToken(prefixes []string, token string) (name, value string) {
	for _, prefix := range prefixes {
		start := strings.Index(token, prefix)
		if start < 0 {
			continue
		}
		nameStart := start + len(prefix)
		rest := token[nameStart:]
		delim := strings.Index(rest, delimiter)
		if delim < 0 {
			return rest, ""
		}
		return rest[:delim], rest[delim+len(delimiter):]
	}
	return "", ""
}

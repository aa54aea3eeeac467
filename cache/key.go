package cache

import (
	"crypto/md5"
	"encoding/hex"

	json "github.com/goccy/go-json"
)

// Key derives a 16-hex-character cache key from a prefix and a parameter
// map, matching the source's _generate_key (app/cache.py): canonical JSON
// of the params (map keys sorted, which encoding/json-compatible encoders
// do by construction for map[string]any) concatenated onto the prefix, then
// digested and truncated to 16 hex characters. Equal parameter maps produce
// the same key regardless of how the caller built them (spec §4.1
// invariant: key canonicalization).
func Key(prefix string, params map[string]any) string {
	body, err := json.Marshal(params)
	if err != nil {
		// params is always a plain map of strings/numbers/bools built by
		// our own callers; Marshal cannot fail on that shape.
		body = []byte("{}")
	}
	sum := md5.Sum(append([]byte(prefix+":"), body...))
	return hex.EncodeToString(sum[:])[:16]
}

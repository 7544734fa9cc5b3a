package core

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

func HashContent(content []byte) string {
	return strconv.FormatUint(xxhash.Sum64(content), 36)
}

// ETag returns a strong entity tag for the given body.
func ETag(content []byte) string {
	return `"` + HashContent(content) + `"`
}

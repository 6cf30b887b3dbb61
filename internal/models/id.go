package models

import (
	"math/rand"
	"strconv"
	"time"
)

const suffixLen = 9

// NewID builds an identifier like "comment-1714070423911-k3q9x0f2a": a
// millisecond timestamp plus a random base36 suffix. Uniqueness is
// best-effort; a collision would need two IDs in the same millisecond with
// the same suffix, which is negligible at this system's scale.
func NewID(prefix string) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	suffix := make([]byte, suffixLen)
	for i := range suffix {
		suffix[i] = alphabet[rand.Intn(len(alphabet))]
	}

	return prefix + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + string(suffix)
}

package cache

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// keySeparator delimits segments of the canonical parameter string before
// it is digested.
const keySeparator = "::"

// KeyDeriver turns a request kind plus its semantically relevant
// parameters into a deterministic cache key. Identical inputs must yield
// identical keys across process restarts.
type KeyDeriver interface {
	DeriveKey(kind string, params ...any) string
}

// digestDeriver canonicalizes the parameters into a delimited string and
// digests it with xxhash, so keys stay fixed-length no matter how long a
// free-text filter gets. The kind stays as a plaintext prefix so operators
// can tell listing keys from lookup keys in the backend.
type digestDeriver struct{}

// NewKeyDeriver returns the default key deriver.
func NewKeyDeriver() KeyDeriver {
	return &digestDeriver{}
}

func (d *digestDeriver) DeriveKey(kind string, params ...any) string {
	if len(params) == 0 {
		return kind
	}

	parts := make([]string, 0, len(params)+1)
	parts = append(parts, kind)
	for _, p := range params {
		parts = append(parts, canonical(p))
	}

	sum := xxhash.Sum64String(strings.Join(parts, keySeparator))
	return kind + ":" + strconv.FormatUint(sum, 16)
}

// canonical renders a parameter deterministically. Strings are quoted so a
// value containing the separator cannot collide with two adjacent
// parameters.
func canonical(v any) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(t)
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprintf("%v", t)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("unserializable:%T", v)
		}
		return "json:" + string(data)
	}
}

package upload

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Signer produces short-lived upload signatures so the frontend can upload
// images straight to the media CDN without ever seeing the API secret.
// Signature scheme: the parameters are sorted by key, serialized as
// key=value pairs joined with "&", the secret is appended and the whole
// string is SHA-1 hashed.
type Signer struct {
	apiSecret    string
	uploadPreset string
}

func NewSigner(apiSecret, uploadPreset string) *Signer {
	return &Signer{apiSecret: apiSecret, uploadPreset: uploadPreset}
}

func (s *Signer) Sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + s.apiSecret))
	return hex.EncodeToString(sum[:])
}

// UploadSignature signs the current timestamp together with the configured
// upload preset, matching what the upload widget sends.
func (s *Signer) UploadSignature(now time.Time) (int64, string) {
	timestamp := now.Unix()
	signature := s.Sign(map[string]string{
		"timestamp":     fmt.Sprintf("%d", timestamp),
		"upload_preset": s.uploadPreset,
	})
	return timestamp, signature
}

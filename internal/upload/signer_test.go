package upload

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSigner_Sign_SortsParams(t *testing.T) {
	signer := NewSigner("topsecret", "gallery")

	// Key order in the map must not matter.
	sig := signer.Sign(map[string]string{
		"timestamp": "1700000000",
		"public_id": "abc",
	})

	assert.Equal(t, "8c402f8e2575275ed493575923da14215e7cb00d", sig)
}

func TestSigner_UploadSignature(t *testing.T) {
	signer := NewSigner("topsecret", "gallery")

	timestamp, sig := signer.UploadSignature(time.Unix(1700000000, 0))

	assert.Equal(t, int64(1700000000), timestamp)
	assert.Equal(t, "381217763883f796da2dc58a42b677fc30307011", sig)
}

func TestSigner_DifferentSecretsDiffer(t *testing.T) {
	a := NewSigner("secret-a", "gallery")
	b := NewSigner("secret-b", "gallery")

	params := map[string]string{"timestamp": "1700000000"}
	assert.NotEqual(t, a.Sign(params), b.Sign(params))
}

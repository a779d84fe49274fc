// Package token turns validated card data into opaque, time-bounded
// tokens and back. The encoding is reversible by design, matching the
// token format existing clients already consume; it is not
// confidentiality-grade cryptography.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"io"
	mrand "math/rand"
	"strconv"
	"time"

	"github.com/shreyas11111/Reusable-Payment-Component/internal/card"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/models"
)

const (
	nonceSize         = 16
	fingerprintPrefix = 6
)

// Codec encodes and decodes token payloads. Randomness and the clock are
// injected so tests can pin both down; production code uses crypto/rand
// and the wall clock.
type Codec struct {
	random io.Reader
	now    func() time.Time
}

// NewCodec builds a codec on the system randomness source and clock.
func NewCodec() *Codec {
	return &Codec{random: rand.Reader, now: time.Now}
}

// NewCodecWith builds a codec around an explicit randomness source and
// clock. Either argument may be nil to keep the default.
func NewCodecWith(random io.Reader, now func() time.Time) *Codec {
	c := NewCodec()
	if random != nil {
		c.random = random
	}
	if now != nil {
		c.now = now
	}
	return c
}

// Nonce returns sixteen fresh random bytes, lowercase hex encoded. When
// the secure source fails it falls back to math/rand rather than failing
// the tokenize call.
func (c *Codec) Nonce() string {
	buf := make([]byte, nonceSize)
	if _, err := io.ReadFull(c.random, buf); err != nil {
		for i := range buf {
			buf[i] = byte(mrand.Intn(256))
		}
	}
	return hex.EncodeToString(buf)
}

// Fingerprint hashes the issuer prefix (first six digits) of a card
// number into a short bucketing value: numbers sharing a prefix share a
// fingerprint, and nothing beyond the prefix feeds the hash. Fewer than
// six digits yield the empty string.
func (c *Codec) Fingerprint(number string) string {
	digits := card.DigitsOnly(number)
	if len(digits) < fingerprintPrefix {
		return ""
	}
	digits = digits[:fingerprintPrefix]

	var h int32
	for i := 0; i < len(digits); i++ {
		h = h*31 + int32(digits[i])
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 16)
}

// EncodePayload is the reversible "encryption" step: plain base64 over
// the UTF-8 bytes. DecodePayload inverts it exactly for any string.
func (c *Codec) EncodePayload(plaintext string) string {
	return base64.StdEncoding.EncodeToString([]byte(plaintext))
}

// DecodePayload inverts EncodePayload.
func (c *Codec) DecodePayload(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// EncodeToken serializes a payload into the opaque token string handed to
// transport layers. Consumers other than DecodeToken must not parse it.
func (c *Codec) EncodeToken(payload models.TokenPayload) string {
	raw, _ := json.Marshal(payload)
	return base64.StdEncoding.EncodeToString(raw)
}

// DecodeToken inverts EncodeToken. It fails closed: anything malformed
// comes back as nil, never as a half-filled payload and never a panic.
func (c *Codec) DecodeToken(tok string) *models.TokenPayload {
	raw, err := base64.StdEncoding.DecodeString(tok)
	if err != nil {
		return nil
	}
	var payload models.TokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}
	return &payload
}

// CardNumber recovers the digit string a token was minted from. Only the
// charge gateway uses this; everything else treats tokens as opaque.
func (c *Codec) CardNumber(payload *models.TokenPayload) string {
	plain, err := c.DecodePayload(payload.EncryptedData)
	if err != nil {
		return ""
	}
	var p CardPayload
	if err := json.Unmarshal([]byte(plain), &p); err != nil {
		return ""
	}
	return card.DigitsOnly(p.Number)
}

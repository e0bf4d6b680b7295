package qr

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"
)

// TTL is how long a minted pickup token stays scannable.
const TTL = 24 * time.Hour

const secretBytes = 16 // 128 bits of entropy

var (
	ErrMalformed      = errors.New("malformed pickup token")
	ErrExpired        = errors.New("pickup token expired")
	ErrSecretMismatch = errors.New("pickup token secret mismatch")
)

// Token is the decoded form of a QR payload. The payload itself is the
// base64url-encoded JSON of this struct, so minting needs no external state.
type Token struct {
	OrderID  string `json:"orderId"`
	Secret   string `json:"secret"`
	MintedAt int64  `json:"mintedAt"` // epoch ms
}

type Codec struct {
	now func() time.Time
}

func NewCodec() *Codec {
	return &Codec{now: time.Now}
}

// NewCodecAt builds a codec on an injected clock, used by tests to simulate
// token age.
func NewCodecAt(now func() time.Time) *Codec {
	return &Codec{now: now}
}

// Mint produces a scannable payload and the secret embedded in it. The caller
// stores the secret next to the order; only the latest stored secret validates.
func (c *Codec) Mint(orderID string) (payload, secret string, err error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("generate secret: %w", err)
	}
	secret = hex.EncodeToString(buf)

	b, err := json.Marshal(Token{
		OrderID:  orderID,
		Secret:   secret,
		MintedAt: c.now().UnixMilli(),
	})
	if err != nil {
		return "", "", fmt.Errorf("encode token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), secret, nil
}

// Decode recovers the token fields from a scanned payload.
func (c *Codec) Decode(payload string) (Token, error) {
	var t Token
	b, err := base64.URLEncoding.DecodeString(payload)
	if err != nil {
		return t, ErrMalformed
	}
	if err := json.Unmarshal(b, &t); err != nil {
		return t, ErrMalformed
	}
	if t.OrderID == "" || t.Secret == "" || t.MintedAt == 0 {
		return t, ErrMalformed
	}
	return t, nil
}

// Validate decodes the payload, checks the TTL and compares the embedded
// secret against the stored one. Returns the order id the token was bound to.
func (c *Codec) Validate(payload, storedSecret string) (string, error) {
	t, err := c.Decode(payload)
	if err != nil {
		return "", err
	}
	minted := time.UnixMilli(t.MintedAt)
	if c.now().Sub(minted) > TTL {
		return "", ErrExpired
	}
	if t.Secret != storedSecret {
		return "", ErrSecretMismatch
	}
	return t.OrderID, nil
}

// GeneratePickupCode returns a 6-digit code, uniform over 000000-999999.
// Collisions across orders are fine: the code is checked per order.
func GeneratePickupCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate pickup code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

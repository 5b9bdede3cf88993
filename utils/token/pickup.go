package token

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const pickupScope = "pickup"

// PickupTTL bounds how long a QR code stays scannable after issue.
const PickupTTL = 24 * time.Hour

type PickupClaims struct {
	OrderID     uint   `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Scope       string `json:"scope"`
	jwt.RegisteredClaims
}

// Pickup tokens are signed with their own secret so a leaked auth token
// can never double as a pickup credential. Falls back to JWT_SECRET when
// QR_SECRET is not set.
func pickupSecret() []byte {
	if s := os.Getenv("QR_SECRET"); s != "" {
		return []byte(s)
	}
	return authSecret()
}

func GeneratePickupToken(orderID uint, orderNumber string) (string, error) {
	claims := PickupClaims{
		OrderID:     orderID,
		OrderNumber: orderNumber,
		Scope:       pickupScope,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(PickupTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(pickupSecret())
}

// ParsePickupToken verifies signature, expiry and scope. The raw string is
// whatever the scanner decoded; callers treat it as fully opaque.
func ParsePickupToken(raw string) (*PickupClaims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &PickupClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return pickupSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*PickupClaims)
	if !ok || !parsed.Valid || claims.Scope != pickupScope {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

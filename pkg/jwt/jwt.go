package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims son los claims del blob de sesión: referencia al usuario,
// empresa activa y marca de último acceso. La caducidad deslizante de 10
// minutos la evalúa el núcleo, no el token (no se fija exp).
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID      string `json:"user_id,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	LastVisited int64  `json:"last_visited"` // unix segundos
}

// GenerateSession firma el estado de sesión con HS256.
func GenerateSession(secret, userID, companyName string, lastVisited time.Time, issuer string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		UserID:      userID,
		CompanyName: companyName,
		LastVisited: lastVisited.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSession valida la firma y devuelve el estado de sesión.
// Retorna error si el token es inválido o la firma no coincide.
func ParseSession(secret, tokenString string) (userID, companyName string, lastVisited time.Time, err error) {
	if secret == "" {
		return "", "", time.Time{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", time.Time{}, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return "", "", time.Time{}, fmt.Errorf("claims inválidos")
	}
	return claims.UserID, claims.CompanyName, time.Unix(claims.LastVisited, 0), nil
}

package services

import (
	"context"
	"os"
	"time"

	apperrors "admin-panel/errors"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

// UserInfo thông tin nhúng trong token
type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func secretKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateToken tạo access token cho nhân viên sau khi đăng nhập
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ParseToken xác thực chữ ký và lấy userID, role từ token.
// Quyền quản trị nằm trong claim role, không so sánh định danh cứng.
func ParseToken(tokenString string) (uint, int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Phương thức ký không hợp lệ", nil)
		}
		return secretKey(), nil
	})
	if err != nil || !token.Valid {
		return 0, 0, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}
	return claims.UserInfo.UserId, claims.UserInfo.Role, nil
}

// CheckPassword so khớp mật khẩu với hash bcrypt đã lưu
func CheckPassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// HashPassword băm mật khẩu trước khi lưu
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyGoogleIDToken xác thực ID token của Google sign-in
func VerifyGoogleIDToken(ctx context.Context, tokenID string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(ctx, tokenID, clientID)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Google token không hợp lệ", err)
	}
	return payload, nil
}

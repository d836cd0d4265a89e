package dto

import "time"

// LoginInput dữ liệu đăng nhập bằng email và mật khẩu
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleAuthInput dữ liệu đăng nhập bằng Google
type GoogleAuthInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UserLoginResponse thông tin user trả về sau đăng nhập
type UserLoginResponse struct {
	UserID    uint      `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	UserRole  int       `json:"userRole"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package handlers

import "portfolio-api/app/server/models"

type SignupRequest struct {
	Firstname       string `json:"firstname"`
	Surname         string `json:"surname"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest 兼容表单与 JSON ，username 填写邮箱
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type LoginToken struct {
	AccessToken string `json:"access_token"`
	Type        string `json:"type"`
	UserID      uint   `json:"user_id"`
}

type UpdateUserRequest struct {
	Firstname *string `json:"firstname"`
	Surname   *string `json:"surname"`
	Email     *string `json:"email"`
	Username  *string `json:"username"`
}

// UserInfo 对外展示的用户信息，不含密码
type UserInfo struct {
	ID        uint   `json:"id"`
	Firstname string `json:"firstname"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	Username  string `json:"username"`
}

func userInfo(user *models.User) *UserInfo {
	return &UserInfo{
		ID:        user.ID,
		Firstname: user.Firstname,
		Surname:   user.Surname,
		Email:     user.Email,
		Username:  user.Username,
	}
}

type Message struct {
	Message string `json:"message"`
}

type ProjectInfo struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type BlogPostInfo struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ContactInfo struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

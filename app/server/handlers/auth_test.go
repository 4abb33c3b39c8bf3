package handlers

import (
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"net/http"
	"net/url"
	"portfolio-api/app/server/models"
	"strings"
	"testing"
)

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSignup(t *testing.T) {
	ta := newTestApp(t)

	rec := ta.do(http.MethodPost, "/signup", signupBody("a@x.com", "ada"), "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "a@x.com", body["email"])
	assert.Equal(t, "ada", body["username"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, rec.Body.String(), "argon2id")

	assert.Equal(t, int64(1), countRows(t, ta.db, &models.User{}))
	assert.Equal(t, int64(1), countRows(t, ta.db, &models.PersonalInformation{}))

	var user models.User
	require.NoError(t, ta.db.Preload("PersonalInformation").First(&user, "email = ?", "a@x.com").Error)
	assert.NotEqual(t, "p1", user.Password)
	assert.True(t, strings.HasPrefix(user.Password, "$argon2id$"))

	require.NotNil(t, user.PersonalInformation)
	assert.Equal(t, "Ada", user.PersonalInformation.Firstname)
	assert.Equal(t, "Lovelace", user.PersonalInformation.Lastname)
	assert.Equal(t, "a@x.com", user.PersonalInformation.Email)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	ta := newTestApp(t)
	ta.signup(t, "a@x.com")

	rec := ta.do(http.MethodPost, "/signup", signupBody("a@x.com", "other"), "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "This email already exists", decodeMessage(t, rec))

	assert.Equal(t, int64(1), countRows(t, ta.db, &models.User{}))
	assert.Equal(t, int64(1), countRows(t, ta.db, &models.PersonalInformation{}))
}

func TestSignup_PasswordMismatch(t *testing.T) {
	ta := newTestApp(t)

	body := signupBody("a@x.com", "ada")
	body["confirm_password"] = "p2"

	rec := ta.do(http.MethodPost, "/signup", body, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Passwords do not match", decodeMessage(t, rec))
	assert.Equal(t, int64(0), countRows(t, ta.db, &models.User{}))
}

func TestSignup_BlankFields(t *testing.T) {
	ta := newTestApp(t)

	for _, field := range []string{"firstname", "surname", "email", "username", "password", "confirm_password"} {
		for _, value := range []string{"", "   "} {
			body := signupBody("a@x.com", "ada")
			body[field] = value

			rec := ta.do(http.MethodPost, "/signup", body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code, field)
			assert.Equal(t, "Please fill in all fields", decodeMessage(t, rec), field)
		}
	}

	assert.Equal(t, int64(0), countRows(t, ta.db, &models.User{}))
}

func TestSignup_InvalidEmail(t *testing.T) {
	ta := newTestApp(t)

	rec := ta.do(http.MethodPost, "/signup", signupBody("not-an-email", "ada"), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeMessage(t, rec), "email")
}

func TestSignup_MalformedBody(t *testing.T) {
	ta := newTestApp(t)

	rec := ta.do(http.MethodPost, "/signup", "just a string", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserEmail_UniqueConstraint(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.db.Create(&models.User{Email: "a@x.com", Password: "x"}).Error)
	err := ta.db.Create(&models.User{Email: "a@x.com", Password: "y"}).Error
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)
}

func TestLogin(t *testing.T) {
	ta := newTestApp(t)
	user := ta.signup(t, "a@x.com")

	token := ta.login(t, "a@x.com", "p1")
	assert.Equal(t, "bearer", token.Type)
	assert.Equal(t, user.ID, token.UserID)

	claims, err := ta.jwt.ParseUser(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, int64(24*60*60), claims.Expires-claims.IssuedAt)
}

func TestLogin_JSONBody(t *testing.T) {
	ta := newTestApp(t)
	ta.signup(t, "a@x.com")

	rec := ta.do(http.MethodPost, "/login", map[string]string{"username": "a@x.com", "password": "p1"}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_Failures(t *testing.T) {
	ta := newTestApp(t)
	ta.signup(t, "a@x.com")

	tests := []struct {
		name     string
		email    string
		password string
		code     int
		message  string
	}{
		{name: "unknown email", email: "b@x.com", password: "p1", code: http.StatusNotFound, message: "Invalid credentials"},
		{name: "wrong password", email: "a@x.com", password: "nope", code: http.StatusNotFound, message: "Invalid password"},
		{name: "missing password", email: "a@x.com", password: "", code: http.StatusBadRequest, message: "Please fill in all fields"},
		{name: "missing username", email: "", password: "p1", code: http.StatusBadRequest, message: "Please fill in all fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ta.doForm("/login", url.Values{"username": {tt.email}, "password": {tt.password}})
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.message, decodeMessage(t, rec))
		})
	}
}

func TestLogin_RehashesLegacyDigest(t *testing.T) {
	ta := newTestApp(t)

	legacy, err := bcrypt.GenerateFromPassword([]byte("old-secret"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, ta.db.Create(&models.User{
		Firstname: "Old",
		Surname:   "User",
		Email:     "old@x.com",
		Username:  "old",
		Password:  string(legacy),
	}).Error)

	ta.login(t, "old@x.com", "old-secret")

	var user models.User
	require.NoError(t, ta.db.First(&user, "email = ?", "old@x.com").Error)
	assert.True(t, strings.HasPrefix(user.Password, "$argon2id$"), user.Password)

	// 新的 hash 仍然可以登录
	ta.login(t, "old@x.com", "old-secret")
}

func TestLogout_Lifecycle(t *testing.T) {
	ta := newTestApp(t)
	ta.signup(t, "a@x.com")

	first := ta.login(t, "a@x.com", "p1")
	rec := ta.do(http.MethodGet, "/users", nil, first.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ta.do(http.MethodPost, "/logout", nil, first.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out", decodeMessage(t, rec))

	// 令牌本身仍然有效，但用户已经登出
	_, err := ta.jwt.ParseUser(first.AccessToken)
	require.NoError(t, err)
	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/1"},
		{http.MethodPut, "/update-users/"},
		{http.MethodDelete, "/delete-users/"},
	} {
		rec = ta.do(req.method, req.path, nil, first.AccessToken)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, req.path)
	}

	// 再次登出是幂等的
	rec = ta.do(http.MethodPost, "/logout", nil, first.AccessToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	// 重新登录后新令牌可用
	second := ta.login(t, "a@x.com", "p1")
	rec = ta.do(http.MethodGet, "/users", nil, second.AccessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(0), countRows(t, ta.db, &models.LoggedOutUser{}))
}

func TestLogout_RequiresToken(t *testing.T) {
	ta := newTestApp(t)

	rec := ta.do(http.MethodPost, "/logout", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, int64(0), countRows(t, ta.db, &models.LoggedOutUser{}))
}

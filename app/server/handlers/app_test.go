package handlers

import (
	"bytes"
	"encoding/json"
	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"net/http/httptest"
	"net/url"
	"portfolio-api/app/server/inits"
	"portfolio-api/app/server/jwt"
	"portfolio-api/app/server/logout"
	"portfolio-api/app/server/password"
	"portfolio-api/app/server/testutil"
	"strings"
	"testing"
)

type testApp struct {
	e   *echo.Echo
	a   *App
	db  *gorm.DB
	pdb *gorm.DB
	jwt *jwt.JWT
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SQLite(t, inits.MigrateUsers)
	pdb := testutil.SQLite(t, inits.MigratePortfolio)

	j, err := jwt.New("test-secret")
	require.NoError(t, err)

	h := password.New(&argon2id.Params{
		Memory:      1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})

	a := NewApp(zap.NewNop(), db, pdb, j, h, logout.NewDBRegistry(db))
	e := echo.New()
	a.RegisterHandlers(e)

	return &testApp{e: e, a: a, db: db, pdb: pdb, jwt: j}
}

func (ta *testApp) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ta.e.ServeHTTP(rec, req)
	return rec
}

func (ta *testApp) doForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := httptest.NewRecorder()
	ta.e.ServeHTTP(rec, req)
	return rec
}

func signupBody(email, username string) map[string]string {
	return map[string]string{
		"firstname":        "Ada",
		"surname":          "Lovelace",
		"email":            email,
		"username":         username,
		"password":         "p1",
		"confirm_password": "p1",
	}
}

// signup 注册并返回新用户
func (ta *testApp) signup(t *testing.T, email string) UserInfo {
	t.Helper()

	rec := ta.do(http.MethodPost, "/signup", signupBody(email, "ada"), "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var user UserInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	return user
}

// login 登录并返回令牌
func (ta *testApp) login(t *testing.T, email, pass string) LoginToken {
	t.Helper()

	rec := ta.doForm("/login", url.Values{"username": {email}, "password": {pass}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var token LoginToken
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))
	return token
}

func ptr[T any](v T) *T {
	return &v
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var msg Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	return msg.Message
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-admin/internal/app/config"
	"marketplace-admin/internal/app/ds"
	"marketplace-admin/internal/app/role"
)

const secret = "test-secret"

type fakeBlacklist struct {
	revoked map[string]bool
	err     error
}

func (f fakeBlacklist) IsBlacklisted(_ context.Context, token string) (bool, error) {
	return f.revoked[token], f.err
}

func sign(t *testing.T, userID uint, r role.Role, key string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()},
		UserID:         userID,
		Role:           r,
	})
	s, err := token.SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

func newRouter(bl TokenBlacklist, roles ...role.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	am := NewAuthMiddleware(bl, &config.Config{JWT: config.JWTConfig{Token: secret}})
	r := gin.New()
	r.GET("/x", am.WithAuthCheck(roles...), func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": actor.UserID, "role": int(actor.Role)})
	})
	return r
}

func do(r *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestWithAuthCheck(t *testing.T) {
	adminToken := sign(t, 1, role.Admin, secret)
	buyerToken := sign(t, 2, role.Buyer, secret)
	revoked := sign(t, 3, role.Admin, secret)

	r := newRouter(fakeBlacklist{revoked: map[string]bool{revoked: true}}, role.Admin)

	w := do(r, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":1,"role":2}`, w.Body.String())

	assert.Equal(t, http.StatusForbidden, do(r, buyerToken).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, revoked).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, sign(t, 1, role.Admin, "other")).Code)
}

func TestWithAuthCheckBlacklistDown(t *testing.T) {
	r := newRouter(fakeBlacklist{err: errors.New("dial tcp: refused")})
	assert.Equal(t, http.StatusServiceUnavailable, do(r, sign(t, 1, role.Admin, secret)).Code)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "abc", BearerToken("abc"))
	assert.Equal(t, "", BearerToken(""))
}

package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthHandler_Login(t *testing.T) {
	t.Run("correct password starts a session", func(t *testing.T) {
		sm := newTestSessions(t)
		handler := NewAuthHandler("s3cret", sm)

		ctx := setupTestContext("POST", "/login", []byte("password=s3cret"))
		handler.Login(ctx)

		assert.Equal(t, 302, ctx.Response.StatusCode())
		assert.Equal(t, "/", string(ctx.Response.Header.Peek("Location")))
		assert.True(t, sm.auth(ctx).LoggedIn)
		assert.Equal(t, []string{"Logged in"}, pendingFlash(t, sm, ctx))
	})

	t.Run("wrong password bounces back to the form", func(t *testing.T) {
		sm := newTestSessions(t)
		handler := NewAuthHandler("s3cret", sm)

		ctx := setupTestContext("POST", "/login", []byte("password=nope"))
		handler.Login(ctx)

		assert.Equal(t, 302, ctx.Response.StatusCode())
		assert.Equal(t, "/login", string(ctx.Response.Header.Peek("Location")))
		assert.False(t, sm.auth(ctx).LoggedIn)
		assert.Equal(t, []string{"Wrong password"}, pendingFlash(t, sm, ctx))
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	sm := newTestSessions(t)
	handler := NewAuthHandler("s3cret", sm)

	ctx := setupTestContext("GET", "/logout", nil)
	loginTestSession(t, sm, ctx)
	assert.True(t, sm.auth(ctx).LoggedIn)

	handler.Logout(ctx)

	assert.Equal(t, 302, ctx.Response.StatusCode())
	assert.False(t, sm.auth(ctx).LoggedIn)
	assert.Equal(t, []string{"Logged out"}, pendingFlash(t, sm, ctx))
}

func TestAuthHandler_LoginForm(t *testing.T) {
	sm := newTestSessions(t)
	handler := NewAuthHandler("s3cret", sm)

	ctx := setupTestContext("GET", "/login", nil)
	handler.LoginForm(ctx)

	assert.Equal(t, 200, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "password")
}

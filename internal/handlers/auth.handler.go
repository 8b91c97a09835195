package handlers

import (
	"crypto/subtle"

	"github.com/fasthttp/router"
	xhttp "github.com/mkarimi/customer-ledger/pkg/http"
)

type AuthHandler struct {
	password string
	sessions *SessionManager
}

func NewAuthHandler(adminPassword string, sessions *SessionManager) *AuthHandler {
	return &AuthHandler{
		password: adminPassword,
		sessions: sessions,
	}
}

func RegisterAuthRoutes(r *router.Router, h *AuthHandler) {
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
}

type loginPage struct {
	basePage
}

func (h *AuthHandler) LoginForm(ctx *xhttp.RequestCtx) {
	render(ctx, "login", loginPage{
		basePage: basePage{
			LoggedIn: h.sessions.auth(ctx).LoggedIn,
			Flash:    h.sessions.popFlash(ctx),
		},
	})
}

func (h *AuthHandler) Login(ctx *xhttp.RequestCtx) {
	given := formValue(ctx, "password")
	if subtle.ConstantTimeCompare([]byte(given), []byte(h.password)) == 1 {
		h.sessions.login(ctx)
		h.sessions.flash(ctx, "Logged in")
		redirect(ctx, "/")
		return
	}

	h.sessions.flash(ctx, "Wrong password")
	redirect(ctx, "/login")
}

func (h *AuthHandler) Logout(ctx *xhttp.RequestCtx) {
	h.sessions.logout(ctx)
	h.sessions.flash(ctx, "Logged out")
	redirect(ctx, "/")
}

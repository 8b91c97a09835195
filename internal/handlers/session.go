package handlers

import (
	"github.com/mkarimi/customer-ledger/internal/model"
	"github.com/mkarimi/customer-ledger/internal/session"
	xhttp "github.com/mkarimi/customer-ledger/pkg/http"
	"github.com/mkarimi/customer-ledger/pkg/logger"
	"github.com/valyala/fasthttp"
)

const sessionCookie = "ledger_session"

// SessionManager resolves the request's session from its cookie and hands
// out the auth capability passed to the service layer.
type SessionManager struct {
	store *session.Store
}

func NewSessionManager(store *session.Store) *SessionManager {
	return &SessionManager{store: store}
}

func (m *SessionManager) current(ctx *xhttp.RequestCtx) *session.Session {
	token := string(ctx.Request.Header.Cookie(sessionCookie))
	sess, err := m.store.Get(token)
	if err != nil {
		return nil
	}
	return sess
}

// ensure returns the request's session, creating an anonymous one (and
// setting its cookie) when none exists yet. Flash messages need a session
// even before login.
func (m *SessionManager) ensure(ctx *xhttp.RequestCtx) *session.Session {
	if sess := m.current(ctx); sess != nil {
		return sess
	}
	sess, err := m.store.Create(false)
	if err != nil {
		logger.Error("failed to create session", "error", err)
		return nil
	}
	m.setCookie(ctx, sess.Token)
	return sess
}

func (m *SessionManager) auth(ctx *xhttp.RequestCtx) model.SessionAuth {
	sess := m.current(ctx)
	return model.SessionAuth{LoggedIn: sess != nil && sess.LoggedIn}
}

func (m *SessionManager) login(ctx *xhttp.RequestCtx) {
	sess, err := m.store.Create(true)
	if err != nil {
		logger.Error("failed to create session", "error", err)
		return
	}
	m.setCookie(ctx, sess.Token)
}

func (m *SessionManager) logout(ctx *xhttp.RequestCtx) {
	if sess := m.current(ctx); sess != nil {
		if err := m.store.Delete(sess.Token); err != nil {
			logger.Error("failed to delete session", "error", err)
		}
	}
	m.clearCookie(ctx)
}

func (m *SessionManager) flash(ctx *xhttp.RequestCtx, msg string) {
	sess := m.ensure(ctx)
	if sess == nil {
		return
	}
	if err := m.store.AddFlash(sess.Token, msg); err != nil {
		logger.Error("failed to add flash", "error", err)
	}
}

func (m *SessionManager) popFlash(ctx *xhttp.RequestCtx) []string {
	sess := m.current(ctx)
	if sess == nil {
		return nil
	}
	flash, err := m.store.PopFlash(sess.Token)
	if err != nil {
		return nil
	}
	return flash
}

func (m *SessionManager) setCookie(ctx *xhttp.RequestCtx, token string) {
	c := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(c)
	c.SetKey(sessionCookie)
	c.SetValue(token)
	c.SetPath("/")
	c.SetHTTPOnly(true)
	ctx.Response.Header.SetCookie(c)

	// make the new session visible to this request's own handlers
	ctx.Request.Header.SetCookie(sessionCookie, token)
}

func (m *SessionManager) clearCookie(ctx *xhttp.RequestCtx) {
	c := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(c)
	c.SetKey(sessionCookie)
	c.SetValue("")
	c.SetPath("/")
	c.SetHTTPOnly(true)
	c.SetExpire(fasthttp.CookieExpireDelete)
	ctx.Response.Header.SetCookie(c)
	ctx.Request.Header.DelCookie(sessionCookie)
}

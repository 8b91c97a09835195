package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fasthttp/router"
	"github.com/mkarimi/customer-ledger/internal/model"
	xhttp "github.com/mkarimi/customer-ledger/pkg/http"
)

type LedgerService interface {
	CreateCustomer(ctx context.Context, auth model.Auth, p model.CustomerCreateRequest) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, auth model.Auth, id int64) error
	ListCustomers(ctx context.Context, query string) ([]*model.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*model.Customer, []*model.Transaction, error)
	AppendTransaction(ctx context.Context, auth model.Auth, p model.TransactionCreateRequest) (*model.Transaction, error)
}

type ExchangeService interface {
	ExportCustomers(ctx context.Context) ([]byte, error)
	ExportTransactions(ctx context.Context, customerID *int64) ([]byte, error)
	Import(ctx context.Context, auth model.Auth, r io.Reader) (int, error)
}

type LedgerHandler struct {
	svc      LedgerService
	exchange ExchangeService
	sessions *SessionManager
}

func NewLedgerHandler(svc LedgerService, exchange ExchangeService, sessions *SessionManager) *LedgerHandler {
	return &LedgerHandler{
		svc:      svc,
		exchange: exchange,
		sessions: sessions,
	}
}

func RegisterLedgerRoutes(r *router.Router, h *LedgerHandler) {
	r.GET("/", h.Dashboard)
	r.POST("/customers", h.CreateCustomer)
	r.GET("/customers/{id}", h.CustomerDetail)
	r.POST("/customers/{id}/delete", h.DeleteCustomer)
	r.POST("/customers/{id}/transactions", h.AddTransaction)
	r.GET("/export/customers.csv", h.ExportCustomers)
	r.GET("/export/transactions.csv", h.ExportTransactions)
	r.POST("/import", h.ImportCSV)
}

type basePage struct {
	LoggedIn bool
	Flash    []string
}

type dashboardPage struct {
	basePage
	Customers []*model.Customer
	Query     string
}

type customerPage struct {
	basePage
	Customer     *model.Customer
	Transactions []*model.Transaction
}

func (h *LedgerHandler) base(ctx *xhttp.RequestCtx) basePage {
	return basePage{
		LoggedIn: h.sessions.auth(ctx).LoggedIn,
		Flash:    h.sessions.popFlash(ctx),
	}
}

func (h *LedgerHandler) Dashboard(ctx *xhttp.RequestCtx) {
	q := strings.TrimSpace(query(ctx, "q"))

	customers, err := h.svc.ListCustomers(ctx, q)
	if err != nil {
		ctx.Error(xhttp.StatusText(xhttp.StatusInternalServerError), xhttp.StatusInternalServerError)
		return
	}

	render(ctx, "dashboard", dashboardPage{
		basePage:  h.base(ctx),
		Customers: customers,
		Query:     q,
	})
}

func (h *LedgerHandler) CreateCustomer(ctx *xhttp.RequestCtx) {
	p := model.CustomerCreateRequest{
		Name:  formValue(ctx, "name"),
		Phone: formValue(ctx, "phone"),
	}

	_, err := h.svc.CreateCustomer(ctx, h.sessions.auth(ctx), p)
	switch {
	case errors.Is(err, model.ErrAuthRequired):
		forbidden(ctx)
		return
	case errors.Is(err, model.ErrNameRequired):
		h.sessions.flash(ctx, "Name required")
	case err != nil:
		ctx.Error(xhttp.StatusText(xhttp.StatusInternalServerError), xhttp.StatusInternalServerError)
		return
	default:
		h.sessions.flash(ctx, "Customer added")
	}
	redirect(ctx, "/")
}

func (h *LedgerHandler) DeleteCustomer(ctx *xhttp.RequestCtx) {
	id, err := paramInt64(ctx, "id")
	if err != nil {
		notFound(ctx)
		return
	}

	err = h.svc.DeleteCustomer(ctx, h.sessions.auth(ctx), id)
	switch {
	case errors.Is(err, model.ErrAuthRequired):
		forbidden(ctx)
		return
	case err != nil:
		ctx.Error(xhttp.StatusText(xhttp.StatusInternalServerError), xhttp.StatusInternalServerError)
		return
	}

	h.sessions.flash(ctx, "Customer and transactions deleted")
	redirect(ctx, "/")
}

func (h *LedgerHandler) CustomerDetail(ctx *xhttp.RequestCtx) {
	id, err := paramInt64(ctx, "id")
	if err != nil {
		notFound(ctx)
		return
	}

	customer, txns, err := h.svc.GetCustomer(ctx, id)
	if err != nil {
		notFound(ctx)
		return
	}

	render(ctx, "customer", customerPage{
		basePage:     h.base(ctx),
		Customer:     customer,
		Transactions: txns,
	})
}

func (h *LedgerHandler) AddTransaction(ctx *xhttp.RequestCtx) {
	id, err := paramInt64(ctx, "id")
	if err != nil {
		notFound(ctx)
		return
	}

	auth := h.sessions.auth(ctx)
	if !auth.Authenticated() {
		forbidden(ctx)
		return
	}

	detailPath := fmt.Sprintf("/customers/%d", id)

	amount, err := strconv.ParseFloat(strings.TrimSpace(formValue(ctx, "amount")), 64)
	if err != nil {
		h.sessions.flash(ctx, "Invalid amount")
		redirect(ctx, detailPath)
		return
	}

	_, err = h.svc.AppendTransaction(ctx, auth, model.TransactionCreateRequest{
		CustomerID: id,
		Amount:     amount,
		Type:       formValue(ctx, "type"),
		Note:       formValue(ctx, "note"),
	})
	if err != nil {
		ctx.Error(xhttp.StatusText(xhttp.StatusInternalServerError), xhttp.StatusInternalServerError)
		return
	}

	h.sessions.flash(ctx, "Transaction added")
	redirect(ctx, detailPath)
}

func (h *LedgerHandler) ExportCustomers(ctx *xhttp.RequestCtx) {
	b, err := h.exchange.ExportCustomers(ctx)
	if err != nil {
		ctx.Error(xhttp.StatusText(xhttp.StatusInternalServerError), xhttp.StatusInternalServerError)
		return
	}
	writeCSV(ctx, "customers.csv", b)
}

func (h *LedgerHandler) ExportTransactions(ctx *xhttp.RequestCtx) {
	var customerID *int64
	if v := query(ctx, "customer_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			customerID = &id
		}
	}

	b, err := h.exchange.ExportTransactions(ctx, customerID)
	if err != nil {
		ctx.Error(xhttp.StatusText(xhttp.StatusInternalServerError), xhttp.StatusInternalServerError)
		return
	}
	writeCSV(ctx, "transactions.csv", b)
}

func (h *LedgerHandler) ImportCSV(ctx *xhttp.RequestCtx) {
	auth := h.sessions.auth(ctx)
	if !auth.Authenticated() {
		forbidden(ctx)
		return
	}

	fh, err := ctx.FormFile("file")
	if err != nil {
		h.sessions.flash(ctx, "No file uploaded")
		redirect(ctx, "/")
		return
	}
	f, err := fh.Open()
	if err != nil {
		ctx.Error(xhttp.StatusText(xhttp.StatusBadRequest), xhttp.StatusBadRequest)
		return
	}
	defer f.Close()

	count, err := h.exchange.Import(ctx, auth, f)
	if err != nil {
		ctx.Error(xhttp.StatusText(xhttp.StatusInternalServerError), xhttp.StatusInternalServerError)
		return
	}

	h.sessions.flash(ctx, fmt.Sprintf("Imported %d rows", count))
	redirect(ctx, "/")
}

func writeCSV(ctx *xhttp.RequestCtx, filename string, body []byte) {
	ctx.Response.Header.Set("Content-Type", "text/csv; charset=utf-8")
	ctx.Response.Header.Set("Content-Disposition", "attachment;filename="+filename)
	ctx.Response.SetStatusCode(xhttp.StatusOK)
	ctx.Response.SetBody(body)
}

func formValue(ctx *xhttp.RequestCtx, key string) string {
	return string(ctx.FormValue(key))
}

func query(ctx *xhttp.RequestCtx, key string) string {
	return string(ctx.QueryArgs().Peek(key))
}

func paramInt64(ctx *xhttp.RequestCtx, name string) (int64, error) {
	v, _ := ctx.UserValue(name).(string)
	return strconv.ParseInt(v, 10, 64)
}

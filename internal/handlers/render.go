package handlers

import (
	"bytes"
	"embed"
	"html/template"

	xhttp "github.com/mkarimi/customer-ledger/pkg/http"
	"github.com/mkarimi/customer-ledger/pkg/logger"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"money": func(v float64) string {
		return decimal.NewFromFloat(v).StringFixed(2)
	},
	"orDash": func(s *string) string {
		if s == nil || *s == "" {
			return "-"
		}
		return *s
	},
	"orEmpty": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

var pageTemplates = map[string]*template.Template{}

func init() {
	for _, page := range []string{"dashboard", "customer", "login"} {
		pageTemplates[page] = template.Must(
			template.New("layout").
				Funcs(templateFuncs).
				ParseFS(templateFS, "templates/layout.gohtml", "templates/"+page+".gohtml"),
		)
	}
}

func render(ctx *xhttp.RequestCtx, page string, data any) {
	tmpl, ok := pageTemplates[page]
	if !ok {
		logger.Error("unknown page template", "page", page)
		ctx.Error(xhttp.StatusText(xhttp.StatusInternalServerError), xhttp.StatusInternalServerError)
		return
	}

	// render to a buffer first so a template error never leaks half a page
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.Error("template render failed", "page", page, "error", err)
		ctx.Error(xhttp.StatusText(xhttp.StatusInternalServerError), xhttp.StatusInternalServerError)
		return
	}

	ctx.Response.Header.Set("Content-Type", "text/html; charset=utf-8")
	ctx.Response.SetStatusCode(xhttp.StatusOK)
	ctx.Response.SetBody(buf.Bytes())
}

// redirect issues a relative Location like the server-rendered UI expects;
// fasthttp's own Redirect would resolve it against the request URI.
func redirect(ctx *xhttp.RequestCtx, path string) {
	ctx.Response.Header.Set("Location", path)
	ctx.Response.SetStatusCode(xhttp.StatusFound)
}

func forbidden(ctx *xhttp.RequestCtx) {
	ctx.Error(xhttp.StatusText(xhttp.StatusForbidden), xhttp.StatusForbidden)
}

func notFound(ctx *xhttp.RequestCtx) {
	ctx.Error(xhttp.StatusText(xhttp.StatusNotFound), xhttp.StatusNotFound)
}

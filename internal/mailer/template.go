package mailer

import (
	"strings"
	"text/template"

	"github.com/valiantdoor/backend/internal/model"
)

// Fields are HTML-escaped at ingestion, so the templates interpolate them
// verbatim; html/template would double-escape the stored entities.
var requestBodyTmpl = template.Must(template.New("request").Parse(`
<h2>New Quote Request</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Address:</strong> {{if .Address}}{{.Address}}{{else}}Not provided{{end}}</p>
<p><strong>Service:</strong> {{if .Service}}{{.Service}}{{else}}Not specified{{end}}</p>
<p><strong>Message:</strong></p>
<p>{{if .Message}}{{.Message}}{{else}}No additional message{{end}}</p>
<p><strong>Submitted:</strong> {{.Timestamp}}</p>
`))

// RequestSubject returns the notification subject for a quote request.
func RequestSubject(req model.QuoteRequest) string {
	return "New Quote Request from " + req.Name
}

// RequestBody renders the HTML notification body for a quote request.
func RequestBody(req model.QuoteRequest) string {
	var sb strings.Builder
	if err := requestBodyTmpl.Execute(&sb, req); err != nil {
		// The template only reads string fields; execution cannot fail.
		return ""
	}
	return sb.String()
}

// TestSubject and TestBody are the fixed contents of the operator
// test-email endpoint.
const (
	TestSubject = "Test Email - Valiant Garage Door"
	TestBody    = "<h2>Test Email</h2><p>This is a test email from your Valiant Garage Door website.</p>"
)

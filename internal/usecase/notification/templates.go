package notification

import (
	"bytes"
	"html/template"
)

var ownerTemplate = template.Must(template.New("owner").Parse(`<h2>New contribution received</h2>
<p><strong>{{.ContributorName}} {{.ContributorSurname}}</strong> ({{.ContributorEmail}}) pledged
<strong>&euro; {{.Amount}}</strong> towards <strong>{{.ItemName}}</strong>.</p>
<ul>
  <li>Payment method: {{.PaymentMethod}}</li>
  <li>Total collected: &euro; {{.NewTotal}} of &euro; {{.Price}}</li>
  {{- if .Completed}}
  <li>The gift is now fully covered.</li>
  {{- end}}
</ul>
{{- if .Message}}
<p>Message:</p>
<blockquote>{{.Message}}</blockquote>
{{- end}}
`))

var thankYouTemplate = template.Must(template.New("thanks").Parse(`<h2>Thank you, {{.ContributorName}}!</h2>
<p>We received your pledge of <strong>&euro; {{.Amount}}</strong> for <strong>{{.ItemName}}</strong>.</p>
{{- with .Payment}}
<p>To complete your gift:</p>
{{- if eq $.PaymentMethod "paypal"}}
<p>PayPal: <a href="{{.PayPalLink}}">{{.PayPalLink}}</a></p>
{{- else if eq $.PaymentMethod "satispay"}}
<p>Satispay: {{.SatispayHandle}}</p>
{{- else}}
<p>Bank transfer to {{.AccountHolder}}<br>IBAN: {{.IBAN}}<br>Reason: {{.TransferReason}}</p>
{{- end}}
{{- end}}
{{- if .Message}}
<p>Your message:</p>
<blockquote>{{.Message}}</blockquote>
{{- end}}
<p>With love,<br>{{.SiteTitle}}</p>
`))

type templateData struct {
	ContributionNotice
	Amount    string
	NewTotal  string
	Price     string
	Payment   *PaymentDetails
	SiteTitle string
}

func render(t *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

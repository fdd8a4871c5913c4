package notify

import (
	"fmt"

	"github.com/northstack/lead-intake/internal/leads"
)

// ConfirmationEmail builds the receipt confirmation sent to the visitor.
// The lead id is included as a reference.
func ConfirmationEmail(lead *leads.Lead) EmailMessage {
	return EmailMessage{
		To:      []string{lead.Email},
		Subject: "Thanks — we received your inquiry",
		Body: fmt.Sprintf("Hi %s,\n\nThanks for reaching out! We received your message.\n\nRef: %s\n",
			lead.Name, lead.ID),
		HTML: fmt.Sprintf("<p>Hi %s,</p><p>Thanks for reaching out! We received your message.</p><p><b>Ref:</b> %s</p>",
			lead.Name, lead.ID),
	}
}

// OwnerAlertEmail builds the internal notification sent to the configured
// owner addresses. The message text goes through verbatim; the HTML
// variant only escapes the angle brackets around the email address and
// wraps the message in a pre block so markup stays intact.
func OwnerAlertEmail(lead *leads.Lead, owners []string) EmailMessage {
	return EmailMessage{
		To:      owners,
		Subject: fmt.Sprintf("[Lead] %s <%s>", lead.Name, lead.Email),
		Body: fmt.Sprintf("LeadID: %s\nFrom: %s <%s>\n\nMessage:\n%s\n",
			lead.ID, lead.Name, lead.Email, lead.Message),
		HTML: fmt.Sprintf("<p><b>LeadID:</b> %s</p><p><b>From:</b> %s &lt;%s&gt;</p><p><b>Message</b>:</p><pre>%s</pre>",
			lead.ID, lead.Name, lead.Email, lead.Message),
	}
}

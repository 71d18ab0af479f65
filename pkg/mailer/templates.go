package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"goldentouch-booking/internal/data/entity"
)

// The HTML documents below carry the Golden Touch branding: navy header,
// gold dividers, monospace customer-id badge.

const brandFooter = `
<div style="background-color:#11204d; padding:25px 35px; text-align:center;">
  <p style="margin:0 0 8px 0; color:#e8d08d; font-size:16px; font-weight:600;">Golden Touch Cleaning Services</p>
  <p style="margin:0; color:#d1d5db; font-size:13px;">Calgary's Premier Mobile Cleaning Service</p>
  <p style="margin:12px 0 0; color:#9ca3af; font-size:12px;">Home Cleaning &bull; Car Wash &bull; Event Services</p>
</div>`

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Golden Touch - Booking Confirmation</title></head>
<body style="margin:0; padding:0; background:#f3f4f6; font-family:'Segoe UI', Tahoma, sans-serif;">
  <div style="max-width:620px; margin:40px auto; background:#fefdfb; border-radius:16px; overflow:hidden;">
    <div style="background:#11204d; padding:30px 20px; text-align:center;">
      <h1 style="margin:0; font-size:26px; color:#e8d08d; font-weight:600;">Your Booking is Confirmed</h1>
      <p style="margin:10px 0 0; color:#d1d5db; font-size:15px;">Thank you for trusting our premium cleaning services.</p>
    </div>
    <div style="padding:35px; font-size:15px; color:#333; line-height:1.7;">
      <p style="margin-top:0;">Hello <strong>{{.Name}}</strong>,</p>
      <p>We are pleased to confirm your cleaning appointment with
         <strong style="color:#b48a2a;">Golden Touch Cleaning Services</strong>.</p>
      <div style="background:#11204d; padding:18px; border-radius:8px; margin:20px 0; text-align:center;">
        <p style="margin:0 0 5px 0; color:#e8d08d; font-size:12px; text-transform:uppercase; letter-spacing:1px;">Customer ID</p>
        <p style="margin:0; color:#ffffff; font-size:22px; font-weight:bold; font-family:monospace; letter-spacing:2px;">{{.CustomerID}}</p>
      </div>
      <table width="100%" style="background:#f9f6ee; padding:22px; border-radius:12px; border:1px solid #e6dfcd;">
        <tr><td style="padding:8px; color:#11204d; font-weight:600;">Service:</td><td style="padding:8px;">{{.ServiceName}}</td></tr>
        <tr><td style="padding:8px; color:#11204d; font-weight:600;">Date:</td><td style="padding:8px;">{{.Date}}</td></tr>
        <tr><td style="padding:8px; color:#11204d; font-weight:600;">Time:</td><td style="padding:8px;">{{.Time}}</td></tr>
        <tr><td style="padding:8px; color:#11204d; font-weight:600;">Address:</td><td style="padding:8px;">{{.Address}}</td></tr>
        <tr><td style="padding:8px; color:#11204d; font-weight:600;">Phone:</td><td style="padding:8px;">{{.Phone}}</td></tr>
        {{if .Notes}}<tr><td style="padding:8px; color:#11204d; font-weight:600;">Additional Notes:</td><td style="padding:8px;">{{.Notes}}</td></tr>{{end}}
        {{if .Discount}}<tr><td style="padding:8px; color:#11204d; font-weight:600;">Discount:</td><td style="padding:8px;">{{.Discount}}%</td></tr>{{end}}
      </table>
      <p style="margin-top:28px;">If you need to adjust your appointment, reply directly to this message and our team will assist you.</p>
    </div>
    ` + brandFooter + `
  </div>
</body>
</html>`))

var businessAlertTmpl = template.Must(template.New("business_alert").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="margin:0; padding:0; font-family:Arial, sans-serif; background-color:#f5f5f5;">
  <div style="max-width:600px; margin:40px auto; background-color:#ffffff; border:1px solid #e0e0e0;">
    <div style="background-color:#10b981; padding:30px 40px; text-align:center;">
      <h1 style="color:#ffffff; margin:0; font-size:24px; font-weight:normal;">New Booking Received</h1>
    </div>
    <div style="padding:40px;">
      <h2 style="color:#333; margin:0 0 20px 0; font-size:18px;">Booking Information</h2>
      <table style="width:100%; border-collapse:collapse; margin-bottom:30px;">
        <tr><td style="padding:12px 0; color:#666; font-size:14px;">Booking ID</td><td style="padding:12px 0; text-align:right; font-family:monospace;">{{.BookingID}}</td></tr>
        <tr><td style="padding:12px 0; color:#666; font-size:14px;">Customer ID</td><td style="padding:12px 0; text-align:right; font-family:monospace; font-weight:600;">{{.CustomerID}}</td></tr>
        <tr><td style="padding:12px 0; color:#666; font-size:14px;">Service</td><td style="padding:12px 0; text-align:right; font-weight:600;">{{.ServiceName}}</td></tr>
        <tr><td style="padding:12px 0; color:#666; font-size:14px;">Date</td><td style="padding:12px 0; text-align:right; font-weight:600;">{{.Date}}</td></tr>
        <tr><td style="padding:12px 0; color:#666; font-size:14px;">Time</td><td style="padding:12px 0; text-align:right; font-weight:600;">{{.Time}}</td></tr>
        <tr><td style="padding:12px 0; color:#666; font-size:14px;">Status</td><td style="padding:12px 0; text-align:right; color:#10b981; font-weight:600;">{{.Status}}</td></tr>
      </table>
      <h2 style="color:#333; margin:0 0 20px 0; font-size:18px;">Customer Details</h2>
      <table style="width:100%; border-collapse:collapse;">
        <tr><td style="padding:12px 0; color:#666; font-size:14px;">Name</td><td style="padding:12px 0; text-align:right; font-weight:600;">{{.Name}}</td></tr>
        <tr><td style="padding:12px 0; color:#666; font-size:14px;">Phone</td><td style="padding:12px 0; text-align:right; font-weight:600;">{{.Phone}}</td></tr>
        <tr><td style="padding:12px 0; color:#666; font-size:14px;">Email</td><td style="padding:12px 0; text-align:right;">{{if .Email}}{{.Email}}{{else}}Not provided{{end}}</td></tr>
        <tr><td style="padding:12px 0; color:#666; font-size:14px;">Address</td><td style="padding:12px 0; text-align:right;">{{.Address}}</td></tr>
        {{if .VehicleType}}<tr><td style="padding:12px 0; color:#666; font-size:14px;">Vehicle Type</td><td style="padding:12px 0; text-align:right;">{{.VehicleType}}</td></tr>{{end}}
        {{if .Notes}}<tr><td style="padding:12px 0; color:#666; font-size:14px;">Notes</td><td style="padding:12px 0; text-align:right;">{{.Notes}}</td></tr>{{end}}
      </table>
      <p style="font-size:14px; color:#999; font-style:italic; margin-top:30px;">Automated notification from your booking system</p>
    </div>
  </div>
</body>
</html>`))

type customMessageData struct {
	Name       string
	CustomerID string
	Subject    string
	Message    string
}

var customMessageTmpl = template.Must(template.New("custom_message").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="margin:0; padding:0; font-family:Arial, sans-serif; background-color:#f3f4f6;">
  <div style="max-width:600px; margin:0 auto; background-color:#ffffff;">
    <div style="background:#11204d; padding:40px 20px; text-align:center;">
      <h1 style="color:#e8d08d; margin:0; font-size:28px; font-weight:bold;">{{.Subject}}</h1>
      <p style="color:#d1d5db; margin:10px 0 0; font-size:16px;">Golden Touch Cleaning Services</p>
    </div>
    <div style="padding:40px 30px;">
      <p style="font-size:18px; color:#1f2937; margin:0 0 20px 0;">Hi <strong>{{.Name}}</strong>,</p>
      {{if .CustomerID}}
      <div style="background:#11204d; padding:15px; border-radius:8px; margin-bottom:25px; text-align:center;">
        <p style="margin:0; color:#e8d08d; font-size:11px; text-transform:uppercase; letter-spacing:1px;">Your Customer ID</p>
        <p style="margin:5px 0 0; color:#ffffff; font-size:20px; font-weight:bold; font-family:monospace;">{{.CustomerID}}</p>
      </div>
      {{end}}
      <div style="background:#f9fafb; padding:25px; border-radius:12px; border-left:4px solid #b48a2a;">
        <p style="color:#1f2937; font-size:16px; line-height:1.8; margin:0; white-space:pre-wrap;">{{.Message}}</p>
      </div>
    </div>
    ` + brandFooter + `
  </div>
</body>
</html>`))

type campaignData struct {
	Name        string
	FrontendURL string
}

var mondayCampaignTmpl = template.Must(template.New("monday_campaign").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="margin:0; padding:0; font-family:Arial, sans-serif; background-color:#f5f5f5;">
  <div style="max-width:600px; margin:40px auto; background-color:#ffffff; border:1px solid #e0e0e0;">
    <div style="background-color:#2563eb; padding:30px 40px; text-align:center;">
      <h1 style="color:#ffffff; margin:0; font-size:24px; font-weight:normal;">Start Your Week Fresh!</h1>
    </div>
    <div style="padding:40px;">
      <p style="font-size:16px; color:#333;">Dear {{.Name}},</p>
      <p style="font-size:15px; color:#555; line-height:1.6;">Happy Monday! Start your week off right with a clean car or home.</p>
      <p style="font-size:15px; color:#555; line-height:1.6;">Our mobile service comes to you, saving you time so you can focus on what matters most.</p>
      <div style="background-color:#f8f9fa; padding:24px; margin:30px 0; border-left:3px solid #2563eb;">
        <h2 style="color:#333; margin:0 0 16px 0; font-size:18px;">Our Services</h2>
        <ul style="margin:0; padding-left:20px; color:#555; line-height:1.8;">
          <li>Car Detailing (Exterior &amp; Interior)</li>
          <li>Home &amp; Property Cleaning</li>
          <li>Event Cleaning Services</li>
          <li>Contract Cleaning</li>
        </ul>
      </div>
      <div style="text-align:center; margin-bottom:30px;">
        <a href="{{.FrontendURL}}" style="display:inline-block; background-color:#2563eb; color:#ffffff; text-decoration:none; padding:14px 32px; border-radius:4px; font-size:16px; font-weight:600;">Book Your Service Now</a>
      </div>
      <p style="font-size:14px; color:#666; text-align:center; font-style:italic;">Mobile service available across Calgary - We come to you!</p>
    </div>
    ` + brandFooter + `
  </div>
</body>
</html>`))

var fridayCampaignTmpl = template.Must(template.New("friday_campaign").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="margin:0; padding:0; font-family:Arial, sans-serif; background-color:#f5f5f5;">
  <div style="max-width:600px; margin:40px auto; background-color:#ffffff; border:1px solid #e0e0e0;">
    <div style="background-color:#10b981; padding:30px 40px; text-align:center;">
      <h1 style="color:#ffffff; margin:0; font-size:24px; font-weight:normal;">Weekend Ready?</h1>
    </div>
    <div style="padding:40px;">
      <p style="font-size:16px; color:#333;">Dear {{.Name}},</p>
      <p style="font-size:15px; color:#555; line-height:1.6;">The weekend is almost here! Make your plans even better with a freshly cleaned car or home.</p>
      <p style="font-size:15px; color:#555; line-height:1.6;">Whether you're planning a road trip, hosting guests, or just want to relax in a clean space, we have you covered.</p>
      <div style="background-color:#ecfdf5; padding:24px; margin:30px 0; border-left:3px solid #10b981;">
        <h2 style="color:#059669; margin:0 0 12px 0; font-size:18px;">Why Choose Us?</h2>
        <ul style="margin:0; padding-left:20px; color:#555; line-height:1.8;">
          <li>Mobile Service - We come to your location</li>
          <li>Professional &amp; Reliable Team</li>
          <li>Flexible Scheduling</li>
          <li>100% Satisfaction Guaranteed</li>
        </ul>
      </div>
      <div style="text-align:center; margin-bottom:30px;">
        <a href="{{.FrontendURL}}" style="display:inline-block; background-color:#10b981; color:#ffffff; text-decoration:none; padding:14px 32px; border-radius:4px; font-size:16px; font-weight:600;">Book Now for the Weekend</a>
      </div>
    </div>
    ` + brandFooter + `
  </div>
</body>
</html>`))

type contactInquiryData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

var contactInquiryTmpl = template.Must(template.New("contact_inquiry").Parse(`<html>
<body style="font-family:Arial, sans-serif;">
  <h2>New message from website</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Subject:</strong> {{.Subject}}</p>
  <hr/>
  <p style="white-space:pre-wrap;">{{.Message}}</p>
</body>
</html>`))

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// RenderConfirmation builds the customer confirmation message.
func RenderConfirmation(booking *entity.Booking) (subject, html string, err error) {
	html, err = render(confirmationTmpl, booking)
	return "Golden Touch - Booking Confirmation", html, err
}

// RenderBusinessAlert builds the new-booking notification for the business.
func RenderBusinessAlert(booking *entity.Booking) (subject, html string, err error) {
	subject = fmt.Sprintf("New Booking: %s - %s", booking.ServiceName, booking.Date)
	html, err = render(businessAlertTmpl, booking)
	return subject, html, err
}

// RenderCustomMessage builds an ad hoc customer message.
func RenderCustomMessage(name, customerID, subject, message string) (string, error) {
	return render(customMessageTmpl, customMessageData{
		Name:       name,
		CustomerID: customerID,
		Subject:    subject,
		Message:    message,
	})
}

// RenderCampaign builds the Monday or Friday marketing message.
func RenderCampaign(campaignType, name, frontendURL string) (subject, html string, err error) {
	data := campaignData{Name: name, FrontendURL: frontendURL}

	switch campaignType {
	case "monday":
		subject = "Start Your Week Fresh - Golden Touch Cleaning Services"
		html, err = render(mondayCampaignTmpl, data)
	case "friday":
		subject = "Weekend Ready? Get Your Cleaning Done - Golden Touch"
		html, err = render(fridayCampaignTmpl, data)
	default:
		err = fmt.Errorf("unknown campaign type: %s", campaignType)
	}

	return subject, html, err
}

// RenderContactInquiry builds the website contact-form forward.
func RenderContactInquiry(name, email, subject, message string) (string, string, error) {
	fullSubject := fmt.Sprintf("New website inquiry from %s: %s", name, subject)
	html, err := render(contactInquiryTmpl, contactInquiryData{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	})
	return fullSubject, html, err
}

package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// InquiryMail carries the fields both inquiry emails need.
type InquiryMail struct {
	Name       string
	Email      string
	Phone      string
	Company    string
	Subject    string
	Message    string
	ProductSku string
}

type IEmailService interface {
	SendInquiryNotification(m InquiryMail) error
	SendInquiryConfirmation(m InquiryMail) error
	SendInquiryReply(toEmail, name, subject, reply string) error
	SendNewsletterWelcome(toEmail, name string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	ownerEmail  string
	siteURL     string
}

func NewEmailService(host string, port int, username, password, senderName, ownerEmail, siteURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
		ownerEmail:  ownerEmail,
		siteURL:     siteURL,
	}
}

func (s *emailService) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return s.dialer.DialAndSend(m)
}

// SendInquiryNotification alerts the site owner about a new contact inquiry.
func (s *emailService) SendInquiryNotification(mail InquiryMail) error {
	optional := ""
	if mail.Phone != "" {
		optional += fmt.Sprintf("<p><strong>Phone:</strong> %s</p>", mail.Phone)
	}
	if mail.Company != "" {
		optional += fmt.Sprintf("<p><strong>Company:</strong> %s</p>", mail.Company)
	}
	if mail.ProductSku != "" {
		optional += fmt.Sprintf("<p><strong>Product:</strong> %s</p>", mail.ProductSku)
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New Contact Inquiry</h2>
			<p><strong>From:</strong> %s &lt;%s&gt;</p>
			%s
			<p><strong>Subject:</strong> %s</p>
			<p>%s</p>
		</div>
	`, mail.Name, mail.Email, optional, mail.Subject, mail.Message)

	return s.send(s.ownerEmail, "New inquiry: "+mail.Subject, body)
}

// SendInquiryConfirmation acknowledges receipt to the customer.
func (s *emailService) SendInquiryConfirmation(mail InquiryMail) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Thank you for contacting Placid Asia</h2>
			<p>Dear %s,</p>
			<p>We received your inquiry "<strong>%s</strong>" and our team will get back to you within one business day.</p>
			<p>Your message:</p>
			<blockquote style="border-left: 3px solid #ccc; padding-left: 10px; color: #555;">%s</blockquote>
			<p>Best regards,<br/>Placid Asia Team</p>
		</div>
	`, mail.Name, mail.Subject, mail.Message)

	return s.send(mail.Email, "We received your inquiry", body)
}

func (s *emailService) SendInquiryReply(toEmail, name, subject, reply string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<p>Dear %s,</p>
			<p>%s</p>
			<p>Best regards,<br/>Placid Asia Team</p>
		</div>
	`, name, reply)

	return s.send(toEmail, "Re: "+subject, body)
}

func (s *emailService) SendNewsletterWelcome(toEmail, name string) error {
	greeting := "Hello"
	if name != "" {
		greeting = "Hello " + name
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to the Placid Asia newsletter</h2>
			<p>%s,</p>
			<p>Thanks for subscribing. You will receive occasional updates on acoustic
			measurement equipment, application notes and events.</p>
			<p>Browse our catalog at <a href="%s">%s</a>.</p>
		</div>
	`, greeting, s.siteURL, s.siteURL)

	return s.send(toEmail, "Welcome to Placid Asia", body)
}

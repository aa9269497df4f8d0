package mailer

import (
	"fmt"
	"time"

	"circletel-admin-be/internal/entity"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendServiceActivated(order *entity.Order, prorataAmount float64, nextBillingDate time.Time) error
	SendInstallationScheduled(order *entity.Order, scheduledDate time.Time) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	portalURL   string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName, portalURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
		portalURL:   portalURL,
	}
}

func (s *emailService) from() string {
	if s.senderName != "" {
		return fmt.Sprintf("%s <%s>", s.senderName, s.senderEmail)
	}
	return s.senderEmail
}

func (s *emailService) SendServiceActivated(order *entity.Order, prorataAmount float64, nextBillingDate time.Time) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from())
	m.SetHeader("To", order.CustomerEmail)
	m.SetHeader("Subject", "Welcome to CircleTel - Your Service is Active!")

	accountNumber := ""
	if order.AccountNumber != nil {
		accountNumber = *order.AccountNumber
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to CircleTel!</h2>
			<p>Hi %s,</p>
			<p>Congratulations! Your CircleTel internet service has been successfully activated and is ready to use.</p>
			<h3>Your Service Details</h3>
			<table style="border-collapse: collapse;">
				<tr><td style="padding: 4px 12px 4px 0;"><b>Order Number:</b></td><td>%s</td></tr>
				<tr><td style="padding: 4px 12px 4px 0;"><b>Account Number:</b></td><td>%s</td></tr>
				<tr><td style="padding: 4px 12px 4px 0;"><b>Package:</b></td><td>%s</td></tr>
				<tr><td style="padding: 4px 12px 4px 0;"><b>Speed:</b></td><td>%s</td></tr>
			</table>
			<h3>Billing</h3>
			<p>A pro-rata amount of <b>R%.2f</b> covers the period until your first billing date on <b>%s</b>. From then on you will be billed R%.2f monthly.</p>
			<p><a href="%s" style="background-color: #F5831F; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Go to Customer Portal</a></p>
			<p>Need help? Our support team is available 24/7.</p>
		</div>
	`,
		order.CustomerName,
		order.OrderNumber,
		accountNumber,
		order.PackageName,
		order.PackageSpeed,
		prorataAmount,
		nextBillingDate.Format("2 January 2006"),
		order.PackagePrice,
		s.portalURL,
	)

	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}

func (s *emailService) SendInstallationScheduled(order *entity.Order, scheduledDate time.Time) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from())
	m.SetHeader("To", order.CustomerEmail)
	m.SetHeader("Subject", "Your CircleTel Installation is Scheduled")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Installation Scheduled</h2>
			<p>Hi %s,</p>
			<p>Your installation for order <b>%s</b> has been scheduled for <b>%s</b>.</p>
			<p>Address: %s</p>
			<p>A technician will contact you before arrival. Please make sure someone over 18 is present.</p>
		</div>
	`,
		order.CustomerName,
		order.OrderNumber,
		scheduledDate.Format("Monday, 2 January 2006"),
		order.InstallationAddress,
	)

	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}

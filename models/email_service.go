package models

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) SendLowStockAlert(toEmail string, products []Product) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Peringatan Stok Menipis - %d Produk", len(products)))

	rows := ""
	for _, p := range products {
		rows += fmt.Sprintf(`
            <tr>
                <td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td>
                <td style="padding: 8px; border-bottom: 1px solid #eee; text-align: center; color: #dc2626; font-weight: bold;">%d</td>
            </tr>`, p.Name, p.Stock)
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <h2 style="color: #333;">Stok Menipis</h2>
        <p>Produk berikut memiliki stok di bawah batas minimal (%d):</p>
        <table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
            <tr>
                <th style="padding: 8px; text-align: left; border-bottom: 2px solid #ddd;">Produk</th>
                <th style="padding: 8px; text-align: center; border-bottom: 2px solid #ddd;">Sisa Stok</th>
            </tr>
            %s
        </table>
        <p style="color: #666; font-size: 12px;">Email otomatis dari sistem kasir. Mohon tidak membalas.</p>
    </div>
</body>
</html>
	`, LowStockThreshold, rows)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"hotel-booking/models"
)

// Mailer sends booking confirmations over SMTP. With no credentials it only
// logs what it would have sent.
type Mailer struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
}

// lineBreaks flattens CR and LF independently so values stay on one line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func safe(s string) string {
	return lineBreaks.Replace(strings.TrimSpace(s))
}

func (m *Mailer) configured() bool {
	return m.Host != "" && m.Port != "" && m.Username != "" && m.Password != ""
}

func (m *Mailer) SendBookingConfirmation(user *models.User, b *models.Booking) error {
	if user == nil || strings.TrimSpace(user.Email) == "" {
		return fmt.Errorf("booking %d: recipient has no email", b.ID)
	}

	hotel, room := "", ""
	if b.Hotel != nil {
		hotel = safe(b.Hotel.Name)
	}
	if b.Room != nil {
		room = safe(b.Room.Number)
	}
	checkIn := time.Time(b.CheckInDate).Format("2006-01-02")
	checkOut := time.Time(b.CheckOutDate).Format("2006-01-02")

	if !m.configured() {
		log.Printf("[MOCK EMAIL] booking confirmation to:%s ref:%s hotel:%s room:%s %s..%s",
			user.Email, b.ReferenceCode, hotel, room, checkIn, checkOut)
		return nil
	}

	fromName := m.FromName
	if fromName == "" {
		fromName = "Hotel Booking"
	}
	from := fmt.Sprintf("%s <%s>", fromName, m.Username)
	subject := fmt.Sprintf("Booking confirmed: %s", b.ReferenceCode)

	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your booking is confirmed.\n\n"+
			"Reference: %s\n"+
			"Hotel: %s\n"+
			"Room: %s\n"+
			"Check-in: %s\n"+
			"Check-out: %s\n"+
			"Nights: %d\n\n"+
			"We look forward to your stay.\n",
		safe(user.Username), b.ReferenceCode, hotel, room, checkIn, checkOut, b.Nights(),
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", user.Email))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body)

	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)
	if err := smtp.SendMail(addr, auth, m.Username, []string{user.Email}, []byte(sb.String())); err != nil {
		log.Printf("Failed to send booking confirmation to %s: %v", user.Email, err)
		return err
	}

	log.Printf("Booking confirmation sent to %s (ref %s)", user.Email, b.ReferenceCode)
	return nil
}

package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"robles/config"
	"robles/infras/otel"
	"robles/shared/constant"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

const datetimeLayout = "2006-01-02T15:04"

// Confirmation carries everything needed to confirm a booking by email.
type Confirmation struct {
	To          string
	GuestName   string
	BookingType string
	ItemName    string
	CheckIn     string
	CheckOut    string
	Guests      int
	TotalPrice  float64
}

// Mailer sends transactional email. Sending is best-effort: a failed or
// disabled send reports false instead of an error so bookings never fail on
// SMTP problems.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, confirmation Confirmation) (sent bool)
}

type gomailImpl struct {
	config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Mailer {
	smtp := cfg.External.SMTP
	if smtp.Host == "" || smtp.User == "" || smtp.Password == "" {
		log.Warn().Msg("SMTP not configured, booking confirmation email disabled")
	}

	return &gomailImpl{
		config: cfg,
		otel:   otl,
	}
}

func (m *gomailImpl) SendBookingConfirmation(ctx context.Context, confirmation Confirmation) (sent bool) {
	_, scope := m.otel.NewScope(ctx, constant.OtelMailerScopeName, constant.OtelMailerScopeName+".SendBookingConfirmation")
	defer scope.End()

	smtp := m.config.External.SMTP
	if smtp.Host == "" || smtp.User == "" || smtp.Password == "" {
		return false
	}

	from := smtp.From
	if from == "" {
		from = smtp.User
	}

	subject, plain, html := BuildConfirmation(confirmation)

	message := gomail.NewMessage()
	message.SetHeader("From", from)
	message.SetHeader("To", confirmation.To)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", plain)
	message.AddAlternative("text/html", html)

	dialer := gomail.NewDialer(smtp.Host, smtp.Port, smtp.User, smtp.Password)

	err := dialer.DialAndSend(message)
	if err != nil {
		log.Error().Err(err).Str("to", confirmation.To).Msg("Failed to send booking confirmation email")
		scope.TraceError(err)

		return false
	}

	log.Info().Str("to", confirmation.To).Msg("Booking confirmation email sent")

	return true
}

// FormatBookingDates renders the date block of a confirmation. Venue
// bookings that carry a time component collapse into a single
// "Fecha y hora" row; everything else shows check-in and check-out
// dates verbatim.
func FormatBookingDates(bookingType, checkIn, checkOut string) (labelIn, valueIn, labelOut, valueOut string) {
	if bookingType == constant.BookingTypeVenue && strings.Contains(checkIn, "T") && strings.Contains(checkOut, "T") {
		in, errIn := time.Parse(datetimeLayout, truncate(checkIn, len(datetimeLayout)))
		out, errOut := time.Parse(datetimeLayout, truncate(checkOut, len(datetimeLayout)))

		if errIn == nil && errOut == nil {
			value := fmt.Sprintf("%s, %s - %s", in.Format("02/01/2006"), in.Format("15:04"), out.Format("15:04"))

			return "Fecha y hora", value, "", ""
		}
	}

	return "Fecha entrada", checkIn, "Fecha salida", checkOut
}

// FormatMoney renders an amount as whole COP with thousands separators.
func FormatMoney(amount float64) string {
	rounded := int64(math.Round(amount))

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	digits := strconv.FormatInt(rounded, 10)

	var b strings.Builder

	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-" + b.String() + " COP"
	}

	return b.String() + " COP"
}

// BuildConfirmation renders the subject and both bodies of a booking
// confirmation email.
func BuildConfirmation(c Confirmation) (subject, plain, html string) {
	subject = "Confirmación de reserva - Hotel Los Robles"

	typeLabel := "Salón"
	guestsLabel := "Asistentes"
	guestsLabelPlain := "asistentes"

	if c.BookingType == constant.BookingTypeRoom {
		typeLabel = "Habitación"
		guestsLabel = "Huéspedes"
		guestsLabelPlain = "huéspedes"
	}

	labelIn, valueIn, labelOut, valueOut := FormatBookingDates(c.BookingType, c.CheckIn, c.CheckOut)

	dateLines := fmt.Sprintf("%s: %s\n", labelIn, valueIn)
	if labelOut != "" && valueOut != "" {
		dateLines += fmt.Sprintf("%s: %s\n", labelOut, valueOut)
	}

	total := FormatMoney(c.TotalPrice)

	plain = fmt.Sprintf(`Hola %s,

Te confirmamos tu reserva en Hotel Los Robles.

%s: %s
%sNúmero de %s: %d
Total: %s

Cualquier cambio o consulta, contáctanos por teléfono o WhatsApp.

Hotel Los Robles
`, c.GuestName, typeLabel, c.ItemName, dateLines, guestsLabelPlain, c.Guests, total)

	checkOutRow := ""
	if labelOut != "" && valueOut != "" {
		checkOutRow = fmt.Sprintf(`<tr><td style="padding: 12px 16px; color:#6b7280; font-size: 14px; border-bottom: 1px solid #e5e7eb;">%s</td><td style="padding: 12px 16px; color:#1f2937; font-size: 14px; border-bottom: 1px solid #e5e7eb;">%s</td></tr>`, labelOut, valueOut)
	}

	html = fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Confirmación de reserva - Hotel Los Robles</title>
</head>
<body style="margin:0; padding:0; background-color:#f4f4f5; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;">
  <table role="presentation" width="100%%" cellspacing="0" cellpadding="0" style="background-color:#f4f4f5;">
    <tr>
      <td align="center" style="padding: 32px 16px;">
        <table role="presentation" width="100%%" cellspacing="0" cellpadding="0" style="max-width: 560px; background-color:#ffffff; border-radius: 12px; box-shadow: 0 4px 24px rgba(0,0,0,0.08); overflow: hidden;">
          <tr>
            <td style="background-color:#1e3a5f; padding: 28px 32px; text-align: center;">
              <h1 style="margin:0; color:#ffffff; font-size: 24px; font-weight: 600; letter-spacing: 0.5px;">Hotel Los Robles</h1>
              <p style="margin: 8px 0 0 0; color: rgba(255,255,255,0.85); font-size: 14px;">Confirmación de reserva</p>
            </td>
          </tr>
          <tr>
            <td style="padding: 28px 32px 16px 32px;">
              <p style="margin:0 0 8px 0; color:#374151; font-size: 16px; line-height: 1.5;">Hola <strong style="color:#1e3a5f;">%s</strong>,</p>
              <p style="margin:0; color:#6b7280; font-size: 15px; line-height: 1.6;">Te confirmamos tu reserva. A continuación los detalles:</p>
            </td>
          </tr>
          <tr>
            <td style="padding: 0 32px 24px 32px;">
              <table role="presentation" width="100%%" cellspacing="0" cellpadding="0" style="border-collapse: collapse; border: 1px solid #e5e7eb; border-radius: 8px; overflow: hidden;">
                <tr style="background-color:#f9fafb;">
                  <td style="padding: 12px 16px; color:#6b7280; font-size: 14px; border-bottom: 1px solid #e5e7eb;">%s</td>
                  <td style="padding: 12px 16px; color:#1f2937; font-size: 14px; font-weight: 600; border-bottom: 1px solid #e5e7eb;">%s</td>
                </tr>
                <tr>
                  <td style="padding: 12px 16px; color:#6b7280; font-size: 14px; border-bottom: 1px solid #e5e7eb;">%s</td>
                  <td style="padding: 12px 16px; color:#1f2937; font-size: 14px; border-bottom: 1px solid #e5e7eb;">%s</td>
                </tr>
                %s
                <tr>
                  <td style="padding: 12px 16px; color:#6b7280; font-size: 14px; border-bottom: 1px solid #e5e7eb;">%s</td>
                  <td style="padding: 12px 16px; color:#1f2937; font-size: 14px; border-bottom: 1px solid #e5e7eb;">%d</td>
                </tr>
                <tr style="background-color:#fffbeb;">
                  <td style="padding: 14px 16px; color:#92400e; font-size: 14px; font-weight: 600;">Total</td>
                  <td style="padding: 14px 16px; color:#b45309; font-size: 18px; font-weight: 700;">%s</td>
                </tr>
              </table>
            </td>
          </tr>
          <tr>
            <td style="padding: 0 32px 24px 32px;">
              <p style="margin:0 0 12px 0; color:#6b7280; font-size: 14px; line-height: 1.5;">Cualquier cambio o consulta, contáctanos:</p>
              <table role="presentation" cellspacing="0" cellpadding="0">
                <tr>
                  <td style="padding: 4px 0;"><a href="tel:+573104374492" style="color:#1e3a5f; font-size: 14px; font-weight: 500; text-decoration: none;">📞 310 437 4492</a></td>
                </tr>
                <tr>
                  <td style="padding: 4px 0;"><a href="mailto:hotelroble@hotmail.com" style="color:#1e3a5f; font-size: 14px; font-weight: 500; text-decoration: none;">✉️ hotelroble@hotmail.com</a></td>
                </tr>
                <tr>
                  <td style="padding: 4px 0;"><a href="https://wa.me/573104374492" style="color:#16a34a; font-size: 14px; font-weight: 500; text-decoration: none;">WhatsApp</a></td>
                </tr>
              </table>
            </td>
          </tr>
          <tr>
            <td style="background-color:#f9fafb; padding: 20px 32px; text-align: center; border-top: 1px solid #e5e7eb;">
              <p style="margin:0; color:#9ca3af; font-size: 13px;">Hotel Los Robles · Quibdó, Chocó</p>
              <p style="margin: 4px 0 0 0; color:#9ca3af; font-size: 12px;">Gracias por tu preferencia</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`, c.GuestName, typeLabel, c.ItemName, labelIn, valueIn, checkOutRow, guestsLabel, c.Guests, total)

	return subject, plain, html
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}

	return s
}

package mailer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"robles/config"
	"robles/infras/mailer"
	"robles/infras/otel/mocks"
)

func TestFormatBookingDates(t *testing.T) {
	tests := []struct {
		name        string
		bookingType string
		checkIn     string
		checkOut    string
		wantLabelIn string
		wantValueIn string
		wantLabOut  string
		wantValOut  string
	}{
		{
			name:        "room booking keeps plain dates",
			bookingType: "room",
			checkIn:     "2024-05-01",
			checkOut:    "2024-05-03",
			wantLabelIn: "Fecha entrada",
			wantValueIn: "2024-05-01",
			wantLabOut:  "Fecha salida",
			wantValOut:  "2024-05-03",
		},
		{
			name:        "venue booking with times collapses to one row",
			bookingType: "venue",
			checkIn:     "2024-05-01T14:00",
			checkOut:    "2024-05-01T18:00",
			wantLabelIn: "Fecha y hora",
			wantValueIn: "01/05/2024, 14:00 - 18:00",
			wantLabOut:  "",
			wantValOut:  "",
		},
		{
			name:        "venue booking without times falls back",
			bookingType: "venue",
			checkIn:     "2024-05-01",
			checkOut:    "2024-05-02",
			wantLabelIn: "Fecha entrada",
			wantValueIn: "2024-05-01",
			wantLabOut:  "Fecha salida",
			wantValOut:  "2024-05-02",
		},
		{
			name:        "venue booking with malformed times falls back",
			bookingType: "venue",
			checkIn:     "2024-05-01Tmorning",
			checkOut:    "2024-05-01Tevening",
			wantLabelIn: "Fecha entrada",
			wantValueIn: "2024-05-01Tmorning",
			wantLabOut:  "Fecha salida",
			wantValOut:  "2024-05-01Tevening",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labelIn, valueIn, labelOut, valueOut := mailer.FormatBookingDates(tt.bookingType, tt.checkIn, tt.checkOut)

			assert.Equal(t, tt.wantLabelIn, labelIn)
			assert.Equal(t, tt.wantValueIn, valueIn)
			assert.Equal(t, tt.wantLabOut, labelOut)
			assert.Equal(t, tt.wantValOut, valueOut)
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{
			name:   "no separator under a thousand",
			amount: 950,
			want:   "950 COP",
		},
		{
			name:   "thousands separators",
			amount: 1500000,
			want:   "1,500,000 COP",
		},
		{
			name:   "rounds fractions away",
			amount: 120000.6,
			want:   "120,001 COP",
		},
		{
			name:   "zero",
			amount: 0,
			want:   "0 COP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mailer.FormatMoney(tt.amount))
		})
	}
}

func TestBuildConfirmation(t *testing.T) {
	subject, plain, html := mailer.BuildConfirmation(mailer.Confirmation{
		To:          "guest@example.com",
		GuestName:   "Ana",
		BookingType: "room",
		ItemName:    "Suite 101",
		CheckIn:     "2024-05-01",
		CheckOut:    "2024-05-03",
		Guests:      2,
		TotalPrice:  450000,
	})

	assert.Equal(t, "Confirmación de reserva - Hotel Los Robles", subject)
	assert.Contains(t, plain, "Hola Ana,")
	assert.Contains(t, plain, "Habitación: Suite 101")
	assert.Contains(t, plain, "Fecha entrada: 2024-05-01")
	assert.Contains(t, plain, "Fecha salida: 2024-05-03")
	assert.Contains(t, plain, "Número de huéspedes: 2")
	assert.Contains(t, plain, "Total: 450,000 COP")
	assert.Contains(t, html, "<strong style=\"color:#1e3a5f;\">Ana</strong>")
	assert.Contains(t, html, "450,000 COP")

	_, plain, html = mailer.BuildConfirmation(mailer.Confirmation{
		GuestName:   "Luis",
		BookingType: "venue",
		ItemName:    "Salón Principal",
		CheckIn:     "2024-05-01T14:00",
		CheckOut:    "2024-05-01T18:00",
		Guests:      80,
		TotalPrice:  1200000,
	})

	assert.Contains(t, plain, "Salón: Salón Principal")
	assert.Contains(t, plain, "Fecha y hora: 01/05/2024, 14:00 - 18:00")
	assert.Contains(t, plain, "Número de asistentes: 80")
	assert.NotContains(t, plain, "Fecha salida")
	assert.Contains(t, html, "Asistentes")
	assert.Equal(t, 1, strings.Count(html, "Fecha y hora"))
}

func TestSendBookingConfirmation_DisabledWithoutSMTP(t *testing.T) {
	cfg := &config.Config{}

	m := mailer.New(cfg, mocks.NewOtel())

	sent := m.SendBookingConfirmation(context.Background(), mailer.Confirmation{
		To:        "guest@example.com",
		GuestName: "Ana",
	})

	assert.False(t, sent)
}

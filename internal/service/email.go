package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"frota-backend/internal/domain"
	"frota-backend/internal/logger"
)

type emailService struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

func NewEmailService(apiKey, fromName, fromEmail string) EmailService {
	return &emailService{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (s *emailService) SendLowTreadAlert(ctx context.Context, to []string, tires []domain.Tire) error {
	if len(to) == 0 || len(tires) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("Pneus montados com sulco abaixo do limite:\n\n")
	for _, t := range tires {
		depth := "?"
		if t.TreadDepthMm != nil {
			depth = fmt.Sprintf("%.1f mm", *t.TreadDepthMm)
		}
		vehicle := "-"
		if t.CurrentVehicleID != nil {
			vehicle = *t.CurrentVehicleID
		}
		position := "-"
		if t.CurrentPosition != nil {
			position = t.CurrentPosition.Label()
		}
		fmt.Fprintf(&b, "- Fogo %s (%s %s): %s, veículo %s, posição %s\n",
			t.FireNumber, t.Brand, t.Model, depth, vehicle, position)
	}
	body := b.String()
	subject := fmt.Sprintf("Alerta: %d pneu(s) com sulco baixo", len(tires))

	from := mail.NewEmail(s.fromName, s.fromEmail)
	for _, addr := range to {
		message := mail.NewSingleEmail(from, subject, mail.NewEmail("", addr), body, "")
		resp, err := s.client.SendWithContext(ctx, message)
		if err != nil {
			return fmt.Errorf("sending low tread alert to %s: %w", addr, err)
		}
		if resp.StatusCode >= 400 {
			return fmt.Errorf("sending low tread alert to %s: status %d", addr, resp.StatusCode)
		}
	}
	logger.WithService("email").Info("low tread alert sent",
		"recipients", len(to), "tires", len(tires))
	return nil
}

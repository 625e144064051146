package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/barberbook/barberbook-api/internal/config"
	"github.com/barberbook/barberbook-api/internal/models"
)

// MercadoPago creates one checkout preference per booking so the
// customer can pay for the service up front. Bookings stand on their
// own; a failed preference only costs the payment link.
type MercadoPago struct {
	prefs preference.Client
}

func NewMercadoPago(cfg *config.Config) (*MercadoPago, error) {
	mpCfg, err := mpconfig.New(cfg.MercadoPagoToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{
		prefs: preference.NewClient(mpCfg),
	}, nil
}

func (m *MercadoPago) CheckoutURL(
	ctx context.Context,
	shop *models.Barbershop,
	svc *models.Service,
	reference string,
) (string, error) {

	req := preference.Request{
		ExternalReference: reference,
		Items: []preference.ItemsRequest{
			{
				Title:       fmt.Sprintf("%s - %s", shop.Name, svc.Name),
				Description: svc.Description,
				Quantity:    1,
				UnitPrice:   svc.Price,
			},
		},
	}

	resp, err := m.prefs.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create preference: %w", err)
	}
	return resp.InitPoint, nil
}

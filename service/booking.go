package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"kinobilet-cli/model"
)

// ReserveTicket marks one ticket reserved. The token must belong to the
// user making the reservation; reservations are not batched server-side.
func (c *Client) ReserveTicket(ctx context.Context, token string, ticketId string) error {
	if token == "" {
		return errors.New("auth token is required")
	}
	if ticketId == "" {
		return errors.New("ticket id is required")
	}
	endpoint := fmt.Sprintf("%s/tickets/%s/reserve", c.baseURL, url.PathEscape(ticketId))
	return c.postJSON(ctx, endpoint, token, struct{}{}, nil)
}

// CreatePurchase bundles reserved tickets into a purchase awaiting payment.
func (c *Client) CreatePurchase(ctx context.Context, token string, ticketIds []string) (model.Purchase, error) {
	if token == "" {
		return model.Purchase{}, errors.New("auth token is required")
	}
	if len(ticketIds) == 0 {
		return model.Purchase{}, errors.New("at least one ticket id is required")
	}
	endpoint := fmt.Sprintf("%s/purchases", c.baseURL)
	body := struct {
		TicketIds []string `json:"ticketIds"`
	}{TicketIds: ticketIds}

	var purchase model.Purchase
	if err := c.postJSON(ctx, endpoint, token, body, &purchase); err != nil {
		return model.Purchase{}, err
	}
	return purchase, nil
}

// ProcessPayment submits card details for a purchase. The server owns all
// payment logic; the client only relays the form fields.
func (c *Client) ProcessPayment(ctx context.Context, token string, payment model.PaymentRequest) error {
	if token == "" {
		return errors.New("auth token is required")
	}
	if payment.PurchaseId == "" {
		return errors.New("purchase id is required")
	}
	endpoint := fmt.Sprintf("%s/payments/process", c.baseURL)
	return c.postJSON(ctx, endpoint, token, payment, nil)
}

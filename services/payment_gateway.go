package services

import (
	razorpay "github.com/razorpay/razorpay-go"
)

// OrderGateway creates payment orders at the gateway. Amounts are in the
// currency's minor unit.
type OrderGateway interface {
	CreateOrder(amount int64, currency, receipt string) (map[string]interface{}, error)
}

type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

func (g *RazorpayGateway) CreateOrder(amount int64, currency, receipt string) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	return g.client.Order.Create(data, nil)
}

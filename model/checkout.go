package model

// Purchase is a confirmed bundle of reserved tickets awaiting payment.
type Purchase struct {
	Id        string   `json:"id"`
	TicketIds []string `json:"ticketIds"`
}

// CardDetails is transient payment form state, cleared after payment.
type CardDetails struct {
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	CardHolderName string `json:"cardHolderName"`
}

type PaymentRequest struct {
	PurchaseId     string `json:"purchaseId"`
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	CardHolderName string `json:"cardHolderName"`
}

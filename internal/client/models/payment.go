package models

// TransactionRequest starts a purchase through the payment gateway.
type TransactionRequest struct {
	PaymentSourceID int `json:"paymentSourceId" validate:"required,gt=0"`
}

// TransactionResponse is the gateway transaction created by the backend.
type TransactionResponse struct {
	Data struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"data"`
}

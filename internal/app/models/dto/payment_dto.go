package dto

// CreateIntentRequest is the body of POST /create-payment-intent. Price is a
// decimal currency value; it is converted to the smallest currency unit before
// the processor call.
type CreateIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0" example:"241.0"`
}

// CreateIntentResponse carries the opaque secret the client completes the
// payment with out-of-band.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret" example:"pi_3NQ..._secret_..."`
}

// SettlePaymentRequest is the body of POST /payments
type SettlePaymentRequest struct {
	StudentEmail  string   `json:"studentEmail" binding:"required,email" example:"student@lingora.app"`
	Amount        float64  `json:"amount" binding:"required,gt=0" example:"241.0"`
	TransactionID string   `json:"transactionId" binding:"required" example:"pi_3NQ..."`
	CartItemIDs   []int64  `json:"cartItemIds" binding:"required" example:"3,4"`
	ClassNames    []string `json:"classNames,omitempty"`
}

// SettlementResponse reports both settlement steps. The two operations are
// independent: the payment row can exist even when cart removal failed.
type SettlementResponse struct {
	InsertResult MutationResult `json:"insertResult"`
	DeleteResult MutationResult `json:"deleteResult"`
}

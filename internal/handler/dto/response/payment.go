package response

import "baby-registry/internal/pkg/config"

type PaymentDetailsResponse struct {
	PayPalLink     string `json:"paypalLink,omitempty"`
	SatispayHandle string `json:"satispayHandle,omitempty"`
	IBAN           string `json:"iban,omitempty"`
	AccountHolder  string `json:"accountHolder,omitempty"`
	TransferReason string `json:"transferReason,omitempty"`
}

func FromRegistryConfig(cfg config.RegistryConfig) *PaymentDetailsResponse {
	return &PaymentDetailsResponse{
		PayPalLink:     cfg.PayPalLink,
		SatispayHandle: cfg.SatispayHandle,
		IBAN:           cfg.IBAN,
		AccountHolder:  cfg.AccountHolder,
		TransferReason: cfg.TransferReason,
	}
}

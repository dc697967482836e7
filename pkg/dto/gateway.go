// Package dto contains the request payloads sent to the external trading
// gateway. Field names follow the gateway's wire contract, not ours.
package dto

import "github.com/google/uuid"

// DepositFiatRequest enacts a fiat deposit via POST /transactions/deposit/fiat.
type DepositFiatRequest struct {
	Currency    string  `json:"currency"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	ReferenceID string  `json:"referenceId"`
	Source      string  `json:"source,omitempty"`
}

// BuyOrderRequest submits a fiat-funded buy via POST /transactions/buy.
// The gateway prices the order itself; FiatAmount is the spend, not a quantity.
type BuyOrderRequest struct {
	IDAccount    uuid.UUID `json:"idAccount"`
	IDWallet     uuid.UUID `json:"idWallet"`
	IDCurrency   string    `json:"idCurrency"`
	FiatAmount   float64   `json:"fiatAmount"`
	Fee          float64   `json:"fee"`
	CreateNewLot bool      `json:"createNewLot"`
	ReferenceID  string    `json:"referenceId"`
}

// SellOrderRequest submits an asset-quantity sell via POST /transactions/sell.
// Lot selection is left to the gateway: no lot hints are ever sent.
// CriptoAmount spelling matches the gateway contract.
type SellOrderRequest struct {
	IDAccount    uuid.UUID `json:"idAccount"`
	IDWallet     uuid.UUID `json:"idWallet"`
	IDCurrency   string    `json:"idCurrency"`
	CriptoAmount float64   `json:"criptoAmount"`
	Fee          float64   `json:"fee"`
	ReferenceID  string    `json:"referenceId"`
}

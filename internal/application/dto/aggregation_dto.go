package dto

import "github.com/shopspring/decimal"

// AvailabilityDTO resultado del rescan completo de disponibilidad para (producto, ubicación).
// SignedQuantity puede ser negativo; AvailableQuantity es la cifra mostrada, recortada en cero.
type AvailabilityDTO struct {
	ProductName       string `json:"product_name"`
	Location          string `json:"location"`
	InboundTotal      int64  `json:"inbound_total"`
	OutboundTotal     int64  `json:"outbound_total"`
	SignedQuantity    int64  `json:"signed_quantity"`
	AvailableQuantity int64  `json:"available_quantity"`
}

// AvailabilityReconciliationResponse agrega al rescan la cifra incremental del ledger
// para poder contrastarlas (deben coincidir en historiales con ubicación completa).
type AvailabilityReconciliationResponse struct {
	AvailabilityDTO
	LedgerQuantity int64 `json:"ledger_quantity"`
}

// RevenueRowDTO fila por cuenta del resumen de ingresos. Costos redondeados a 2 decimales
// solo al construir la respuesta; la acumulación interna es exacta.
type RevenueRowDTO struct {
	AccountName   string          `json:"account_name"`
	TotalProducts int64           `json:"total_products"`
	LabelCost     decimal.Decimal `json:"label_cost"`
	ThreePLCost   decimal.Decimal `json:"three_pl_cost"`
}

// RevenueSummaryDTO resumen de ingresos con filas por cuenta y totales generales (sumas).
type RevenueSummaryDTO struct {
	Rows             []RevenueRowDTO `json:"rows"`
	TotalProducts    int64           `json:"total_products"`
	TotalLabelCost   decimal.Decimal `json:"total_label_cost"`
	TotalThreePLCost decimal.Decimal `json:"total_three_pl_cost"`
}

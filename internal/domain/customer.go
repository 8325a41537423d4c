package domain

import "time"

// CustomerHistory é o histórico de compras de um cliente resolvido a partir
// do QR do cartão de fidelidade
type CustomerHistory struct {
	CustomerID   string             `json:"customer_id"`
	Name         string             `json:"name"`
	QRCode       string             `json:"qr_code"`
	SalesCount   int                `json:"sales_count"`
	TotalSpent   float64            `json:"total_spent"`
	AverageSpent float64            `json:"average_spent"`
	LastPurchase *time.Time         `json:"last_purchase,omitempty"`
	Sales        []*SaleTransaction `json:"sales"`
}

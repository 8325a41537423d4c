package domain

import "time"

// ReportFilters define a janela do relatório. O filtro em si acontece na API
// do salão; o agregador nunca filtra por data ou cliente.
type ReportFilters struct {
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	CustomerID *string    `json:"customer_id,omitempty"`
}

// DailyBucket agrega as vendas de um dia dentro da janela
type DailyBucket struct {
	Date    string  `json:"date"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// MethodBucket agrega as vendas de um método de pagamento. O rótulo vem da
// API sem normalização; rótulos novos geram seus próprios buckets.
type MethodBucket struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// CatalogItemAggregate agrega um produto ou serviço dentro da janela. O nome
// é o da primeira ocorrência na venda, nunca re-resolvido contra o catálogo.
type CatalogItemAggregate struct {
	RefID    int     `json:"ref_id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// KindSplit acumula receita e quantidade de um dos dois tipos de item
type KindSplit struct {
	Revenue  float64 `json:"revenue"`
	Quantity int     `json:"quantity"`
}

// ProductServiceSplit é a divisão produto x serviço usada no gráfico de
// distribuição de duas fatias
type ProductServiceSplit struct {
	Products KindSplit `json:"products"`
	Services KindSplit `json:"services"`
}

// ReportSummary é a saída do agregador: todas as visões derivadas de uma
// janela de vendas
type ReportSummary struct {
	TotalTransactions int                    `json:"total_transactions"`
	TotalRevenue      float64                `json:"total_revenue"`
	AverageSale       float64                `json:"average_sale"`
	MaxSale           float64                `json:"max_sale"`
	MinSale           float64                `json:"min_sale"`
	DailySeries       []DailyBucket          `json:"daily_series"`
	ByPaymentMethod   []MethodBucket         `json:"by_payment_method"`
	TopProducts       []CatalogItemAggregate `json:"top_products"`
	TopServices       []CatalogItemAggregate `json:"top_services"`
	ProductVsService  ProductServiceSplit    `json:"product_vs_service"`
}

// SalesReportResponse é a resposta do serviço de relatórios
type SalesReportResponse struct {
	Filters   *ReportFilters `json:"filters"`
	Summary   *ReportSummary `json:"summary"`
	FromCache bool           `json:"from_cache"`
}

package domain

import (
	"math"
	"time"
)

// ItemKind identifica o tipo de um item vendido. A ambiguidade
// "produto ou serviço" da API do salão é resolvida no mapeamento de entrada,
// antes do dado chegar ao domínio.
type ItemKind string

const (
	ItemKindProduct ItemKind = "product"
	ItemKindService ItemKind = "service"
)

// LineItem representa um item (produto ou serviço) dentro de uma venda
type LineItem struct {
	Kind      ItemKind `json:"kind"`
	RefID     int      `json:"ref_id"`
	RefName   string   `json:"ref_name"`
	Quantity  int      `json:"quantity"`
	UnitPrice float64  `json:"unit_price"`
	Subtotal  *float64 `json:"subtotal,omitempty"`
}

// Valid informa se o item pode entrar nas agregações por item de catálogo.
// Itens sem tipo conhecido ou com quantidade/preço inválidos são descartados
// apenas dessas visões; a venda em si continua contando nos totais da janela.
func (li LineItem) Valid() bool {
	if li.Kind != ItemKindProduct && li.Kind != ItemKindService {
		return false
	}

	return li.Quantity > 0 && li.UnitPrice >= 0
}

// Revenue retorna a receita do item, preferindo o subtotal informado pela API
// quando presente e não negativo
func (li LineItem) Revenue() float64 {
	if li.Subtotal != nil && *li.Subtotal >= 0 {
		return *li.Subtotal
	}

	return float64(li.Quantity) * li.UnitPrice
}

// SubtotalMismatch informa se o subtotal vindo da API diverge de
// quantidade x preço unitário além da tolerância de arredondamento
func (li LineItem) SubtotalMismatch() bool {
	if li.Subtotal == nil || *li.Subtotal < 0 {
		return false
	}

	computed := float64(li.Quantity) * li.UnitPrice

	return math.Abs(*li.Subtotal-computed) > 0.01
}

// SaleTransaction representa uma venda concluída. Imutável depois de criada;
// o agregador apenas lê.
type SaleTransaction struct {
	ID            int        `json:"id"`
	CustomerID    string     `json:"customer_id"`
	Timestamp     time.Time  `json:"timestamp"`
	PaymentMethod string     `json:"payment_method"`
	Total         float64    `json:"total"`
	LineItems     []LineItem `json:"line_items,omitempty"`
}

// SafeTotal coage totais negativos ou não numéricos para zero, evitando que
// um registro ruim propague NaN por todas as somas do relatório
func (t *SaleTransaction) SafeTotal() float64 {
	if t.Total < 0 || math.IsNaN(t.Total) || math.IsInf(t.Total, 0) {
		return 0
	}

	return t.Total
}

// DateKey retorna a chave de agrupamento por dia (data local da venda)
func (t *SaleTransaction) DateKey() string {
	return t.Timestamp.Format(time.DateOnly)
}

package reporting

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Acedi-a/spa-report-api/internal/domain"
)

func floatPtr(f float64) *float64 {
	return &f
}

func saleAt(id int, day string, method string, total float64, items ...domain.LineItem) *domain.SaleTransaction {
	ts, _ := time.Parse(time.DateOnly, day)

	return &domain.SaleTransaction{
		ID:            id,
		Timestamp:     ts,
		PaymentMethod: method,
		Total:         total,
		LineItems:     items,
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	tests := []struct {
		name         string
		transactions []*domain.SaleTransaction
	}{
		{
			name:         "Lista nula",
			transactions: nil,
		},
		{
			name:         "Lista vazia",
			transactions: []*domain.SaleTransaction{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Aggregate(tt.transactions)

			require.NotNil(t, summary)
			assert.Equal(t, 0, summary.TotalTransactions)
			assert.Equal(t, 0.0, summary.TotalRevenue)
			assert.Equal(t, 0.0, summary.AverageSale)
			assert.Equal(t, 0.0, summary.MaxSale)
			assert.Equal(t, 0.0, summary.MinSale)

			// As visões devem ser listas vazias, nunca nulas
			assert.NotNil(t, summary.DailySeries)
			assert.NotNil(t, summary.ByPaymentMethod)
			assert.NotNil(t, summary.TopProducts)
			assert.NotNil(t, summary.TopServices)
			assert.Empty(t, summary.DailySeries)
			assert.Empty(t, summary.ByPaymentMethod)
			assert.Empty(t, summary.TopProducts)
			assert.Empty(t, summary.TopServices)
		})
	}
}

func TestAggregate_ScalarTotals(t *testing.T) {
	transactions := []*domain.SaleTransaction{
		saleAt(1, "2026-03-10", "Efectivo", 100.0),
		saleAt(2, "2026-03-10", "Tarjeta", 250.0),
		saleAt(3, "2026-03-11", "Efectivo", 50.0),
	}

	summary := Aggregate(transactions)

	assert.Equal(t, 3, summary.TotalTransactions)
	assert.Equal(t, 400.0, summary.TotalRevenue)
	assert.InDelta(t, 400.0/3.0, summary.AverageSale, 1e-9)
	assert.Equal(t, 250.0, summary.MaxSale)
	assert.Equal(t, 50.0, summary.MinSale)
}

func TestAggregate_CoercesBadTotals(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		validate func(t *testing.T, summary *domain.ReportSummary)
	}{
		{
			name:  "Total negativo vira zero mas a venda conta",
			total: -75.0,
			validate: func(t *testing.T, summary *domain.ReportSummary) {
				assert.Equal(t, 2, summary.TotalTransactions)
				assert.Equal(t, 100.0, summary.TotalRevenue)
				assert.Equal(t, 0.0, summary.MinSale)
			},
		},
		{
			name:  "Total NaN vira zero mas a venda conta",
			total: math.NaN(),
			validate: func(t *testing.T, summary *domain.ReportSummary) {
				assert.Equal(t, 2, summary.TotalTransactions)
				assert.Equal(t, 100.0, summary.TotalRevenue)
				assert.False(t, math.IsNaN(summary.TotalRevenue))
				assert.False(t, math.IsNaN(summary.AverageSale))
			},
		},
		{
			name:  "Total infinito vira zero mas a venda conta",
			total: math.Inf(1),
			validate: func(t *testing.T, summary *domain.ReportSummary) {
				assert.Equal(t, 2, summary.TotalTransactions)
				assert.Equal(t, 100.0, summary.TotalRevenue)
				assert.Equal(t, 100.0, summary.MaxSale)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactions := []*domain.SaleTransaction{
				saleAt(1, "2026-03-10", "Efectivo", 100.0),
				saleAt(2, "2026-03-10", "Efectivo", tt.total),
			}

			tt.validate(t, Aggregate(transactions))
		})
	}
}

func TestAggregate_DailySeriesAscending(t *testing.T) {
	// Entrada propositalmente fora de ordem cronológica
	transactions := []*domain.SaleTransaction{
		saleAt(1, "2026-03-12", "Efectivo", 30.0),
		saleAt(2, "2026-03-10", "Efectivo", 10.0),
		saleAt(3, "2026-03-11", "Tarjeta", 20.0),
		saleAt(4, "2026-03-10", "QR", 40.0),
	}

	summary := Aggregate(transactions)

	require.Len(t, summary.DailySeries, 3)
	assert.Equal(t, "2026-03-10", summary.DailySeries[0].Date)
	assert.Equal(t, 2, summary.DailySeries[0].Count)
	assert.Equal(t, 50.0, summary.DailySeries[0].Revenue)
	assert.Equal(t, "2026-03-11", summary.DailySeries[1].Date)
	assert.Equal(t, "2026-03-12", summary.DailySeries[2].Date)

	// A soma dos buckets diários deve bater com a receita total
	var sum float64
	for _, day := range summary.DailySeries {
		sum += day.Revenue
	}
	assert.InDelta(t, summary.TotalRevenue, sum, 1e-6)
}

func TestAggregate_PaymentMethodLabelsAreRaw(t *testing.T) {
	// Rótulos diferentes apenas na caixa são buckets distintos
	transactions := []*domain.SaleTransaction{
		saleAt(1, "2026-03-10", "Efectivo", 10.0),
		saleAt(2, "2026-03-10", "efectivo", 20.0),
		saleAt(3, "2026-03-10", "EFECTIVO", 30.0),
		saleAt(4, "2026-03-10", "Tarjeta", 40.0),
	}

	summary := Aggregate(transactions)

	require.Len(t, summary.ByPaymentMethod, 4)

	labels := make(map[string]domain.MethodBucket)
	for _, bucket := range summary.ByPaymentMethod {
		labels[bucket.Label] = bucket
	}

	assert.Equal(t, 10.0, labels["Efectivo"].Revenue)
	assert.Equal(t, 20.0, labels["efectivo"].Revenue)
	assert.Equal(t, 30.0, labels["EFECTIVO"].Revenue)
	assert.Equal(t, 1, labels["Tarjeta"].Count)
}

func TestAggregate_TopItemsRevenueAndTies(t *testing.T) {
	transactions := []*domain.SaleTransaction{
		saleAt(1, "2026-03-10", "Efectivo", 350.0,
			domain.LineItem{Kind: domain.ItemKindProduct, RefID: 1, RefName: "Shampoo", Quantity: 2, UnitPrice: 75.0},
			domain.LineItem{Kind: domain.ItemKindProduct, RefID: 2, RefName: "Crema", Quantity: 1, UnitPrice: 100.0},
			domain.LineItem{Kind: domain.ItemKindService, RefID: 7, RefName: "Masaje", Quantity: 1, UnitPrice: 100.0},
		),
		saleAt(2, "2026-03-11", "Tarjeta", 100.0,
			// Empata em receita com Crema, mas Crema foi vista antes
			domain.LineItem{Kind: domain.ItemKindProduct, RefID: 3, RefName: "Aceite", Quantity: 2, UnitPrice: 50.0},
		),
	}

	summary := Aggregate(transactions)

	require.Len(t, summary.TopProducts, 3)
	assert.Equal(t, 1, summary.TopProducts[0].RefID) // Shampoo 150
	assert.Equal(t, 2, summary.TopProducts[1].RefID) // Crema 100 (primeiro encontro)
	assert.Equal(t, 3, summary.TopProducts[2].RefID) // Aceite 100

	require.Len(t, summary.TopServices, 1)
	assert.Equal(t, "Masaje", summary.TopServices[0].Name)
	assert.Equal(t, 100.0, summary.TopServices[0].Revenue)

	// A divisão produto x serviço acompanha os itens válidos
	assert.Equal(t, 350.0, summary.ProductVsService.Products.Revenue)
	assert.Equal(t, 5, summary.ProductVsService.Products.Quantity)
	assert.Equal(t, 100.0, summary.ProductVsService.Services.Revenue)
	assert.Equal(t, 1, summary.ProductVsService.Services.Quantity)
}

func TestAggregate_ExactTiesKeepEncounterOrder(t *testing.T) {
	// Três produtos com a mesma receita saem na ordem do primeiro encontro
	transactions := []*domain.SaleTransaction{
		saleAt(1, "2026-03-10", "Efectivo", 200.0,
			domain.LineItem{Kind: domain.ItemKindProduct, RefID: 4, RefName: "Esmalte", Quantity: 2, UnitPrice: 50.0},
			domain.LineItem{Kind: domain.ItemKindProduct, RefID: 9, RefName: "Crema", Quantity: 1, UnitPrice: 100.0},
		),
		saleAt(2, "2026-03-11", "Tarjeta", 100.0,
			domain.LineItem{Kind: domain.ItemKindProduct, RefID: 2, RefName: "Aceite", Quantity: 4, UnitPrice: 25.0},
		),
	}

	summary := Aggregate(transactions)

	require.Len(t, summary.TopProducts, 3)
	assert.Equal(t, 4, summary.TopProducts[0].RefID)
	assert.Equal(t, 9, summary.TopProducts[1].RefID)
	assert.Equal(t, 2, summary.TopProducts[2].RefID)
}

func TestAggregate_TopItemsTruncatedAtTen(t *testing.T) {
	items := make([]domain.LineItem, 0, 15)
	for i := 1; i <= 15; i++ {
		items = append(items, domain.LineItem{
			Kind:      domain.ItemKindProduct,
			RefID:     i,
			RefName:   "Producto",
			Quantity:  1,
			UnitPrice: float64(i * 10),
		})
	}

	summary := Aggregate([]*domain.SaleTransaction{
		saleAt(1, "2026-03-10", "Efectivo", 1200.0, items...),
	})

	require.Len(t, summary.TopProducts, 10)
	// O corte preserva os dez de maior receita, em ordem decrescente
	assert.Equal(t, 15, summary.TopProducts[0].RefID)
	assert.Equal(t, 6, summary.TopProducts[9].RefID)

	// A divisão produto x serviço não sofre o corte do top 10
	assert.Equal(t, 1200.0, summary.ProductVsService.Products.Revenue)
	assert.Equal(t, 15, summary.ProductVsService.Products.Quantity)
}

func TestAggregate_MalformedItemsExcludedFromItemViews(t *testing.T) {
	transactions := []*domain.SaleTransaction{
		saleAt(1, "2026-03-10", "Efectivo", 500.0,
			// Sem referência de produto ou serviço
			domain.LineItem{Quantity: 1, UnitPrice: 100.0},
			// Quantidade inválida
			domain.LineItem{Kind: domain.ItemKindProduct, RefID: 1, RefName: "Shampoo", Quantity: 0, UnitPrice: 50.0},
			// Preço negativo
			domain.LineItem{Kind: domain.ItemKindService, RefID: 7, RefName: "Masaje", Quantity: 1, UnitPrice: -30.0},
			// Item válido
			domain.LineItem{Kind: domain.ItemKindProduct, RefID: 2, RefName: "Crema", Quantity: 2, UnitPrice: 80.0},
		),
	}

	summary := Aggregate(transactions)

	// A venda conta nos totais da janela mesmo com itens malformados
	assert.Equal(t, 1, summary.TotalTransactions)
	assert.Equal(t, 500.0, summary.TotalRevenue)

	require.Len(t, summary.TopProducts, 1)
	assert.Equal(t, 2, summary.TopProducts[0].RefID)
	assert.Equal(t, 160.0, summary.TopProducts[0].Revenue)
	assert.Empty(t, summary.TopServices)
	assert.Equal(t, 0.0, summary.ProductVsService.Services.Revenue)
}

func TestAggregate_PrefersSuppliedSubtotal(t *testing.T) {
	tests := []struct {
		name            string
		item            domain.LineItem
		expectedRevenue float64
	}{
		{
			name: "Subtotal presente e válido prevalece",
			item: domain.LineItem{
				Kind: domain.ItemKindProduct, RefID: 1, RefName: "Shampoo",
				Quantity: 2, UnitPrice: 50.0, Subtotal: floatPtr(90.0),
			},
			expectedRevenue: 90.0,
		},
		{
			name: "Subtotal ausente cai para quantidade x preço",
			item: domain.LineItem{
				Kind: domain.ItemKindProduct, RefID: 1, RefName: "Shampoo",
				Quantity: 2, UnitPrice: 50.0,
			},
			expectedRevenue: 100.0,
		},
		{
			name: "Subtotal negativo é ignorado",
			item: domain.LineItem{
				Kind: domain.ItemKindProduct, RefID: 1, RefName: "Shampoo",
				Quantity: 2, UnitPrice: 50.0, Subtotal: floatPtr(-10.0),
			},
			expectedRevenue: 100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Aggregate([]*domain.SaleTransaction{
				saleAt(1, "2026-03-10", "Efectivo", tt.expectedRevenue, tt.item),
			})

			require.Len(t, summary.TopProducts, 1)
			assert.Equal(t, tt.expectedRevenue, summary.TopProducts[0].Revenue)
		})
	}
}

func TestAggregate_NameFrozenAtFirstEncounter(t *testing.T) {
	transactions := []*domain.SaleTransaction{
		saleAt(1, "2026-03-10", "Efectivo", 50.0,
			domain.LineItem{Kind: domain.ItemKindProduct, RefID: 1, RefName: "Shampoo", Quantity: 1, UnitPrice: 50.0},
		),
		saleAt(2, "2026-03-11", "Efectivo", 50.0,
			// Mesmo produto renomeado no catálogo depois da primeira venda
			domain.LineItem{Kind: domain.ItemKindProduct, RefID: 1, RefName: "Shampoo Premium", Quantity: 1, UnitPrice: 50.0},
		),
	}

	summary := Aggregate(transactions)

	require.Len(t, summary.TopProducts, 1)
	assert.Equal(t, "Shampoo", summary.TopProducts[0].Name)
	assert.Equal(t, 2, summary.TopProducts[0].Quantity)
	assert.Equal(t, 100.0, summary.TopProducts[0].Revenue)
}

func TestAggregate_Idempotent(t *testing.T) {
	transactions := []*domain.SaleTransaction{
		saleAt(1, "2026-03-10", "Efectivo", 100.0,
			domain.LineItem{Kind: domain.ItemKindProduct, RefID: 1, RefName: "Shampoo", Quantity: 2, UnitPrice: 50.0},
		),
		saleAt(2, "2026-03-11", "Tarjeta", 200.0,
			domain.LineItem{Kind: domain.ItemKindService, RefID: 7, RefName: "Masaje", Quantity: 1, UnitPrice: 200.0},
		),
	}

	first := Aggregate(transactions)
	second := Aggregate(transactions)

	assert.Equal(t, first, second)
}

func TestAggregate_OrderIndependentScalars(t *testing.T) {
	transactions := []*domain.SaleTransaction{
		saleAt(1, "2026-03-10", "Efectivo", 100.0),
		saleAt(2, "2026-03-11", "Tarjeta", 200.0),
		saleAt(3, "2026-03-12", "QR", 300.0),
		saleAt(4, "2026-03-10", "Transferencia", 400.0),
		saleAt(5, "2026-03-13", "Efectivo", 500.0),
	}

	base := Aggregate(transactions)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5; i++ {
		shuffled := make([]*domain.SaleTransaction, len(transactions))
		copy(shuffled, transactions)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		permuted := Aggregate(shuffled)

		assert.Equal(t, base.TotalTransactions, permuted.TotalTransactions)
		assert.Equal(t, base.MaxSale, permuted.MaxSale)
		assert.Equal(t, base.MinSale, permuted.MinSale)
		assert.InDelta(t, base.TotalRevenue, permuted.TotalRevenue, 1e-6)
		assert.Equal(t, base.DailySeries, permuted.DailySeries)
		assert.Equal(t, base.ByPaymentMethod, permuted.ByPaymentMethod)
	}
}

func TestAggregate_SkipsNilTransactions(t *testing.T) {
	transactions := []*domain.SaleTransaction{
		nil,
		saleAt(1, "2026-03-10", "Efectivo", 100.0),
		nil,
	}

	summary := Aggregate(transactions)

	assert.Equal(t, 1, summary.TotalTransactions)
	assert.Equal(t, 100.0, summary.TotalRevenue)
	assert.Equal(t, 100.0, summary.MinSale)
}

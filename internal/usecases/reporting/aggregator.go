package reporting

import (
	"sort"

	"github.com/Acedi-a/spa-report-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Quantidade máxima de itens nas listas de mais vendidos
const topItemsLimit = 10

// catalogAccumulator acompanha um item de catálogo durante a agregação.
// O índice de encontro é o critério de desempate da ordenação por receita.
type catalogAccumulator struct {
	item  domain.CatalogItemAggregate
	order int
}

// Aggregate consome a lista plana de vendas (já restrita à janela desejada) e
// produz todas as visões derivadas do relatório. Entrada vazia produz um
// resumo zerado; registros malformados são excluídos apenas das visões que
// dependem deles. A função é pura e devolve estruturas recém alocadas a cada
// chamada, sendo segura para chamadores concorrentes.
func Aggregate(transactions []*domain.SaleTransaction) *domain.ReportSummary {
	summary := &domain.ReportSummary{
		DailySeries:     make([]domain.DailyBucket, 0),
		ByPaymentMethod: make([]domain.MethodBucket, 0),
		TopProducts:     make([]domain.CatalogItemAggregate, 0),
		TopServices:     make([]domain.CatalogItemAggregate, 0),
	}

	if len(transactions) == 0 {
		return summary
	}

	dayBuckets := make(map[string]*domain.DailyBucket)
	methodBuckets := make(map[string]*domain.MethodBucket)
	products := make(map[int]*catalogAccumulator)
	services := make(map[int]*catalogAccumulator)

	encounterOrder := 0
	subtotalMismatches := 0
	minSet := false

	for _, tx := range transactions {
		if tx == nil {
			continue
		}

		total := tx.SafeTotal()

		summary.TotalTransactions++
		summary.TotalRevenue += total

		if total > summary.MaxSale {
			summary.MaxSale = total
		}

		// O mínimo parte do primeiro total coagido, não de zero
		if !minSet || total < summary.MinSale {
			summary.MinSale = total
			minSet = true
		}

		// Agrupamento por dia, chave é a data local da venda
		dayKey := tx.DateKey()
		day, exists := dayBuckets[dayKey]
		if !exists {
			day = &domain.DailyBucket{Date: dayKey}
			dayBuckets[dayKey] = day
		}
		day.Count++
		day.Revenue += total

		// Agrupamento por método de pagamento, rótulo cru e sensível a caixa
		method, exists := methodBuckets[tx.PaymentMethod]
		if !exists {
			method = &domain.MethodBucket{Label: tx.PaymentMethod}
			methodBuckets[tx.PaymentMethod] = method
		}
		method.Count++
		method.Revenue += total

		for _, item := range tx.LineItems {
			if !item.Valid() {
				continue
			}

			if item.SubtotalMismatch() {
				subtotalMismatches++
			}

			revenue := item.Revenue()

			switch item.Kind {
			case domain.ItemKindProduct:
				accumulateCatalogItem(products, item, revenue, &encounterOrder)
				summary.ProductVsService.Products.Revenue += revenue
				summary.ProductVsService.Products.Quantity += item.Quantity
			case domain.ItemKindService:
				accumulateCatalogItem(services, item, revenue, &encounterOrder)
				summary.ProductVsService.Services.Revenue += revenue
				summary.ProductVsService.Services.Quantity += item.Quantity
			}
		}
	}

	if summary.TotalTransactions > 0 {
		summary.AverageSale = summary.TotalRevenue / float64(summary.TotalTransactions)
	}

	summary.DailySeries = sortedDailySeries(dayBuckets)
	summary.ByPaymentMethod = sortedMethodBuckets(methodBuckets)
	summary.TopProducts = topCatalogItems(products)
	summary.TopServices = topCatalogItems(services)

	// O subtotal informado prevalece, mas a divergência fica registrada
	if subtotalMismatches > 0 {
		logrus.WithField("mismatch_count", subtotalMismatches).
			Warn("Subtotal informado pela API diverge de quantidade x preço unitário")
	}

	return summary
}

// accumulateCatalogItem acumula quantidade e receita de um item, congelando o
// nome de exibição na primeira ocorrência
func accumulateCatalogItem(
	accumulators map[int]*catalogAccumulator,
	item domain.LineItem,
	revenue float64,
	encounterOrder *int,
) {
	acc, exists := accumulators[item.RefID]
	if !exists {
		acc = &catalogAccumulator{
			item: domain.CatalogItemAggregate{
				RefID: item.RefID,
				Name:  item.RefName,
			},
			order: *encounterOrder,
		}
		accumulators[item.RefID] = acc
		*encounterOrder++
	}

	acc.item.Quantity += item.Quantity
	acc.item.Revenue += revenue
}

// sortedDailySeries converte os buckets diários em uma série cronológica
// ascendente. A ordenação é explícita: a ordem de inserção do mapa depende da
// ordem da entrada e não pode vazar para a saída.
func sortedDailySeries(buckets map[string]*domain.DailyBucket) []domain.DailyBucket {
	series := make([]domain.DailyBucket, 0, len(buckets))
	for _, bucket := range buckets {
		series = append(series, *bucket)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	return series
}

// sortedMethodBuckets ordena os buckets de método de pagamento pelo rótulo
// para manter a saída determinística independente da ordem da entrada
func sortedMethodBuckets(buckets map[string]*domain.MethodBucket) []domain.MethodBucket {
	methods := make([]domain.MethodBucket, 0, len(buckets))
	for _, bucket := range buckets {
		methods = append(methods, *bucket)
	}

	sort.Slice(methods, func(i, j int) bool {
		return methods[i].Label < methods[j].Label
	})

	return methods
}

// topCatalogItems ordena os itens por receita decrescente, desempatando pela
// ordem do primeiro encontro, e corta no limite do top N
func topCatalogItems(accumulators map[int]*catalogAccumulator) []domain.CatalogItemAggregate {
	ranked := make([]*catalogAccumulator, 0, len(accumulators))
	for _, acc := range accumulators {
		ranked = append(ranked, acc)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].item.Revenue != ranked[j].item.Revenue {
			return ranked[i].item.Revenue > ranked[j].item.Revenue
		}
		return ranked[i].order < ranked[j].order
	})

	if len(ranked) > topItemsLimit {
		ranked = ranked[:topItemsLimit]
	}

	items := make([]domain.CatalogItemAggregate, 0, len(ranked))
	for _, acc := range ranked {
		items = append(items, acc.item)
	}

	return items
}

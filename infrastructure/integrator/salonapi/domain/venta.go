package salonapidomain

import (
	"time"

	"github.com/Acedi-a/spa-report-api/internal/domain"
)

// Venta é o formato de venda da API do salão. Os nomes de campo seguem o
// contrato JSON do backend e não devem ser traduzidos.
type Venta struct {
	ID            int            `json:"id,omitempty"`
	ClienteID     string         `json:"clienteId,omitempty"`
	Fecha         string         `json:"fecha,omitempty"`
	MetodoPago    string         `json:"metodoPago,omitempty"`
	Total         float64        `json:"total,omitempty"`
	QRCode        string         `json:"qrCode,omitempty"`
	Cliente       *ClienteRef    `json:"cliente,omitempty"`
	DetalleVentas []DetalleVenta `json:"detalleVentas,omitempty"`
}

// DetalleVenta é um item de venda no formato da API. ProductoID e ServicioID
// são anuláveis e mutuamente exclusivos no dado são; a resolução para o tipo
// etiquetado do domínio acontece em ToDomain.
type DetalleVenta struct {
	ID             int          `json:"id,omitempty"`
	ProductoID     *int         `json:"productoId,omitempty"`
	ServicioID     *int         `json:"servicioId,omitempty"`
	Cantidad       int          `json:"cantidad,omitempty"`
	PrecioUnitario float64      `json:"precioUnitario,omitempty"`
	Subtotal       *float64     `json:"subtotal,omitempty"`
	Producto       *CatalogoRef `json:"producto,omitempty"`
	Servicio       *CatalogoRef `json:"servicio,omitempty"`
}

type CatalogoRef struct {
	ID     int    `json:"id,omitempty"`
	Nombre string `json:"nombre,omitempty"`
}

type ClienteRef struct {
	ID     string `json:"id,omitempty"`
	Nombre string `json:"nombre,omitempty"`
}

// ReporteVentas é a resposta do endpoint de relatório: a lista de vendas sob
// o campo detalles mais totais escalares já calculados pelo servidor. Os
// totais servem apenas de contraprova; o agregador local é a fonte da
// resposta.
type ReporteVentas struct {
	FechaInicio        string  `json:"fechaInicio,omitempty"`
	FechaFin           string  `json:"fechaFin,omitempty"`
	TotalIngresos      float64 `json:"totalIngresos,omitempty"`
	TotalTransacciones int     `json:"totalTransacciones,omitempty"`
	PromedioVenta      float64 `json:"promedioVenta,omitempty"`
	VentaMayor         float64 `json:"ventaMayor,omitempty"`
	VentaMenor         float64 `json:"ventaMenor,omitempty"`
	Detalles           []Venta `json:"detalles,omitempty"`
}

// ToDomain converte a venda do formato da API para o domínio do relatório
func (v Venta) ToDomain() *domain.SaleTransaction {
	tx := &domain.SaleTransaction{
		ID:            v.ID,
		CustomerID:    v.ClienteID,
		Timestamp:     parseFecha(v.Fecha),
		PaymentMethod: v.MetodoPago,
		Total:         v.Total,
		LineItems:     make([]domain.LineItem, 0, len(v.DetalleVentas)),
	}

	for _, det := range v.DetalleVentas {
		tx.LineItems = append(tx.LineItems, det.ToDomain())
	}

	return tx
}

// ToDomain resolve o par de IDs anuláveis no tipo etiquetado do domínio.
// Produto tem precedência quando ambos vierem preenchidos; nenhum dos dois
// produz um item sem tipo, que o agregador descarta das visões por item.
func (det DetalleVenta) ToDomain() domain.LineItem {
	item := domain.LineItem{
		Quantity:  det.Cantidad,
		UnitPrice: det.PrecioUnitario,
		Subtotal:  det.Subtotal,
	}

	switch {
	case det.ProductoID != nil:
		item.Kind = domain.ItemKindProduct
		item.RefID = *det.ProductoID
		if det.Producto != nil {
			item.RefName = det.Producto.Nombre
		}
	case det.ServicioID != nil:
		item.Kind = domain.ItemKindService
		item.RefID = *det.ServicioID
		if det.Servicio != nil {
			item.RefName = det.Servicio.Nombre
		}
	}

	return item
}

// parseFecha aceita data pura, data-hora RFC3339 ou data-hora sem fuso, que a
// API mistura conforme o endpoint
func parseFecha(fecha string) time.Time {
	if t, err := time.Parse(time.DateOnly, fecha); err == nil {
		return t
	}

	if t, err := time.Parse(time.RFC3339, fecha); err == nil {
		return t
	}

	if t, err := time.Parse("2006-01-02T15:04:05", fecha); err == nil {
		return t
	}

	return time.Time{}
}

package handler

import (
	"net/http"

	"github.com/Acedi-a/spa-report-api/internal/api/handler/router"
	"github.com/Acedi-a/spa-report-api/internal/usecases/history"
	"github.com/Acedi-a/spa-report-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func SalesReports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/sales",
			Method:  http.MethodGet,
			Handler: GetSalesReport(service),
		},
		{
			Path:    "/v1/reports/sales/invalidate",
			Method:  http.MethodPost,
			Handler: InvalidateSalesReport(service),
		},
	}
}

func CustomerHistory(service history.Historian) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/customers/:qr/history",
			Method:  http.MethodGet,
			Handler: GetCustomerHistoryByQR(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

// Package metrics definiše Prometheus metrike servisa.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PageEventType je zatvoren skup događaja koje frontend sme da prijavi
// na /api/events. Nepoznat tip se odbija, ne prosleđuje.
type PageEventType string

const (
	EventPageView     PageEventType = "page_view"
	EventProductView  PageEventType = "product_view"
	EventLocationView PageEventType = "location_view"
	EventContactOpen  PageEventType = "contact_open"
)

// IsValid proverava da li je tip događaja iz dozvoljenog skupa.
func (t PageEventType) IsValid() bool {
	switch t {
	case EventPageView, EventProductView, EventLocationView, EventContactOpen:
		return true
	}
	return false
}

// Metrics drži sve metrike aplikacije. Pravi se jednom pri podizanju i
// prosleđuje komponentama; nema globalnog stanja osim samog registra.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	SEOEventsTotal      *prometheus.CounterVec
	InquiriesTotal      *prometheus.CounterVec
	SitemapTotal        *prometheus.CounterVec
}

// New registruje metrike na zadati registar. Testovi prosleđuju svež
// prometheus.NewRegistry() da izbegnu sudare registracije.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kamenpro_http_requests_total",
				Help: "Ukupan broj HTTP zahteva.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kamenpro_http_request_duration_seconds",
				Help:    "Trajanje obrade HTTP zahteva.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		SEOEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kamenpro_seo_events_total",
				Help: "Broj generisanih SEO artefakata po tipu i lokaciji.",
			},
			[]string{"type", "location"},
		),
		InquiriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kamenpro_inquiries_total",
				Help: "Broj primljenih upita po ishodu.",
			},
			[]string{"status"},
		),
		SitemapTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kamenpro_sitemap_generations_total",
				Help: "Broj generisanja sitemap dokumenta po ishodu.",
			},
			[]string{"status"},
		),
	}
}

// ObserveHTTP beleži jedan obrađen HTTP zahtev.
func (m *Metrics) ObserveHTTP(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncSEOEvent beleži generisan SEO artefakt (alt-tag, schema, meta).
func (m *Metrics) IncSEOEvent(eventType, location string) {
	m.SEOEventsTotal.WithLabelValues(eventType, location).Inc()
}

// IncInquiry beleži ishod jednog upita: sent, invalid ili failed.
func (m *Metrics) IncInquiry(status string) {
	m.InquiriesTotal.WithLabelValues(status).Inc()
}

// IncSitemap beleži ishod generisanja sitemapa: ok ili error.
func (m *Metrics) IncSitemap(status string) {
	m.SitemapTotal.WithLabelValues(status).Inc()
}

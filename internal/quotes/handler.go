package quotes

import (
	"encoding/json"
	"net/http"

	"github.com/vstanisic/fitpal/internal/telemetry/metrics"
	"github.com/vstanisic/fitpal/internal/telemetry/tracing"
	"github.com/vstanisic/fitpal/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	api     *Api
	metrics *metrics.Manager
}

func NewHandler(api *Api, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		api:     api,
		metrics: metricsManager,
	}
}

func (handler *Handler) HandleQuoteOfTheDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.quotes.quoteOfTheDay")
	defer span.End()

	quote := handler.api.QuoteOfTheDay(ctx)

	quoteJson, err := json.Marshal(quote)
	if err != nil {
		log.Errorf("failed to marshal quote: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterQuotesServed.Inc()
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, quoteJson, http.StatusOK)
}

package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"

	"github.com/vstanisic/fitpal/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const (
	// the upstream serves a new quote of the day, no point hammering it
	quoteCacheExpireSeconds = 60 * 60
	quoteCacheKey           = "quote-of-the-day"
)

// Quote mirrors the ZenQuotes response shape.
type Quote struct {
	Text   string `json:"q"`
	Author string `json:"a"`
}

// fallbackQuotes are served whenever the remote fetch fails,
// so the daily quote never errors out.
var fallbackQuotes = []Quote{
	{Text: "The only bad workout is the one that didn't happen.", Author: "Unknown"},
	{Text: "Take care of your body. It's the only place you have to live.", Author: "Jim Rohn"},
	{Text: "Strength does not come from physical capacity. It comes from an indomitable will.", Author: "Mahatma Gandhi"},
	{Text: "Success is the sum of small efforts, repeated day in and day out.", Author: "Robert Collier"},
	{Text: "The pain you feel today will be the strength you feel tomorrow.", Author: "Unknown"},
}

type Api struct {
	cache      *freecache.Cache
	apiURL     string // https://zenquotes.io/api/random
	httpClient *http.Client
}

func NewApi(apiURL string, httpClient *http.Client) *Api {
	megabyte := 1024 * 1024
	return &Api{
		apiURL:     apiURL,
		cache:      freecache.NewCache(1 * megabyte),
		httpClient: httpClient,
	}
}

// QuoteOfTheDay returns a motivational quote. It never fails: on any
// fetch or parse problem a local fallback quote is returned instead.
func (api *Api) QuoteOfTheDay(ctx context.Context) Quote {
	ctx, span := tracing.GlobalTracer.Start(ctx, "quotesApi.quoteOfTheDay")
	defer span.End()

	if cachedBytes, err := api.cache.Get([]byte(quoteCacheKey)); err == nil {
		var quote Quote
		if err := json.Unmarshal(cachedBytes, &quote); err == nil {
			log.Tracef("quote of the day served from cache")
			return quote
		}
		log.Errorf("failed to unmarshal cached quote: %s", err)
	}

	quote, err := api.fetch(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
		log.Errorf("fetch quote of the day, using fallback: %s", err)
		return fallbackQuotes[rand.Intn(len(fallbackQuotes))]
	}

	if quoteBytes, err := json.Marshal(quote); err == nil {
		if err := api.cache.Set([]byte(quoteCacheKey), quoteBytes, quoteCacheExpireSeconds); err != nil {
			log.Errorf("failed to cache quote of the day: %s", err)
		}
	}

	return quote
}

func (api *Api) fetch(ctx context.Context) (Quote, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", api.apiURL, nil)
	if err != nil {
		return Quote{}, err
	}

	resp, err := api.httpClient.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("unexpected quotes api status: %d", resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return Quote{}, fmt.Errorf("read quotes api response: %w", err)
	}

	// the api returns an array with a single quote
	var quotes []Quote
	if err := json.Unmarshal(respBytes, &quotes); err != nil {
		return Quote{}, fmt.Errorf("unmarshal quotes api response: %w", err)
	}
	if len(quotes) == 0 || quotes[0].Text == "" {
		return Quote{}, fmt.Errorf("empty quotes api response")
	}

	return quotes[0], nil
}

package marketdata

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// Feed is a Provider backed by an HTTP quote API. The real-time endpoint is
// tried first; when it has no last trade yet (pre-open), the intraday chart
// series is used instead.
type Feed struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
}

// NewFeed creates a feed against the given API base URL.
func NewFeed(baseURL, apiKey string) *Feed {
	return &Feed{Client: new(http.Client), BaseURL: baseURL, APIKey: apiKey}
}

// Quote implements Provider.
func (f *Feed) Quote(ctx context.Context, ticker string) (Quote, error) {
	val, err := f.realTime(ctx, ticker)
	if err != nil || math.IsNaN(val) {
		val, err = f.lastIntraday(ctx, ticker)
	}
	if err != nil {
		return Quote{}, err
	}
	if val == 0 {
		// Sometimes the feed answers with an empty bid and returns 0.
		return Quote{}, fmt.Errorf("empty quote for %s, no value to return", ticker)
	}
	return Quote{Ticker: ticker, Price: val, Updated: time.Now()}, nil
}

// realTime queries the last-trade endpoint.
func (f *Feed) realTime(ctx context.Context, ticker string) (float64, error) {
	addr := fmt.Sprintf("%s/real-time/%s?fmt=json&api_token=%s", f.BaseURL, ticker, f.APIKey)

	var jobj map[string]any
	if err := jwget(ctx, f.Client, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error retrieving %q: %w", ticker, err)
	}
	// close is the last transaction; it moves slower than the bid, but the
	// bid can be 0.
	jval := jobj["close"]
	if s, ok := jval.(string); ok && (s == "NA" || s == "./.") {
		// the feed shows an empty close this way, use the bid instead
		jval = jobj["bid"]
	}
	return asFloat(ticker, jval)
}

// lastIntraday takes the last point of the intraday chart series.
func (f *Feed) lastIntraday(ctx context.Context, ticker string) (float64, error) {
	addr := fmt.Sprintf("%s/intraday/%s?fmt=json&api_token=%s&interval=5m&from=%d",
		f.BaseURL, ticker, f.APIKey, time.Now().AddDate(0, 0, -1).Unix())

	var jobj any
	if err := jwget(ctx, f.Client, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error retrieving intraday %q: %w", ticker, err)
	}
	path := "$[-1:].close"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", ticker, path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer or
	// a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return asFloat(ticker, jval)
}

// asFloat reads a price from a JSON value that may be a float or a string
// with locale decimal commas.
func asFloat(ticker string, jval any) (float64, error) {
	val, ok := jval.(float64)
	if ok {
		return val, nil
	}
	sval, ok := jval.(string)
	if !ok {
		return math.NaN(), fmt.Errorf("cannot read value for %q: neither a float nor a string", ticker)
	}
	sval = strings.ReplaceAll(sval, ",", ".")
	sval = strings.ReplaceAll(sval, " ", "")
	val, err := strconv.ParseFloat(sval, 64)
	if err != nil {
		return math.NaN(), fmt.Errorf("cannot read value for %q: invalid string %q: %w", ticker, sval, err)
	}
	return val, nil
}

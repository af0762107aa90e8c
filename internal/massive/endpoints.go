package massive

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// ==================== Aggregates ====================

type AggsParams struct {
	Multiplier int
	Timespan   string
	From       string
	To         string
	Adjusted   *bool
	Sort       string
	Limit      int
}

// Aggs returns aggregate bars for a ticker over a date range.
func (c *Client) Aggs(ctx context.Context, ticker string, p AggsParams) ([]byte, error) {
	path := fmt.Sprintf("/v2/aggs/ticker/%s/range/%d/%s/%s/%s",
		url.PathEscape(ticker), p.Multiplier, url.PathEscape(p.Timespan),
		url.PathEscape(p.From), url.PathEscape(p.To))

	q := newQuery()
	q.Bool("adjusted", p.Adjusted)
	q.Str("sort", p.Sort)
	q.Limit(p.Limit)
	return c.get(ctx, path, q.values)
}

type GroupedDailyParams struct {
	Adjusted   *bool
	IncludeOTC *bool
	Locale     string
	MarketType string
}

// GroupedDailyAggs returns daily bars for the whole market on one date.
func (c *Client) GroupedDailyAggs(ctx context.Context, date string, p GroupedDailyParams) ([]byte, error) {
	locale := p.Locale
	if strings.TrimSpace(locale) == "" {
		locale = "us"
	}
	marketType := p.MarketType
	if strings.TrimSpace(marketType) == "" {
		marketType = "stocks"
	}
	path := fmt.Sprintf("/v2/aggs/grouped/locale/%s/market/%s/%s",
		url.PathEscape(locale), url.PathEscape(marketType), url.PathEscape(date))

	q := newQuery()
	q.Bool("adjusted", p.Adjusted)
	q.Bool("include_otc", p.IncludeOTC)
	return c.get(ctx, path, q.values)
}

// DailyOpenClose returns the open, close, high and low for one ticker and date.
func (c *Client) DailyOpenClose(ctx context.Context, ticker, date string, adjusted *bool) ([]byte, error) {
	path := fmt.Sprintf("/v1/open-close/%s/%s", url.PathEscape(ticker), url.PathEscape(date))

	q := newQuery()
	q.Bool("adjusted", adjusted)
	return c.get(ctx, path, q.values)
}

// PreviousClose returns the previous day's OHLC for a ticker.
func (c *Client) PreviousClose(ctx context.Context, ticker string, adjusted *bool) ([]byte, error) {
	path := fmt.Sprintf("/v2/aggs/ticker/%s/prev", url.PathEscape(ticker))

	q := newQuery()
	q.Bool("adjusted", adjusted)
	return c.get(ctx, path, q.values)
}

// ==================== Trades & Quotes ====================

type TickParams struct {
	Timestamp RangeFilter
	Limit     int
	Sort      string
	Order     string
}

func (p TickParams) encode() url.Values {
	q := newQuery()
	q.Range("timestamp", p.Timestamp)
	q.Limit(p.Limit)
	q.Str("sort", p.Sort)
	q.Str("order", p.Order)
	return q.values
}

func (c *Client) ListTrades(ctx context.Context, ticker string, p TickParams) ([]byte, error) {
	return c.get(ctx, "/v3/trades/"+url.PathEscape(ticker), p.encode())
}

func (c *Client) LastTrade(ctx context.Context, ticker string) ([]byte, error) {
	return c.get(ctx, "/v2/last/trade/"+url.PathEscape(ticker), nil)
}

func (c *Client) ListQuotes(ctx context.Context, ticker string, p TickParams) ([]byte, error) {
	return c.get(ctx, "/v3/quotes/"+url.PathEscape(ticker), p.encode())
}

func (c *Client) LastQuote(ctx context.Context, ticker string) ([]byte, error) {
	return c.get(ctx, "/v2/last/nbbo/"+url.PathEscape(ticker), nil)
}

// ==================== Snapshots ====================

func (c *Client) SnapshotAll(ctx context.Context, marketType string, tickers []string, includeOTC *bool) ([]byte, error) {
	path := fmt.Sprintf("/v2/snapshot/locale/us/markets/%s/tickers", url.PathEscape(marketType))

	q := newQuery()
	q.Str("tickers", strings.Join(tickers, ","))
	q.Bool("include_otc", includeOTC)
	return c.get(ctx, path, q.values)
}

func (c *Client) SnapshotDirection(ctx context.Context, marketType, direction string, includeOTC *bool) ([]byte, error) {
	path := fmt.Sprintf("/v2/snapshot/locale/us/markets/%s/%s",
		url.PathEscape(marketType), url.PathEscape(direction))

	q := newQuery()
	q.Bool("include_otc", includeOTC)
	return c.get(ctx, path, q.values)
}

func (c *Client) SnapshotTicker(ctx context.Context, marketType, ticker string) ([]byte, error) {
	path := fmt.Sprintf("/v2/snapshot/locale/us/markets/%s/tickers/%s",
		url.PathEscape(marketType), url.PathEscape(ticker))
	return c.get(ctx, path, nil)
}

// ==================== Market Info ====================

func (c *Client) MarketHolidays(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "/v1/marketstatus/upcoming", nil)
}

func (c *Client) MarketStatus(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "/v1/marketstatus/now", nil)
}

// ==================== Tickers ====================

type TickersParams struct {
	Ticker   string
	Type     string
	Market   string
	Exchange string
	CUSIP    string
	CIK      string
	Date     string
	Search   string
	Active   *bool
	Sort     string
	Order    string
	Limit    int
}

func (c *Client) ListTickers(ctx context.Context, p TickersParams) ([]byte, error) {
	q := newQuery()
	q.Str("ticker", p.Ticker)
	q.Str("type", p.Type)
	q.Str("market", p.Market)
	q.Str("exchange", p.Exchange)
	q.Str("cusip", p.CUSIP)
	q.Str("cik", p.CIK)
	q.Str("date", p.Date)
	q.Str("search", p.Search)
	q.Bool("active", p.Active)
	q.Str("sort", p.Sort)
	q.Str("order", p.Order)
	q.Limit(p.Limit)
	return c.get(ctx, "/v3/reference/tickers", q.values)
}

func (c *Client) TickerDetails(ctx context.Context, ticker, date string) ([]byte, error) {
	q := newQuery()
	q.Str("date", date)
	return c.get(ctx, "/v3/reference/tickers/"+url.PathEscape(ticker), q.values)
}

type TickerNewsParams struct {
	PublishedUTC string
	Limit        int
	Sort         string
	Order        string
}

func (c *Client) ListTickerNews(ctx context.Context, ticker string, p TickerNewsParams) ([]byte, error) {
	q := newQuery()
	q.Str("ticker", ticker)
	q.Str("published_utc", p.PublishedUTC)
	q.Limit(p.Limit)
	q.Str("sort", p.Sort)
	q.Str("order", p.Order)
	return c.get(ctx, "/v2/reference/news", q.values)
}

// ==================== Corporate Actions ====================

type DividendsParams struct {
	Ticker         string
	ExDividendDate string
	Frequency      *int
	DividendType   string
	Limit          int
}

func (c *Client) ListDividends(ctx context.Context, p DividendsParams) ([]byte, error) {
	q := newQuery()
	q.Str("ticker", p.Ticker)
	q.Str("ex_dividend_date", p.ExDividendDate)
	q.Int("frequency", p.Frequency)
	q.Str("dividend_type", p.DividendType)
	q.Limit(p.Limit)
	return c.get(ctx, "/v3/reference/dividends", q.values)
}

type SplitsParams struct {
	Ticker        string
	ExecutionDate string
	ReverseSplit  *bool
	Limit         int
}

func (c *Client) ListSplits(ctx context.Context, p SplitsParams) ([]byte, error) {
	q := newQuery()
	q.Str("ticker", p.Ticker)
	q.Str("execution_date", p.ExecutionDate)
	q.Bool("reverse_split", p.ReverseSplit)
	q.Limit(p.Limit)
	return c.get(ctx, "/v3/reference/splits", q.values)
}

// ==================== Short Data ====================

type ShortInterestParams struct {
	Ticker         string
	SettlementDate RangeFilter
	Limit          int
	Sort           string
	Order          string
}

func (c *Client) ListShortInterest(ctx context.Context, p ShortInterestParams) ([]byte, error) {
	q := newQuery()
	q.Str("ticker", p.Ticker)
	q.Range("settlement_date", p.SettlementDate)
	q.Limit(p.Limit)
	q.Str("sort", p.Sort)
	q.Str("order", p.Order)
	return c.get(ctx, "/stocks/v1/short-interest", q.values)
}

type ShortVolumeParams struct {
	Ticker string
	Date   RangeFilter
	Limit  int
	Sort   string
	Order  string
}

func (c *Client) ListShortVolume(ctx context.Context, p ShortVolumeParams) ([]byte, error) {
	q := newQuery()
	q.Str("ticker", p.Ticker)
	q.Range("date", p.Date)
	q.Limit(p.Limit)
	q.Str("sort", p.Sort)
	q.Str("order", p.Order)
	return c.get(ctx, "/stocks/v1/short-volume", q.values)
}

// ==================== Financials ====================

type StockFinancialsParams struct {
	Ticker         string
	CIK            string
	CompanyName    string
	Timeframe      string
	IncludeSources *bool
	Limit          int
	Sort           string
	Order          string
}

func (c *Client) ListStockFinancials(ctx context.Context, p StockFinancialsParams) ([]byte, error) {
	q := newQuery()
	q.Str("ticker", p.Ticker)
	q.Str("cik", p.CIK)
	q.Str("company_name", p.CompanyName)
	q.Str("timeframe", p.Timeframe)
	q.Bool("include_sources", p.IncludeSources)
	q.Limit(p.Limit)
	q.Str("sort", p.Sort)
	q.Str("order", p.Order)
	return c.get(ctx, "/vX/reference/financials", q.values)
}

// ==================== Economic Data ====================

type EconomicSeriesParams struct {
	Date  RangeFilter
	Limit int
	Sort  string
	Order string
}

func (p EconomicSeriesParams) encode() url.Values {
	q := newQuery()
	q.Range("date", p.Date)
	q.Limit(p.Limit)
	q.Str("sort", p.Sort)
	q.Str("order", p.Order)
	return q.values
}

func (c *Client) ListTreasuryYields(ctx context.Context, p EconomicSeriesParams) ([]byte, error) {
	return c.get(ctx, "/fed/v1/treasury-yields", p.encode())
}

func (c *Client) ListInflation(ctx context.Context, p EconomicSeriesParams) ([]byte, error) {
	return c.get(ctx, "/fed/v1/inflation", p.encode())
}

// ==================== Ratios ====================

type RatiosParams struct {
	Ticker          string
	CIK             string
	Price           FloatRange
	MarketCap       FloatRange
	PriceToEarnings FloatRange
	PriceToBook     FloatRange
	DividendYield   FloatRange
	ReturnOnEquity  FloatRange
	DebtToEquity    FloatRange
	Limit           int
	Sort            string
}

func (c *Client) ListRatios(ctx context.Context, p RatiosParams) ([]byte, error) {
	q := newQuery()
	q.Str("ticker", p.Ticker)
	q.Str("cik", p.CIK)
	q.FloatRange("price", p.Price)
	q.FloatRange("market_cap", p.MarketCap)
	q.FloatRange("price_to_earnings", p.PriceToEarnings)
	q.FloatRange("price_to_book", p.PriceToBook)
	q.FloatRange("dividend_yield", p.DividendYield)
	q.FloatRange("return_on_equity", p.ReturnOnEquity)
	q.FloatRange("debt_to_equity", p.DebtToEquity)
	q.Limit(p.Limit)
	q.Str("sort", p.Sort)
	return c.get(ctx, "/stocks/v1/ratios", q.values)
}

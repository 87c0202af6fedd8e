package cbr

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/m-orlov/sheet-order-service/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
)

// DailyRateProvider reads the USD rate from the Bank of Russia daily XML
// feed. The feed is windows-1251 encoded and uses a comma decimal separator.
type DailyRateProvider struct {
	client *http.Client
	url    string
}

type valCurs struct {
	Valutes []valute `xml:"Valute"`
}

type valute struct {
	CharCode string `xml:"CharCode"`
	Nominal  string `xml:"Nominal"`
	Value    string `xml:"Value"`
}

func NewDailyRateProvider(url string, timeout time.Duration) *DailyRateProvider {
	return &DailyRateProvider{
		client: &http.Client{
			Timeout: timeout,
		},
		url: url,
	}
}

func (p *DailyRateProvider) CurrentRate(ctx context.Context) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", domain.ErrRateUnavailable, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", domain.ErrRateUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: rate feed returned status %d", domain.ErrRateUnavailable, resp.StatusCode)
	}

	decoder := xml.NewDecoder(resp.Body)
	decoder.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "windows-1251") {
			return charmap.Windows1251.NewDecoder().Reader(input), nil
		}
		return input, nil
	}

	var feed valCurs
	if err := decoder.Decode(&feed); err != nil {
		return decimal.Zero, fmt.Errorf("%w: parse rate feed: %v", domain.ErrRateUnavailable, err)
	}

	for _, v := range feed.Valutes {
		if v.CharCode != "USD" {
			continue
		}
		return parseRate(v)
	}

	return decimal.Zero, fmt.Errorf("%w: USD quote not found in feed", domain.ErrRateUnavailable)
}

func parseRate(v valute) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(v.Value), ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: bad rate value %q", domain.ErrRateUnavailable, v.Value)
	}

	nominal, err := strconv.ParseInt(strings.TrimSpace(v.Nominal), 10, 64)
	if err != nil || nominal <= 0 {
		return decimal.Zero, fmt.Errorf("%w: bad rate nominal %q", domain.ErrRateUnavailable, v.Nominal)
	}

	rate := value.Div(decimal.NewFromInt(nominal))
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: non-positive rate %s", domain.ErrRateUnavailable, rate)
	}
	return rate, nil
}

package cbr

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-orlov/sheet-order-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dailyFeed = `<?xml version="1.0" encoding="windows-1251"?>
<ValCurs Date="30.08.2026" name="Foreign Currency Market">
  <Valute ID="R01090">
    <NumCode>933</NumCode>
    <CharCode>BYN</CharCode>
    <Nominal>1</Nominal>
    <Name>BYN</Name>
    <Value>29,9614</Value>
  </Valute>
  <Valute ID="R01235">
    <NumCode>840</NumCode>
    <CharCode>USD</CharCode>
    <Nominal>1</Nominal>
    <Name>USD</Name>
    <Value>90,50</Value>
  </Valute>
</ValCurs>`

func serveXML(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml; charset=windows-1251")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCurrentRate(t *testing.T) {
	srv := serveXML(t, dailyFeed, http.StatusOK)

	provider := NewDailyRateProvider(srv.URL, 2*time.Second)
	rate, err := provider.CurrentRate(context.Background())
	require.NoError(t, err)

	assert.True(t, rate.Equal(decimal.RequireFromString("90.50")), "rate = %s", rate)
}

func TestCurrentRate_DividesByNominal(t *testing.T) {
	feed := `<?xml version="1.0" encoding="windows-1251"?>
<ValCurs>
  <Valute><CharCode>USD</CharCode><Nominal>10</Nominal><Value>905,00</Value></Valute>
</ValCurs>`
	srv := serveXML(t, feed, http.StatusOK)

	provider := NewDailyRateProvider(srv.URL, 2*time.Second)
	rate, err := provider.CurrentRate(context.Background())
	require.NoError(t, err)

	assert.True(t, rate.Equal(decimal.RequireFromString("90.50")), "rate = %s", rate)
}

func TestCurrentRate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{
			name:   "http error",
			body:   "server error",
			status: http.StatusInternalServerError,
		},
		{
			name:   "no usd quote",
			body:   `<ValCurs><Valute><CharCode>EUR</CharCode><Nominal>1</Nominal><Value>99,00</Value></Valute></ValCurs>`,
			status: http.StatusOK,
		},
		{
			name:   "unparsable value",
			body:   `<ValCurs><Valute><CharCode>USD</CharCode><Nominal>1</Nominal><Value>n/a</Value></Valute></ValCurs>`,
			status: http.StatusOK,
		},
		{
			name:   "broken xml",
			body:   `<ValCurs><Valute>`,
			status: http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := serveXML(t, test.body, test.status)

			provider := NewDailyRateProvider(srv.URL, 2*time.Second)
			_, err := provider.CurrentRate(context.Background())
			assert.True(t, errors.Is(err, domain.ErrRateUnavailable), "got %v", err)
		})
	}
}

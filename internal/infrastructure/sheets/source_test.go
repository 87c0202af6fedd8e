package sheets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-orlov/sheet-order-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRows(t *testing.T) {
	csvBody := "id,заказ №,стоимость,срок поставки\n" +
		"7,1001,50.00,01.01.2020\n" +
		"8,1002,10.50,15.06.2022\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(csvBody))
	}))
	defer srv.Close()

	source := NewCSVExportSource(srv.URL, 2*time.Second)
	rows, err := source.FetchRows(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, domain.RawRow{"id", "заказ №", "стоимость", "срок поставки"}, rows[0])
	assert.Equal(t, domain.RawRow{"7", "1001", "50.00", "01.01.2020"}, rows[1])
	assert.Equal(t, domain.RawRow{"8", "1002", "10.50", "15.06.2022"}, rows[2])
}

func TestFetchRows_RaggedRowsSurvive(t *testing.T) {
	// Sheets export may emit short rows; the normalizer rejects them later.
	csvBody := "id,заказ №,стоимость,срок поставки\n7,1001\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(csvBody))
	}))
	defer srv.Close()

	source := NewCSVExportSource(srv.URL, 2*time.Second)
	rows, err := source.FetchRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.RawRow{"7", "1001"}, rows[1])
}

func TestFetchRows_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	source := NewCSVExportSource(srv.URL, 2*time.Second)
	_, err := source.FetchRows(context.Background())
	assert.True(t, errors.Is(err, domain.ErrSourceUnavailable), "got %v", err)
}

package owid

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"covid-dashboard-service/internal/dataset/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = header + "OWID_WRL,,World,2021-06-01,1000,10,9.5,50,1,2000000,12.5,,,7800000000\n"

func TestSource_FetchRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	src := NewSource(srv.URL, srv.Client())
	recs, err := src.FetchRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "World", recs[0].Location)
	assert.Equal(t, srv.URL, src.Name())
}

func TestSource_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	src := NewSource(srv.URL, srv.Client(), WithAttempts(3), WithBackoff(time.Millisecond))
	recs, err := src.FetchRecords(context.Background())
	require.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestSource_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	src := NewSource(srv.URL, srv.Client(), WithAttempts(3), WithBackoff(time.Millisecond))
	_, err := src.FetchRecords(context.Background())

	var fe *domain.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, srv.URL, fe.Source)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSource_SchemaErrorIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("location,date\nWorld,2021-01-01\n"))
	}))
	defer srv.Close()

	_, err := NewSource(srv.URL, srv.Client()).FetchRecords(context.Background())
	var fe *domain.FetchError
	require.True(t, errors.As(err, &fe))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestSource_NonFiniteCellFailsLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(header + "OWID_WRL,,World,2021-06-01,100,1,NaN,,,,,,,\n"))
	}))
	defer srv.Close()

	recs, err := NewSource(srv.URL, srv.Client()).FetchRecords(context.Background())
	var fe *domain.FetchError
	require.True(t, errors.As(err, &fe))
	assert.ErrorIs(t, err, ErrMalformedRow)
	assert.Nil(t, recs)
}

func TestSource_GivesUpAfterAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	src := NewSource(srv.URL, srv.Client(), WithAttempts(2), WithBackoff(time.Millisecond))
	_, err := src.FetchRecords(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestSource_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSource(srv.URL, srv.Client(), WithBackoff(time.Hour)).FetchRecords(ctx)
	var fe *domain.FetchError
	require.True(t, errors.As(err, &fe))
}

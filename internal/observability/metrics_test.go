package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.ObserveLetter("formal", "english", 2, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.LettersTotal.WithLabelValues("formal", "english", "ok")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.LettersTotal.WithLabelValues("formal", "english", "ok")))
}

func TestObserveLetter(t *testing.T) {
	m := NewMetrics()

	m.ObserveLetter("casual", "hinglish", 3, nil)
	m.ObserveLetter("casual", "hinglish", 0, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.LettersTotal.WithLabelValues("casual", "hinglish", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LettersTotal.WithLabelValues("casual", "hinglish", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.LetterParagraphs))
}

func TestObserveLetter_UnknownLabels(t *testing.T) {
	m := NewMetrics()
	m.ObserveLetter("pirate", "klingon", 0, errors.New("unknown option"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.LettersTotal.WithLabelValues("unknown", "unknown", "error")))
}

func TestObserveRender(t *testing.T) {
	m := NewMetrics()
	m.ObserveRender("html", nil)
	m.ObserveRender("latex", errors.New("bad template"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RendersTotal.WithLabelValues("html", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RendersTotal.WithLabelValues("latex", "error")))
}

func TestHandler(t *testing.T) {
	m := NewMetrics()
	m.ObserveRequest(http.MethodPost, "/letters", "200", 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `letter_studio_http_requests_total{method="POST",path="/letters",status="200"} 1`)
	assert.Contains(t, body, "letter_studio_http_request_duration_seconds_bucket")
	assert.Contains(t, body, "go_goroutines")
}

package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Recommendations(t *testing.T) {
	r := NewRecorder()

	r.ObserveRecommendation("ok", 20*time.Millisecond, 3)
	r.ObserveRecommendation("ok", 10*time.Millisecond, 0)
	r.ObserveRecommendation("no_profile", time.Millisecond, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.recommendations.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.recommendations.WithLabelValues("no_profile")))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "jobboard_recommendation_results_count 2")
	assert.Contains(t, rec.Body.String(), "jobboard_recommendation_duration_seconds_count 3")
}

func TestRecorder_HTTPAndWS(t *testing.T) {
	r := NewRecorder()

	r.ObserveHTTPRequest("GET", 200)
	r.ObserveHTTPRequest("GET", 204)
	r.ObserveHTTPRequest("POST", 404)
	r.SetWSClients(4)
	r.ObserveJobEvent("job_posted")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("GET", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("POST", "4xx")))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.wsClients))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.jobEventsBroadcast.WithLabelValues("job_posted")))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	r.ObserveRecommendation("ok", time.Second, 1)
	r.ObserveHTTPRequest("GET", 200)
	r.SetWSClients(1)
	r.ObserveJobEvent("job_posted")
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.ObserveRecommendation("ok", time.Millisecond, 1)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "jobboard_recommendation_requests_total"))
	assert.True(t, strings.Contains(rec.Body.String(), "go_goroutines"))
}

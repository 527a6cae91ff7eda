package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CountsPerModeAndKind(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.IncMatchesRecorded("1s", "duel")
	svc.IncMatchesRecorded("1s", "duel")
	svc.IncMatchesRecorded("2s", "team")
	svc.IncStoreConflicts("1s")
	svc.IncPlayersRegistered("ffa")

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.MatchesRecorded.WithLabelValues("1s", "duel")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.MatchesRecorded.WithLabelValues("2s", "team")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.StoreConflicts.WithLabelValues("1s")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.PlayersRegistered.WithLabelValues("ffa")))
}

func TestMetricsHandler_ExposesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)
	svc.IncMatchesRecorded("ffa", "free_for_all")
	svc.SetStartupTime(0.25)

	rec := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `ladder_matches_recorded_total{kind="free_for_all",mode="ffa"} 1`)
	assert.Contains(t, string(body), "ladder_startup_duration_seconds 0.25")
}

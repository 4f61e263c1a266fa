package metrics

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	newMux().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	return rec.Body.String()
}

func TestObserveConfigLoadAndSave(t *testing.T) {
	ObserveConfigLoad("yaml", errors.New("bad"))
	ObserveConfigSave("json", nil)

	body := scrape(t)
	assert.Contains(t, body, `tradecore_config_loads_total{format="yaml",result="error"}`)
	assert.Contains(t, body, `tradecore_config_saves_total{format="json",result="ok"}`)
}

func TestObserveBrokerError(t *testing.T) {
	ObserveBrokerError("NETWORK", "RETRY")

	assert.Contains(t, scrape(t), `tradecore_broker_errors_total{category="NETWORK",strategy="RETRY"}`)
}

func TestObserveConfigUpdate(t *testing.T) {
	ObserveConfigUpdate(1, 2, 0)

	body := scrape(t)
	assert.Contains(t, body, `tradecore_config_updates_total{result="applied"}`)
	assert.Contains(t, body, `tradecore_config_updates_total{result="ignored"}`)
}

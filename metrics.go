package homeslice

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homeslice_client",
			Name:      "api_requests_total",
			Help:      "API requests issued, by method and response class.",
		},
		[]string{"method", "class"},
	)

	tokenRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homeslice_client",
			Name:      "token_refresh_total",
			Help:      "Bearer token acquisition attempts by outcome.",
		},
		[]string{"outcome"},
	)
)

// metricsTransport counts every request by method and response class
// ("2xx", "4xx", "error", ...).
type metricsTransport struct {
	base http.RoundTripper
}

func (t *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		apiRequestsTotal.WithLabelValues(req.Method, "error").Inc()
		return nil, err
	}
	class := strconv.Itoa(resp.StatusCode/100) + "xx"
	apiRequestsTotal.WithLabelValues(req.Method, class).Inc()
	return resp, nil
}

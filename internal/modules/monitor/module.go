package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/unilab/labdash/internal/modules/monitor/application"
	"github.com/unilab/labdash/internal/modules/monitor/domain"
	"github.com/unilab/labdash/internal/modules/monitor/infrastructure/metrics"
	"github.com/unilab/labdash/internal/modules/monitor/infrastructure/polling"
	monitor_http "github.com/unilab/labdash/internal/modules/monitor/interfaces/http"
	requestsDomain "github.com/unilab/labdash/internal/modules/requests/domain"
	suppliesDomain "github.com/unilab/labdash/internal/modules/supplies/domain"
)

// Config holds the polling cadence of the default monitors
type Config struct {
	RequestsInterval time.Duration
	SuppliesInterval time.Duration
	FetchTimeout     time.Duration
}

// Module runs the change detectors that feed the notification store
type Module struct {
	monitors []domain.Monitor
	handler  *monitor_http.MonitorHandler
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewModule(
	cfg Config,
	solicitudes requestsDomain.Repository,
	insumos suppliesDomain.Repository,
	lowStock *application.LowStockHandler,
	notifier application.Notifier,
	logger *slog.Logger,
) *Module {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Module{logger: logger}

	requestsFeed := polling.NewFeed(cfg.RequestsInterval, cfg.FetchTimeout, solicitudes.List)
	m.monitors = append(m.monitors, application.NewWatcher[requestsDomain.Solicitud](
		"solicitudes", requestsFeed.Interval(), requestsFeed,
		application.NewSolicitudHandler(notifier, logger), metrics.Prometheus{}, logger))

	suppliesFeed := polling.NewFeed(cfg.SuppliesInterval, cfg.FetchTimeout, insumos.List)
	m.monitors = append(m.monitors, application.NewWatcher[suppliesDomain.Insumo](
		"insumos", suppliesFeed.Interval(), suppliesFeed,
		lowStock, metrics.Prometheus{}, logger))

	m.handler = monitor_http.NewMonitorHandler(m)
	return m
}

// Start launches every monitor in its own goroutine. It is a no-op when
// already running.
func (m *Module) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	for _, mon := range m.monitors {
		m.wg.Add(1)
		go func(mon domain.Monitor) {
			defer m.wg.Done()
			mon.Run(ctx)
		}(mon)
	}
}

// Stop cancels the monitors and waits for them to return.
func (m *Module) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	m.wg.Wait()
}

func (m *Module) Statuses() []domain.Status {
	out := make([]domain.Status, 0, len(m.monitors))
	for _, mon := range m.monitors {
		out = append(out, mon.Status())
	}
	return out
}

func (m *Module) HTTPHandler() *monitor_http.MonitorHandler {
	return m.handler
}

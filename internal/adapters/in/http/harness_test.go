package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpin "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/memory/eventlog"
	"orders/internal/adapters/out/memory/orderrepo"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
	"orders/internal/generated/servers"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// knownUsers is a user directory that knows a fixed set of ids.
type knownUsers map[string]bool

func (u knownUsers) Verify(_ context.Context, userID string) error {
	if !u[userID] {
		return errs.NewObjectNotFoundError("user", userID)
	}
	return nil
}

type app struct {
	echo    *echo.Echo
	repo    *orderrepo.MemoryOrderRepository
	events  *eventlog.EventLog
	metrics *metrics.Metrics
}

func newApp(t *testing.T, users ports.UserDirectory) *app {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	clock := ports.SystemClock
	m := metrics.New(prometheus.NewRegistry())
	repo := orderrepo.NewMemoryOrderRepository()
	events := eventlog.New(eventlog.DefaultQueueSize, clock, m, logger)

	policy, err := services.NewAccessPolicy()
	require.NoError(t, err)

	server := httpin.NewServer(
		commands.NewCreateOrderCommandHandler(repo, users, events, clock, logger),
		commands.NewUpdateOrderStatusCommandHandler(repo, policy, events, clock, logger),
		commands.NewCancelOrderCommandHandler(repo, policy, events, clock, logger),
		queries.NewGetOrderQueryHandler(repo, policy),
		queries.NewListOrdersQueryHandler(repo),
		clock,
	)

	return &app{
		echo:    httpin.NewRouter(server, m, logger),
		repo:    repo,
		events:  events,
		metrics: m,
	}
}

type caller struct {
	userID string
	roles  string
}

var (
	anonymous = caller{}
	alice     = caller{userID: "alice"}
	bob       = caller{userID: "bob"}
	admin     = caller{userID: "root", roles: `["admin"]`}
)

func (a *app) request(method, target string, who caller, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if who.userID != "" {
		req.Header.Set(httpin.HeaderUserID, who.userID)
	}
	if who.roles != "" {
		req.Header.Set(httpin.HeaderUserRoles, who.roles)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *servers.Error  `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func decodeOrder(t *testing.T, rec *httptest.ResponseRecorder) servers.Order {
	t.Helper()

	env := decode(t, rec)
	require.True(t, env.Success, rec.Body.String())

	var o servers.Order
	require.NoError(t, json.Unmarshal(env.Data, &o))
	return o
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) servers.OrderList {
	t.Helper()

	env := decode(t, rec)
	require.True(t, env.Success, rec.Body.String())

	var l servers.OrderList
	require.NoError(t, json.Unmarshal(env.Data, &l))
	return l
}

func requireFailure(t *testing.T, rec *httptest.ResponseRecorder, status int, code, message string) {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	env := decode(t, rec)
	require.False(t, env.Success)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)
	if message != "" {
		require.Equal(t, message, env.Error.Message)
	}
}

const twoItems = `{"items":[{"product":"book","quantity":2,"price":10},{"product":"pen","quantity":1,"price":5}]}`

func (a *app) createOrder(t *testing.T, who caller) servers.Order {
	t.Helper()

	rec := a.request(http.MethodPost, "/v1/orders", who, twoItems)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeOrder(t, rec)
}

// failureError is a decoded error envelope.
type failureError struct {
	Status int
	servers.Error
}

func (e *failureError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

// decodeEnvelope returns the data of a successful response or a *failureError.
func decodeEnvelope[T any](rec *httptest.ResponseRecorder) (T, error) {
	var (
		zero T
		env  struct {
			Success bool           `json:"success"`
			Data    T              `json:"data"`
			Error   *servers.Error `json:"error"`
		}
	)

	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		return zero, fmt.Errorf("decode %q: %w", rec.Body.String(), err)
	}
	if !env.Success {
		if env.Error == nil {
			return zero, errors.New("failure without error details")
		}
		return zero, &failureError{Status: rec.Code, Error: *env.Error}
	}
	return env.Data, nil
}

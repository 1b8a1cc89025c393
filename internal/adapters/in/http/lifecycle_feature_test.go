package http_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"orders/internal/generated/servers"

	"github.com/cucumber/godog"
)

type lifecycleTestContext struct {
	t       *testing.T
	app     *app
	users   knownUsers
	orderID string
	last    *httptest.ResponseRecorder
	pages   []servers.OrderList
}

func (c *lifecycleTestContext) reset() {
	c.users = knownUsers{admin.userID: true}
	c.app = newApp(c.t, c.users)
	c.orderID = ""
	c.last = nil
	c.pages = nil
}

func (c *lifecycleTestContext) who(name string) caller {
	return caller{userID: name}
}

func (c *lifecycleTestContext) theUsersExist(first, second string) error {
	c.users[first] = true
	c.users[second] = true
	return nil
}

func (c *lifecycleTestContext) createsAnOrderWithItems(name string, table *godog.Table) error {
	items := make([]string, 0, len(table.Rows))
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		items = append(items, fmt.Sprintf(`{"product":%q,"quantity":%s,"price":%s}`,
			row.Cells[0].Value, row.Cells[1].Value, row.Cells[2].Value))
	}

	return c.create(c.who(name), `{"items":[`+strings.Join(items, ",")+`]}`)
}

func (c *lifecycleTestContext) create(who caller, body string) error {
	c.last = c.app.request(http.MethodPost, "/v1/orders", who, body)
	if c.last.Code == http.StatusCreated {
		o, err := c.order()
		if err != nil {
			return err
		}
		c.orderID = o.Id.String()
	}
	return nil
}

const scenarioItems = `{"items":[{"product":"A","quantity":2,"price":100.5},{"product":"B","quantity":1,"price":250}]}`

func (c *lifecycleTestContext) hasAnOrder(name string) error {
	if err := c.create(c.who(name), scenarioItems); err != nil {
		return err
	}
	return c.theRequestSucceeds()
}

func (c *lifecycleTestContext) hasOrders(name string, n int) error {
	for range n {
		if err := c.hasAnOrder(name); err != nil {
			return err
		}
	}
	return nil
}

func (c *lifecycleTestContext) anonymousCreatesAnOrder() error {
	return c.create(anonymous, scenarioItems)
}

func (c *lifecycleTestContext) getsTheOrder(name string) error {
	c.last = c.app.request(http.MethodGet, "/v1/orders/"+c.orderID, c.who(name), "")
	return nil
}

func (c *lifecycleTestContext) setsTheOrderStatus(name, status string) error {
	return c.setStatus(c.who(name), status)
}

func (c *lifecycleTestContext) adminSetsTheOrderStatus(status string) error {
	return c.setStatus(admin, status)
}

func (c *lifecycleTestContext) setStatus(who caller, status string) error {
	c.last = c.app.request(http.MethodPatch, "/v1/orders/"+c.orderID+"/status", who, fmt.Sprintf(`{"status":%q}`, status))
	return nil
}

func (c *lifecycleTestContext) cancelsTheOrder(name string) error {
	c.last = c.app.request(http.MethodPost, "/v1/orders/"+c.orderID+"/cancel", c.who(name), "")
	return nil
}

func (c *lifecycleTestContext) adminCancelsTheOrder() error {
	c.last = c.app.request(http.MethodPost, "/v1/orders/"+c.orderID+"/cancel", admin, "")
	return nil
}

func (c *lifecycleTestContext) listsEveryPage(name string, limit int) error {
	for page := 1; ; page++ {
		rec := c.app.request(http.MethodGet, fmt.Sprintf("/v1/orders?page=%d&limit=%d", page, limit), c.who(name), "")
		if rec.Code != http.StatusOK {
			return fmt.Errorf("page %d: status %d: %s", page, rec.Code, rec.Body.String())
		}

		list, err := decodeEnvelope[servers.OrderList](rec)
		if err != nil {
			return err
		}
		c.pages = append(c.pages, list)

		if page >= list.Pagination.TotalPages {
			return nil
		}
	}
}

func (c *lifecycleTestContext) thePagesHoldDistinctOrdersOwnedBy(n int, name string) error {
	var ids []string
	for _, page := range c.pages {
		for _, o := range page.Orders {
			if o.UserId != name {
				return fmt.Errorf("order %s is owned by %q", o.Id, o.UserId)
			}
			ids = append(ids, o.Id.String())
		}
	}

	slices.Sort(ids)
	if len(slices.Compact(slices.Clone(ids))) != len(ids) {
		return errors.New("an order appears on more than one page")
	}
	if len(ids) != n {
		return fmt.Errorf("expected %d orders, got %d", n, len(ids))
	}
	return nil
}

func (c *lifecycleTestContext) listingTheFirstPageTwiceGivesTheSameResult() error {
	first := c.app.request(http.MethodGet, "/v1/orders?limit=3", c.who("alice"), "").Body.String()
	second := c.app.request(http.MethodGet, "/v1/orders?limit=3", c.who("alice"), "").Body.String()
	if first != second {
		return fmt.Errorf("listings differ:\n%s\n%s", first, second)
	}
	return nil
}

func (c *lifecycleTestContext) theRequestSucceeds() error {
	if c.last == nil {
		return errors.New("no request was made")
	}
	if c.last.Code != http.StatusOK && c.last.Code != http.StatusCreated {
		return fmt.Errorf("expected success, got %d: %s", c.last.Code, c.last.Body.String())
	}
	return nil
}

func (c *lifecycleTestContext) theRequestFailsWith(code string) error {
	if c.last == nil {
		return errors.New("no request was made")
	}

	env, err := decodeEnvelope[struct{}](c.last)
	if err == nil {
		return fmt.Errorf("expected %s, got success: %v", code, env)
	}

	var failure *failureError
	if !errors.As(err, &failure) {
		return err
	}
	if failure.Code != code {
		return fmt.Errorf("expected %s, got %s (%s)", code, failure.Code, failure.Message)
	}
	return nil
}

func (c *lifecycleTestContext) order() (servers.Order, error) {
	return decodeEnvelope[servers.Order](c.last)
}

func (c *lifecycleTestContext) theOrderTotalIs(total float64) error {
	o, err := c.order()
	if err != nil {
		return err
	}
	if o.Total != total {
		return fmt.Errorf("expected total %v, got %v", total, o.Total)
	}
	return nil
}

func (c *lifecycleTestContext) theOrderStatusIs(status string) error {
	o, err := c.order()
	if err != nil {
		return err
	}
	if string(o.Status) != status {
		return fmt.Errorf("expected status %q, got %q", status, o.Status)
	}
	return nil
}

func (c *lifecycleTestContext) theOrderIsOwnedBy(name string) error {
	o, err := c.order()
	if err != nil {
		return err
	}
	if o.UserId != name {
		return fmt.Errorf("expected owner %q, got %q", name, o.UserId)
	}
	return nil
}

func InitializeLifecycleScenario(t *testing.T) func(*godog.ScenarioContext) {
	return func(ctx *godog.ScenarioContext) {
		tc := &lifecycleTestContext{t: t}

		ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
			tc.reset()
			return ctx, nil
		})

		// Given steps
		ctx.Step(`^the users "([^"]*)" and "([^"]*)" exist$`, tc.theUsersExist)
		ctx.Step(`^"([^"]*)" has an order$`, tc.hasAnOrder)
		ctx.Step(`^"([^"]*)" has (\d+) orders$`, tc.hasOrders)

		// When steps
		ctx.Step(`^"([^"]*)" creates an order with items:$`, tc.createsAnOrderWithItems)
		ctx.Step(`^an anonymous caller creates an order$`, tc.anonymousCreatesAnOrder)
		ctx.Step(`^"([^"]*)" gets the order$`, tc.getsTheOrder)
		ctx.Step(`^"([^"]*)" sets the order status to "([^"]*)"$`, tc.setsTheOrderStatus)
		ctx.Step(`^the admin sets the order status to "([^"]*)"$`, tc.adminSetsTheOrderStatus)
		ctx.Step(`^"([^"]*)" cancels the order$`, tc.cancelsTheOrder)
		ctx.Step(`^the admin cancels the order$`, tc.adminCancelsTheOrder)
		ctx.Step(`^"([^"]*)" lists every page with limit (\d+)$`, tc.listsEveryPage)

		// Then steps
		ctx.Step(`^the request succeeds$`, tc.theRequestSucceeds)
		ctx.Step(`^the request fails with "([^"]*)"$`, tc.theRequestFailsWith)
		ctx.Step(`^the order total is ([\d.]+)$`, tc.theOrderTotalIs)
		ctx.Step(`^the order status is "([^"]*)"$`, tc.theOrderStatusIs)
		ctx.Step(`^the order is owned by "([^"]*)"$`, tc.theOrderIsOwnedBy)
		ctx.Step(`^the pages hold (\d+) distinct orders owned by "([^"]*)"$`, tc.thePagesHoldDistinctOrdersOwnedBy)
		ctx.Step(`^listing the first page twice gives the same result$`, tc.listingTheFirstPageTwiceGivesTheSameResult)
	}
}

func TestLifecycleFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeLifecycleScenario(t),
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/order_lifecycle.feature"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

// internal/pages/pages.go
package pages

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/atelier-gestor/atelier/internal/apiclient"
	"github.com/atelier-gestor/atelier/internal/i18n"
	"github.com/atelier-gestor/atelier/internal/listquery"
	"github.com/atelier-gestor/atelier/internal/models"
	"github.com/atelier-gestor/atelier/internal/notify"
	"github.com/atelier-gestor/atelier/internal/resources"
)

// Route paths the actions redirect to.
const (
	ClientsPath  = "/clientes"
	ProductsPath = "/produtos"
	OrdersPath   = "/pedidos"
)

// Reference lists for the order form selects are fetched in one page.
const referenceLimit = 100

var (
	productFilters = []string{"min_preco", "max_preco"}
	orderFilters   = []string{"status", "data_pedido", "data_conclusao", "min_total", "max_total"}
)

// Pages holds the route loaders and actions of the atelier screens.
type Pages struct {
	api       *apiclient.Client
	clients   *resources.Clients
	products  *resources.Products
	orders    *resources.Orders
	dashboard *resources.Dashboard
	notifier  notify.Notifier
	lang      string
}

func New(api *apiclient.Client, notifier notify.Notifier, lang string) *Pages {
	if notifier == nil {
		notifier = notify.NewLogNotifier(nil)
	}
	if lang == "" {
		lang = i18n.LangPortuguese
	}
	// Server messages come back in the same language as the screens
	api.WithLanguage(strings.ReplaceAll(lang, "_", "-"))
	return &Pages{
		api:       api,
		clients:   resources.NewClients(api),
		products:  resources.NewProducts(api),
		orders:    resources.NewOrders(api),
		dashboard: resources.NewDashboard(api),
		notifier:  notifier,
		lang:      lang,
	}
}

// ListData is a page of a list view together with its URL state.
type ListData[T any] struct {
	Items     []T
	Total     int64
	Params    listquery.Params
	Window    listquery.Window
	PageCount int
}

func loadList[T, C, U any](ctx context.Context, crud *resources.Crud[T, C, U], query url.Values, extraKeys ...string) (*ListData[T], error) {
	params := listquery.ParseParams(query, extraKeys...)

	page, err := crud.List(ctx, params.APIQuery())
	if err != nil {
		return nil, err
	}

	return &ListData[T]{
		Items:     page.Data,
		Total:     page.Total,
		Params:    params,
		Window:    params.Window(page.Total),
		PageCount: params.PageCount(page.Total),
	}, nil
}

func (p *Pages) ClientList(ctx context.Context, query url.Values) (*ListData[models.Client], error) {
	return loadList(ctx, p.clients, query)
}

func (p *Pages) ProductList(ctx context.Context, query url.Values) (*ListData[models.Product], error) {
	return loadList(ctx, p.products, query, productFilters...)
}

func (p *Pages) OrderList(ctx context.Context, query url.Values) (*ListData[models.Order], error) {
	return loadList(ctx, p.orders.Crud, query, orderFilters...)
}

func (p *Pages) ClientDetail(ctx context.Context, rawID string) (*models.Client, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	return p.clients.Get(ctx, id)
}

func (p *Pages) ProductDetail(ctx context.Context, rawID string) (*models.Product, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	return p.products.Get(ctx, id)
}

func (p *Pages) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	return p.dashboard.Get(ctx)
}

// OrderFormData feeds the order form. Order is nil on the create screen.
type OrderFormData struct {
	Order    *models.Order
	Clients  []models.Client
	Products []models.Product
}

func (p *Pages) OrderCreate(ctx context.Context) (*OrderFormData, error) {
	return p.loadOrderForm(ctx, 0)
}

func (p *Pages) OrderEdit(ctx context.Context, rawID string) (*OrderFormData, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	return p.loadOrderForm(ctx, id)
}

// loadOrderForm fetches the reference lists and, when editing, the order in
// parallel.
func (p *Pages) loadOrderForm(ctx context.Context, orderID uint) (*OrderFormData, error) {
	data := &OrderFormData{}
	reference := url.Values{"limit": {strconv.Itoa(referenceLimit)}}

	g, gctx := errgroup.WithContext(ctx)

	if orderID != 0 {
		g.Go(func() error {
			order, err := p.orders.Get(gctx, orderID)
			if err != nil {
				return err
			}
			data.Order = order
			return nil
		})
	}

	g.Go(func() error {
		page, err := p.clients.List(gctx, reference)
		if err != nil {
			return err
		}
		data.Clients = page.Data
		return nil
	})

	g.Go(func() error {
		page, err := p.products.List(gctx, reference)
		if err != nil {
			return err
		}
		data.Products = page.Data
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

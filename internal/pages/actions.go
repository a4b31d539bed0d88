// internal/pages/actions.go
package pages

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/atelier-gestor/atelier/internal/apiclient"
	"github.com/atelier-gestor/atelier/internal/i18n"
	"github.com/atelier-gestor/atelier/internal/models"
	"github.com/atelier-gestor/atelier/internal/orderdraft"
	"github.com/atelier-gestor/atelier/internal/orderform"
)

// Actions return the path to redirect to on success. Failures are notified
// and returned; nothing is retried.

func (p *Pages) CreateClient(ctx context.Context, values url.Values) (string, error) {
	req, err := clientCreate(values)
	if err != nil {
		return "", p.invalid(err)
	}
	if _, err := p.clients.Create(ctx, req); err != nil {
		return "", p.fail(err)
	}
	p.success(i18n.KeyUIClientSaved)
	return ClientsPath, nil
}

func (p *Pages) UpdateClient(ctx context.Context, rawID string, values url.Values) (string, error) {
	id, err := parseID(rawID)
	if err != nil {
		return "", p.invalid(err)
	}
	req, err := clientUpdate(values)
	if err != nil {
		return "", p.invalid(err)
	}
	if _, err := p.clients.Update(ctx, id, req); err != nil {
		return "", p.fail(err)
	}
	p.success(i18n.KeyUIClientSaved)
	return ClientsPath, nil
}

func (p *Pages) DeleteClient(ctx context.Context, rawID string) (string, error) {
	id, err := parseID(rawID)
	if err != nil {
		return "", p.invalid(err)
	}
	if err := p.clients.Delete(ctx, id); err != nil {
		return "", p.fail(err)
	}
	p.success(i18n.KeyUIClientDeleted)
	return ClientsPath, nil
}

func (p *Pages) CreateProduct(ctx context.Context, values url.Values) (string, error) {
	req, err := productCreate(values)
	if err != nil {
		return "", p.invalid(err)
	}
	if _, err := p.products.Create(ctx, req); err != nil {
		return "", p.fail(err)
	}
	p.success(i18n.KeyUIProductSaved)
	return ProductsPath, nil
}

func (p *Pages) UpdateProduct(ctx context.Context, rawID string, values url.Values) (string, error) {
	id, err := parseID(rawID)
	if err != nil {
		return "", p.invalid(err)
	}
	req, err := productUpdate(values)
	if err != nil {
		return "", p.invalid(err)
	}
	if _, err := p.products.Update(ctx, id, req); err != nil {
		return "", p.fail(err)
	}
	p.success(i18n.KeyUIProductSaved)
	return ProductsPath, nil
}

func (p *Pages) DeleteProduct(ctx context.Context, rawID string) (string, error) {
	id, err := parseID(rawID)
	if err != nil {
		return "", p.invalid(err)
	}
	if err := p.products.Delete(ctx, id); err != nil {
		return "", p.fail(err)
	}
	p.success(i18n.KeyUIProductDeleted)
	return ProductsPath, nil
}

func (p *Pages) DeleteOrder(ctx context.Context, rawID string) (string, error) {
	id, err := parseID(rawID)
	if err != nil {
		return "", p.invalid(err)
	}
	if err := p.orders.Delete(ctx, id); err != nil {
		return "", p.fail(err)
	}
	p.success(i18n.KeyUIOrderDeleted)
	return OrdersPath, nil
}

// OrderForm returns the item reconciler of the order screen: draft for a nil
// order, live otherwise.
func (p *Pages) OrderForm(order *models.Order, confirmer orderdraft.Confirmer) *orderdraft.Reconciler {
	return orderdraft.New(order, orderdraft.Deps{
		Orders:    p.orders,
		Submitter: p,
		Confirmer: confirmer,
		Notifier:  p.notifier,
		Lang:      p.lang,
	})
}

// OrderView is the item table and totals of the order screen.
func (p *Pages) OrderView(form *orderdraft.Reconciler, discountInput string) orderform.View {
	return orderform.Build(form.Items(), discountInput, p.api, p.lang)
}

// SaveOrder is the submit action of both order screens.
func (p *Pages) SaveOrder(ctx context.Context, form *orderdraft.Reconciler, values url.Values) (string, error) {
	if _, err := form.SaveOrder(ctx, values); err != nil {
		return "", err
	}
	return OrdersPath, nil
}

// Submit creates the order in one request, then uploads each pending file
// against the new id, one after the other. A failed upload is reported and
// the remaining files are still sent.
func (p *Pages) Submit(ctx context.Context, submission *orderdraft.Submission) (*models.Order, error) {
	order, err := p.orders.Create(ctx, submission.Order)
	if err != nil {
		return nil, err
	}

	for _, productID := range submission.ProductIDs() {
		updated, err := p.orders.UploadArt(ctx, order.ID, productID, submission.Files[productID])
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"order_id":   order.ID,
				"product_id": productID,
			}).Warn("Artwork upload after order creation failed")
			p.notifier.Error(i18n.T(p.lang, i18n.KeyUIUploadFailed, productID, apiclient.Message(err, p.lang)))
			continue
		}
		order = updated
	}

	return order, nil
}

func (p *Pages) success(key string) {
	p.notifier.Success(i18n.T(p.lang, key))
}

func (p *Pages) fail(err error) error {
	p.notifier.Error(apiclient.Message(err, p.lang))
	return err
}

func (p *Pages) invalid(err error) error {
	p.notifier.Error(i18n.T(p.lang, i18n.KeyValidationInvalid, err.Error()))
	return fmt.Errorf("invalid form: %w", err)
}

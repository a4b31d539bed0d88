// internal/orderdraft/strategy.go
package orderdraft

import (
	"context"
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/atelier-gestor/atelier/internal/i18n"
	"github.com/atelier-gestor/atelier/internal/models"
	"github.com/atelier-gestor/atelier/internal/resources"
)

// draftStrategy keeps the items of an unsaved order in memory, in the order
// they were added. A submitted draft refuses every further action.
type draftStrategy struct {
	deps      Deps
	order     models.Order
	pending   map[uint]resources.File
	previews  map[uint]string
	submitted bool
	created   *models.Order
}

func newDraftStrategy(deps Deps) *draftStrategy {
	return &draftStrategy{
		deps:     deps,
		pending:  make(map[uint]resources.File),
		previews: make(map[uint]string),
	}
}

func (d *draftStrategy) ready() error {
	if d.submitted {
		return reject(d.deps.Lang, i18n.KeyUIOrderSubmitted)
	}
	return nil
}

func (d *draftStrategy) lines() []Line {
	lines := make([]Line, 0, len(d.order.Items))
	for _, item := range d.order.Items {
		lines = append(lines, Line{OrderItem: item, Preview: d.previews[item.ProductID]})
	}
	return lines
}

func (d *draftStrategy) subtotal() decimal.Decimal {
	return d.order.Subtotal()
}

// addItem sums the quantity of a product already in the list, takes the
// new price and keeps the old note when the new one is blank.
func (d *draftStrategy) addItem(_ context.Context, in ItemInput) (bool, error) {
	price := in.UnitPrice
	merged := d.order.MergeItem(models.OrderItemInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UnitPrice: &price,
		Notes:     in.notes(),
	}, in.UnitPrice, in.ProductName)
	return merged, nil
}

func (d *draftStrategy) removeItem(_ context.Context, productID uint) error {
	if _, ok := d.order.RemoveItem(productID); !ok {
		return nil
	}
	delete(d.pending, productID)
	d.releasePreview(productID)
	d.deps.Notifier.Success(i18n.T(d.deps.Lang, i18n.KeyUIItemRemoved))
	return nil
}

func (d *draftStrategy) updateItem(_ context.Context, in ItemInput) error {
	item := d.order.FindItem(in.ProductID)
	if item == nil {
		return reject(d.deps.Lang, i18n.KeyUIItemNotInOrder)
	}
	item.Quantity = in.Quantity
	item.UnitPrice = in.UnitPrice
	item.Notes = in.notes()
	if in.ProductName != "" {
		item.ProductName = in.ProductName
	}
	item.LineTotal = item.Subtotal()
	return nil
}

// upload replaces the pending file of the item and its preview.
func (d *draftStrategy) upload(_ context.Context, productID uint, file resources.File) error {
	if d.order.FindItem(productID) == nil {
		return reject(d.deps.Lang, i18n.KeyUIItemNotInOrder)
	}
	d.releasePreview(productID)
	d.previews[productID] = d.deps.Previews.Acquire(file)
	d.pending[productID] = file
	d.deps.Notifier.Success(i18n.T(d.deps.Lang, i18n.KeyUIArtSelected))
	return nil
}

func (d *draftStrategy) save(ctx context.Context, header Header) (*models.Order, error) {
	if d.deps.Submitter == nil {
		return nil, errors.New("orderdraft: no submitter configured")
	}

	submission := &Submission{
		Order: header.create(d.order.Items),
		Files: make(map[uint]resources.File, len(d.pending)),
	}
	for productID, file := range d.pending {
		submission.Files[productID] = file
	}

	order, err := d.deps.Submitter.Submit(ctx, submission)
	if err != nil {
		return nil, err
	}

	d.close()
	d.pending = make(map[uint]resources.File)
	d.order = models.Order{}
	d.submitted = true
	d.created = order
	return order, nil
}

func (d *draftStrategy) releasePreview(productID uint) {
	if handle, ok := d.previews[productID]; ok {
		d.deps.Previews.Release(handle)
		delete(d.previews, productID)
	}
}

func (d *draftStrategy) close() {
	for productID := range d.previews {
		d.releasePreview(productID)
	}
}

// liveStrategy sends every item change to the server right away and keeps
// the order it answers with.
type liveStrategy struct {
	deps  Deps
	order *models.Order
}

func (l *liveStrategy) ready() error {
	return nil
}

func (l *liveStrategy) lines() []Line {
	lines := make([]Line, 0, len(l.order.Items))
	for _, item := range l.order.Items {
		lines = append(lines, Line{OrderItem: item})
	}
	return lines
}

func (l *liveStrategy) subtotal() decimal.Decimal {
	return l.order.Subtotal()
}

func (l *liveStrategy) addItem(ctx context.Context, in ItemInput) (bool, error) {
	merged := l.order.FindItem(in.ProductID) != nil

	price := in.UnitPrice
	order, err := l.deps.Orders.AddItem(ctx, l.order.ID, models.OrderItemInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UnitPrice: &price,
		Notes:     in.notes(),
	})
	if err != nil {
		return false, err
	}
	l.order = order
	return merged, nil
}

// removeItem never empties the order. Removing the only item offers to
// cancel the order instead.
func (l *liveStrategy) removeItem(ctx context.Context, productID uint) error {
	if len(l.order.Items) <= 1 {
		if l.deps.Confirmer != nil && !l.deps.Confirmer.Confirm(i18n.T(l.deps.Lang, i18n.KeyUIConfirmCancelOrder)) {
			return ErrLastItem
		}
		order, err := l.deps.Orders.Update(ctx, l.order.ID, models.OrderUpdate{
			Status: models.Some(models.OrderStatusCancelled),
		})
		if err != nil {
			return err
		}
		l.order = order
		l.deps.Notifier.Success(i18n.T(l.deps.Lang, i18n.KeyUIOrderCancelled))
		return nil
	}

	order, err := l.deps.Orders.RemoveItem(ctx, l.order.ID, productID)
	if err != nil {
		return err
	}
	l.order = order
	l.deps.Notifier.Success(i18n.T(l.deps.Lang, i18n.KeyUIItemRemoved))
	return nil
}

func (l *liveStrategy) updateItem(ctx context.Context, in ItemInput) error {
	order, err := l.deps.Orders.UpdateItem(ctx, l.order.ID, in.ProductID, models.OrderItemUpdate{
		Quantity:  models.Some(in.Quantity),
		UnitPrice: models.Some(in.UnitPrice),
		Notes:     models.FromPtr(in.notes()),
	})
	if err != nil {
		return err
	}
	l.order = order
	return nil
}

func (l *liveStrategy) upload(ctx context.Context, productID uint, file resources.File) error {
	order, err := l.deps.Orders.UploadArt(ctx, l.order.ID, productID, file)
	if err != nil {
		return err
	}
	l.order = order
	l.deps.Notifier.Success(i18n.T(l.deps.Lang, i18n.KeyUIArtUploaded))
	return nil
}

func (l *liveStrategy) save(ctx context.Context, header Header) (*models.Order, error) {
	order, err := l.deps.Orders.Update(ctx, l.order.ID, header.update())
	if err != nil {
		return nil, err
	}
	l.order = order
	return order, nil
}

func (l *liveStrategy) close() {}

// ProductIDs lists the products with a pending file, ascending.
func (s *Submission) ProductIDs() []uint {
	ids := make([]uint, 0, len(s.Files))
	for id := range s.Files {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// internal/orderdraft/orderdraft.go
package orderdraft

import (
	"context"
	"errors"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/atelier-gestor/atelier/internal/apiclient"
	"github.com/atelier-gestor/atelier/internal/artwork"
	"github.com/atelier-gestor/atelier/internal/i18n"
	"github.com/atelier-gestor/atelier/internal/models"
	"github.com/atelier-gestor/atelier/internal/notify"
	"github.com/atelier-gestor/atelier/internal/resources"
)

// ErrLastItem is returned when the user keeps an order's only item after
// being offered to cancel the order.
var ErrLastItem = errors.New("order cannot lose its last item")

// RejectedError is a client side validation failure. No request was sent.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}

func reject(lang, key string, args ...interface{}) *RejectedError {
	return &RejectedError{Message: i18n.T(lang, key, args...)}
}

// IsRejected reports whether err stopped an action before any request.
func IsRejected(err error) bool {
	var rejected *RejectedError
	return errors.As(err, &rejected)
}

// OrderAPI is the part of the orders resource the reconciler calls.
type OrderAPI interface {
	Update(ctx context.Context, id uint, data models.OrderUpdate) (*models.Order, error)
	AddItem(ctx context.Context, orderID uint, item models.OrderItemInput) (*models.Order, error)
	UpdateItem(ctx context.Context, orderID, productID uint, update models.OrderItemUpdate) (*models.Order, error)
	RemoveItem(ctx context.Context, orderID, productID uint) (*models.Order, error)
	UploadArt(ctx context.Context, orderID, productID uint, file resources.File) (*models.Order, error)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(message string) bool
}

// Submission is a new order with everything collected while drafting.
type Submission struct {
	Order models.OrderCreate
	Files map[uint]resources.File
}

// Submitter persists a draft submission and returns the created order.
type Submitter interface {
	Submit(ctx context.Context, submission *Submission) (*models.Order, error)
}

// Deps are the collaborators of a Reconciler. A nil Confirmer accepts every
// question; MaxArtSizeMB defaults to 15.
type Deps struct {
	Orders       OrderAPI
	Submitter    Submitter
	Confirmer    Confirmer
	Notifier     notify.Notifier
	Previews     PreviewStore
	Lang         string
	MaxArtSizeMB int
}

// ItemInput is what the item form produces.
type ItemInput struct {
	ProductID   uint
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Notes       string
}

func (in ItemInput) notes() *string {
	if in.Notes == "" {
		return nil
	}
	notes := in.Notes
	return &notes
}

// Line is an order item as shown in the form. Preview is set for a draft
// item whose artwork has not been uploaded yet.
type Line struct {
	models.OrderItem
	Preview string
}

type strategy interface {
	// ready refuses every action once a draft has been submitted.
	ready() error
	lines() []Line
	subtotal() decimal.Decimal
	addItem(ctx context.Context, in ItemInput) (merged bool, err error)
	removeItem(ctx context.Context, productID uint) error
	updateItem(ctx context.Context, in ItemInput) error
	upload(ctx context.Context, productID uint, file resources.File) error
	save(ctx context.Context, header Header) (*models.Order, error)
	close()
}

// Reconciler gives the order form one set of item operations whether or not
// the order exists on the server. It is not safe for concurrent use.
type Reconciler struct {
	deps     Deps
	strategy strategy
	live     *liveStrategy
	draft    *draftStrategy
}

// New picks the live strategy for a persisted order and the draft strategy
// otherwise. The choice never changes afterwards.
func New(order *models.Order, deps Deps) *Reconciler {
	if deps.Notifier == nil {
		deps.Notifier = notify.NewLogNotifier(nil)
	}
	if deps.Previews == nil {
		deps.Previews = NewMemoryPreviews()
	}
	if deps.Lang == "" {
		deps.Lang = i18n.LangPortuguese
	}
	if deps.MaxArtSizeMB <= 0 {
		deps.MaxArtSizeMB = artwork.MaxSizeMB
	}

	r := &Reconciler{deps: deps}
	if order != nil && order.ID != 0 {
		r.live = &liveStrategy{deps: deps, order: order}
		r.strategy = r.live
		return r
	}
	r.draft = newDraftStrategy(deps)
	r.strategy = r.draft
	return r
}

func (r *Reconciler) Live() bool {
	return r.live != nil
}

// Order is the latest server snapshot in live mode, nil for a draft.
func (r *Reconciler) Order() *models.Order {
	if r.live == nil {
		return nil
	}
	return r.live.order
}

func (r *Reconciler) Items() []Line {
	return r.strategy.lines()
}

func (r *Reconciler) Subtotal() decimal.Decimal {
	return r.strategy.subtotal()
}

// AddItem checks the input before it reaches either strategy: a product,
// a quantity of at least 1 and a price that is not negative.
func (r *Reconciler) AddItem(ctx context.Context, in ItemInput) error {
	if err := r.checkItem(in); err != nil {
		return r.fail(err)
	}
	merged, err := r.strategy.addItem(ctx, in)
	if err != nil {
		return r.fail(err)
	}
	if merged {
		r.success(i18n.KeyUIItemUpdated)
	} else {
		r.success(i18n.KeyUIItemAdded)
	}
	return nil
}

// RemoveItem asks for confirmation first. A declined confirmation is not an
// error.
func (r *Reconciler) RemoveItem(ctx context.Context, productID uint) error {
	if err := r.strategy.ready(); err != nil {
		return r.fail(err)
	}
	if !r.confirm(i18n.KeyUIConfirmRemoveItem) {
		return nil
	}
	if err := r.strategy.removeItem(ctx, productID); err != nil {
		if errors.Is(err, ErrLastItem) {
			return err
		}
		return r.fail(err)
	}
	return nil
}

func (r *Reconciler) UpdateItem(ctx context.Context, in ItemInput) error {
	if err := r.checkItem(in); err != nil {
		return r.fail(err)
	}
	if err := r.strategy.updateItem(ctx, in); err != nil {
		return r.fail(err)
	}
	r.success(i18n.KeyUIItemUpdated)
	return nil
}

// HandleUpload checks the file before anything else: JPEG, PNG or WEBP
// content within the size limit.
func (r *Reconciler) HandleUpload(ctx context.Context, file resources.File, productID uint) error {
	if err := r.strategy.ready(); err != nil {
		return r.fail(err)
	}
	if err := r.checkFile(file); err != nil {
		return r.fail(err)
	}
	if err := r.strategy.upload(ctx, productID, file); err != nil {
		return r.fail(err)
	}
	return nil
}

func (r *Reconciler) checkItem(in ItemInput) error {
	if err := r.strategy.ready(); err != nil {
		return err
	}
	switch {
	case in.ProductID == 0:
		return reject(r.deps.Lang, i18n.KeyUIProductRequired)
	case in.Quantity < 1:
		return reject(r.deps.Lang, i18n.KeyUIQuantityInvalid)
	case in.UnitPrice.IsNegative():
		return reject(r.deps.Lang, i18n.KeyUIPriceNegative)
	}
	return nil
}

func (r *Reconciler) checkFile(file resources.File) error {
	format, err := artwork.Detect(file.Content)
	if err != nil {
		return reject(r.deps.Lang, i18n.KeyUIFileInvalidType)
	}
	if err := artwork.CheckDeclared(file.ContentType, format); err != nil {
		return reject(r.deps.Lang, i18n.KeyUIFileInvalidType)
	}
	if err := artwork.CheckSize(int64(len(file.Content)), r.deps.MaxArtSizeMB); err != nil {
		return reject(r.deps.Lang, i18n.KeyUIFileTooLarge, r.deps.MaxArtSizeMB)
	}
	return nil
}

// SaveOrder validates the form and the items, then creates the order
// (draft) or patches its header (live).
func (r *Reconciler) SaveOrder(ctx context.Context, form url.Values) (*models.Order, error) {
	if err := r.strategy.ready(); err != nil {
		return nil, r.fail(err)
	}
	header, err := ParseHeader(form, r.deps.Lang)
	if err != nil {
		return nil, r.fail(err)
	}
	if err := r.Validate(header.Discount); err != nil {
		return nil, r.fail(err)
	}

	order, err := r.strategy.save(ctx, header)
	if err != nil {
		return nil, r.fail(err)
	}
	if r.Live() {
		r.success(i18n.KeyUIOrderSaved)
	} else {
		r.success(i18n.KeyUIOrderCreated)
	}
	return order, nil
}

// Validate checks the order before submit: at least one item, a discount
// within [0, subtotal] and a positive total.
func (r *Reconciler) Validate(discount decimal.Decimal) error {
	if len(r.strategy.lines()) == 0 {
		return reject(r.deps.Lang, i18n.KeyUIOrderEmpty)
	}
	switch models.ValidateTotal(r.strategy.subtotal(), discount) {
	case models.ErrNegativeDiscount:
		return reject(r.deps.Lang, i18n.KeyOrderDiscountNegative)
	case models.ErrDiscountExceedsSubtotal:
		return reject(r.deps.Lang, i18n.KeyUIDiscountTooHigh)
	case models.ErrTotalNotPositive:
		return reject(r.deps.Lang, i18n.KeyUITotalNotPositive)
	}
	return nil
}

// Submitted is the order created from this draft, nil until then.
func (r *Reconciler) Submitted() *models.Order {
	if r.draft == nil {
		return nil
	}
	return r.draft.created
}

// Close releases every preview handle still held.
func (r *Reconciler) Close() {
	r.strategy.close()
}

func (r *Reconciler) confirm(key string) bool {
	if r.deps.Confirmer == nil {
		return true
	}
	return r.deps.Confirmer.Confirm(i18n.T(r.deps.Lang, key))
}

func (r *Reconciler) success(key string, args ...interface{}) {
	r.deps.Notifier.Success(i18n.T(r.deps.Lang, key, args...))
}

// fail shows err to the user and returns it.
func (r *Reconciler) fail(err error) error {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		r.deps.Notifier.Error(rejected.Message)
		return err
	}
	r.deps.Notifier.Error(apiclient.Message(err, r.deps.Lang))
	return err
}

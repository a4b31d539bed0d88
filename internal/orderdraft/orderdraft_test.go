// internal/orderdraft/orderdraft_test.go
package orderdraft

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/atelier-gestor/atelier/internal/apiclient"
	"github.com/atelier-gestor/atelier/internal/i18n"
	"github.com/atelier-gestor/atelier/internal/models"
	"github.com/atelier-gestor/atelier/internal/notify"
	"github.com/atelier-gestor/atelier/internal/resources"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pngFile(t *testing.T) resources.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return resources.File{Name: "arte.png", ContentType: "image/png", Content: buf.Bytes()}
}

type OrderDraftTestSuite struct {
	suite.Suite
	ctx       context.Context
	orders    *MockOrderAPI
	submitter *MockSubmitter
	confirmer *scriptedConfirmer
	notes     *notify.Recorder
	previews  *MemoryPreviews
}

func (s *OrderDraftTestSuite) SetupSuite() {
	s.Require().NoError(i18n.Initialize(i18n.LangPortuguese))
}

func (s *OrderDraftTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.orders = new(MockOrderAPI)
	s.submitter = new(MockSubmitter)
	s.confirmer = &scriptedConfirmer{}
	s.notes = &notify.Recorder{}
	s.previews = NewMemoryPreviews()
}

func (s *OrderDraftTestSuite) deps() Deps {
	return Deps{
		Orders:    s.orders,
		Submitter: s.submitter,
		Confirmer: s.confirmer,
		Notifier:  s.notes,
		Previews:  s.previews,
	}
}

func (s *OrderDraftTestSuite) draft() *Reconciler {
	return New(nil, s.deps())
}

func (s *OrderDraftTestSuite) liveOrder(items ...models.OrderItem) *models.Order {
	order := &models.Order{Items: items, Status: models.OrderStatusInProduction}
	order.ID = 42
	return order
}

func (s *OrderDraftTestSuite) lastMessage() notify.Message {
	msg, ok := s.notes.Last()
	s.Require().True(ok)
	return msg
}

func (s *OrderDraftTestSuite) TestStrategyIsPickedOnce() {
	s.False(s.draft().Live())
	s.False(New(&models.Order{}, s.deps()).Live())
	s.True(New(s.liveOrder(), s.deps()).Live())
}

func (s *OrderDraftTestSuite) TestDraftAddSameProductSumsQuantity() {
	r := s.draft()

	s.NoError(r.AddItem(s.ctx, ItemInput{ProductID: 1, ProductName: "Caneca", Quantity: 2, UnitPrice: dec("10"), Notes: "azul"}))
	s.Equal("Item adicionado ao pedido!", s.lastMessage().Text)

	s.NoError(r.AddItem(s.ctx, ItemInput{ProductID: 1, ProductName: "Caneca", Quantity: 3, UnitPrice: dec("12.50"), Notes: "vermelha"}))
	s.Equal("Item atualizado com sucesso!", s.lastMessage().Text)

	items := r.Items()
	s.Require().Len(items, 1)
	s.Equal(5, items[0].Quantity)
	s.True(dec("12.50").Equal(items[0].UnitPrice))
	s.Equal("vermelha", *items[0].Notes)
	s.True(dec("62.50").Equal(r.Subtotal()))

	// A blank note keeps the earlier one
	s.NoError(r.AddItem(s.ctx, ItemInput{ProductID: 1, Quantity: 1, UnitPrice: dec("12.50")}))
	items = r.Items()
	s.Equal(6, items[0].Quantity)
	s.Equal("vermelha", *items[0].Notes)

	s.NoError(r.AddItem(s.ctx, ItemInput{ProductID: 2, ProductName: "Camiseta", Quantity: 1, UnitPrice: dec("40")}))
	s.Len(r.Items(), 2)
	s.orders.AssertNotCalled(s.T(), "AddItem", mock.Anything, mock.Anything, mock.Anything)
}

func (s *OrderDraftTestSuite) TestDraftUpdateReplacesEntry() {
	r := s.draft()
	s.NoError(r.AddItem(s.ctx, ItemInput{ProductID: 1, Quantity: 2, UnitPrice: dec("10"), Notes: "azul"}))

	s.NoError(r.UpdateItem(s.ctx, ItemInput{ProductID: 1, Quantity: 7, UnitPrice: dec("9")}))
	item := r.Items()[0]
	s.Equal(7, item.Quantity)
	s.True(dec("9").Equal(item.UnitPrice))
	s.Nil(item.Notes)
	s.True(dec("63").Equal(item.LineTotal))
}

func (s *OrderDraftTestSuite) TestDraftRemoveNeedsConfirmation() {
	r := s.draft()
	s.NoError(r.AddItem(s.ctx, ItemInput{ProductID: 1, Quantity: 1, UnitPrice: dec("10")}))

	s.confirmer.answers = []bool{false}
	s.NoError(r.RemoveItem(s.ctx, 1))
	s.Len(r.Items(), 1)

	s.confirmer.answers = []bool{true}
	s.NoError(r.RemoveItem(s.ctx, 1))
	s.Empty(r.Items())
	s.Equal("Item removido com sucesso.", s.lastMessage().Text)
	s.Equal([]string{"Deseja remover este item do pedido?", "Deseja remover este item do pedido?"}, s.confirmer.asked)
}

func (s *OrderDraftTestSuite) TestPreviewLifecycle() {
	r := s.draft()
	s.NoError(r.AddItem(s.ctx, ItemInput{ProductID: 1, Quantity: 1, UnitPrice: dec("10")}))
	s.NoError(r.AddItem(s.ctx, ItemInput{ProductID: 2, Quantity: 1, UnitPrice: dec("10")}))

	s.NoError(r.HandleUpload(s.ctx, pngFile(s.T()), 1))
	first := r.Items()[0].Preview
	s.True(IsPreview(first))
	s.Equal(1, s.previews.Len())

	// Replacing the artwork releases the old handle
	s.NoError(r.HandleUpload(s.ctx, pngFile(s.T()), 1))
	second := r.Items()[0].Preview
	s.NotEqual(first, second)
	s.Equal(1, s.previews.Len())
	_, ok := s.previews.Open(first)
	s.False(ok)

	// Removal releases it too
	s.confirmer.answers = []bool{true}
	s.NoError(r.RemoveItem(s.ctx, 1))
	s.Equal(0, s.previews.Len())

	// Teardown releases whatever is left
	s.NoError(r.HandleUpload(s.ctx, pngFile(s.T()), 2))
	s.Equal(1, s.previews.Len())
	r.Close()
	s.Equal(0, s.previews.Len())

	// Products not in the draft have no artwork to replace
	s.True(IsRejected(r.HandleUpload(s.ctx, pngFile(s.T()), 99)))
	s.Equal(notify.Message{Kind: notify.KindError, Text: "Este produto não está no pedido."}, s.lastMessage())
	s.Equal(0, s.previews.Len())
}

func (s *OrderDraftTestSuite) TestDraftUpdateOfUnknownProductIsRejected() {
	r := s.draft()
	s.NoError(r.AddItem(s.ctx, ItemInput{ProductID: 1, Quantity: 1, UnitPrice: dec("10")}))
	s.notes.Drain()

	err := r.UpdateItem(s.ctx, ItemInput{ProductID: 99, Quantity: 2, UnitPrice: dec("10")})
	s.True(IsRejected(err))
	s.Equal([]notify.Message{{Kind: notify.KindError, Text: "Este produto não está no pedido."}}, s.notes.Messages())
	s.Equal(1, r.Items()[0].Quantity)
}

func (s *OrderDraftTestSuite) TestItemInputRejectedBeforeAnyChange() {
	cases := []struct {
		in   ItemInput
		want string
	}{
		{ItemInput{ProductID: 0, Quantity: 1, UnitPrice: dec("10")}, "Selecione um produto."},
		{ItemInput{ProductID: 1, Quantity: 0, UnitPrice: dec("10")}, "A quantidade deve ser de pelo menos 1."},
		{ItemInput{ProductID: 1, Quantity: -3, UnitPrice: dec("10")}, "A quantidade deve ser de pelo menos 1."},
		{ItemInput{ProductID: 1, Quantity: 1, UnitPrice: dec("-0.01")}, "O preço unitário não pode ser negativo."},
	}

	draft := s.draft()
	live := New(s.liveOrder(models.OrderItem{ProductID: 1, Quantity: 1, UnitPrice: dec("10")}), s.deps())
	for _, tc := range cases {
		s.True(IsRejected(draft.AddItem(s.ctx, tc.in)))
		s.Equal(tc.want, s.lastMessage().Text)
		s.True(IsRejected(live.AddItem(s.ctx, tc.in)))
		s.True(IsRejected(live.UpdateItem(s.ctx, tc.in)))
	}

	s.Empty(draft.Items())
	s.True(draft.Subtotal().IsZero())
	s.Equal(1, live.Items()[0].Quantity)
	s.orders.AssertNotCalled(s.T(), "AddItem", mock.Anything, mock.Anything, mock.Anything)
	s.orders.AssertNotCalled(s.T(), "UpdateItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *OrderDraftTestSuite) TestUploadRejectedBeforeAnyRequest() {
	r := New(s.liveOrder(models.OrderItem{ProductID: 1, Quantity: 1}), s.deps())

	err := r.HandleUpload(s.ctx, resources.File{Name: "a.txt", ContentType: "text/plain", Content: []byte("hello")}, 1)
	s.True(IsRejected(err))
	s.Equal(notify.Message{Kind: notify.KindError, Text: "Formato inválido! Por favor, selecione apenas imagens (JPG, JPEG, PNG ou WEBP)."}, s.lastMessage())

	// PNG bytes declared as GIF
	mislabeled := pngFile(s.T())
	mislabeled.ContentType = "image/gif"
	s.True(IsRejected(r.HandleUpload(s.ctx, mislabeled, 1)))

	big := pngFile(s.T())
	big.Content = append(big.Content, make([]byte, 15<<20)...)
	err = r.HandleUpload(s.ctx, big, 1)
	s.True(IsRejected(err))
	s.Equal("A imagem é muito pesada! O tamanho máximo permitido é 15MB.", s.lastMessage().Text)

	s.orders.AssertNotCalled(s.T(), "UploadArt", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *OrderDraftTestSuite) TestLiveUploadSendsImmediately() {
	r := New(s.liveOrder(models.OrderItem{ProductID: 1, Quantity: 1}), s.deps())
	file := pngFile(s.T())

	path := "/uploads/artes/arte_pedido_42_produto_1_x.png"
	updated := s.liveOrder(models.OrderItem{ProductID: 1, Quantity: 1, ArtPath: &path})
	s.orders.On("UploadArt", s.ctx, uint(42), uint(1), file).Return(updated, nil).Once()

	s.NoError(r.HandleUpload(s.ctx, file, 1))
	s.Equal(path, *r.Items()[0].ArtPath)
	s.Equal(0, s.previews.Len())
	s.orders.AssertExpectations(s.T())
}

func (s *OrderDraftTestSuite) TestLiveAddItemUsesServerSnapshot() {
	r := New(s.liveOrder(models.OrderItem{ProductID: 1, Quantity: 2, UnitPrice: dec("10")}), s.deps())

	price := dec("10")
	expected := models.OrderItemInput{ProductID: 1, Quantity: 1, UnitPrice: &price}
	updated := s.liveOrder(models.OrderItem{ProductID: 1, Quantity: 3, UnitPrice: dec("10")})
	s.orders.On("AddItem", s.ctx, uint(42), expected).Return(updated, nil).Once()

	s.NoError(r.AddItem(s.ctx, ItemInput{ProductID: 1, Quantity: 1, UnitPrice: dec("10")}))
	s.Equal(3, r.Items()[0].Quantity)
	s.Equal(updated, r.Order())
	s.Equal("Item atualizado com sucesso!", s.lastMessage().Text)
	s.orders.AssertExpectations(s.T())
}

func (s *OrderDraftTestSuite) TestLiveRemoveLastItemOffersCancel() {
	r := New(s.liveOrder(models.OrderItem{ProductID: 1, Quantity: 1}), s.deps())

	// Keep the item: nothing is sent
	s.confirmer.answers = []bool{true, false}
	s.ErrorIs(r.RemoveItem(s.ctx, 1), ErrLastItem)
	s.Equal("O pedido não pode ficar sem itens. Deseja cancelar o pedido?", s.confirmer.asked[1])
	s.orders.AssertNotCalled(s.T(), "RemoveItem", mock.Anything, mock.Anything, mock.Anything)
	s.orders.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)

	// Accept: the order is cancelled instead
	cancelled := s.liveOrder(models.OrderItem{ProductID: 1, Quantity: 1})
	cancelled.Status = models.OrderStatusCancelled
	s.orders.On("Update", s.ctx, uint(42), models.OrderUpdate{Status: models.Some(models.OrderStatusCancelled)}).
		Return(cancelled, nil).Once()

	s.confirmer.answers = []bool{true, true}
	s.NoError(r.RemoveItem(s.ctx, 1))
	s.Equal(models.OrderStatusCancelled, r.Order().Status)
	s.Len(r.Items(), 1)
	s.Equal("Pedido cancelado.", s.lastMessage().Text)
	s.orders.AssertNotCalled(s.T(), "RemoveItem", mock.Anything, mock.Anything, mock.Anything)
	s.orders.AssertExpectations(s.T())
}

func (s *OrderDraftTestSuite) TestLiveRemoveItem() {
	r := New(s.liveOrder(
		models.OrderItem{ProductID: 1, Quantity: 1},
		models.OrderItem{ProductID: 2, Quantity: 1},
	), s.deps())

	s.orders.On("RemoveItem", s.ctx, uint(42), uint(2)).
		Return(s.liveOrder(models.OrderItem{ProductID: 1, Quantity: 1}), nil).Once()

	s.confirmer.answers = []bool{true}
	s.NoError(r.RemoveItem(s.ctx, 2))
	s.Len(r.Items(), 1)
	s.orders.AssertExpectations(s.T())
}

func (s *OrderDraftTestSuite) TestLiveUpdateItem() {
	r := New(s.liveOrder(models.OrderItem{ProductID: 1, Quantity: 1}), s.deps())

	expected := models.OrderItemUpdate{
		Quantity:  models.Some(4),
		UnitPrice: models.Some(dec("8")),
		Notes:     models.Null[string](),
	}
	s.orders.On("UpdateItem", s.ctx, uint(42), uint(1), expected).
		Return(s.liveOrder(models.OrderItem{ProductID: 1, Quantity: 4, UnitPrice: dec("8")}), nil).Once()

	s.NoError(r.UpdateItem(s.ctx, ItemInput{ProductID: 1, Quantity: 4, UnitPrice: dec("8")}))
	s.Equal(4, r.Items()[0].Quantity)
	s.orders.AssertExpectations(s.T())
}

func (s *OrderDraftTestSuite) TestServerErrorsAreNotified() {
	r := New(s.liveOrder(models.OrderItem{ProductID: 1, Quantity: 1}), s.deps())

	apiErr := &apiclient.APIError{Status: http.StatusBadRequest, Detail: "Produto com ID 9 não encontrado."}
	s.orders.On("AddItem", s.ctx, uint(42), mock.Anything).Return(nil, apiErr).Once()

	err := r.AddItem(s.ctx, ItemInput{ProductID: 9, Quantity: 1, UnitPrice: dec("1")})
	s.ErrorIs(err, apiErr)
	s.False(IsRejected(err))
	s.Equal(notify.Message{Kind: notify.KindError, Text: "Produto com ID 9 não encontrado."}, s.lastMessage())
	s.Len(r.Items(), 1)
}

func (s *OrderDraftTestSuite) TestSaveRejectsEmptyOrder() {
	r := s.draft()

	_, err := r.SaveOrder(s.ctx, url.Values{"cliente_id": {"3"}})
	s.True(IsRejected(err))
	s.Equal("Adicione pelo menos um item ao pedido.", s.lastMessage().Text)
	s.submitter.AssertNotCalled(s.T(), "Submit", mock.Anything, mock.Anything)
}

func (s *OrderDraftTestSuite) TestSaveRejectsDiscountAboveSubtotal() {
	r := s.draft()
	s.NoError(r.AddItem(s.ctx, ItemInput{ProductID: 1, Quantity: 2, UnitPrice: dec("10")}))

	_, err := r.SaveOrder(s.ctx, url.Values{"cliente_id": {"3"}, "desconto": {"20,01"}})
	s.True(IsRejected(err))
	s.Equal("O desconto não pode ser maior que o subtotal.", s.lastMessage().Text)

	_, err = r.SaveOrder(s.ctx, url.Values{"cliente_id": {""}})
	s.True(IsRejected(err))
	s.Equal("Selecione um cliente.", s.lastMessage().Text)

	s.submitter.AssertNotCalled(s.T(), "Submit", mock.Anything, mock.Anything)
}

func (s *OrderDraftTestSuite) TestSaveRejectsZeroTotal() {
	r := s.draft()
	s.NoError(r.AddItem(s.ctx, ItemInput{ProductID: 1, Quantity: 1, UnitPrice: dec("10")}))

	_, err := r.SaveOrder(s.ctx, url.Values{"cliente_id": {"3"}, "desconto": {"10"}})
	s.True(IsRejected(err))
	s.Equal("O total do pedido deve ser maior que zero.", s.lastMessage().Text)

	free := s.draft()
	s.NoError(free.AddItem(s.ctx, ItemInput{ProductID: 2, Quantity: 1, UnitPrice: dec("0")}))
	_, err = free.SaveOrder(s.ctx, url.Values{"cliente_id": {"3"}})
	s.True(IsRejected(err))

	s.submitter.AssertNotCalled(s.T(), "Submit", mock.Anything, mock.Anything)
}

func (s *OrderDraftTestSuite) TestSubmittedDraftRefusesFurtherActions() {
	r := s.draft()
	s.NoError(r.AddItem(s.ctx, ItemInput{ProductID: 1, Quantity: 1, UnitPrice: dec("10")}))

	created := &models.Order{}
	created.ID = 9
	s.submitter.On("Submit", s.ctx, mock.Anything).Return(created, nil).Once()

	_, err := r.SaveOrder(s.ctx, url.Values{"cliente_id": {"3"}})
	s.Require().NoError(err)
	s.Same(created, r.Submitted())
	s.Empty(r.Items())

	// A double submit never reaches the submitter again
	_, err = r.SaveOrder(s.ctx, url.Values{"cliente_id": {"3"}})
	s.True(IsRejected(err))
	s.Equal("Este pedido já foi criado.", s.lastMessage().Text)

	s.True(IsRejected(r.AddItem(s.ctx, ItemInput{ProductID: 2, Quantity: 1, UnitPrice: dec("5")})))
	s.True(IsRejected(r.HandleUpload(s.ctx, pngFile(s.T()), 1)))
	s.True(IsRejected(r.RemoveItem(s.ctx, 1)))
	s.Empty(r.Items())
	s.Empty(s.confirmer.asked)
	s.submitter.AssertNumberOfCalls(s.T(), "Submit", 1)
}

func (s *OrderDraftTestSuite) TestDraftSaveSubmitsEverythingAndReleasesPreviews() {
	r := s.draft()
	s.NoError(r.AddItem(s.ctx, ItemInput{ProductID: 1, Quantity: 2, UnitPrice: dec("10"), Notes: "frente"}))
	s.NoError(r.AddItem(s.ctx, ItemInput{ProductID: 2, Quantity: 1, UnitPrice: dec("5")}))
	file := pngFile(s.T())
	s.NoError(r.HandleUpload(s.ctx, file, 2))

	created := &models.Order{}
	created.ID = 7
	s.submitter.On("Submit", s.ctx, mock.MatchedBy(func(sub *Submission) bool {
		return sub.Order.ClientID == 3 &&
			sub.Order.Discount.Equal(dec("1.5")) &&
			sub.Order.Notes == nil &&
			sub.Order.OrderDate.Equal(models.NewDate(2025, 3, 5).Time) &&
			len(sub.Order.Items) == 2 &&
			*sub.Order.Items[0].Notes == "frente" &&
			len(sub.Files) == 1 &&
			bytes.Equal(sub.Files[2].Content, file.Content)
	})).Return(created, nil).Once()

	order, err := r.SaveOrder(s.ctx, url.Values{
		"cliente_id":  {"3"},
		"data_pedido": {"2025-03-05"},
		"observacoes": {"  "},
		"desconto":    {"1,50"},
	})
	s.Require().NoError(err)
	s.Equal(uint(7), order.ID)
	s.Equal(0, s.previews.Len())
	s.Equal("Pedido criado com sucesso!", s.lastMessage().Text)
	s.submitter.AssertExpectations(s.T())
}

func (s *OrderDraftTestSuite) TestDraftSaveFailureKeepsPreviews() {
	r := s.draft()
	s.NoError(r.AddItem(s.ctx, ItemInput{ProductID: 1, Quantity: 1, UnitPrice: dec("10")}))
	s.NoError(r.HandleUpload(s.ctx, pngFile(s.T()), 1))

	s.submitter.On("Submit", s.ctx, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	_, err := r.SaveOrder(s.ctx, url.Values{"cliente_id": {"3"}})
	s.Error(err)
	s.Equal(1, s.previews.Len())
	s.Equal(notify.KindError, s.lastMessage().Kind)
}

func (s *OrderDraftTestSuite) TestLiveSavePatchesHeaderOnly() {
	r := New(s.liveOrder(models.OrderItem{ProductID: 1, Quantity: 1, UnitPrice: dec("30")}), s.deps())

	status := models.OrderStatusCompleted
	expected := models.OrderUpdate{
		ClientID:       models.Some(uint(3)),
		CompletionDate: models.Null[models.Date](),
		Status:         models.Some(status),
		Notes:          models.Some("entregar cedo"),
		Discount:       models.Some(dec("5")),
	}
	s.orders.On("Update", s.ctx, uint(42), mock.MatchedBy(func(u models.OrderUpdate) bool {
		return u.ClientID == expected.ClientID &&
			u.CompletionDate == expected.CompletionDate &&
			u.Status == expected.Status &&
			*u.Notes.Ptr() == "entregar cedo" &&
			u.Discount.Value.Equal(dec("5")) &&
			!u.OrderDate.Set
	})).Return(s.liveOrder(models.OrderItem{ProductID: 1, Quantity: 1}), nil).Once()

	_, err := r.SaveOrder(s.ctx, url.Values{
		"cliente_id":  {"3"},
		"status":      {string(status)},
		"observacoes": {"entregar cedo"},
		"desconto":    {"5"},
	})
	s.Require().NoError(err)
	s.Equal("Pedido atualizado com sucesso!", s.lastMessage().Text)
	s.submitter.AssertNotCalled(s.T(), "Submit", mock.Anything, mock.Anything)
	s.orders.AssertExpectations(s.T())
}

func TestOrderDraftTestSuite(t *testing.T) {
	suite.Run(t, new(OrderDraftTestSuite))
}

func TestParseHeader(t *testing.T) {
	require.NoError(t, i18n.Initialize(i18n.LangPortuguese))

	header, err := ParseHeader(url.Values{
		"cliente_id":     {"12"},
		"data_conclusao": {""},
		"status":         {"Em Produção"},
		"desconto":       {"R$ 1.234,50"},
	}, i18n.LangPortuguese)
	require.NoError(t, err)
	assert.Equal(t, uint(12), header.ClientID)
	assert.Nil(t, header.CompletionDate)
	assert.Nil(t, header.OrderDate)
	assert.Equal(t, models.OrderStatusInProduction, *header.Status)
	assert.True(t, dec("1234.5").Equal(header.Discount))

	_, err = ParseHeader(url.Values{"cliente_id": {"abc"}}, i18n.LangPortuguese)
	assert.True(t, IsRejected(err))

	_, err = ParseHeader(url.Values{"cliente_id": {"1"}, "desconto": {"muito"}}, i18n.LangPortuguese)
	assert.EqualError(t, err, "Valor numérico inválido: muito")

	_, err = ParseHeader(url.Values{"cliente_id": {"1"}, "status": {"Perdido"}}, i18n.LangPortuguese)
	assert.True(t, IsRejected(err))
}

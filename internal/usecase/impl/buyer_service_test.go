package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"
)

type buyerServiceFixture struct {
	svc usecase.BuyerUsecase
	tx  *fakeTxManager
}

func newBuyerServiceFixture(t *testing.T) *buyerServiceFixture {
	t.Helper()

	tx := newFakeTxManager()
	svc := NewBuyerService(BuyerServiceParams{
		TxManager: tx,
		Logger:    newDiscardLogger(),
	})

	return &buyerServiceFixture{svc: svc, tx: tx}
}

func TestBuyerMe(t *testing.T) {
	f := newBuyerServiceFixture(t)

	buyer := &entity.Buyer{Email: "buyer@example.com", Name: "Asha Mehta", Status: entity.BuyerStatusActive}
	require.NoError(t, f.tx.factory.buyers.Create(context.Background(), buyer))

	got, err := f.svc.Me(context.Background(), buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, buyer.Email, got.Email)

	_, err = f.svc.Me(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrBuyerNotFound)
}

func TestSubmitInquiry(t *testing.T) {
	f := newBuyerServiceFixture(t)

	buyer := &entity.Buyer{Email: "buyer@example.com", Name: "Asha Mehta", Status: entity.BuyerStatusActive}
	require.NoError(t, f.tx.factory.buyers.Create(context.Background(), buyer))
	supplier := &entity.Supplier{Email: "textiles@example.com", CompanyName: "Shree Textiles", Status: entity.SupplierStatusApproved}
	require.NoError(t, f.tx.factory.suppliers.Create(context.Background(), supplier))

	inquiry, err := f.svc.SubmitInquiry(context.Background(), &usecase.SubmitInquiryInput{
		BuyerID:     buyer.ID,
		SupplierID:  supplier.ID,
		Product:     "Cotton grey fabric",
		Description: "Need 500m for a first order",
		Quantity:    "500m",
		Budget:      "₹50,000",
		Timeline:    "2 weeks",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.InquiryStatusNew, inquiry.Status)
	assert.NotEqual(t, uuid.Nil, inquiry.ID)
	require.Len(t, f.tx.factory.inquiries.inquiries, 1)
}

func TestSubmitInquiry_UnknownSupplier(t *testing.T) {
	f := newBuyerServiceFixture(t)

	buyer := &entity.Buyer{Email: "buyer@example.com", Name: "Asha Mehta", Status: entity.BuyerStatusActive}
	require.NoError(t, f.tx.factory.buyers.Create(context.Background(), buyer))

	_, err := f.svc.SubmitInquiry(context.Background(), &usecase.SubmitInquiryInput{
		BuyerID:    buyer.ID,
		SupplierID: uuid.New(),
		Product:    "Cotton grey fabric",
	})
	assert.ErrorIs(t, err, domainerrors.ErrSupplierNotFound)
	assert.Empty(t, f.tx.factory.inquiries.inquiries)
}

package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/infra/auth"
	"bazaar/internal/usecase"
)

type adminServiceFixture struct {
	svc       usecase.AdminUsecase
	tx        *fakeTxManager
	publisher *recordingPublisher
}

func newAdminServiceFixture(t *testing.T) *adminServiceFixture {
	t.Helper()

	cfg := newTestConfig()
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	tx := newFakeTxManager()
	publisher := &recordingPublisher{}
	svc := NewAdminService(AdminServiceParams{
		TxManager:      tx,
		Hasher:         auth.NewBcryptHasher(cfg),
		TokenService:   tokenService,
		EventPublisher: publisher,
		Config:         cfg,
		Logger:         newDiscardLogger(),
	})

	return &adminServiceFixture{svc: svc, tx: tx, publisher: publisher}
}

func (f *adminServiceFixture) seedAdmin(t *testing.T) *entity.Admin {
	t.Helper()

	admin := &entity.Admin{
		Name:         "Root Admin",
		Email:        "admin@example.com",
		PasswordHash: "x",
		Role:         entity.AdminRoleSuper,
	}
	require.NoError(t, f.tx.factory.admins.Create(context.Background(), admin))

	return admin
}

func (f *adminServiceFixture) seedSupplier(t *testing.T, status entity.SupplierStatus) *entity.Supplier {
	t.Helper()

	supplier := &entity.Supplier{
		Email:        "textiles@example.com",
		PasswordHash: "x",
		CompanyName:  "Shree Textiles",
		Status:       status,
	}
	require.NoError(t, f.tx.factory.suppliers.Create(context.Background(), supplier))

	return supplier
}

func (f *adminServiceFixture) seedBuyer(t *testing.T, buyer *entity.Buyer) *entity.Buyer {
	t.Helper()
	require.NoError(t, f.tx.factory.buyers.Create(context.Background(), buyer))

	return buyer
}

func TestRegisterInitialAdmin(t *testing.T) {
	f := newAdminServiceFixture(t)

	out, err := f.svc.RegisterInitialAdmin(context.Background(), &usecase.RegisterInitialAdminInput{
		Name:     "Root Admin",
		Email:    "admin@example.com",
		Password: "admin12345",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.AdminRoleSuper, out.Admin.Role)

	stored, err := f.tx.factory.admins.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "admin12345", stored.PasswordHash)
}

func TestRegisterInitialAdmin_AlreadyBootstrapped(t *testing.T) {
	f := newAdminServiceFixture(t)
	f.seedAdmin(t)

	_, err := f.svc.RegisterInitialAdmin(context.Background(), &usecase.RegisterInitialAdminInput{
		Name:     "Second Admin",
		Email:    "second@example.com",
		Password: "admin12345",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAdminExists)
}

func TestRegisterInitialAdmin_ShortPassword(t *testing.T) {
	f := newAdminServiceFixture(t)

	_, err := f.svc.RegisterInitialAdmin(context.Background(), &usecase.RegisterInitialAdminInput{
		Name:     "Root Admin",
		Email:    "admin@example.com",
		Password: "abc",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
}

func TestAdminLogin(t *testing.T) {
	f := newAdminServiceFixture(t)

	_, err := f.svc.RegisterInitialAdmin(context.Background(), &usecase.RegisterInitialAdminInput{
		Name:     "Root Admin",
		Email:    "admin@example.com",
		Password: "admin12345",
	})
	require.NoError(t, err)

	out, err := f.svc.Login(context.Background(), &usecase.AdminLoginInput{
		Email:    "admin@example.com",
		Password: "admin12345",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	require.NotNil(t, out.Admin.LastLogin)

	stored, err := f.tx.factory.admins.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLogin)
}

func TestAdminLogin_BadCredentials(t *testing.T) {
	f := newAdminServiceFixture(t)

	_, err := f.svc.RegisterInitialAdmin(context.Background(), &usecase.RegisterInitialAdminInput{
		Name:     "Root Admin",
		Email:    "admin@example.com",
		Password: "admin12345",
	})
	require.NoError(t, err)

	// Unknown email and wrong password must be indistinguishable.
	_, err = f.svc.Login(context.Background(), &usecase.AdminLoginInput{
		Email:    "nobody@example.com",
		Password: "admin12345",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = f.svc.Login(context.Background(), &usecase.AdminLoginInput{
		Email:    "admin@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestDashboard(t *testing.T) {
	f := newAdminServiceFixture(t)
	f.seedSupplier(t, entity.SupplierStatusPending)
	supplier := &entity.Supplier{Email: "approved@example.com", PasswordHash: "x", CompanyName: "Approved Co", Status: entity.SupplierStatusApproved}
	require.NoError(t, f.tx.factory.suppliers.Create(context.Background(), supplier))
	f.seedBuyer(t, &entity.Buyer{Email: "flagged@example.com", Name: "Flagged Buyer", Status: entity.BuyerStatusActive, Flagged: true})
	require.NoError(t, f.tx.factory.inquiries.Create(context.Background(), &entity.Inquiry{
		BuyerID:     uuid.New(),
		SupplierID:  supplier.ID,
		Product:     "Cotton grey fabric",
		Description: "Need 500m for a first order",
		Status:      entity.InquiryStatusNew,
	}))

	out, err := f.svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.PendingSuppliers)
	assert.Equal(t, int64(2), out.TotalSuppliers)
	assert.Equal(t, int64(1), out.FlaggedBuyers)
	assert.Equal(t, int64(1), out.RecentInquiries)
}

func TestApplySupplierAction_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		from       entity.SupplierStatus
		action     usecase.SupplierAction
		badges     []string
		wantStatus entity.SupplierStatus
		wantBadges []string
	}{
		{name: "approve pending", from: entity.SupplierStatusPending, action: usecase.SupplierActionApprove, wantStatus: entity.SupplierStatusApproved},
		{name: "approve already approved", from: entity.SupplierStatusApproved, action: usecase.SupplierActionApprove, wantStatus: entity.SupplierStatusApproved},
		{name: "suspend approved", from: entity.SupplierStatusApproved, action: usecase.SupplierActionSuspend, wantStatus: entity.SupplierStatusSuspended},
		{name: "suspend banned", from: entity.SupplierStatusBanned, action: usecase.SupplierActionSuspend, wantStatus: entity.SupplierStatusSuspended},
		{name: "restore suspended", from: entity.SupplierStatusSuspended, action: usecase.SupplierActionRestore, wantStatus: entity.SupplierStatusApproved},
		{name: "update badges keeps status", from: entity.SupplierStatusApproved, action: usecase.SupplierActionUpdateBadges, badges: []string{"gst", "verified"}, wantStatus: entity.SupplierStatusApproved, wantBadges: []string{"gst", "verified"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAdminServiceFixture(t)
			admin := f.seedAdmin(t)
			supplier := f.seedSupplier(t, tt.from)

			updated, err := f.svc.ApplySupplierAction(context.Background(), &usecase.SupplierActionInput{
				SupplierID: supplier.ID,
				Action:     tt.action,
				Badges:     tt.badges,
				AdminID:    admin.ID,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, updated.Status)
			if tt.wantBadges != nil {
				assert.Equal(t, tt.wantBadges, updated.Badges)
			}

			// Exactly one audit entry per successful action.
			require.Len(t, f.tx.factory.activity.entries, 1)
			entry := f.tx.factory.activity.entries[0]
			assert.Equal(t, string(tt.action), entry.Action)
			assert.Equal(t, "supplier", entry.EntityType)
			assert.Equal(t, supplier.ID, entry.EntityID)
			require.NotNil(t, entry.AdminID)
			assert.Equal(t, admin.ID, *entry.AdminID)
		})
	}
}

func TestApplySupplierAction_UnknownAction(t *testing.T) {
	f := newAdminServiceFixture(t)
	admin := f.seedAdmin(t)
	supplier := f.seedSupplier(t, entity.SupplierStatusPending)

	_, err := f.svc.ApplySupplierAction(context.Background(), &usecase.SupplierActionInput{
		SupplierID: supplier.ID,
		Action:     usecase.SupplierAction("obliterate"),
		AdminID:    admin.ID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrUnknownAction)
	assert.Empty(t, f.tx.factory.activity.entries, "a rejected action must not write an audit entry")

	stored, err := f.tx.factory.suppliers.FindByID(context.Background(), supplier.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SupplierStatusPending, stored.Status)
}

func TestApplySupplierAction_UnknownSupplier(t *testing.T) {
	f := newAdminServiceFixture(t)
	admin := f.seedAdmin(t)

	_, err := f.svc.ApplySupplierAction(context.Background(), &usecase.SupplierActionInput{
		SupplierID: uuid.New(),
		Action:     usecase.SupplierActionApprove,
		AdminID:    admin.ID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrSupplierNotFound)
}

func TestApplyBuyerAction_Transitions(t *testing.T) {
	reason := "spam inquiries"

	tests := []struct {
		name        string
		seed        entity.Buyer
		action      usecase.BuyerAction
		wantStatus  entity.BuyerStatus
		wantFlagged bool
	}{
		{
			name:       "warn active",
			seed:       entity.Buyer{Status: entity.BuyerStatusActive},
			action:     usecase.BuyerActionWarn,
			wantStatus: entity.BuyerStatusWarned,
		},
		{
			name:        "restrict flagged",
			seed:        entity.Buyer{Status: entity.BuyerStatusWarned, Flagged: true, FlagReason: &reason},
			action:      usecase.BuyerActionRestrict,
			wantStatus:  entity.BuyerStatusRestricted,
			wantFlagged: true,
		},
		{
			name:       "restore clears status and flag",
			seed:       entity.Buyer{Status: entity.BuyerStatusRestricted, Flagged: true, FlagReason: &reason},
			action:     usecase.BuyerActionRestore,
			wantStatus: entity.BuyerStatusActive,
		},
		{
			name:       "dismiss clears flag only",
			seed:       entity.Buyer{Status: entity.BuyerStatusWarned, Flagged: true, FlagReason: &reason},
			action:     usecase.BuyerActionDismiss,
			wantStatus: entity.BuyerStatusWarned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAdminServiceFixture(t)
			admin := f.seedAdmin(t)
			tt.seed.Email = "buyer@example.com"
			tt.seed.Name = "Asha Mehta"
			buyer := f.seedBuyer(t, &tt.seed)

			updated, err := f.svc.ApplyBuyerAction(context.Background(), &usecase.BuyerActionInput{
				BuyerID: buyer.ID,
				Action:  tt.action,
				AdminID: admin.ID,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, updated.Status)
			assert.Equal(t, tt.wantFlagged, updated.Flagged)
			if !tt.wantFlagged {
				assert.Nil(t, updated.FlagReason)
			}

			require.Len(t, f.tx.factory.activity.entries, 1)
			assert.Equal(t, "buyer", f.tx.factory.activity.entries[0].EntityType)
		})
	}
}

func TestApplyBuyerAction_UnknownBuyer(t *testing.T) {
	f := newAdminServiceFixture(t)
	admin := f.seedAdmin(t)

	_, err := f.svc.ApplyBuyerAction(context.Background(), &usecase.BuyerActionInput{
		BuyerID: uuid.New(),
		Action:  usecase.BuyerActionWarn,
		AdminID: admin.ID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrBuyerNotFound)
}

func TestListSuppliers(t *testing.T) {
	f := newAdminServiceFixture(t)
	f.seedSupplier(t, entity.SupplierStatusPending)

	suppliers, err := f.svc.ListSuppliers(context.Background())
	require.NoError(t, err)
	assert.Len(t, suppliers, 1)
}

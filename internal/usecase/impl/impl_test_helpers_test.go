package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.BaseURL = "http://localhost:3000"
	cfg.SecretKey.Token = "test-secret-key"
	cfg.Auth = &config.AuthConfig{
		BcryptCost:        4,
		MinPasswordLength: 6,
	}

	return cfg
}

// --- in-memory repositories ---
//
// The services run every multi-step write through TransactionManager.Execute,
// so the fakes share one stateful factory: what one step writes the next
// step reads.

type fakeFactory struct {
	admins    *fakeAdminRepo
	suppliers *fakeSupplierRepo
	buyers    *fakeBuyerRepo
	products  *fakeProductRepo
	activity  *fakeActivityRepo
	alerts    *fakeAlertRepo
	inquiries *fakeInquiryRepo
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{
		admins:    &fakeAdminRepo{byID: map[uuid.UUID]*entity.Admin{}},
		suppliers: &fakeSupplierRepo{byID: map[uuid.UUID]*entity.Supplier{}, docs: map[uuid.UUID][]*entity.SupplierDocument{}},
		buyers:    &fakeBuyerRepo{byID: map[uuid.UUID]*entity.Buyer{}},
		products:  &fakeProductRepo{byID: map[uuid.UUID]*entity.Product{}},
		activity:  &fakeActivityRepo{},
		alerts:    &fakeAlertRepo{},
		inquiries: &fakeInquiryRepo{},
	}
}

func (f *fakeFactory) AdminRepo() repository.AdminRepository           { return f.admins }
func (f *fakeFactory) SupplierRepo() repository.SupplierRepository     { return f.suppliers }
func (f *fakeFactory) BuyerRepo() repository.BuyerRepository           { return f.buyers }
func (f *fakeFactory) ProductRepo() repository.ProductRepository       { return f.products }
func (f *fakeFactory) ActivityRepo() repository.ActivityLogRepository  { return f.activity }
func (f *fakeFactory) AlertRepo() repository.AlertRepository           { return f.alerts }
func (f *fakeFactory) InquiryRepo() repository.InquiryRepository       { return f.inquiries }

type fakeTxManager struct {
	factory *fakeFactory
}

func newFakeTxManager() *fakeTxManager {
	return &fakeTxManager{factory: newFakeFactory()}
}

func (m *fakeTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type fakeAdminRepo struct {
	byID map[uuid.UUID]*entity.Admin
}

func (r *fakeAdminRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Admin, error) {
	if admin, ok := r.byID[id]; ok {
		copied := *admin

		return &copied, nil
	}

	return nil, repository.ErrAdminNotFound
}

func (r *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*entity.Admin, error) {
	for _, admin := range r.byID {
		if admin.Email == email {
			copied := *admin

			return &copied, nil
		}
	}

	return nil, repository.ErrAdminNotFound
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *entity.Admin) error {
	for _, existing := range r.byID {
		if existing.Email == admin.Email {
			return domainerrors.ErrEmailTaken
		}
	}
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = admin.CreatedAt
	copied := *admin
	r.byID[admin.ID] = &copied

	return nil
}

func (r *fakeAdminRepo) Update(_ context.Context, admin *entity.Admin) error {
	if _, ok := r.byID[admin.ID]; !ok {
		return repository.ErrAdminNotFound
	}
	copied := *admin
	r.byID[admin.ID] = &copied

	return nil
}

func (r *fakeAdminRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

type fakeSupplierRepo struct {
	byID map[uuid.UUID]*entity.Supplier
	docs map[uuid.UUID][]*entity.SupplierDocument
}

func (r *fakeSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrSupplierNotFound
	}
	copied := *supplier
	copied.Documents = nil
	for _, doc := range r.docs[id] {
		copied.Documents = append(copied.Documents, *doc)
	}

	return &copied, nil
}

func (r *fakeSupplierRepo) FindByEmail(_ context.Context, email string) (*entity.Supplier, error) {
	for _, supplier := range r.byID {
		if supplier.Email == email {
			copied := *supplier

			return &copied, nil
		}
	}

	return nil, repository.ErrSupplierNotFound
}

func (r *fakeSupplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	suppliers := make([]*entity.Supplier, 0, len(r.byID))
	for _, supplier := range r.byID {
		copied := *supplier
		suppliers = append(suppliers, &copied)
	}
	sort.Slice(suppliers, func(i, j int) bool {
		return suppliers[i].CreatedAt.After(suppliers[j].CreatedAt)
	})

	return suppliers, nil
}

func (r *fakeSupplierRepo) Create(_ context.Context, supplier *entity.Supplier) error {
	for _, existing := range r.byID {
		if existing.Email == supplier.Email {
			return domainerrors.ErrEmailTaken
		}
	}
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	supplier.CreatedAt = time.Now()
	supplier.UpdatedAt = supplier.CreatedAt
	copied := *supplier
	r.byID[supplier.ID] = &copied

	return nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, supplier *entity.Supplier) error {
	if _, ok := r.byID[supplier.ID]; !ok {
		return repository.ErrSupplierNotFound
	}
	copied := *supplier
	copied.Documents = nil
	r.byID[supplier.ID] = &copied

	return nil
}

func (r *fakeSupplierRepo) CountByStatus(_ context.Context, status entity.SupplierStatus) (int64, error) {
	var count int64
	for _, supplier := range r.byID {
		if supplier.Status == status {
			count++
		}
	}

	return count, nil
}

func (r *fakeSupplierRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *fakeSupplierRepo) FindDocument(_ context.Context, supplierID uuid.UUID, docType entity.DocType) (*entity.SupplierDocument, error) {
	for _, doc := range r.docs[supplierID] {
		if doc.DocType == docType {
			copied := *doc

			return &copied, nil
		}
	}

	return nil, repository.ErrDocumentNotFound
}

func (r *fakeSupplierRepo) CreateDocument(_ context.Context, doc *entity.SupplierDocument) error {
	if _, ok := r.byID[doc.SupplierID]; !ok {
		return repository.ErrSupplierNotFound
	}
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt
	copied := *doc
	r.docs[doc.SupplierID] = append(r.docs[doc.SupplierID], &copied)

	return nil
}

func (r *fakeSupplierRepo) UpdateDocument(_ context.Context, doc *entity.SupplierDocument) error {
	for i, existing := range r.docs[doc.SupplierID] {
		if existing.ID == doc.ID {
			copied := *doc
			copied.UpdatedAt = time.Now()
			r.docs[doc.SupplierID][i] = &copied

			return nil
		}
	}

	return repository.ErrDocumentNotFound
}

type fakeBuyerRepo struct {
	byID map[uuid.UUID]*entity.Buyer
}

func (r *fakeBuyerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Buyer, error) {
	if buyer, ok := r.byID[id]; ok {
		copied := *buyer

		return &copied, nil
	}

	return nil, repository.ErrBuyerNotFound
}

func (r *fakeBuyerRepo) FindByEmail(_ context.Context, email string) (*entity.Buyer, error) {
	for _, buyer := range r.byID {
		if buyer.Email == email {
			copied := *buyer

			return &copied, nil
		}
	}

	return nil, repository.ErrBuyerNotFound
}

func (r *fakeBuyerRepo) List(_ context.Context) ([]*entity.Buyer, error) {
	buyers := make([]*entity.Buyer, 0, len(r.byID))
	for _, buyer := range r.byID {
		copied := *buyer
		buyers = append(buyers, &copied)
	}

	return buyers, nil
}

func (r *fakeBuyerRepo) Create(_ context.Context, buyer *entity.Buyer) error {
	if buyer.ID == uuid.Nil {
		buyer.ID = uuid.New()
	}
	buyer.CreatedAt = time.Now()
	buyer.UpdatedAt = buyer.CreatedAt
	copied := *buyer
	r.byID[buyer.ID] = &copied

	return nil
}

func (r *fakeBuyerRepo) Update(_ context.Context, buyer *entity.Buyer) error {
	if _, ok := r.byID[buyer.ID]; !ok {
		return repository.ErrBuyerNotFound
	}
	copied := *buyer
	r.byID[buyer.ID] = &copied

	return nil
}

func (r *fakeBuyerRepo) CountFlagged(_ context.Context) (int64, error) {
	var count int64
	for _, buyer := range r.byID {
		if buyer.Flagged {
			count++
		}
	}

	return count, nil
}

type fakeProductRepo struct {
	byID map[uuid.UUID]*entity.Product
}

func (r *fakeProductRepo) FindOwned(_ context.Context, id, supplierID uuid.UUID) (*entity.Product, error) {
	product, ok := r.byID[id]
	if !ok || product.SupplierID != supplierID {
		return nil, repository.ErrProductNotFound
	}
	copied := *product

	return &copied, nil
}

func (r *fakeProductRepo) ListBySupplier(_ context.Context, supplierID uuid.UUID) ([]*entity.Product, error) {
	var products []*entity.Product
	for _, product := range r.byID {
		if product.SupplierID == supplierID && product.IsActive {
			copied := *product
			products = append(products, &copied)
		}
	}

	return products, nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	copied := *product
	r.byID[product.ID] = &copied

	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	if _, ok := r.byID[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	copied := *product
	r.byID[product.ID] = &copied

	return nil
}

type fakeActivityRepo struct {
	entries []*entity.ActivityLog
}

func (r *fakeActivityRepo) Create(_ context.Context, entry *entity.ActivityLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	copied := *entry
	r.entries = append(r.entries, &copied)

	return nil
}

func (r *fakeActivityRepo) ListRecent(_ context.Context, limit int) ([]*entity.ActivityLog, error) {
	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	recent := make([]*entity.ActivityLog, 0, limit)
	for i := len(r.entries) - 1; i >= len(r.entries)-limit; i-- {
		copied := *r.entries[i]
		recent = append(recent, &copied)
	}

	return recent, nil
}

type fakeAlertRepo struct {
	alerts []*entity.AIAlert
}

func (r *fakeAlertRepo) ListActive(_ context.Context) ([]*entity.AIAlert, error) {
	var active []*entity.AIAlert
	for _, alert := range r.alerts {
		if alert.Status == entity.AlertStatusActive {
			copied := *alert
			active = append(active, &copied)
		}
	}

	return active, nil
}

type fakeInquiryRepo struct {
	inquiries []*entity.Inquiry
}

func (r *fakeInquiryRepo) Create(_ context.Context, inquiry *entity.Inquiry) error {
	if inquiry.ID == uuid.Nil {
		inquiry.ID = uuid.New()
	}
	inquiry.CreatedAt = time.Now()
	inquiry.UpdatedAt = inquiry.CreatedAt
	copied := *inquiry
	r.inquiries = append(r.inquiries, &copied)

	return nil
}

func (r *fakeInquiryRepo) CountSince(_ context.Context, since time.Time) (int64, error) {
	var count int64
	for _, inquiry := range r.inquiries {
		if !inquiry.CreatedAt.Before(since) {
			count++
		}
	}

	return count, nil
}

// --- collaborator fakes ---

type recordingPublisher struct {
	events []*service.AuditEvent
	err    error
}

func (p *recordingPublisher) PublishAuditEvent(_ context.Context, event *service.AuditEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type recordingMailSender struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (s *recordingMailSender) Send(_ context.Context, to, subject, htmlBody string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMail{to: to, subject: subject, body: htmlBody})

	return nil
}

type fakeOAuthService struct {
	user *service.OAuthUser
	err  error
}

func (s *fakeOAuthService) VerifyIDToken(_ context.Context, _ string) (*service.OAuthUser, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.user == nil {
		return nil, errors.New("no identity configured")
	}

	return s.user, nil
}

func (s *fakeOAuthService) Provider() string { return "google" }

type fakeFileStore struct {
	stored map[string][]byte
	err    error
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{stored: map[string][]byte{}}
}

func (s *fakeFileStore) Store(_ context.Context, key, _ string, r io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.stored[key] = data

	return "http://localhost:8080/uploads/" + key, nil
}

type fakeQRCodeService struct {
	png []byte
	err error
}

func (s *fakeQRCodeService) GenerateProfileQR(_ uuid.UUID) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.png, nil
}

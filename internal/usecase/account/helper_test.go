package account_test

import (
	"context"
	"io"
	"os"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/audit"
	"github.com/plateful/restaurant-admin/internal/auth"
	"github.com/plateful/restaurant-admin/internal/infra/repository"
	"github.com/plateful/restaurant-admin/internal/models"
	"github.com/plateful/restaurant-admin/internal/testutil"
)

// fakeMailer records outbound mail instead of delivering it.
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

type sentMail struct {
	Subject   string
	Recipient string
	Body      string
}

func (m *fakeMailer) Send(subject, recipient, body string) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{subject, recipient, body})
	return nil
}

func (m *fakeMailer) last(t *testing.T) sentMail {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		t.Fatal("no mail sent")
	}
	return m.sent[len(m.sent)-1]
}

// fakePhotoStore tracks which namespaces exist.
type fakePhotoStore struct {
	mu         sync.Mutex
	namespaces map[uint]bool
	removeErr  error
}

func newFakePhotoStore() *fakePhotoStore {
	return &fakePhotoStore{namespaces: map[uint]bool{}}
}

func (s *fakePhotoStore) CreateNamespace(restaurantID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.namespaces[restaurantID] = true
	return nil
}

func (s *fakePhotoStore) RemoveNamespace(restaurantID uint) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.namespaces, restaurantID)
	return nil
}

func (s *fakePhotoStore) Save(restaurantID uint, filename string, r io.Reader) error {
	return nil
}

func (s *fakePhotoStore) Open(restaurantID uint, filename string) (io.ReadCloser, error) {
	return nil, os.ErrNotExist
}

func (s *fakePhotoStore) has(restaurantID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.namespaces[restaurantID]
}

// fixture bundles what every account usecase test needs.
type fixture struct {
	db     *gorm.DB
	repo   *repository.AccountGormRepository
	photos *fakePhotoStore
	mail   *fakeMailer
	audit  *audit.Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	return &fixture{
		db:     db,
		repo:   repository.NewAccountGormRepository(db),
		photos: newFakePhotoStore(),
		mail:   &fakeMailer{},
		audit:  audit.NewDispatcher(audit.New(db)),
	}
}

func (f *fixture) seedUser(t *testing.T, email, password string, role models.Role, approved bool) *models.User {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		Email:          email,
		HashedPassword: hashed,
		Role:           role,
		Approved:       approved,
	}
	if err := f.repo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func (f *fixture) seedOwner(t *testing.T, email, password string) (*models.User, *models.UserProfile, *models.Restaurant) {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		Email:          email,
		HashedPassword: hashed,
		Role:           models.RoleRestaurant,
	}
	profile, restaurant, err := f.repo.CreateOwnerAggregate(context.Background(), user)
	if err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	return user, profile, restaurant
}

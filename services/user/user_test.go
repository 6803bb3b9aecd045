package user

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	userRepo "konsulta/database/repository/user"
	"konsulta/models"
)

// memUserStore is an in-memory userRepo.Repository.
type memUserStore struct {
	mu              sync.Mutex
	users           map[string]models.User
	listByRoleCalls int
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]models.User)}
}

func (st *memUserStore) Insert(ctx context.Context, u *models.User) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.users[u.ID] = *u
	return nil
}

func (st *memUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	u, ok := st.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	return &u, nil
}

func (st *memUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, u := range st.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (st *memUserStore) Update(ctx context.Context, id string, fields map[string]any) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	u, ok := st.users[id]
	if !ok {
		return userRepo.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "fullName":
			u.FullName = v.(string)
		case "programStudi":
			u.ProgramStudi = v.(string)
		case "tahunMasuk":
			u.TahunMasuk = v.(string)
		case "dosenPA":
			u.DosenPA = v.(string)
		case "nomorHP":
			u.NomorHP = v.(string)
		case "emailAlternatif":
			u.EmailAlternatif = v.(string)
		case "profilePicture":
			u.ProfilePicture = v.(string)
		case "otherInterest":
			u.OtherInterest = v.(string)
		case "interests":
			u.Interests = v.([]string)
		}
	}
	st.users[id] = u
	return nil
}

func (st *memUserStore) ListAll(ctx context.Context) ([]models.User, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	var out []models.User
	for _, u := range st.users {
		out = append(out, u)
	}
	return out, nil
}

func (st *memUserStore) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.listByRoleCalls++
	var out []models.User
	for _, u := range st.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (st *memUserStore) ListAdvisees(ctx context.Context, lecturerID string) ([]models.User, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	var out []models.User
	for _, u := range st.users {
		if u.Role == models.RoleStudent && u.DosenPA == lecturerID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (st *memUserStore) Watch(ctx context.Context) (<-chan []models.User, error) {
	ch := make(chan []models.User)
	close(ch)
	return ch, nil
}

// noopNotifier drops everything; profile tests don't assert on messages.
type noopNotifier struct{}

func (noopNotifier) Notify(ctx context.Context, recipientID, message string) {}
func (noopNotifier) ListByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	return nil, nil
}
func (noopNotifier) MarkAllRead(ctx context.Context, recipientID string) error { return nil }
func (noopNotifier) Delete(ctx context.Context, notificationID string) error   { return nil }
func (noopNotifier) ClearAll(ctx context.Context, recipientID string) error    { return nil }

func newTestService() (*DefaultUserService, *memUserStore) {
	store := newMemUserStore()
	return &DefaultUserService{Repo: store, Notifier: noopNotifier{}}, store
}

func studentRegistration() models.UserRegistrationData {
	return models.UserRegistrationData{
		ID:       "NIM-001",
		FullName: "Budi Santoso",
		Email:    "budi@student.unsri.ac.id",
		Password: "rahasia123",
		Role:     models.RoleStudent,
	}
}

func TestRegisterStudent(t *testing.T) {
	svc, store := newTestService()

	u, err := svc.Register(context.Background(), studentRegistration())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if u.PasswordHash == "" || u.PasswordHash == "rahasia123" {
		t.Error("password not hashed")
	}
	if _, err := store.GetByID(context.Background(), "NIM-001"); err != nil {
		t.Errorf("profile not persisted: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService()

	wrongDomain := studentRegistration()
	wrongDomain.Email = "budi@gmail.com"
	shortPassword := studentRegistration()
	shortPassword.Password = "abc"
	blankName := studentRegistration()
	blankName.FullName = "  "
	badRole := studentRegistration()
	badRole.Role = "admin"

	tests := []struct {
		name string
		req  models.UserRegistrationData
	}{
		{"wrong student email domain", wrongDomain},
		{"short password", shortPassword},
		{"blank full name", blankName},
		{"unknown role", badRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestRegisterLecturerAnyDomain(t *testing.T) {
	svc, _ := newTestService()

	req := models.UserRegistrationData{
		ID:       "NIP-100",
		FullName: "Dr. Ratna Dewi",
		Email:    "ratna@unsri.ac.id",
		Password: "rahasia123",
		Role:     models.RoleLecturer,
	}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("lecturer registration should not enforce the student domain, got %v", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(context.Background(), studentRegistration()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	_, err := svc.Register(context.Background(), studentRegistration())
	if !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(context.Background(), studentRegistration()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	resp, err := svc.Authenticate(context.Background(), "budi@student.unsri.ac.id", "rahasia123")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if resp.Token == "" {
		t.Error("no token issued")
	}
	if resp.User.ID != "NIM-001" {
		t.Errorf("unexpected user in response: %+v", resp.User)
	}

	if _, err := svc.Authenticate(context.Background(), "budi@student.unsri.ac.id", "salah"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "ghost@student.unsri.ac.id", "rahasia123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(context.Background(), studentRegistration()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	phone := "081234567890"
	advisor := "NIP-100"
	u, err := svc.UpdateProfile(context.Background(), "NIM-001", models.UserProfileUpdate{
		NomorHP: &phone,
		DosenPA: &advisor,
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if u.NomorHP != phone || u.DosenPA != advisor {
		t.Errorf("update not applied: %+v", u)
	}
	if u.FullName != "Budi Santoso" {
		t.Errorf("untouched field changed: %q", u.FullName)
	}
}

func TestUpdateInterests(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(context.Background(), studentRegistration()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	u, err := svc.UpdateInterests(context.Background(), "NIM-001", []string{"Data Science", "Jaringan"}, "Robotika")
	if err != nil {
		t.Fatalf("UpdateInterests returned error: %v", err)
	}
	if len(u.Interests) != 2 || u.OtherInterest != "Robotika" {
		t.Errorf("interests not applied: %+v", u)
	}
}

// memCache is an in-memory Cache; TTLs are not simulated.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key], nil
}

func (c *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *memCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func lecturerRegistration(id, name string) models.UserRegistrationData {
	return models.UserRegistrationData{
		ID:       id,
		FullName: name,
		Email:    id + "@unsri.ac.id",
		Password: "rahasia123",
		Role:     models.RoleLecturer,
	}
}

func TestListLecturersServedFromCache(t *testing.T) {
	store := newMemUserStore()
	svc := &DefaultUserService{Repo: store, Notifier: noopNotifier{}, Cache: newMemCache()}
	ctx := context.Background()

	if _, err := svc.Register(ctx, lecturerRegistration("NIP-100", "Dr. Ratna Dewi")); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	first, err := svc.ListLecturers(ctx)
	if err != nil {
		t.Fatalf("ListLecturers returned error: %v", err)
	}
	second, err := svc.ListLecturers(ctx)
	if err != nil {
		t.Fatalf("ListLecturers returned error: %v", err)
	}
	if len(first) != 1 || len(second) != 1 || second[0].ID != "NIP-100" {
		t.Fatalf("unexpected lecturer lists: %v / %v", first, second)
	}
	if store.listByRoleCalls != 1 {
		t.Fatalf("expected the second call to hit the cache, repo was queried %d times", store.listByRoleCalls)
	}
}

func TestLecturerRegistrationInvalidatesCache(t *testing.T) {
	store := newMemUserStore()
	svc := &DefaultUserService{Repo: store, Notifier: noopNotifier{}, Cache: newMemCache()}
	ctx := context.Background()

	if _, err := svc.Register(ctx, lecturerRegistration("NIP-100", "Dr. Ratna Dewi")); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	if _, err := svc.ListLecturers(ctx); err != nil {
		t.Fatalf("ListLecturers returned error: %v", err)
	}
	if _, err := svc.Register(ctx, lecturerRegistration("NIP-200", "Dr. Agus Wijaya")); err != nil {
		t.Fatalf("second registration failed: %v", err)
	}

	lecturers, err := svc.ListLecturers(ctx)
	if err != nil {
		t.Fatalf("ListLecturers returned error: %v", err)
	}
	if len(lecturers) != 2 {
		t.Fatalf("stale lecturer list after registration: %v", lecturers)
	}
}

func TestLecturerProfileUpdateInvalidatesCache(t *testing.T) {
	store := newMemUserStore()
	svc := &DefaultUserService{Repo: store, Notifier: noopNotifier{}, Cache: newMemCache()}
	ctx := context.Background()

	if _, err := svc.Register(ctx, lecturerRegistration("NIP-100", "Dr. Ratna Dewi")); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	if _, err := svc.ListLecturers(ctx); err != nil {
		t.Fatalf("ListLecturers returned error: %v", err)
	}

	newName := "Prof. Ratna Dewi"
	if _, err := svc.UpdateProfile(ctx, "NIP-100", models.UserProfileUpdate{FullName: &newName}); err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}

	lecturers, err := svc.ListLecturers(ctx)
	if err != nil {
		t.Fatalf("ListLecturers returned error: %v", err)
	}
	if len(lecturers) != 1 || lecturers[0].FullName != newName {
		t.Fatalf("stale lecturer list after profile update: %v", lecturers)
	}
}

func TestListLecturersWithoutCache(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Register(context.Background(), lecturerRegistration("NIP-100", "Dr. Ratna Dewi")); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	lecturers, err := svc.ListLecturers(context.Background())
	if err != nil {
		t.Fatalf("ListLecturers returned error: %v", err)
	}
	if len(lecturers) != 1 {
		t.Fatalf("expected 1 lecturer, got %d", len(lecturers))
	}
}

package demoapi

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/glowdesk/medspa-console/internal/httperr"
	"github.com/glowdesk/medspa-console/internal/models"
)

// Store is the demo backend's in-memory state. It exists so demo mode is an
// explicit, separately-started server instead of a fallback hidden inside
// the client's error paths. Slices keep insertion order; list endpoints
// return records in that order.
type Store struct {
	mu sync.RWMutex

	users        []storedUser
	appointments []models.Appointment
	bookingOwner map[string]string // appointment id -> owning user id
	treatments   []models.TreatmentRecord
	soapNotes    []models.SOAPNote
	clients      []models.Client
}

type storedUser struct {
	models.User
	PasswordHash string
}

func NewStore() *Store {
	return &Store{bookingOwner: make(map[string]string)}
}

// --------- Users ---------

func (s *Store) Authenticate(email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
			return models.User{}, httperr.ErrStore("invalid_credentials")
		}
		return u.User, nil
	}
	return models.User{}, httperr.ErrStore("invalid_credentials")
}

func (s *Store) CreateUser(name, email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return models.User{}, httperr.ErrStore("email_already_registered")
		}
	}

	user := models.User{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Email:     email,
		Role:      models.RoleClient,
		CreatedAt: time.Now(),
	}
	s.users = append(s.users, storedUser{User: user, PasswordHash: string(hashed)})
	return user, nil
}

func (s *Store) UserByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u.User, nil
		}
	}
	return models.User{}, httperr.ErrStore("not_found")
}

// --------- Appointments ---------

func (s *Store) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

func (s *Store) BookingsFor(userID string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Appointment, 0)
	for _, a := range s.appointments {
		if s.bookingOwner[a.ID] == userID {
			out = append(out, a)
		}
	}
	return out
}

// --------- Treatments ---------

func (s *Store) Treatments() []models.TreatmentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TreatmentRecord, len(s.treatments))
	copy(out, s.treatments)
	return out
}

func (s *Store) CreateTreatment(t models.TreatmentRecord) models.TreatmentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	s.treatments = append(s.treatments, t)
	return t
}

func (s *Store) UpdateTreatment(id string, t models.TreatmentRecord) (models.TreatmentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.treatments {
		if s.treatments[i].ID != id {
			continue
		}
		t.ID = id
		t.CreatedAt = s.treatments[i].CreatedAt
		t.UpdatedAt = time.Now()
		// Keep existing photo refs unless the update replaced them.
		if t.BeforePhotoRef == "" {
			t.BeforePhotoRef = s.treatments[i].BeforePhotoRef
		}
		if t.AfterPhotoRef == "" {
			t.AfterPhotoRef = s.treatments[i].AfterPhotoRef
		}
		s.treatments[i] = t
		return t, nil
	}
	return models.TreatmentRecord{}, httperr.ErrStore("not_found")
}

func (s *Store) DeleteTreatment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.treatments {
		if s.treatments[i].ID == id {
			s.treatments = append(s.treatments[:i], s.treatments[i+1:]...)
			return nil
		}
	}
	return httperr.ErrStore("not_found")
}

// --------- SOAP notes ---------

func (s *Store) SOAPNotes(clientID string) []models.SOAPNote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SOAPNote, 0, len(s.soapNotes))
	for _, n := range s.soapNotes {
		if clientID != "" && n.ClientID != clientID {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (s *Store) CreateSOAPNote(n models.SOAPNote) (models.SOAPNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	client, ok := s.clientByIDLocked(n.ClientID)
	if !ok {
		return models.SOAPNote{}, httperr.ErrStore("client_not_found")
	}
	n.ID = uuid.NewString()
	n.ClientName = client.Name
	n.CreatedAt = time.Now()
	n.UpdatedAt = n.CreatedAt
	s.soapNotes = append(s.soapNotes, n)
	return n, nil
}

func (s *Store) UpdateSOAPNote(id string, n models.SOAPNote) (models.SOAPNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.soapNotes {
		if s.soapNotes[i].ID != id {
			continue
		}
		existing := s.soapNotes[i]
		n.ID = id
		n.CreatedAt = existing.CreatedAt
		n.UpdatedAt = time.Now()
		if n.ClientID == "" {
			n.ClientID = existing.ClientID
			n.ClientName = existing.ClientName
		} else if client, ok := s.clientByIDLocked(n.ClientID); ok {
			n.ClientName = client.Name
		} else {
			return models.SOAPNote{}, httperr.ErrStore("client_not_found")
		}
		s.soapNotes[i] = n
		return n, nil
	}
	return models.SOAPNote{}, httperr.ErrStore("not_found")
}

func (s *Store) DeleteSOAPNote(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.soapNotes {
		if s.soapNotes[i].ID == id {
			s.soapNotes = append(s.soapNotes[:i], s.soapNotes[i+1:]...)
			return nil
		}
	}
	return httperr.ErrStore("not_found")
}

// --------- Clients ---------

func (s *Store) Clients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *Store) clientByIDLocked(id string) (models.Client, bool) {
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return models.Client{}, false
}

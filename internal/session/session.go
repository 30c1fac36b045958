// Package session drives the list/edit/confirm-delete flow of one user on
// top of the product use case.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ironman07017-lang/vibeosys-inventory/internal/domain"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/idgen"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/usecase"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidTransition = errors.New("invalid session transition")
	ErrSessionNotFound   = errors.New("session not found")
)

type State string

const (
	StateListing          State = "listing"
	StateEditing          State = "editing"
	StateConfirmingDelete State = "confirming_delete"
)

// Snapshot is a read-only copy of a session for rendering.
type Snapshot struct {
	ID              string
	State           State
	Draft           *domain.Draft
	Errors          domain.ValidationErrors
	PendingDeleteID string
}

type Session struct {
	mu sync.Mutex

	id            string
	state         State
	draft         *domain.Draft
	errors        domain.ValidationErrors
	pendingDelete string

	products usecase.ProductUseCase
	keys     idgen.Generator
	log      *logrus.Logger
}

func New(id string, products usecase.ProductUseCase, keys idgen.Generator, logger *logrus.Logger) *Session {
	return &Session{
		id:       id,
		state:    StateListing,
		products: products,
		keys:     keys,
		log:      logger,
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) View() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:              s.id,
		State:           s.state,
		PendingDeleteID: s.pendingDelete,
		Errors:          domain.ValidationErrors{},
	}
	if s.draft != nil {
		snap.Draft = s.draft.Clone()
	}
	for field, msg := range s.errors {
		snap.Errors[field] = msg
	}
	return snap
}

func (s *Session) require(want State, action string) error {
	if s.state != want {
		return fmt.Errorf("%w: cannot %s while %s", ErrInvalidTransition, action, s.state)
	}
	return nil
}

// Create opens an empty draft.
func (s *Session) Create() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateListing, "create"); err != nil {
		return err
	}
	s.state = StateEditing
	s.draft = domain.NewDraft()
	s.errors = nil
	s.log.Infof("Session %s: Editing new product", s.id)
	return nil
}

// Edit opens a draft of an existing product.
func (s *Session) Edit(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateListing, "edit"); err != nil {
		return err
	}
	product, err := s.products.GetProductByID(productID)
	if err != nil {
		return err
	}
	s.state = StateEditing
	s.draft = domain.DraftFromProduct(*product)
	s.errors = nil
	s.log.Infof("Session %s: Editing product ID %s", s.id, productID)
	return nil
}

func (s *Session) SetFields(fields domain.DraftFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateEditing, "change fields"); err != nil {
		return err
	}
	s.draft.Apply(fields)
	return nil
}

// AddMaterial appends an empty material under a fresh transient key.
func (s *Session) AddMaterial() (domain.Material, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateEditing, "add material"); err != nil {
		return domain.Material{}, err
	}
	return s.draft.AddMaterial(domain.NewTransientKey(s.keys.NewID()))
}

func (s *Session) ReplaceMaterial(key domain.MaterialKey, m domain.Material) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateEditing, "change material"); err != nil {
		return err
	}
	return s.draft.ReplaceMaterial(key, m)
}

func (s *Session) RemoveMaterial(key domain.MaterialKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateEditing, "remove material"); err != nil {
		return err
	}
	return s.draft.RemoveMaterial(key)
}

// Save submits the draft. Validation failures keep the session editing and
// are returned as domain.ValidationErrors; any other failure also keeps the
// draft so the user can retry or cancel.
func (s *Session) Save() (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateEditing, "save"); err != nil {
		return nil, err
	}
	product, err := s.products.SubmitDraft(s.draft)
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			s.errors = verrs
		}
		return nil, err
	}
	s.reset()
	s.log.Infof("Session %s: Saved product ID %s", s.id, product.ID)
	return product, nil
}

// Cancel discards the draft.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateEditing, "cancel"); err != nil {
		return err
	}
	s.reset()
	return nil
}

// RequestDelete asks for confirmation before the product is deleted.
func (s *Session) RequestDelete(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateListing, "delete"); err != nil {
		return err
	}
	if _, err := s.products.GetProductByID(productID); err != nil {
		return err
	}
	s.state = StateConfirmingDelete
	s.pendingDelete = productID
	return nil
}

func (s *Session) ConfirmDelete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateConfirmingDelete, "confirm delete"); err != nil {
		return err
	}
	id := s.pendingDelete
	// The confirmation is consumed even if the delete below fails.
	s.reset()
	if err := s.products.DeleteProduct(id); err != nil {
		return err
	}
	s.log.Infof("Session %s: Deleted product ID %s", s.id, id)
	return nil
}

// DeclineDelete returns to the list without touching the store.
func (s *Session) DeclineDelete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateConfirmingDelete, "decline delete"); err != nil {
		return err
	}
	s.reset()
	return nil
}

func (s *Session) reset() {
	s.state = StateListing
	s.draft = nil
	s.errors = nil
	s.pendingDelete = ""
}

// Package session is the tab-wide application state: users, events,
// registrations, posts and the current login, kept in five collections
// behind the kv adapter. State is hydrated once at startup, re-read from
// the adapter before every decision, and written back on every mutation.
//
// A single mutex serializes every check-then-act sequence, so within one
// process a successful registration is all-or-nothing. Across processes
// sharing the postgres backend the capacity check is still best-effort.
package session

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"summitclub/internal/lib/identity"
	"summitclub/internal/models"
	"summitclub/internal/storage/kv"
)

const (
	keyUsers         = "users"
	keyEvents        = "events"
	keyRegistrations = "registrations"
	keyPosts         = "posts"
	keyCurrentUser   = "currentUser"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrEventFull          = errors.New("no available spots")
	ErrAlreadyRegistered  = errors.New("already registered for this event")
	ErrMissingFields      = errors.New("required fields are missing")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnknownAuthor      = errors.New("author is not a registered user")
	ErrInvalidCategory    = errors.New("invalid post category")
	ErrTitleTooShort      = errors.New("title must be at least 5 characters")
	ErrContentTooShort    = errors.New("content must be at least 10 characters")
)

type Store struct {
	mu  sync.Mutex
	kv  *kv.Store
	log *slog.Logger
}

func New(store *kv.Store, log *slog.Logger) *Store {
	s := &Store{
		kv:  store,
		log: log,
	}

	log.Info("session state hydrated",
		slog.Int("users", len(s.users())),
		slog.Int("events", len(s.events())),
		slog.Int("registrations", len(s.registrations())),
		slog.Int("posts", len(s.posts())),
	)

	return s
}

func (s *Store) users() []models.User {
	return kv.Get(s.kv, keyUsers, []models.User{})
}

func (s *Store) events() []models.Event {
	return kv.Get(s.kv, keyEvents, []models.Event{})
}

func (s *Store) registrations() []models.Registration {
	return kv.Get(s.kv, keyRegistrations, []models.Registration{})
}

func (s *Store) posts() []models.Post {
	return kv.Get(s.kv, keyPosts, []models.Post{})
}

// SeedEvents writes the demo events on first run. An already-populated
// events collection is left untouched.
func (s *Store) SeedEvents(events []models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.events()) > 0 {
		return
	}

	kv.Set(s.kv, keyEvents, events)

	s.log.Info("seeded events", slog.Int("count", len(events)))
}

// RegisterForEvent signs user up for the event. On success exactly one
// registration is appended and the event's spot counter drops by one; on
// any failure nothing is mutated. The registration collection is written
// before the event collection.
func (s *Store) RegisterForEvent(eventID int, form models.RegistrationForm, user models.User) (models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// latest state, not the last snapshot this process saw
	registrations := s.registrations()
	events := s.events()

	for _, reg := range registrations {
		if reg.EventID == eventID && reg.UserID == user.ID {
			return models.Registration{}, ErrAlreadyRegistered
		}
	}

	eventIdx := -1
	for i, event := range events {
		if event.ID == eventID {
			eventIdx = i
			break
		}
	}
	if eventIdx == -1 {
		return models.Registration{}, ErrEventNotFound
	}

	if events[eventIdx].AvailableSpots <= 0 {
		return models.Registration{}, ErrEventFull
	}

	firstName := strings.TrimSpace(form.FirstName)
	lastName := strings.TrimSpace(form.LastName)
	email := strings.TrimSpace(form.Email)
	if firstName == "" || lastName == "" || email == "" {
		return models.Registration{}, ErrMissingFields
	}

	registration := models.Registration{
		EventID:          eventID,
		UserID:           user.ID,
		FirstName:        firstName,
		LastName:         lastName,
		Email:            email,
		Phone:            strings.TrimSpace(form.Phone),
		EmergencyContact: strings.TrimSpace(form.EmergencyContact),
		RegistrationDate: time.Now(),
	}

	registrations = append(registrations, registration)

	events[eventIdx].AvailableSpots--
	if events[eventIdx].AvailableSpots < 0 {
		events[eventIdx].AvailableSpots = 0
	}

	kv.Set(s.kv, keyRegistrations, registrations)
	kv.Set(s.kv, keyEvents, events)

	s.log.Info("registration committed",
		slog.Int("event_id", eventID),
		slog.String("user_id", user.ID),
		slog.Int("spots_left", events[eventIdx].AvailableSpots),
	)

	return registration, nil
}

// SignUp creates an account and logs it in. Email uniqueness is
// case-insensitive.
func (s *Store) SignUp(form models.SignupForm) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	firstName := strings.TrimSpace(form.FirstName)
	lastName := strings.TrimSpace(form.LastName)
	email := strings.ToLower(strings.TrimSpace(form.Email))
	if firstName == "" || lastName == "" || email == "" {
		return models.User{}, ErrMissingFields
	}

	users := s.users()
	for _, u := range users {
		if strings.ToLower(u.Email) == email {
			return models.User{}, ErrEmailTaken
		}
	}

	user := models.User{
		ID:           identity.NewID(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Phone:        strings.TrimSpace(form.Phone),
		PasswordHash: identity.HashPassword(form.Password),
		CreatedAt:    time.Now(),
	}

	users = append(users, user)

	kv.Set(s.kv, keyUsers, users)
	kv.Set(s.kv, keyCurrentUser, user)

	s.log.Info("user created", slog.String("user_id", user.ID))

	return user, nil
}

// Login verifies the credentials and sets the current user. Accounts
// predating the password hash are matched against their stored plain-text
// password.
func (s *Store) Login(email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	found := false
	for _, u := range s.users() {
		if strings.ToLower(u.Email) == email {
			user = u
			found = true
			break
		}
	}
	if !found {
		return models.User{}, ErrInvalidCredentials
	}

	valid := false
	if user.PasswordHash != "" {
		valid = identity.VerifyPassword(password, user.PasswordHash)
	} else {
		valid = user.Password == password
	}
	if !valid {
		return models.User{}, ErrInvalidCredentials
	}

	kv.Set(s.kv, keyCurrentUser, user)

	s.log.Info("user logged in", slog.String("user_id", user.ID))

	return user, nil
}

// Logout clears the current user. Logging out while logged out is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.kv.Delete(keyCurrentUser)
}

// CurrentUser returns the login state of this session.
func (s *Store) CurrentUser() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := kv.Get(s.kv, keyCurrentUser, models.User{})
	if user.ID == "" {
		return models.LoggedOut()
	}

	return models.LoggedIn(user)
}

// CreatePost appends a board post by author. Text fields are entity-escaped
// before storing; posts are never mutated or deleted afterwards.
func (s *Store) CreatePost(form models.PostForm, author models.User) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title := strings.TrimSpace(form.Title)
	content := strings.TrimSpace(form.Content)

	if len(title) < 5 {
		return models.Post{}, ErrTitleTooShort
	}
	if len(content) < 10 {
		return models.Post{}, ErrContentTooShort
	}

	category := models.Category(form.Category)
	if !category.Valid() {
		return models.Post{}, ErrInvalidCategory
	}

	authorExists := false
	for _, u := range s.users() {
		if u.ID == author.ID {
			authorExists = true
			break
		}
	}
	if !authorExists {
		return models.Post{}, ErrUnknownAuthor
	}

	post := models.Post{
		ID:         identity.NewID(),
		Title:      identity.SanitizeHTML(title),
		Content:    identity.SanitizeHTML(content),
		Category:   category,
		AuthorName: identity.SanitizeHTML(author.FullName()),
		UserID:     author.ID,
		CreatedAt:  time.Now(),
	}

	posts := append(s.posts(), post)
	kv.Set(s.kv, keyPosts, posts)

	s.log.Info("post created", slog.String("post_id", post.ID), slog.String("user_id", author.ID))

	return post, nil
}

func (s *Store) GetAllEvents() ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.events(), nil
}

func (s *Store) GetEvent(id int) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, event := range s.events() {
		if event.ID == id {
			return &event, nil
		}
	}

	return nil, ErrEventNotFound
}

// GetEventWithRegistrations returns the event and everyone signed up for it.
func (s *Store) GetEventWithRegistrations(id int) (*models.Event, []models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var found *models.Event
	for _, event := range s.events() {
		if event.ID == id {
			found = &event
			break
		}
	}
	if found == nil {
		return nil, nil, ErrEventNotFound
	}

	var regs []models.Registration
	for _, reg := range s.registrations() {
		if reg.EventID == id {
			regs = append(regs, reg)
		}
	}

	return found, regs, nil
}

func (s *Store) GetAllPosts() ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.posts(), nil
}

// GetUserEvents returns the events userID has registered for.
func (s *Store) GetUserEvents(userID string) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	registered := make(map[int]bool)
	for _, reg := range s.registrations() {
		if reg.UserID == userID {
			registered[reg.EventID] = true
		}
	}

	var events []models.Event
	for _, event := range s.events() {
		if registered[event.ID] {
			events = append(events, event)
		}
	}

	return events, nil
}

// GetUserPosts returns the posts authored by userID.
func (s *Store) GetUserPosts(userID string) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var posts []models.Post
	for _, post := range s.posts() {
		if post.UserID == userID {
			posts = append(posts, post)
		}
	}

	return posts, nil
}

package mockapi

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mishasvintus/codejam_client/internal/domain"
)

// Event status codes that allow team sign-ups.
var signupStatuses = []string{"SIGNUP", "STARTED"}

type eventRecord struct {
	event  *domain.Event
	status string
}

// State is the in-memory data behind the mock API. All methods are safe for
// concurrent use and return copies.
type State struct {
	mu            sync.RWMutex
	users         map[string]domain.User
	sessions      map[string]string // token -> user id
	events        map[string]eventRecord
	eventOrder    []string
	activeEventID string
	statuses      []domain.EventStatus
	teams         map[string]domain.Team
	teamOrder     []string
	members       map[string][]domain.TeamMember
}

// NewState returns an empty state with the default status catalog.
func NewState() *State {
	statuses := make([]domain.EventStatus, 0, 4)
	for _, code := range []string{"PLANNING", "SIGNUP", "STARTED", "FINISHED"} {
		statuses = append(statuses, domain.EventStatus(fmt.Sprintf(`{"Code":%q}`, code)))
	}
	return &State{
		users:    make(map[string]domain.User),
		sessions: make(map[string]string),
		events:   make(map[string]eventRecord),
		statuses: statuses,
		teams:    make(map[string]domain.Team),
		members:  make(map[string][]domain.TeamMember),
	}
}

// AddUser stores u, assigning an id when it has none.
func (s *State) AddUser(u domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.AccountStatus == "" {
		u.AccountStatus = domain.StatusActive
	}
	s.users[u.ID] = u
	return u
}

// User returns one user.
func (s *State) User(id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return u, nil
}

// Users returns every user, those with a role first, then by service user name.
func (s *State) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := roleKey(out[i].Role), roleKey(out[j].Role)
		if ri != rj {
			return ri < rj
		}
		return out[i].ServiceUserName < out[j].ServiceUserName
	})
	return out
}

func roleKey(r domain.Role) string {
	if r == "" {
		return "zzz"
	}
	return string(r)
}

// UpdateUser applies fn to a stored user and returns the result.
func (s *State) UpdateUser(id string, fn func(*domain.User)) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	fn(&u)
	s.users[id] = u
	return u, nil
}

// StartSession creates a session token for a user.
func (s *State) StartSession(userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		return "", ErrUserNotFound
	}
	token := uuid.NewString()
	s.sessions[token] = userID
	return token, nil
}

// SessionUser resolves a session token.
func (s *State) SessionUser(token string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.sessions[token]
	if !ok {
		return domain.User{}, false
	}
	u, ok := s.users[id]
	return u, ok
}

// EndSession forgets a session token.
func (s *State) EndSession(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// PutEvent stores an event record, keyed by its Id.
func (s *State) PutEvent(e *domain.Event) error {
	if e == nil || e.ID == "" {
		return ErrEventNotFound
	}
	var head struct {
		Status string `json:"Status"`
	}
	if err := json.Unmarshal(e.Raw(), &head); err != nil {
		return fmt.Errorf("failed to read event status: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.events[e.ID]; !exists {
		s.eventOrder = append(s.eventOrder, e.ID)
	}
	s.events[e.ID] = eventRecord{event: e, status: head.Status}
	return nil
}

// Event returns one event.
func (s *State) Event(id string) (*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	return rec.event, nil
}

// Events returns every event in insertion order.
func (s *State) Events() []*domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Event, 0, len(s.eventOrder))
	for _, id := range s.eventOrder {
		out = append(out, s.events[id].event)
	}
	return out
}

// SetActiveEvent marks an event as active. An empty id clears it.
func (s *State) SetActiveEvent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != "" {
		if _, ok := s.events[id]; !ok {
			return ErrEventNotFound
		}
	}
	s.activeEventID = id
	return nil
}

// ActiveEvent returns the active event, or nil when there is none.
func (s *State) ActiveEvent() *domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeEventID == "" {
		return nil
	}
	return s.events[s.activeEventID].event
}

// Statuses returns the event status catalog.
func (s *State) Statuses() []domain.EventStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.statuses)
}

// CreateTeam stores a new team for an event accepting sign-ups and makes
// owner its first member.
func (s *State) CreateTeam(t domain.Team, owner domain.User) (domain.Team, error) {
	code, err := NewInviteCode(t.Name)
	if err != nil {
		return domain.Team{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.events[t.EventID]
	if !ok {
		return domain.Team{}, ErrEventNotFound
	}
	if !slices.Contains(signupStatuses, rec.status) {
		return domain.Team{}, ErrSignupsClosed
	}

	t.ID = uuid.NewString()
	t.InviteCode = code
	t.Members = nil
	s.teams[t.ID] = t
	s.teamOrder = append(s.teamOrder, t.ID)
	s.members[t.ID] = []domain.TeamMember{memberOf(t.ID, owner, domain.TeamRoleOwner)}
	return s.withMembers(t), nil
}

// Team returns a team with its members.
func (s *State) Team(id string) (domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	if !ok {
		return domain.Team{}, ErrTeamNotFound
	}
	return s.withMembers(t), nil
}

// TeamByInvite finds the team owning an invite code.
func (s *State) TeamByInvite(code string) (domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.teamOrder {
		if t := s.teams[id]; t.InviteCode == code {
			return s.withMembers(t), nil
		}
	}
	return domain.Team{}, ErrTeamNotFound
}

// Teams returns every team in creation order.
func (s *State) Teams() []domain.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Team, 0, len(s.teamOrder))
	for _, id := range s.teamOrder {
		out = append(out, s.withMembers(s.teams[id]))
	}
	return out
}

// UserTeams returns the teams a user belongs to.
func (s *State) UserTeams(userID string) []domain.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Team, 0)
	for _, id := range s.teamOrder {
		if s.isMember(id, userID) {
			out = append(out, s.withMembers(s.teams[id]))
		}
	}
	return out
}

// AddMember appends user to a team's member list.
func (s *State) AddMember(teamID string, user domain.User, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.teams[teamID]; !ok {
		return ErrTeamNotFound
	}
	if s.isMember(teamID, user.ID) {
		return ErrAlreadyMember
	}
	s.members[teamID] = append(s.members[teamID], memberOf(teamID, user, role))
	return nil
}

func (s *State) isMember(teamID, userID string) bool {
	return slices.ContainsFunc(s.members[teamID], func(m domain.TeamMember) bool {
		return m.UserID == userID
	})
}

func (s *State) withMembers(t domain.Team) domain.Team {
	t.Members = slices.Clone(s.members[t.ID])
	if t.Members == nil {
		t.Members = []domain.TeamMember{}
	}
	return t
}

func memberOf(teamID string, u domain.User, role string) domain.TeamMember {
	return domain.TeamMember{
		TeamID:        teamID,
		UserID:        u.ID,
		TeamRole:      role,
		DisplayName:   u.DisplayName,
		AvatarURL:     u.AvatarURL,
		ServiceUserID: u.ServiceUserID,
	}
}

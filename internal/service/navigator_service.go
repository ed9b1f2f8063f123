package service

import (
	"sync"

	"github.com/google/uuid"

	"shgportal/internal/domain"
	"shgportal/internal/location"
)

// SHGDetail is the summary of the selected SHG.
type SHGDetail struct {
	Products     []string `json:"products"`
	TotalSavings float64  `json:"total_savings"`
	MemberCount  int      `json:"member_count"`
}

// NavigatorState is the full picture returned after every selector call:
// the selection, the selected SHG's members and the option list of each level.
type NavigatorState struct {
	Selection      location.Selection `json:"selection"`
	Members        []location.Member  `json:"members"`
	Districts      []string           `json:"districts"`
	Blocks         []string           `json:"blocks"`
	GramPanchayats []string           `json:"gram_panchayats"`
	Villages       []string           `json:"villages"`
	SHGs           []string           `json:"shgs"`
	SHGDetail      *SHGDetail         `json:"shg_detail,omitempty"`
}

// NavigatorService keeps one cascading selection per user.
type NavigatorService interface {
	State(userID uuid.UUID) NavigatorState
	SelectDistrict(userID uuid.UUID, name string) NavigatorState
	SelectBlock(userID uuid.UUID, name string) (NavigatorState, error)
	SelectGramPanchayat(userID uuid.UUID, name string) (NavigatorState, error)
	SelectVillage(userID uuid.UUID, name string) (NavigatorState, error)
	SelectSHG(userID uuid.UUID, name string) (NavigatorState, error)
	Reset(userID uuid.UUID) NavigatorState
	Discard(userID uuid.UUID)
}

type navigatorService struct {
	tree *location.Tree

	mu       sync.Mutex
	sessions map[uuid.UUID]*location.Navigator
}

// NewNavigatorService creates a NavigatorService over the given tree.
func NewNavigatorService(tree *location.Tree) NavigatorService {
	return &navigatorService{
		tree:     tree,
		sessions: make(map[uuid.UUID]*location.Navigator),
	}
}

// session returns the user's navigator, creating it on first use.
// Caller must hold s.mu.
func (s *navigatorService) session(userID uuid.UUID) *location.Navigator {
	nav, ok := s.sessions[userID]
	if !ok {
		nav = location.NewNavigator(s.tree)
		s.sessions[userID] = nav
	}
	return nav
}

// State reports the user's selection without starting a session.
func (s *navigatorService) State(userID uuid.UUID) NavigatorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if nav, ok := s.sessions[userID]; ok {
		return snapshot(nav)
	}
	return snapshot(location.NewNavigator(s.tree))
}

func (s *navigatorService) SelectDistrict(userID uuid.UUID, name string) NavigatorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	nav := s.session(userID)
	nav.SelectDistrict(name)
	return snapshot(nav)
}

func (s *navigatorService) SelectBlock(userID uuid.UUID, name string) (NavigatorState, error) {
	return s.apply(userID, func(nav *location.Navigator) bool { return nav.SelectBlock(name) })
}

func (s *navigatorService) SelectGramPanchayat(userID uuid.UUID, name string) (NavigatorState, error) {
	return s.apply(userID, func(nav *location.Navigator) bool { return nav.SelectGramPanchayat(name) })
}

func (s *navigatorService) SelectVillage(userID uuid.UUID, name string) (NavigatorState, error) {
	return s.apply(userID, func(nav *location.Navigator) bool { return nav.SelectVillage(name) })
}

func (s *navigatorService) SelectSHG(userID uuid.UUID, name string) (NavigatorState, error) {
	return s.apply(userID, func(nav *location.Navigator) bool { return nav.SelectSHG(name) })
}

// Reset drops the user's navigator; the next selector call starts a new one.
func (s *navigatorService) Reset(userID uuid.UUID) NavigatorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return snapshot(location.NewNavigator(s.tree))
}

// Discard forgets the user's selection.
func (s *navigatorService) Discard(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// apply runs a guarded selector. A rejected selection still returns the
// unchanged state alongside ErrSelectionOrder.
func (s *navigatorService) apply(userID uuid.UUID, sel func(*location.Navigator) bool) (NavigatorState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	nav := s.session(userID)
	if !sel(nav) {
		return snapshot(nav), domain.ErrSelectionOrder
	}
	return snapshot(nav), nil
}

func snapshot(nav *location.Navigator) NavigatorState {
	state := NavigatorState{
		Selection:      nav.Selection(),
		Members:        nav.Members(),
		Districts:      nav.Districts(),
		Blocks:         nav.Blocks(),
		GramPanchayats: nav.GramPanchayats(),
		Villages:       nav.Villages(),
		SHGs:           nav.SHGs(),
	}
	if shg, ok := nav.SelectedSHG(); ok {
		state.SHGDetail = &SHGDetail{
			Products:     shg.Products,
			TotalSavings: shg.TotalSavings,
			MemberCount:  len(shg.Members),
		}
	}
	return state
}

// Package memory provides in-memory repository implementations used in
// tests. The like repository reproduces the storage guarantees the postgres
// implementation gets from its transaction: per-pair serialization and a
// unique (from, to) constraint.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
)

type Store struct {
	mu sync.Mutex

	nextUserID    int
	nextProfileID int
	nextLikeID    int
	nextMatchID   int
	nextBlockID   int
	nextReportID  int

	users    map[int]*domain.User
	profiles map[int]*domain.Profile // keyed by user id
	likes    map[[2]int]*domain.Like // keyed by (from, to)
	matches  map[[2]int]*domain.Match
	blocks   map[[2]int]*domain.Block
	reports  []*domain.Report
	sessions map[string]*domain.Session
}

func NewStore() *Store {
	return &Store{
		users:    make(map[int]*domain.User),
		profiles: make(map[int]*domain.Profile),
		likes:    make(map[[2]int]*domain.Like),
		matches:  make(map[[2]int]*domain.Match),
		blocks:   make(map[[2]int]*domain.Block),
		sessions: make(map[string]*domain.Session),
	}
}

func (s *Store) UserRepo() repository.UserRepository       { return &userRepo{s} }
func (s *Store) ProfileRepo() repository.ProfileRepository { return &profileRepo{s} }
func (s *Store) LikeRepo() repository.LikeRepository       { return &likeRepo{s} }
func (s *Store) MatchRepo() repository.MatchRepository     { return &matchRepo{s} }
func (s *Store) BlockRepo() repository.BlockRepository     { return &blockRepo{s} }
func (s *Store) ReportRepo() repository.ReportRepository   { return &reportRepo{s} }
func (s *Store) SessionRepo() repository.SessionRepository { return &sessionRepo{s} }

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyTaken
		}
	}
	r.s.nextUserID++
	user.ID = r.s.nextUserID
	user.CreatedAt = time.Now()
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id int) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *userRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.s.users, id)
	delete(r.s.profiles, id)
	for k := range r.s.likes {
		if k[0] == id || k[1] == id {
			delete(r.s.likes, k)
		}
	}
	for k := range r.s.matches {
		if k[0] == id || k[1] == id {
			delete(r.s.matches, k)
		}
	}
	for k := range r.s.blocks {
		if k[0] == id || k[1] == id {
			delete(r.s.blocks, k)
		}
	}
	kept := r.s.reports[:0]
	for _, rep := range r.s.reports {
		if rep.ReporterID != id && rep.ReportedID != id {
			kept = append(kept, rep)
		}
	}
	r.s.reports = kept
	return nil
}

type profileRepo struct{ s *Store }

func (r *profileRepo) Create(_ context.Context, profile *domain.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.profiles[profile.UserID]; ok {
		return domain.ErrProfileAlreadyExists
	}
	r.s.nextProfileID++
	profile.ID = r.s.nextProfileID
	now := time.Now()
	profile.LastActive = now
	profile.CreatedAt = now
	profile.UpdatedAt = now
	cp := *profile
	r.s.profiles[profile.UserID] = &cp
	return nil
}

func (r *profileRepo) GetByUserID(_ context.Context, userID int) (*domain.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *profileRepo) Update(_ context.Context, profile *domain.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.profiles[profile.UserID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	now := time.Now()
	profile.ID = existing.ID
	profile.LastActive = now
	profile.UpdatedAt = now
	cp := *profile
	r.s.profiles[profile.UserID] = &cp
	return nil
}

func (r *profileRepo) ListExcluding(_ context.Context, userID int) ([]*domain.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Profile
	for uid, p := range r.s.profiles {
		if uid == userID {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

type likeRepo struct{ s *Store }

// CreateWithMatchCheck holds the store lock across insert and reciprocity
// check, mirroring the advisory-lock transaction of the postgres
// implementation.
func (r *likeRepo) CreateWithMatchCheck(_ context.Context, like *domain.Like) (*domain.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := [2]int{like.FromUserID, like.ToUserID}
	if _, ok := r.s.likes[key]; ok {
		return nil, domain.ErrLikeAlreadyExists
	}

	r.s.nextLikeID++
	like.ID = r.s.nextLikeID
	like.CreatedAt = time.Now()
	cp := *like
	r.s.likes[key] = &cp

	reverse := [2]int{like.ToUserID, like.FromUserID}
	if _, ok := r.s.likes[reverse]; !ok {
		return nil, nil
	}

	u1, u2 := domain.OrderedPair(like.FromUserID, like.ToUserID)
	pair := [2]int{u1, u2}
	r.s.nextMatchID++
	match := &domain.Match{
		ID:        r.s.nextMatchID,
		User1ID:   u1,
		User2ID:   u2,
		CreatedAt: time.Now(),
	}
	r.s.matches[pair] = match
	cpm := *match
	return &cpm, nil
}

func (r *likeRepo) Exists(_ context.Context, fromUserID, toUserID int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.likes[[2]int{fromUserID, toUserID}]
	return ok, nil
}

func (r *likeRepo) GetLikesReceived(_ context.Context, toUserID int, limit, offset int) ([]*domain.Like, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Like
	for _, l := range r.s.likes {
		if l.ToUserID == toUserID {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type matchRepo struct{ s *Store }

func (r *matchRepo) GetByUsers(_ context.Context, user1ID, user2ID int) (*domain.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u1, u2 := domain.OrderedPair(user1ID, user2ID)
	m, ok := r.s.matches[[2]int{u1, u2}]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *matchRepo) GetUserMatches(_ context.Context, userID int) ([]*domain.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Match
	for _, m := range r.s.matches {
		if m.HasUser(userID) {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type blockRepo struct{ s *Store }

func (r *blockRepo) Create(_ context.Context, block *domain.Block) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := [2]int{block.BlockerID, block.BlockedID}
	if _, ok := r.s.blocks[key]; ok {
		return domain.ErrBlockAlreadyExists
	}
	r.s.nextBlockID++
	block.ID = r.s.nextBlockID
	block.CreatedAt = time.Now()
	cp := *block
	r.s.blocks[key] = &cp
	return nil
}

func (r *blockRepo) GetBlockedIDs(_ context.Context, blockerID int) ([]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ids []int
	for k := range r.s.blocks {
		if k[0] == blockerID {
			ids = append(ids, k[1])
		}
	}
	sort.Ints(ids)
	return ids, nil
}

type reportRepo struct{ s *Store }

func (r *reportRepo) Create(_ context.Context, report *domain.Report) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextReportID++
	report.ID = r.s.nextReportID
	report.IsResolved = false
	report.CreatedAt = time.Now()
	cp := *report
	r.s.reports = append(r.s.reports, &cp)
	return nil
}

type sessionRepo struct{ s *Store }

func (r *sessionRepo) Save(_ context.Context, session *domain.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *session
	r.s.sessions[session.ID] = &cp
	return nil
}

func (r *sessionRepo) Get(_ context.Context, id string) (*domain.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sess, ok := r.s.sessions[id]
	if !ok || time.Now().After(sess.ExpiresAt) {
		return nil, domain.ErrSessionNotFound
	}
	cp := *sess
	return &cp, nil
}

func (r *sessionRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.sessions, id)
	return nil
}

package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"tanglaw_backend/internal/common"
	"tanglaw_backend/internal/domain/model"
)

// In-memory repository fakes. The mutex matters: the counselor-code tests
// redeem concurrently.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*model.User
	codes  map[string]*model.CounselorCode
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[int64]*model.User),
		codes: make(map[string]*model.CounselorCode),
	}
}

func (f *fakeUserRepo) addCode(code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.codes[code] = &model.CounselorCode{ID: int64(len(f.codes) + 1), Code: code}
}

func (f *fakeUserRepo) insert(user *model.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return common.Errorf("username already exists: %w", common.ErrConflict)
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.insert(user)
}

func (f *fakeUserRepo) CreateCounselor(_ context.Context, user *model.User, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.codes[code]
	if !ok {
		return common.ErrInvalidCode
	}
	if c.IsUsed {
		return common.ErrCodeUsed
	}
	if err := f.insert(user); err != nil {
		return err
	}
	c.IsUsed = true
	return nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeMessageRepo struct {
	mu     sync.Mutex
	nextID int64
	msgs   []model.Message
}

func (f *fakeMessageRepo) Conversation(_ context.Context, a, b int64) ([]model.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Message
	for _, m := range f.msgs {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (f *fakeMessageRepo) Create(_ context.Context, msg *model.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	msg.ID = f.nextID
	msg.Timestamp = time.Unix(f.nextID, 0) // monotonic per insert
	f.msgs = append(f.msgs, *msg)
	return nil
}

type fakeAppointmentRepo struct {
	mu     sync.Mutex
	nextID int64
	apts   []model.Appointment
	names  map[int64]string
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{names: make(map[int64]string)}
}

func (f *fakeAppointmentRepo) Create(_ context.Context, apt *model.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	apt.ID = f.nextID
	f.apts = append(f.apts, *apt)
	return nil
}

func (f *fakeAppointmentRepo) ListForUser(_ context.Context, userID int64) ([]model.AppointmentDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.AppointmentDetail
	for _, a := range f.apts {
		if a.UserID == userID || a.CounselorID == userID {
			out = append(out, model.AppointmentDetail{
				Appointment:   a,
				UserName:      f.names[a.UserID],
				CounselorName: f.names[a.CounselorID],
			})
		}
	}
	// date desc, then time desc; ISO strings sort lexicographically
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Time > out[j].Time
	})
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.apts {
		if f.apts[i].ID == id {
			f.apts[i].Status = status
		}
	}
	return nil
}

package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct {
	h handle
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	return r.h.write(func(st *state) error {
		if _, ok := st.users[user.ID]; ok {
			return domain.ErrDuplicate
		}
		for _, u := range st.users {
			if u.Username == user.Username {
				return domain.ErrDuplicate
			}
		}
		st.users[user.ID] = *user
		return nil
	})
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	var out *entity.User
	r.h.read(func(st *state) {
		if u, ok := st.users[id]; ok {
			out = &u
		}
	})
	return out, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	var out *entity.User
	r.h.read(func(st *state) {
		for _, u := range st.users {
			if u.Username == username {
				out = &u
				return
			}
		}
	})
	return out, nil
}

func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	return r.h.write(func(st *state) error {
		if _, ok := st.users[user.ID]; !ok {
			return domain.ErrUserNotFound
		}
		for _, u := range st.users {
			if u.ID != user.ID && u.Username == user.Username {
				return domain.ErrDuplicate
			}
		}
		st.users[user.ID] = *user
		return nil
	})
}

func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	var list []*entity.User
	r.h.read(func(st *state) {
		for _, u := range st.users {
			list = append(list, &u)
		}
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].Username < list[j].Username
	})
	return list, nil
}

func (r *UserRepo) Delete(_ context.Context, id string) error {
	return r.h.write(func(st *state) error {
		if _, ok := st.users[id]; !ok {
			return domain.ErrUserNotFound
		}
		delete(st.users, id)
		return nil
	})
}

func (r *UserRepo) Count(_ context.Context) (int, error) {
	var n int
	r.h.read(func(st *state) { n = len(st.users) })
	return n, nil
}

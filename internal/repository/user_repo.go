package repository

import (
	"backend/internal/model"
	"backend/internal/store"
)

// UserRepository owns the user directory and the persisted current-user
// marker. The marker mirrors the single-operator session model: one active
// user per deployment, last login wins.
type UserRepository interface {
	List() []model.User
	FindByUsername(username string) *model.User
	Add(user model.User)
	CurrentUser() *model.User
	SaveCurrentUser(user model.User)
	ClearCurrentUser()
}

type userRepository struct {
	store *store.Store
}

func NewUserRepository(s *store.Store) UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) List() []model.User {
	users := []model.User{}
	r.store.Get(store.UsersKey, &users)
	return users
}

func (r *userRepository) FindByUsername(username string) *model.User {
	for _, user := range r.List() {
		if user.Username == username {
			found := user
			return &found
		}
	}
	return nil
}

func (r *userRepository) Add(user model.User) {
	users := r.List()
	users = append(users, user)
	r.store.Set(store.UsersKey, users)
}

func (r *userRepository) CurrentUser() *model.User {
	var user model.User
	if !r.store.Get(store.CurrentUserKey, &user) {
		return nil
	}
	return &user
}

func (r *userRepository) SaveCurrentUser(user model.User) {
	r.store.Set(store.CurrentUserKey, user)
}

func (r *userRepository) ClearCurrentUser() {
	r.store.Remove(store.CurrentUserKey)
}

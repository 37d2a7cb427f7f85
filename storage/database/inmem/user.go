package inmemdb

import (
	"github.com/gtpim/turmas/core/user"
)

type userRepository struct {
	db *DB
}

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.users.table[usr.Matricula]; ok {
		return user.User{}, user.ErrMatriculaExists
	}
	repo.db.users.table[usr.Matricula] = &usr
	return cloneUser(&usr), nil
}

func (repo *userRepository) GetUserByMatricula(matricula string) (user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if usr, ok := repo.db.users.table[matricula]; ok {
		return cloneUser(usr), nil
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	users := make([]user.User, 0, len(repo.db.users.table))
	for _, usr := range repo.db.users.table {
		users = append(users, cloneUser(usr))
	}
	return users, nil
}

package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"navigation-api/internal/entities"
	apperrors "navigation-api/pkg/errors"
)

type fakeRouteRepo struct {
	routes    []entities.Route
	err       error
	findCalls int
}

func (f *fakeRouteRepo) FindAll(ctx context.Context) ([]entities.Route, error) {
	f.findCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.routes, nil
}

func (f *fakeRouteRepo) FindByID(ctx context.Context, id int64) (*entities.Route, error) {
	for _, r := range f.routes {
		if r.ID == id {
			route := r
			return &route, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeRouteRepo) Clear(ctx context.Context, tx pgx.Tx) error { return nil }

func (f *fakeRouteRepo) SaveAll(ctx context.Context, tx pgx.Tx, routes []entities.Route) ([]entities.Route, error) {
	return routes, nil
}

type fakeUserRepo struct {
	users       []entities.User
	err         error
	requestedID int64
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	f.requestedID = id
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) Clear(ctx context.Context, tx pgx.Tx) error { return nil }

func (f *fakeUserRepo) SaveAll(ctx context.Context, tx pgx.Tx, users []entities.User) ([]entities.User, error) {
	return users, nil
}

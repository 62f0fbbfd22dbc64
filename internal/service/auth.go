package service

import (
	"context"
	"errors"
	"fmt"

	"fittrack/internal/model"
	"fittrack/internal/store"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct{ store store.Store }

func NewAuthService(st store.Store) *AuthService { return &AuthService{store: st} }

func (s *AuthService) Register(ctx context.Context, username, password, name string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password required: %w", store.ErrInvalidArgument)
	}
	if _, err := s.store.GetUserByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("user %q: %w", username, store.ErrAlreadyExists)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if name == "" {
		name = username
	}
	u := &model.User{Username: username, Password: string(hash), Name: name}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, fmt.Errorf("wrong password")
	}
	return u, nil
}

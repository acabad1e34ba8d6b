package cli

import (
	"context"
)

func (a *App) credentials() (string, string, error) {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return "", "", err
	}
	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return "", "", err
	}
	return username, password, nil
}

func (a *App) Register(ctx context.Context) error {
	username, password, err := a.credentials()
	if err != nil {
		return a.fail(err)
	}
	s, err := a.svc.Auth.Register(ctx, username, password)
	if err != nil {
		return a.fail(err)
	}
	a.session = &s
	a.println("Registered and logged in as", s.Username)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	username, password, err := a.credentials()
	if err != nil {
		return a.fail(err)
	}
	s, err := a.svc.Auth.Login(ctx, username, password)
	if err != nil {
		return a.fail(err)
	}
	a.session = &s
	a.println("Welcome back,", s.Username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.svc.Auth.Logout(ctx); err != nil {
		return a.fail(err)
	}
	a.session = nil
	a.println("Logged out")
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/danakir/planvite/internal/models"
)

func (a *App) credentialsFromInput() (models.Credentials, error) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return models.Credentials{}, err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return models.Credentials{}, err
	}
	return models.Credentials{Email: email, Password: password}, nil
}

func (a *App) Login(ctx context.Context) error {
	creds, err := a.credentialsFromInput()
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, creds); err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}

	if user, ok := a.session.User(); ok {
		fmt.Fprintf(a.out, "Logged in as %s\n", user.Email)
	}
	return nil
}

func (a *App) Register(ctx context.Context) error {
	creds, err := a.credentialsFromInput()
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, creds); err != nil {
		a.log.Error(ctx, "registration failed", "error", err)
		return err
	}

	fmt.Fprintln(a.out, "Registered. Use 'login' to sign in.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) signIn(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if err := a.sessions.SignIn(ctx, email, password); err != nil {
		fmt.Println("Sign-in failed:", err)
		return
	}
	fmt.Println("Signed in.")
}

func (a *App) signUp(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	name, err := GetSimpleText(a.reader, "Display name", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if err := a.sessions.SignUp(ctx, email, password, name); err != nil {
		fmt.Println("Sign-up failed:", err)
		return
	}
	fmt.Println("Account created, signed in.")
}

func (a *App) signOut(ctx context.Context) {
	if err := a.sessions.SignOut(ctx); err != nil {
		fmt.Println("Warning:", err)
	}
	fmt.Println("Signed out, browsing as guest.")
}

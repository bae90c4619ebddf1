package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bettybooth/bettybooth/internal/client/session"
)

func (a *App) prompt() string {
	if user := a.sessions.CurrentUser(); user != nil {
		return fmt.Sprintf("booth (%s)> ", user.Name)
	}
	return fmt.Sprintf("booth (%s)> ", a.sessions.State())
}

// Root runs the command loop until exit or EOF.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to bettybooth (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(a.prompt())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "signup":
			a.signUp(ctx)
		case "login":
			a.signIn(ctx)
		case "logout":
			a.signOut(ctx)
		case "whoami":
			a.whoAmI()
		case "galleries":
			a.listGalleries(ctx)
		case "show":
			if len(args) != 1 {
				fmt.Println("Usage: show <galleryId>")
				continue
			}
			a.showGallery(ctx, args[0])
		case "create":
			a.createGallery(ctx)
		case "upload":
			if len(args) < 2 {
				fmt.Println("Usage: upload <galleryId> <file> [file...]")
				continue
			}
			a.uploadMedia(ctx, args[0], args[1:])
		case "rmimg":
			if len(args) < 2 {
				fmt.Println("Usage: rmimg <galleryId> <locator> [locator...]")
				continue
			}
			a.removeMedia(ctx, args[0], args[1:])
		case "delgallery":
			if len(args) != 1 {
				fmt.Println("Usage: delgallery <galleryId>")
				continue
			}
			a.deleteGallery(ctx, args[0])
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.sessions.State() == session.StateAuthenticated {
		fmt.Println("Available commands: galleries, show, create, upload, rmimg, delgallery, whoami, logout, exit")
		return
	}
	fmt.Println("Available commands: login, signup, galleries, exit")
	fmt.Println("Guests can browse shared galleries; sign in to create or change them.")
}

func (a *App) whoAmI() {
	if user := a.sessions.CurrentUser(); user != nil {
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		return
	}
	fmt.Println("guest")
}

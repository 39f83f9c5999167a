package command

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"strings"

	"atelier-storefront/internal/model"
	"atelier-storefront/internal/notify"
)

func prompt(deps *Deps, label string) string {
	fmt.Fprintf(deps.Out, "%s: ", label)
	scanner := bufio.NewScanner(deps.In)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func runLogin(ctx context.Context, deps *Deps, args []string) error {
	if len(args) != 1 {
		return usageError(deps, "login <email>")
	}

	input := credentialsInput{Email: args[0], Password: prompt(deps, "password")}
	if err := checkInput(input); err != nil {
		return surface(deps, err)
	}

	if err := deps.Sessions.Login(ctx, input.Email, input.Password); err != nil {
		return surface(deps, err)
	}

	customer := deps.Sessions.Store().Customer()
	notify.Success(deps.Notices, "welcome back, "+customer.DisplayName)
	return nil
}

func runSignup(ctx context.Context, deps *Deps, args []string) error {
	if len(args) != 1 {
		return usageError(deps, "signup <email>")
	}

	input := credentialsInput{Email: args[0], Password: prompt(deps, "password")}
	if err := checkInput(input); err != nil {
		return surface(deps, err)
	}

	customer := model.CustomerInput{
		Email:     input.Email,
		Password:  input.Password,
		FirstName: prompt(deps, "first name (optional)"),
		LastName:  prompt(deps, "last name (optional)"),
	}

	if err := deps.Sessions.Signup(ctx, customer); err != nil {
		return surface(deps, err)
	}

	notify.Success(deps.Notices, "account created, you are now logged in")
	return nil
}

func runLogout(ctx context.Context, deps *Deps, args []string) error {
	deps.Sessions.Logout(ctx)
	notify.Success(deps.Notices, "logged out")
	return nil
}

func runMe(ctx context.Context, deps *Deps, args []string) error {
	store := deps.Sessions.Store()
	customer := store.Customer()
	// A credential can outlive its identity (fail-open restoration keeps the
	// token when the backend is unreachable), so both are required here.
	if !store.IsLoggedIn() || customer == nil {
		return surface(deps, model.ErrNotLoggedIn)
	}

	fmt.Fprintf(deps.Out, "%s <%s>\n", customer.DisplayName, customer.Email)
	if customer.Phone != "" {
		fmt.Fprintf(deps.Out, "phone: %s\n", customer.Phone)
	}

	token := store.AccessToken()
	fmt.Fprintf(deps.Out, "session valid until %s\n", token.ExpiresAt.Local().Format("2006-01-02 15:04"))
	return nil
}

func runRecover(ctx context.Context, deps *Deps, args []string) error {
	if len(args) != 1 {
		return usageError(deps, "recover <email>")
	}

	if err := checkInput(emailInput{Email: args[0]}); err != nil {
		return surface(deps, err)
	}

	if err := deps.Sessions.Recover(ctx, args[0]); err != nil {
		return surface(deps, err)
	}

	notify.Success(deps.Notices, "if the address exists, a recovery email is on its way")
	return nil
}

func runUpdateProfile(ctx context.Context, deps *Deps, args []string) error {
	fs := flag.NewFlagSet("update-profile", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	firstName := fs.String("first-name", "", "new first name")
	lastName := fs.String("last-name", "", "new last name")
	phone := fs.String("phone", "", "new phone number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := model.CustomerInput{FirstName: *firstName, LastName: *lastName, Phone: *phone}
	if input == (model.CustomerInput{}) {
		return usageError(deps, "update-profile [--first-name ...] [--last-name ...] [--phone ...]")
	}

	if err := deps.Sessions.UpdateProfile(ctx, input); err != nil {
		return surface(deps, err)
	}

	notify.Success(deps.Notices, "profile updated")
	return nil
}

// runAccount drives the auth panel the way the header button does in the
// original storefront: opening it resolves to the account menu for a known
// customer and to the requested (or login) pane otherwise.
func runAccount(ctx context.Context, deps *Deps, args []string) error {
	store := deps.Sessions.Store()

	requested := model.AuthViewLogin
	if len(args) == 1 {
		requested = model.AuthView(args[0])
	}

	store.OpenAuthPanel(requested)
	defer store.CloseAuthPanel()

	view := store.AuthView()
	customer := store.Customer()
	if view == model.AuthViewMenu && customer == nil {
		// The menu pane can be requested directly; without an identity there
		// is no account to show.
		view = model.AuthViewLogin
	}

	switch view {
	case model.AuthViewMenu:
		fmt.Fprintf(deps.Out, "signed in as %s\n", customer.Email)
		fmt.Fprintln(deps.Out, "  me              show profile")
		fmt.Fprintln(deps.Out, "  update-profile  edit profile")
		fmt.Fprintln(deps.Out, "  addresses       manage addresses")
		fmt.Fprintln(deps.Out, "  logout          sign out")
	case model.AuthViewSignup:
		fmt.Fprintln(deps.Out, "create an account: storefront signup <email>")
	case model.AuthViewForgotPassword:
		fmt.Fprintln(deps.Out, "reset your password: storefront recover <email>")
	default:
		fmt.Fprintln(deps.Out, "log in: storefront login <email>")
		fmt.Fprintln(deps.Out, "no account yet? storefront account signup")
		fmt.Fprintln(deps.Out, "forgot your password? storefront account forgot-password")
	}

	return nil
}

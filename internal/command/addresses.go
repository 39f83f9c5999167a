package command

import (
	"context"
	"flag"
	"fmt"

	"atelier-storefront/internal/model"
	"atelier-storefront/internal/notify"
	"atelier-storefront/pkg/apierror"
)

func runAddresses(ctx context.Context, deps *Deps, args []string) error {
	store := deps.Sessions.Store()
	if !store.IsLoggedIn() {
		return surface(deps, model.ErrNotLoggedIn)
	}
	token := store.AccessToken().Token

	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		return runAddressList(ctx, deps, token)
	case "add":
		return runAddressAdd(ctx, deps, token, args[1:])
	case "update":
		return runAddressUpdate(ctx, deps, token, args[1:])
	case "remove":
		return runAddressRemove(ctx, deps, token, args[1:])
	default:
		return usageError(deps, "addresses <list|add|update|remove> ...")
	}
}

func runAddressList(ctx context.Context, deps *Deps, token string) error {
	addresses, err := deps.Commerce.CustomerAddresses(ctx, token)
	if err != nil {
		return surface(deps, err)
	}

	if len(addresses) == 0 {
		fmt.Fprintln(deps.Out, "no saved addresses")
		return nil
	}

	for _, addr := range addresses {
		fmt.Fprintf(deps.Out, "%s\n  %s", addr.ID, addr.Address1)
		if addr.Address2 != "" {
			fmt.Fprintf(deps.Out, ", %s", addr.Address2)
		}
		fmt.Fprintf(deps.Out, "\n  %s %s, %s\n", addr.Zip, addr.City, addr.Country)
	}

	return nil
}

func addressFlags(name string, args []string, out *model.AddressInput) (*flag.FlagSet, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&out.Address1, "address1", "", "street address")
	fs.StringVar(&out.Address2, "address2", "", "apartment, suite, etc.")
	fs.StringVar(&out.City, "city", "", "city")
	fs.StringVar(&out.Province, "province", "", "state or province")
	fs.StringVar(&out.Zip, "zip", "", "postal code")
	fs.StringVar(&out.Country, "country", "", "country")
	fs.StringVar(&out.Phone, "phone", "", "phone number")
	return fs, fs.Parse(args)
}

func runAddressAdd(ctx context.Context, deps *Deps, token string, args []string) error {
	var input model.AddressInput
	if _, err := addressFlags("addresses add", args, &input); err != nil {
		return err
	}

	switch {
	case input.Address1 == "":
		return surface(deps, apierror.NewField("address1", "is required"))
	case input.City == "":
		return surface(deps, apierror.NewField("city", "is required"))
	case input.Country == "":
		return surface(deps, apierror.NewField("country", "is required"))
	}

	if _, err := deps.Commerce.CustomerAddressCreate(ctx, token, input); err != nil {
		return surface(deps, err)
	}

	notify.Success(deps.Notices, "address saved")
	return nil
}

func runAddressUpdate(ctx context.Context, deps *Deps, token string, args []string) error {
	if len(args) < 1 {
		return usageError(deps, "addresses update <id> [flags]")
	}

	var input model.AddressInput
	if _, err := addressFlags("addresses update", args[1:], &input); err != nil {
		return err
	}

	if _, err := deps.Commerce.CustomerAddressUpdate(ctx, token, args[0], input); err != nil {
		return surface(deps, err)
	}

	notify.Success(deps.Notices, "address updated")
	return nil
}

func runAddressRemove(ctx context.Context, deps *Deps, token string, args []string) error {
	if len(args) != 1 {
		return usageError(deps, "addresses remove <id>")
	}

	if err := deps.Commerce.CustomerAddressDelete(ctx, token, args[0]); err != nil {
		return surface(deps, err)
	}

	notify.Success(deps.Notices, "address removed")
	return nil
}

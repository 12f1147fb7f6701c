package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactkeeper/internal/client/models"
)

var errUsage = errors.New("usage")

func (a *App) List(ctx context.Context, _ []string) error {
	list, err := a.client.ListContacts(ctx, a.session.Token())
	if err != nil {
		return a.handleAuthError(ctx, err)
	}
	if len(list) == 0 {
		printlnFn(mutedStyle.Render("No contacts yet, use 'add'"))
		return nil
	}
	printlnFn(renderContacts(list))
	return nil
}

func (a *App) Add(ctx context.Context, _ []string) error {
	in, err := a.readContactFields("")
	if err != nil {
		return err
	}

	c, err := a.client.CreateContact(ctx, a.session.Token(), in)
	if err != nil {
		return a.handleAuthError(ctx, err)
	}
	printlnFn(successStyle.Render("Added " + c.Name + " (" + c.ID + ")"))
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: edit <id>", errUsage)
	}

	in, err := a.readContactFields(" (empty keeps current)")
	if err != nil {
		return err
	}

	c, err := a.client.UpdateContact(ctx, a.session.Token(), args[0], in)
	if err != nil {
		return a.handleAuthError(ctx, err)
	}
	printlnFn(successStyle.Render("Updated " + c.Name))
	printlnFn(renderContacts([]models.Contact{*c}))
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: delete <id>", errUsage)
	}

	msg, err := a.client.DeleteContact(ctx, a.session.Token(), args[0])
	if err != nil {
		return a.handleAuthError(ctx, err)
	}
	printlnFn(successStyle.Render(msg))
	return nil
}

func (a *App) readContactFields(hint string) (models.ContactFields, error) {
	var in models.ContactFields
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Name", &in.Name},
		{"Email", &in.Email},
		{"Phone", &in.Phone},
		{"Type (personal/professional)", &in.Type},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt+hint, a.out)
		if err != nil {
			return in, err
		}
		*f.dst = v
	}
	return in, nil
}

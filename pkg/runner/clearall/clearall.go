// Package clearall removes every recorded mood after confirmation.
package clearall

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"tableflip.dev/moodbubbles/pkg/app"
	"tableflip.dev/moodbubbles/pkg/printers"
)

type Clear struct {
	Service *app.Service
	// Yes skips the confirmation prompt.
	Yes bool
	// Confirm asks the user; a promptui confirmation when nil.
	Confirm func(label string) (bool, error)
	Printer *printers.PrettyPrint
}

func (c *Clear) Do(ctx context.Context) error {
	if c.Service == nil || c.Service.Records == nil {
		return errors.New("can not clear, no journal")
	}
	pp := c.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	n := len(c.Service.Records.Load(ctx))
	if n == 0 {
		pp.Title("Nothing to clear")
		return nil
	}

	if !c.Yes {
		confirm := c.Confirm
		if confirm == nil {
			confirm = promptConfirm
		}
		ok, err := confirm(fmt.Sprintf("Remove all %d recorded moods", n))
		if err != nil {
			return err
		}
		if !ok {
			pp.Title("Kept everything")
			return nil
		}
	}

	if err := c.Service.Clear(ctx); err != nil {
		return err
	}
	pp.TitleWithCount("Cleared", n)
	return nil
}

func promptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	switch {
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}

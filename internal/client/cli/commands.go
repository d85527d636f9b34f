package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/savebank/internal/client/models"
	"github.com/dmitrijs2005/savebank/internal/common"
)

// Save stores text. Empty text prompts for a multi-line string first; if that
// is empty too, ErrEmptySaveString is returned.
func (a *App) Save(ctx context.Context, text string) error {
	if text == "" {
		var err error
		text, err = GetMultiline(a.reader, "Paste the save file string:", a.out)
		if err != nil {
			a.logger.Error(ctx, "read failed", "error", err.Error())
			return err
		}
	}
	a.field.value = text
	if ev := a.save.Submit(ctx, a.field, a.status); ev.Kind == models.StatusValidationFailed {
		a.logger.Debug(ctx, "save rejected", "error", common.ErrEmptySaveString.Error())
		return common.ErrEmptySaveString
	}
	return nil
}

// List renders every save and prints the numbered listing.
func (a *App) List(ctx context.Context) error {
	if err := a.render.RenderAll(ctx, a.status, a.list); err != nil {
		return err
	}
	a.list.Print(a.out)
	return nil
}

// Copy activates item n of the last listing.
func (a *App) Copy(ctx context.Context, n int) error {
	item, ok := a.list.Get(n)
	if !ok {
		err := fmt.Errorf("no save number %d, run list first", n)
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	return item.Activate(ctx)
}

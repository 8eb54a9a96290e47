package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/lflopes1997/Projeto-ControleEstoque/internal/models"
)

// App ties the state snapshot to the API. Each operation replaces
// a.State with a new snapshot; nothing else mutates it.
type App struct {
	api   *APIClient
	State State
}

func NewApp(api *APIClient) *App {
	return &App{api: api, State: NewState()}
}

// Refresh reloads the item list from the server. The loading flag is
// cleared on every outcome. On failure the previous items are kept.
func (a *App) Refresh(ctx context.Context) {
	s := a.State
	s.Loading = true
	s.ErrorMessage = ""
	a.State = s

	defer func() {
		s := a.State
		s.Loading = false
		a.State = s
	}()

	items, err := a.api.List(ctx)
	s = a.State
	if err != nil {
		s.ErrorMessage = loadError(err)
		a.State = s
		return
	}
	if items == nil {
		items = []models.Product{}
	}
	s.Items = items
	a.State = s
}

func (a *App) OpenCreate()                { a.State = a.State.OpenCreate() }
func (a *App) OpenEdit(p models.Product)  { a.State = a.State.OpenEdit(p) }
func (a *App) CloseModal()                { a.State = a.State.CloseModal() }
func (a *App) SetSearch(term string)      { a.State = a.State.WithSearch(term) }
func (a *App) ToggleSort(field SortField) { a.State = a.State.ToggleSort(field) }

func (a *App) SetForm(draft FormDraft) {
	s := a.State
	s.Form = draft
	a.State = s
}

// Submit validates the form draft and issues the create or update. Field
// errors block the call entirely and are returned for the front end to
// show as a blocking notice.
func (a *App) Submit(ctx context.Context) []FieldError {
	payload, fieldErrs := a.State.Form.Parse()
	if len(fieldErrs) > 0 {
		return fieldErrs
	}

	var err error
	if a.State.Editing != nil {
		_, err = a.api.Update(ctx, a.State.Editing.ID, payload)
	} else {
		_, err = a.api.Create(ctx, payload)
	}

	if err != nil {
		s := a.State
		s.ErrorMessage = saveError(err)
		a.State = s
		return nil
	}

	a.Refresh(ctx)
	s := a.State
	s.ModalOpen = false
	s.Editing = nil
	s.Form = emptyForm()
	a.State = s
	return nil
}

// Delete asks for confirmation naming the product, then issues the delete
// and refreshes. A declined confirmation is a no-op.
func (a *App) Delete(ctx context.Context, p models.Product, confirm func(prompt string) bool) {
	if !confirm(fmt.Sprintf("Excluir “%s”?", p.Name)) {
		return
	}

	if err := a.api.Delete(ctx, p.ID); err != nil {
		s := a.State
		s.ErrorMessage = deleteError(err)
		a.State = s
		return
	}
	a.Refresh(ctx)
}

func loadError(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Falha ao carregar: %d", apiErr.Status)
	}
	return fmt.Sprintf("Falha ao carregar: %v", err)
}

func saveError(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Falha ao salvar (%d): %s", apiErr.Status, apiErr.Detail)
	}
	return fmt.Sprintf("Falha ao salvar: %v", err)
}

func deleteError(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Falha ao excluir: %d", apiErr.Status)
	}
	return fmt.Sprintf("Falha ao excluir: %v", err)
}

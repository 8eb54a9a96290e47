package client

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lflopes1997/Projeto-ControleEstoque/internal/models"
)

// SortField names a sortable column, matching the wire field names.
type SortField string

const (
	SortByID       SortField = "id"
	SortByName     SortField = "nome"
	SortByQuantity SortField = "quantidade"
	SortByPrice    SortField = "preco"
)

type SortSpec struct {
	Field SortField
	Desc  bool
}

// FormDraft holds the form fields as typed by the user, still as text.
type FormDraft struct {
	Name     string
	Quantity string
	Price    string
}

// State is one immutable snapshot of the client view. Transitions return a
// new snapshot instead of mutating in place, so there is never a
// half-updated view to render.
type State struct {
	Items        []models.Product
	SearchTerm   string
	Sort         SortSpec
	Loading      bool
	ErrorMessage string
	ModalOpen    bool
	Editing      *models.Product
	Form         FormDraft
}

func NewState() State {
	return State{
		Sort:    SortSpec{Field: SortByID, Desc: true},
		Loading: true,
		Form:    emptyForm(),
	}
}

func emptyForm() FormDraft {
	return FormDraft{Quantity: "0", Price: "0"}
}

func draftFrom(p models.Product) FormDraft {
	return FormDraft{
		Name:     p.Name,
		Quantity: strconv.Itoa(p.Quantity),
		Price:    strconv.FormatFloat(p.Price, 'f', -1, 64),
	}
}

func (s State) WithSearch(term string) State {
	s.SearchTerm = term
	return s
}

// ToggleSort activates the column; a second click on the active column
// flips the direction, a new column starts ascending.
func (s State) ToggleSort(field SortField) State {
	if s.Sort.Field == field {
		s.Sort.Desc = !s.Sort.Desc
	} else {
		s.Sort = SortSpec{Field: field}
	}
	return s
}

func (s State) OpenCreate() State {
	s.Form = emptyForm()
	s.Editing = nil
	s.ModalOpen = true
	return s
}

func (s State) OpenEdit(p models.Product) State {
	s.Editing = &p
	s.Form = draftFrom(p)
	s.ModalOpen = true
	return s
}

func (s State) CloseModal() State {
	s.ModalOpen = false
	return s
}

// Visible is the derived view: the items filtered by the search term and
// ordered by the sort spec. The sort is stable, so ties keep the order the
// server returned.
func (s State) Visible() []models.Product {
	term := strings.ToLower(strings.TrimSpace(s.SearchTerm))

	list := make([]models.Product, 0, len(s.Items))
	for _, it := range s.Items {
		if term == "" || strings.Contains(strings.ToLower(it.Name), term) {
			list = append(list, it)
		}
	}

	sort.SliceStable(list, func(i, j int) bool {
		c := compare(list[i], list[j], s.Sort.Field)
		if s.Sort.Desc {
			return c > 0
		}
		return c < 0
	})
	return list
}

func compare(a, b models.Product, field SortField) int {
	switch field {
	case SortByName:
		return strings.Compare(a.Name, b.Name)
	case SortByQuantity:
		return a.Quantity - b.Quantity
	case SortByPrice:
		switch {
		case a.Price < b.Price:
			return -1
		case a.Price > b.Price:
			return 1
		}
		return 0
	default:
		return a.ID - b.ID
	}
}

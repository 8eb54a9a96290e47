package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lflopes1997/Projeto-ControleEstoque/internal/client"
	"github.com/lflopes1997/Projeto-ControleEstoque/internal/models"
)

const usage = `Comandos:
  list                 lista os produtos (visão filtrada/ordenada)
  search <termo>       filtra por nome (vazio limpa o filtro)
  sort <coluna>        ordena por id|nome|quantidade|preco (repetir inverte)
  add                  cria um produto
  edit <id>            edita um produto
  del <id>             exclui um produto
  refresh              recarrega a lista do servidor
  help                 mostra esta ajuda
  quit                 sai`

func main() {
	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	app := client.NewApp(client.NewAPIClient(baseURL))
	ctx := context.Background()
	in := bufio.NewScanner(os.Stdin)

	app.Refresh(ctx)
	render(app)
	fmt.Println(usage)

	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(in.Text()), " ")

		switch cmd {
		case "", "list":
			render(app)
		case "search":
			app.SetSearch(arg)
			render(app)
		case "sort":
			field, ok := sortField(arg)
			if !ok {
				fmt.Println("coluna desconhecida:", arg)
				continue
			}
			app.ToggleSort(field)
			render(app)
		case "add":
			app.OpenCreate()
			submitForm(ctx, app, in)
			render(app)
		case "edit":
			p, ok := findByID(app, arg)
			if !ok {
				continue
			}
			app.OpenEdit(p)
			submitForm(ctx, app, in)
			render(app)
		case "del":
			p, ok := findByID(app, arg)
			if !ok {
				continue
			}
			app.Delete(ctx, p, func(prompt string) bool {
				fmt.Printf("%s (s/n) ", prompt)
				if !in.Scan() {
					return false
				}
				answer := strings.ToLower(strings.TrimSpace(in.Text()))
				return answer == "s" || answer == "sim"
			})
			render(app)
		case "refresh":
			app.Refresh(ctx)
			render(app)
		case "help":
			fmt.Println(usage)
		case "quit", "exit":
			return
		default:
			fmt.Println("comando desconhecido:", cmd)
		}
	}
}

func sortField(name string) (client.SortField, bool) {
	switch name {
	case "id":
		return client.SortByID, true
	case "nome":
		return client.SortByName, true
	case "quantidade":
		return client.SortByQuantity, true
	case "preco":
		return client.SortByPrice, true
	}
	return "", false
}

func findByID(app *client.App, arg string) (models.Product, bool) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Println("id inválido:", arg)
		return models.Product{}, false
	}
	for _, p := range app.State.Items {
		if p.ID == id {
			return p, true
		}
	}
	fmt.Println("produto não encontrado:", id)
	return models.Product{}, false
}

// submitForm prompts for each field, pre-filling from the current draft,
// and keeps prompting while the draft fails validation.
func submitForm(ctx context.Context, app *client.App, in *bufio.Scanner) {
	for app.State.ModalOpen {
		draft := app.State.Form
		draft.Name = prompt(in, "Nome", draft.Name)
		draft.Quantity = prompt(in, "Quantidade", draft.Quantity)
		draft.Price = prompt(in, "Preço", draft.Price)
		app.SetForm(draft)

		fieldErrs := app.Submit(ctx)
		if len(fieldErrs) == 0 {
			if app.State.ErrorMessage != "" {
				fmt.Println("ERRO:", app.State.ErrorMessage)
				app.CloseModal()
			}
			return
		}
		for _, fe := range fieldErrs {
			fmt.Println(fe.Description)
		}
	}
}

func prompt(in *bufio.Scanner, label, current string) string {
	fmt.Printf("%s [%s]: ", label, current)
	if !in.Scan() {
		return current
	}
	if text := strings.TrimSpace(in.Text()); text != "" {
		return text
	}
	return current
}

func render(app *client.App) {
	s := app.State
	if s.ErrorMessage != "" {
		fmt.Println("ERRO:", s.ErrorMessage)
	}

	items := s.Visible()
	if len(items) == 0 {
		fmt.Println("Nenhum produto")
		return
	}

	dir := "▲"
	if s.Sort.Desc {
		dir = "▼"
	}
	fmt.Printf("%-5s %-30s %-10s %-10s (ordenado por %s %s)\n", "#", "Nome", "Qtd.", "Preço", s.Sort.Field, dir)
	for _, it := range items {
		fmt.Printf("%-5d %-30s %-10d R$ %.2f\n", it.ID, it.Name, it.Quantity, it.Price)
	}
}

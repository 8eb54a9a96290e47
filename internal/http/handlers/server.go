package handlers

import (
	repo "github.com/lflopes1997/Projeto-ControleEstoque/internal/repo"
)

var productRepo repo.ProductRepository

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

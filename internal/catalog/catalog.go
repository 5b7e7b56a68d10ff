// Package catalog provides the read-only product catalog. Products are
// immutable reference data created at startup and never mutated.
package catalog

import (
	"github.com/j0aoarthur/sistema-delivery/internal/entity"
)

// CategoryInfo describes one menu category.
type CategoryInfo struct {
	Name        entity.Category `json:"name"`
	Description string          `json:"description"`
}

// Catalog holds the static product list and answers pure queries over it.
type Catalog struct {
	products []entity.Product
}

// New creates a catalog seeded with the store's products.
func New() *Catalog {
	return &Catalog{products: seedProducts()}
}

// All returns every product in seed order.
func (c *Catalog) All() []entity.Product {
	out := make([]entity.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByCategory filters the product list by category, preserving seed order.
func (c *Catalog) ByCategory(cat entity.Category) []entity.Product {
	var out []entity.Product
	for _, p := range c.products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// ByID looks a product up by its identifier.
func (c *Catalog) ByID(id string) (entity.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// Categories lists every category with its menu description.
func (c *Catalog) Categories() []CategoryInfo {
	return []CategoryInfo{
		{Name: entity.CategoryBebidas, Description: "Refrigerantes, sucos e águas"},
		{Name: entity.CategoryLanches, Description: "Hambúrgueres, sanduíches e petiscos"},
		{Name: entity.CategorySobremesas, Description: "Doces, bolos e sorvetes"},
		{Name: entity.CategoryPratosPrincipais, Description: "Refeições completas"},
	}
}

func seedProducts() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Coca-Cola 350ml", Description: "Refrigerante tradicional gelado", Price: 4.50, ImageURL: "/coca-cola.png", Category: entity.CategoryBebidas, Available: true},
		{ID: "2", Name: "Suco de Laranja Natural", Description: "Suco natural da fruta, sem conservantes", Price: 6.00, ImageURL: "/suco-laranja.jpg", Category: entity.CategoryBebidas, Available: true},
		{ID: "3", Name: "Água Mineral 500ml", Description: "Água mineral natural sem gás", Price: 2.50, ImageURL: "/agua.jpg", Category: entity.CategoryBebidas, Available: true},
		{ID: "4", Name: "Café Expresso", Description: "Café expresso tradicional", Price: 3.00, ImageURL: "/espresso.png", Category: entity.CategoryBebidas, Available: false},
		{ID: "5", Name: "Hambúrguer Clássico", Description: "Pão, carne, queijo, alface e tomate", Price: 18.00, ImageURL: "/hamburger.jpg", Category: entity.CategoryLanches, Available: true},
		{ID: "6", Name: "Sanduíche Natural", Description: "Pão integral com peito de peru e salada", Price: 12.00, ImageURL: "/sanduiche.jpg", Category: entity.CategoryLanches, Available: true},
		{ID: "7", Name: "Batata Frita", Description: "Porção de batata frita crocante", Price: 8.00, ImageURL: "/batata.png", Category: entity.CategoryLanches, Available: true},
		{ID: "8", Name: "Coxinha de Frango", Description: "Coxinha tradicional com frango desfiado", Price: 5.00, ImageURL: "/coxinha.jpg", Category: entity.CategoryLanches, Available: true},
		{ID: "9", Name: "Pudim de Leite", Description: "Pudim caseiro com calda de caramelo", Price: 7.00, ImageURL: "/pudim.jpg", Category: entity.CategorySobremesas, Available: true},
		{ID: "10", Name: "Brigadeiro", Description: "Brigadeiro tradicional com granulado", Price: 3.00, ImageURL: "/brigadeiro.jpg", Category: entity.CategorySobremesas, Available: true},
		{ID: "11", Name: "Sorvete de Chocolate", Description: "Sorvete cremoso sabor chocolate", Price: 9.00, ImageURL: "/sorvete.png", Category: entity.CategorySobremesas, Available: true},
		{ID: "12", Name: "Prato Feito Completo", Description: "Arroz, feijão, carne, salada e batata frita", Price: 22.00, ImageURL: "/prato-feito.jpg", Category: entity.CategoryPratosPrincipais, Available: true},
		{ID: "13", Name: "Lasanha à Bolonhesa", Description: "Lasanha tradicional com molho bolonhesa", Price: 25.00, ImageURL: "/lasanha.png", Category: entity.CategoryPratosPrincipais, Available: true},
		{ID: "14", Name: "Frango Grelhado", Description: "Peito de frango grelhado com legumes", Price: 20.00, ImageURL: "/frango-grelhado.png", Category: entity.CategoryPratosPrincipais, Available: true},
	}
}

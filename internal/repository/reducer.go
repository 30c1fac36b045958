package repository

import (
	"errors"
	"fmt"

	"github.com/ironman07017-lang/vibeosys-inventory/internal/domain"
)

var ErrUnknownAction = errors.New("unknown inventory action")

type ActionType string

const (
	ActionAddProduct    ActionType = "ADD_PRODUCT"
	ActionUpdateProduct ActionType = "UPDATE_PRODUCT"
	ActionDeleteProduct ActionType = "DELETE_PRODUCT"
)

type Action struct {
	Type      ActionType
	Product   domain.Product // add, update
	ProductID string         // delete
}

// AddProductAction expects product.ID to be assigned already.
func AddProductAction(product domain.Product) Action {
	return Action{Type: ActionAddProduct, Product: product}
}

func UpdateProductAction(product domain.Product) Action {
	return Action{Type: ActionUpdateProduct, Product: product}
}

func DeleteProductAction(id string) Action {
	return Action{Type: ActionDeleteProduct, ProductID: id}
}

type InventoryState struct {
	Products []domain.Product
}

func (s InventoryState) indexOf(id string) int {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return i
		}
	}
	return -1
}

// Reduce applies action to state and returns the next state. It never
// modifies state; on error the returned state is state itself.
func Reduce(state InventoryState, action Action) (InventoryState, error) {
	switch action.Type {
	case ActionAddProduct:
		p := action.Product
		if p.ID == "" {
			return state, domain.ErrEmptyProductID
		}
		if state.indexOf(p.ID) >= 0 {
			return state, fmt.Errorf("%w: %s", domain.ErrDuplicateProductID, p.ID)
		}
		next := make([]domain.Product, 0, len(state.Products)+1)
		next = append(next, state.Products...)
		next = append(next, p.Clone())
		return InventoryState{Products: next}, nil

	case ActionUpdateProduct:
		p := action.Product
		i := state.indexOf(p.ID)
		if i < 0 {
			return state, fmt.Errorf("%w: id %s", domain.ErrProductNotFound, p.ID)
		}
		next := append([]domain.Product(nil), state.Products...)
		next[i] = p.Clone()
		return InventoryState{Products: next}, nil

	case ActionDeleteProduct:
		i := state.indexOf(action.ProductID)
		if i < 0 {
			return state, fmt.Errorf("%w: id %s", domain.ErrProductNotFound, action.ProductID)
		}
		next := make([]domain.Product, 0, len(state.Products)-1)
		next = append(next, state.Products[:i]...)
		next = append(next, state.Products[i+1:]...)
		return InventoryState{Products: next}, nil

	default:
		return state, fmt.Errorf("%w: %q", ErrUnknownAction, action.Type)
	}
}

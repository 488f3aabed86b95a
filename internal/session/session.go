// Package session holds the per-login state the original SPA kept in its
// top-level component: the current view, the logged-in user, the cart and
// the selected product. A Session is created at login time by the caller
// and dropped at logout; nothing in it survives either.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/KristellVM/tienda-online/internal/client"
	"github.com/KristellVM/tienda-online/internal/domain"

	"golang.org/x/sync/errgroup"
)

type View string

const (
	ViewLogin             View = "login"
	ViewCatalog           View = "catalogo"
	ViewDetail            View = "detalles"
	ViewCart              View = "carrito"
	ViewAdmin             View = "admin"
	ViewUserManagement    View = "gestionUsuarios"
	ViewProductManagement View = "gestionProductos"
	ViewOrderManagement   View = "gestionPedidos"
)

// parent is the back transition of every screen that has one.
var parent = map[View]View{
	ViewDetail:            ViewCatalog,
	ViewCart:              ViewCatalog,
	ViewUserManagement:    ViewAdmin,
	ViewProductManagement: ViewAdmin,
	ViewOrderManagement:   ViewAdmin,
}

var (
	ErrInvalidCredentials = errors.New("contraseña o nombre de usuario incorrecto")
	ErrInvalidRole        = errors.New("tipo de usuario no válido")
)

// StoreClient is the slice of the REST client a session needs.
type StoreClient interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	Checkout(ctx context.Context, cart domain.Cart) (client.CheckoutResult, error)
}

var _ StoreClient = (*client.Client)(nil)

type Session struct {
	store StoreClient

	view     View
	user     *domain.User
	cart     domain.Cart
	selected *domain.Product

	users    []domain.User
	products []domain.Product
	orders   []domain.Order
}

func New(store StoreClient) *Session {
	return &Session{store: store, view: ViewLogin}
}

// Bootstrap loads users, products and orders in parallel, mirroring the
// original client's initial load.
func (s *Session) Bootstrap(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := s.store.ListUsers(ctx)
		if err == nil {
			s.users = users
		}
		return err
	})
	g.Go(func() error {
		products, err := s.store.ListProducts(ctx)
		if err == nil {
			s.products = products
		}
		return err
	})
	g.Go(func() error {
		orders, err := s.store.ListOrders(ctx)
		if err == nil {
			s.orders = orders
		}
		return err
	})
	return g.Wait()
}

// Login matches the credentials against the loaded user set by equality.
// A matching user whose role is neither admin nor cliente is rejected.
func (s *Session) Login(username, password string) (*domain.User, error) {
	for i := range s.users {
		u := s.users[i]
		if u.Username != username || u.Password != password {
			continue
		}
		if !u.Role.Valid() {
			return nil, ErrInvalidRole
		}
		s.user = &u
		if u.Role == domain.RoleAdmin {
			s.view = ViewAdmin
		} else {
			s.view = ViewCatalog
		}
		return &u, nil
	}
	return nil, ErrInvalidCredentials
}

// Logout clears identity and cart unconditionally and returns to the login
// screen. The confirmation prompt is the caller's.
func (s *Session) Logout() {
	s.user = nil
	s.cart = nil
	s.selected = nil
	s.view = ViewLogin
}

func (s *Session) AddToCart(p domain.Product) {
	s.cart = append(s.cart, p.Snapshot())
}

func (s *Session) RemoveFromCart(index int) error {
	if index < 0 || index >= len(s.cart) {
		return fmt.Errorf("carrito: índice %d fuera de rango", index)
	}
	s.cart = append(s.cart[:index:index], s.cart[index+1:]...)
	return nil
}

// Checkout sends the cart to the store. On success the cart is cleared and
// the product and order views are refreshed from the store; on failure the
// cart is untouched so the user can retry.
func (s *Session) Checkout(ctx context.Context) (client.CheckoutResult, error) {
	if len(s.cart) == 0 {
		return client.CheckoutResult{}, errors.New("el carrito está vacío")
	}

	result, err := s.store.Checkout(ctx, s.cart)
	if err != nil {
		return client.CheckoutResult{}, err
	}

	s.cart = nil
	if products, err := s.store.ListProducts(ctx); err == nil {
		s.products = products
	}
	if orders, err := s.store.ListOrders(ctx); err == nil {
		s.orders = orders
	}
	s.view = ViewCatalog
	return result, nil
}

func (s *Session) SelectProduct(p domain.Product) {
	s.selected = &p
	s.view = ViewDetail
}

func (s *Session) GoTo(view View) {
	s.view = view
}

// Back returns to the current screen's parent; screens without one stay
// put.
func (s *Session) Back() {
	if p, ok := parent[s.view]; ok {
		s.view = p
		if s.view != ViewDetail {
			s.selected = nil
		}
	}
}

func (s *Session) RefreshUsers(ctx context.Context) error {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return err
	}
	s.users = users
	return nil
}

func (s *Session) RefreshProducts(ctx context.Context) error {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return err
	}
	s.products = products
	return nil
}

func (s *Session) RefreshOrders(ctx context.Context) error {
	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		return err
	}
	s.orders = orders
	return nil
}

func (s *Session) View() View                 { return s.view }
func (s *Session) User() *domain.User         { return s.user }
func (s *Session) Cart() domain.Cart          { return s.cart }
func (s *Session) Selected() *domain.Product  { return s.selected }
func (s *Session) Users() []domain.User       { return s.users }
func (s *Session) Products() []domain.Product { return s.products }
func (s *Session) Orders() []domain.Order     { return s.orders }

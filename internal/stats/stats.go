package stats

import (
	"context"
	"log"
	"sync"

	"dairy_admin/internal/entity"
	"dairy_admin/internal/gateway"
	"dairy_admin/internal/store"
)

// Stats is the full dashboard counter set. Every field is always
// populated: live counts where a store is registered, the remote summary
// where reachable, fixed fallbacks otherwise. Never partially filled.
type Stats struct {
	TotalUsers        int            `json:"totalUsers"`
	ActiveUsers       int            `json:"activeUsers"`
	InactiveUsers     int            `json:"inactiveUsers"`
	TotalAdmins       int            `json:"totalAdmins"`
	TotalCategories   int            `json:"totalCategories"`
	TotalProducts     int            `json:"totalProducts"`
	TotalOrders       int            `json:"totalOrders"`
	OrdersByStatus    map[string]int `json:"ordersByStatus"`
	TotalDeliveryBoys int            `json:"totalDeliveryBoys"`
	TotalStores       int            `json:"totalStores"`
	TotalStoreItems   int            `json:"totalStoreItems"`
	TotalPayments     float64        `json:"totalPayments"`
	TotalStoreRevenue float64        `json:"totalStorePayments"`
	ProductsByCategory map[string]int `json:"productsByCategory"`
}

// Fallback constants for entities without a registered store, matching
// the dashboard's historical placeholder numbers.
const (
	fallbackProducts     = 15
	fallbackOrders       = 25
	fallbackDeliveryBoys = 8
	fallbackStoreItems   = 12
	fallbackCategories   = 6
)

// Service recomputes the dashboard counters on demand by reading across
// the registered entity stores, overlaid with a best-effort remote
// summary. Refresh is invoked explicitly by the panels' change hook.
type Service struct {
	mu     sync.Mutex
	stores map[string]store.Store
	remote *gateway.Client // optional
	last   Stats
}

func NewService(remote *gateway.Client) *Service {
	return &Service{stores: make(map[string]store.Store), remote: remote}
}

// Register wires one entity store into local counting. Entities never
// registered keep their fallback values.
func (s *Service) Register(name string, st store.Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stores[name] = st
}

// Last returns the most recently computed stats without recomputing.
func (s *Service) Last() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Refresh re-reads every registered store and republishes the counters.
// A remote failure falls back entirely to local and fixed values.
func (s *Service) Refresh(ctx context.Context) Stats {
	out := Stats{
		TotalProducts:      fallbackProducts,
		TotalOrders:        fallbackOrders,
		TotalDeliveryBoys:  fallbackDeliveryBoys,
		TotalStoreItems:    fallbackStoreItems,
		TotalCategories:    fallbackCategories,
		OrdersByStatus:     make(map[string]int),
		ProductsByCategory: make(map[string]int),
	}

	if s.remote != nil {
		remote, err := s.remote.DashboardStats(ctx)
		if err != nil {
			log.Printf("stats: remote summary unavailable, using local counts: %v", err)
		} else {
			if remote.TotalUsers > 0 {
				out.TotalUsers = remote.TotalUsers
			}
			if remote.TotalOrders > 0 {
				out.TotalOrders = remote.TotalOrders
			}
			out.TotalAdmins = remote.TotalAdmins
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.stores[entity.Users.Name]; ok {
		recs := st.List()
		out.TotalUsers = len(recs)
		out.ActiveUsers, out.InactiveUsers, out.TotalAdmins = userSplit(recs)
	}
	if st, ok := s.stores[entity.Products.Name]; ok {
		recs := st.List()
		out.TotalProducts = len(recs)
		for _, r := range recs {
			if cat := r.String("category"); cat != "" {
				out.ProductsByCategory[cat]++
			}
		}
	}
	if st, ok := s.stores[entity.Categories.Name]; ok {
		out.TotalCategories = st.Len()
	}
	if st, ok := s.stores[entity.Orders.Name]; ok {
		recs := st.List()
		out.TotalOrders = len(recs)
		for _, r := range recs {
			out.OrdersByStatus[r.String("status")]++
		}
	}
	if st, ok := s.stores[entity.DeliveryBoys.Name]; ok {
		out.TotalDeliveryBoys = st.Len()
	}
	if st, ok := s.stores[entity.Stores.Name]; ok {
		recs := st.List()
		out.TotalStores = len(recs)
		for _, r := range recs {
			out.TotalStoreRevenue += r.Number("revenue")
		}
	}
	// gift cards and coupons together make up the store-items counter
	if st, ok := s.stores[entity.GiftCards.Name]; ok {
		out.TotalStoreItems = st.Len()
		if cp, ok := s.stores[entity.Coupons.Name]; ok {
			out.TotalStoreItems += cp.Len()
		}
	}
	if st, ok := s.stores[entity.Payments.Name]; ok {
		for _, r := range st.List() {
			out.TotalPayments += r.Number("total")
		}
	}

	s.last = out
	return out
}

func userSplit(recs []entity.Record) (active, inactive, admins int) {
	for _, r := range recs {
		switch r.String("status") {
		case entity.StatusActive:
			active++
		case entity.StatusInactive:
			inactive++
		}
		if r.String("role") == "admin" {
			admins++
		}
	}
	return active, inactive, admins
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"storefront/internal/action"
	"storefront/internal/analytics"
	"storefront/internal/domain"
	"storefront/internal/store"
)

// ScrollMoreEvent asks the UI to scroll the newly appended product rows
// into view after a load-more completes.
const ScrollMoreEvent = "products:scroll-more"

// CatalogAPI is the slice of the commerce API catalog resolution needs.
type CatalogAPI interface {
	ListProducts(ctx context.Context, filter url.Values) (*domain.ProductList, error)
	RetrieveSitemap(ctx context.Context, path string) (*domain.SitemapEntry, bool, error)
}

// CatalogService resolves browser locations to logical pages and keeps the
// product list in sync with the active filter. It holds no state of its
// own: every method reads one snapshot and mutates only via dispatch.
type CatalogService struct {
	store   store.Dispatcher
	api     CatalogAPI
	track   analytics.Tracker
	emitter EventEmitter
	logger  *slog.Logger
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(st store.Dispatcher, api CatalogAPI, track analytics.Tracker, emitter EventEmitter, logger *slog.Logger) *CatalogService {
	if track == nil {
		track = analytics.Nop{}
	}
	if emitter == nil {
		emitter = NopEmitter{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{store: st, api: api, track: track, emitter: emitter, logger: logger}
}

// ResolveLocation runs the page-resolution state machine for a location
// change. Resolving the same (pathname, search) pair twice in a row is a
// no-op; the hash never matters. Resolution order: local category-path
// match first (no network), remote sitemap lookup second, where a 404 is a
// normal not-found outcome.
func (s *CatalogService) ResolveLocation(ctx context.Context, loc domain.Location) error {
	snapshot := s.store.State()
	if snapshot.Location != nil && snapshot.Location.SameResource(loc) {
		return nil
	}

	loc.HasHistory = true
	s.store.Dispatch(action.ChangeLocation(loc))

	if category := snapshot.CategoryByPath(loc.Pathname); category != nil {
		entry := domain.SitemapEntry{
			Type:     domain.PageProductCategory,
			Path:     category.Path,
			Resource: category.ID,
		}
		s.store.Dispatch(action.ReceiveSitemap(entry))
		return s.fetchPageData(ctx, entry)
	}

	entry, found, err := s.api.RetrieveSitemap(ctx, loc.Pathname)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", loc.Pathname, err)
	}
	if !found {
		s.store.Dispatch(action.ReceiveSitemap(domain.SitemapEntry{
			Type: domain.PageNotFound,
			Path: loc.Pathname,
		}))
		return nil
	}
	s.store.Dispatch(action.ReceiveSitemap(*entry))
	return s.fetchPageData(ctx, *entry)
}

// fetchPageData triggers the page-specific loading for a freshly resolved
// sitemap entry. Every branch starts by clearing the previously displayed
// product so stale detail never leaks into the next view.
func (s *CatalogService) fetchPageData(ctx context.Context, entry domain.SitemapEntry) error {
	snapshot := s.store.State()

	s.store.Dispatch(action.ReceiveProduct(nil))

	s.track.Track(ctx, analytics.Event{Kind: analytics.PageView, Path: entry.Path, Title: "-"})

	switch entry.Type {
	case domain.PageProductCategory:
		s.SetCategory(entry.Resource)
		filter := domain.FilterForCategory(locationSearch(snapshot), snapshot.Settings.DefaultProductSorting)
		filter.CategoryID = entry.Resource
		filter.Limit = snapshot.Settings.ProductsLimit
		s.store.Dispatch(action.ProductsFilter(filter))
		return s.FetchProducts(ctx)

	case domain.PageSearch:
		filter := domain.FilterForSearch(locationSearch(snapshot))
		filter.Limit = snapshot.Settings.ProductsLimit
		s.store.Dispatch(action.ProductsFilter(filter))
		if err := s.FetchProducts(ctx); err != nil {
			return err
		}
		s.track.Track(ctx, analytics.Event{Kind: analytics.Search, SearchText: filter.Search})
		return nil

	case domain.PageProduct:
		// the entry's payload is the product; no extra fetch
		s.store.Dispatch(action.ReceiveProduct(entry.Data))
		s.track.Track(ctx, analytics.Event{Kind: analytics.ProductView, Path: entry.Path, Payload: entry.Data})
		return nil

	case domain.PageStatic:
		s.store.Dispatch(action.ReceivePage(entry.Data))
		if entry.Path == snapshot.Settings.CheckoutPath {
			payload, _ := json.Marshal(snapshot.Cart)
			s.track.Track(ctx, analytics.Event{Kind: analytics.CheckoutView, Path: entry.Path, Payload: payload})
		}
		return nil

	case domain.PageNotFound:
		return nil
	}

	return fmt.Errorf("unhandled page type %q for %s", entry.Type, entry.Path)
}

// SetCategory marks a preloaded category as active and points the product
// filter at it. Unknown ids are ignored.
func (s *CatalogService) SetCategory(categoryID int) {
	snapshot := s.store.State()
	category := snapshot.CategoryByID(categoryID)
	if category == nil {
		return
	}
	s.store.Dispatch(action.CurrentCategory(*category))
	filter := snapshot.ProductFilter
	filter.CategoryID = categoryID
	s.store.Dispatch(action.ProductsFilter(filter))
	s.store.Dispatch(action.ReceiveProduct(nil))
}

// SetSort changes the list ordering and reloads from the first page.
func (s *CatalogService) SetSort(ctx context.Context, sort string) error {
	filter := s.store.State().ProductFilter
	filter.Sort = sort
	s.store.Dispatch(action.ProductsFilter(filter))
	return s.FetchProducts(ctx)
}

// FetchProducts loads the first page for the current filter. The list is
// cleared just before the result lands so consumers never render stale
// rows during a filter change. Each fetch claims the list with a token;
// if a newer fetch has claimed it by the time the response arrives, the
// response is dropped: the last request issued wins.
func (s *CatalogService) FetchProducts(ctx context.Context) error {
	claim := uuid.NewString()
	s.store.Dispatch(action.RequestProducts(claim))

	filter := s.store.State().ProductFilter.APIValues()
	list, err := s.api.ListProducts(ctx, filter)
	if err != nil {
		return fmt.Errorf("fetch products: %w", err)
	}

	if s.store.State().ProductsClaim != claim {
		s.logger.Debug("stale products response dropped", "claim", claim)
		return nil
	}
	s.store.Dispatch(action.ReceiveProducts(nil))
	s.store.Dispatch(action.ReceiveProducts(list))
	return nil
}

// FetchMoreProducts appends the next page. Guarded no-op while a load is
// in flight, when the list is empty, or when the server reported no
// further pages.
func (s *CatalogService) FetchMoreProducts(ctx context.Context) error {
	snapshot := s.store.State()
	if snapshot.LoadingProducts ||
		snapshot.LoadingMoreProducts ||
		len(snapshot.Products) == 0 ||
		!snapshot.ProductsHasMore {
		return nil
	}

	s.store.Dispatch(action.RequestMoreProducts())

	filter := snapshot.ProductFilter.APIValues()
	filter.Set("offset", strconv.Itoa(len(snapshot.Products)))
	list, err := s.api.ListProducts(ctx, filter)
	if err != nil {
		return fmt.Errorf("fetch more products: %w", err)
	}

	s.store.Dispatch(action.ReceiveMoreProducts(list))
	s.emitter.Emit(ctx, ScrollMoreEvent, len(list.Data))
	return nil
}

func locationSearch(snapshot store.AppState) string {
	if snapshot.Location == nil {
		return ""
	}
	return snapshot.Location.Search
}

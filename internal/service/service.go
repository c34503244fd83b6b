package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/templepages/internal/config"
	"github.com/pfrederiksen/templepages/internal/content"
	"github.com/pfrederiksen/templepages/internal/extract"
	"github.com/pfrederiksen/templepages/internal/fetch"
	"github.com/pfrederiksen/templepages/internal/logger"
	"github.com/pfrederiksen/templepages/internal/panchang"
	"github.com/pfrederiksen/templepages/internal/store"
)

// ErrNoContent is returned when a fetch fails and no cached record exists.
var ErrNoContent = errors.New("no cached content and fetch failed")

// Cache keys, one per category. Distinct keys mean categories never contend
// on the same entry.
const (
	keyHome       = "content_home"
	keyEvents     = "content_events"
	keyBookstore  = "content_bookstore"
	keyDonation   = "content_donation"
	keyAdmissions = "content_admissions"
	keyContact    = "content_contact"
	keyClasses    = "content_classes"
	keyCalendar   = "content_calendar"
)

// Service coordinates transport, extraction, and the cache store.
type Service struct {
	cfg    *config.Config
	client fetch.Client
	kv     store.KV
	clock  func() time.Time
}

// New creates a Service using the wall clock.
func New(cfg *config.Config, client fetch.Client, kv store.KV) *Service {
	return NewWithClock(cfg, client, kv, time.Now)
}

// NewWithClock creates a Service with an injected clock, so cache-age
// behavior is testable deterministically.
func NewWithClock(cfg *config.Config, client fetch.Client, kv store.KV, clock func() time.Time) *Service {
	return &Service{cfg: cfg, client: client, kv: kv, clock: clock}
}

// Home returns the home page content.
func (s *Service) Home(ctx context.Context, force bool) (content.Home, error) {
	return getContent(s, ctx, keyHome, s.cfg.Cache.Pages, force,
		pageLoader(s, s.cfg.PageURL(s.cfg.Pages.Home), extract.Home))
}

// Events returns the events page content.
func (s *Service) Events(ctx context.Context, force bool) (content.Events, error) {
	return getContent(s, ctx, keyEvents, s.cfg.Cache.Pages, force,
		pageLoader(s, s.cfg.PageURL(s.cfg.Pages.Events), extract.Events))
}

// Bookstore returns the bookstore page content.
func (s *Service) Bookstore(ctx context.Context, force bool) (content.Bookstore, error) {
	return getContent(s, ctx, keyBookstore, s.cfg.Cache.Pages, force,
		pageLoader(s, s.cfg.PageURL(s.cfg.Pages.Bookstore), extract.Bookstore))
}

// Donation returns the donation page content.
func (s *Service) Donation(ctx context.Context, force bool) (content.Donation, error) {
	return getContent(s, ctx, keyDonation, s.cfg.Cache.Pages, force,
		pageLoader(s, s.cfg.PageURL(s.cfg.Pages.Donation), extract.Donation))
}

// Admissions returns the admissions page content.
func (s *Service) Admissions(ctx context.Context, force bool) (content.Admissions, error) {
	return getContent(s, ctx, keyAdmissions, s.cfg.Cache.Pages, force,
		pageLoader(s, s.cfg.PageURL(s.cfg.Pages.Admissions), extract.Admissions))
}

// Contact returns the contact page content.
func (s *Service) Contact(ctx context.Context, force bool) (content.Contact, error) {
	return getContent(s, ctx, keyContact, s.cfg.Cache.Pages, force,
		pageLoader(s, s.cfg.PageURL(s.cfg.Pages.Contact), extract.Contact))
}

// Classes returns the class-listing content.
func (s *Service) Classes(ctx context.Context, force bool) (content.Classes, error) {
	return getContent(s, ctx, keyClasses, s.cfg.Cache.Pages, force,
		pageLoader(s, s.cfg.PageURL(s.cfg.Pages.Classes), extract.Classes))
}

// Calendar returns the curated calendar. The source never fails, so the
// cache protocol degrades to always-fresh; it is wrapped anyway for
// interface uniformity.
func (s *Service) Calendar(ctx context.Context, force bool) (content.Calendar, error) {
	return getContent(s, ctx, keyCalendar, s.cfg.Cache.Calendar, force,
		func(context.Context) (content.Calendar, error) {
			return panchang.NewSource(s.clock()).Content(), nil
		})
}

// pageLoader builds the fetch-and-extract step for one scraped page.
func pageLoader[T content.Record](s *Service, url string,
	extractFn func(*goquery.Document, string, time.Time) (T, error)) func(context.Context) (T, error) {

	return func(ctx context.Context) (T, error) {
		var zero T
		start := time.Now()

		body, err := s.client.Get(ctx, url)
		if err != nil {
			logger.IncrCounter("fetch.fail")
			return zero, err
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err != nil {
			logger.IncrCounter("fetch.fail")
			return zero, fmt.Errorf("parsing %s: %w", url, err)
		}

		rec, err := extractFn(doc, url, s.clock())
		if err != nil {
			// Structural extraction failure follows the same fallback rule
			// as a transport failure.
			logger.IncrCounter("fetch.fail")
			return zero, fmt.Errorf("extracting %s: %w", url, err)
		}

		logger.IncrCounter("fetch.ok")
		logger.RecordTiming("fetch", time.Since(start))
		return rec, nil
	}
}

// getContent runs the cache protocol for one category:
//
//  1. load and decode the cached snapshot; decode failure counts as no cache;
//  2. serve the cache while its age is within ttl, unless forced;
//  3. otherwise fetch and extract; persist on success (write failure is
//     logged and ignored);
//  4. on failure serve the stale cache if one exists, else fail.
func getContent[T content.Record](s *Service, ctx context.Context, key string,
	ttl time.Duration, force bool, load func(context.Context) (T, error)) (T, error) {

	cached, haveCache := loadCached[T](s, key)

	if !force && haveCache && s.clock().Sub(cached.Fetched()) <= ttl {
		logger.IncrCounter("cache.hit")
		return cached, nil
	}

	fresh, err := load(ctx)
	if err != nil {
		if haveCache {
			logger.IncrCounter("cache.stale_fallback")
			logger.Warn("serving stale cache after fetch failure",
				logger.Fields{"key": key, "fetched_at": cached.Fetched()})
			return cached, nil
		}
		var zero T
		logger.Error("no cache to fall back on", logger.Fields{"key": key}, err)
		return zero, fmt.Errorf("%w: %s: %v", ErrNoContent, key, err)
	}

	if encoded, encErr := content.Encode(fresh); encErr != nil {
		logger.Warn("encoding snapshot failed", logger.Fields{"key": key, "err": encErr.Error()})
	} else if setErr := s.kv.SetString(key, encoded); setErr != nil {
		logger.Warn("cache write failed", logger.Fields{"key": key, "err": setErr.Error()})
	}

	return fresh, nil
}

// loadCached reads and decodes a snapshot. Store errors and corrupt entries
// are treated as cache-absent, never propagated.
func loadCached[T content.Record](s *Service, key string) (T, bool) {
	var zero T

	raw, found, err := s.kv.GetString(key)
	if err != nil {
		logger.Warn("cache read failed", logger.Fields{"key": key, "err": err.Error()})
		return zero, false
	}
	if !found {
		return zero, false
	}

	rec, err := content.Decode[T](raw)
	if err != nil {
		logger.Warn("corrupt cache entry ignored", logger.Fields{"key": key, "err": err.Error()})
		return zero, false
	}
	return rec, true
}

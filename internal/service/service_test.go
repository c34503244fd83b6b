package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfrederiksen/templepages/internal/config"
	"github.com/pfrederiksen/templepages/internal/content"
)

var testNow = time.Date(2026, time.August, 20, 12, 0, 0, 0, time.UTC)

const contactHTML = `<p>Call us at (408) 555-1234 during office hours.</p>`

type fakeClient struct {
	body  string
	err   error
	calls int
}

func (f *fakeClient) Get(context.Context, string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.body), nil
}

type fakeKV struct {
	data   map[string]string
	getErr error
	setErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) GetString(key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) SetString(key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		BaseURL: "https://t.org",
		Pages:   config.PagesConfig{Contact: "/contact-us", Classes: "/classes"},
		Cache:   config.CacheConfig{Pages: 24 * time.Hour, Calendar: 168 * time.Hour},
	}
}

func newTestService(client *fakeClient, kv *fakeKV) *Service {
	return NewWithClock(testConfig(), client, kv, func() time.Time { return testNow })
}

func seedContact(t *testing.T, kv *fakeKV, fetchedAt time.Time, phone string) {
	t.Helper()
	encoded, err := content.Encode(content.Contact{
		Phone:     content.String(phone),
		FetchedAt: fetchedAt,
	})
	require.NoError(t, err)
	kv.data["content_contact"] = encoded
}

func TestFetchOnCacheMiss(t *testing.T) {
	client := &fakeClient{body: contactHTML}
	kv := newFakeKV()
	svc := newTestService(client, kv)

	rec, err := svc.Contact(context.Background(), false)
	require.NoError(t, err)

	require.NotNil(t, rec.Phone)
	assert.Equal(t, "(408) 555-1234", *rec.Phone)
	assert.Equal(t, testNow, rec.FetchedAt)
	assert.Equal(t, 1, client.calls)
	assert.Contains(t, kv.data, "content_contact")
}

func TestCacheHitWithinTTL(t *testing.T) {
	// Age exactly at the boundary still counts as fresh.
	client := &fakeClient{err: errors.New("must not be called")}
	kv := newFakeKV()
	seedContact(t, kv, testNow.Add(-24*time.Hour), "(111) 222-3333")
	svc := newTestService(client, kv)

	rec, err := svc.Contact(context.Background(), false)
	require.NoError(t, err)

	require.NotNil(t, rec.Phone)
	assert.Equal(t, "(111) 222-3333", *rec.Phone)
	assert.Equal(t, 0, client.calls)
}

func TestExpiredCacheRefetches(t *testing.T) {
	client := &fakeClient{body: contactHTML}
	kv := newFakeKV()
	seedContact(t, kv, testNow.Add(-24*time.Hour-time.Second), "(111) 222-3333")
	svc := newTestService(client, kv)

	rec, err := svc.Contact(context.Background(), false)
	require.NoError(t, err)

	require.NotNil(t, rec.Phone)
	assert.Equal(t, "(408) 555-1234", *rec.Phone)
	assert.Equal(t, 1, client.calls)

	stored, err := content.Decode[content.Contact](kv.data["content_contact"])
	require.NoError(t, err)
	assert.Equal(t, testNow, stored.FetchedAt)
}

func TestStaleFallbackOnFetchFailure(t *testing.T) {
	// Cache age does not matter once the fetch has failed.
	client := &fakeClient{err: errors.New("connection refused")}
	kv := newFakeKV()
	seedContact(t, kv, testNow.Add(-10*24*time.Hour), "(111) 222-3333")
	svc := newTestService(client, kv)

	rec, err := svc.Contact(context.Background(), false)
	require.NoError(t, err)

	require.NotNil(t, rec.Phone)
	assert.Equal(t, "(111) 222-3333", *rec.Phone)
	assert.Equal(t, 1, client.calls)
}

func TestNoCacheAndFetchFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	svc := newTestService(client, newFakeKV())

	_, err := svc.Contact(context.Background(), false)
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestForceRefreshStillFallsBack(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	kv := newFakeKV()
	seedContact(t, kv, testNow.Add(-time.Hour), "(111) 222-3333")
	svc := newTestService(client, kv)

	rec, err := svc.Contact(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
	require.NotNil(t, rec.Phone)
	assert.Equal(t, "(111) 222-3333", *rec.Phone)
}

func TestCorruptCacheTreatedAsAbsent(t *testing.T) {
	client := &fakeClient{body: contactHTML}
	kv := newFakeKV()
	kv.data["content_contact"] = "{not json"
	svc := newTestService(client, kv)

	rec, err := svc.Contact(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
	require.NotNil(t, rec.Phone)
	assert.Equal(t, "(408) 555-1234", *rec.Phone)
}

func TestCacheReadErrorTreatedAsAbsent(t *testing.T) {
	client := &fakeClient{body: contactHTML}
	kv := newFakeKV()
	kv.getErr = errors.New("disk unavailable")
	svc := newTestService(client, kv)

	rec, err := svc.Contact(context.Background(), false)
	require.NoError(t, err)
	require.NotNil(t, rec.Phone)
}

func TestCacheWriteFailureIgnored(t *testing.T) {
	client := &fakeClient{body: contactHTML}
	kv := newFakeKV()
	kv.setErr = errors.New("disk full")
	svc := newTestService(client, kv)

	rec, err := svc.Contact(context.Background(), false)
	require.NoError(t, err)
	require.NotNil(t, rec.Phone)
	assert.Empty(t, kv.data)
}

func TestStructuralFailureFallsBack(t *testing.T) {
	// A page that fetches fine but yields no class sections follows the same
	// fallback rule as a transport failure.
	client := &fakeClient{body: `<p>Registration opens soon.</p>`}
	kv := newFakeKV()

	cached := content.Classes{
		Curricular: []content.ClassSection{{Name: "Hindi Level 1"}},
		FetchedAt:  testNow.Add(-48 * time.Hour),
	}
	encoded, err := content.Encode(cached)
	require.NoError(t, err)
	kv.data["content_classes"] = encoded

	svc := newTestService(client, kv)

	rec, err := svc.Classes(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, rec.Curricular, 1)
	assert.Equal(t, "Hindi Level 1", rec.Curricular[0].Name)
}

func TestCalendarFromCuratedSource(t *testing.T) {
	client := &fakeClient{err: errors.New("must not be called")}
	kv := newFakeKV()
	svc := newTestService(client, kv)

	cal, err := svc.Calendar(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, testNow, cal.FetchedAt)
	assert.NotEmpty(t, cal.Months[202611])
	assert.Equal(t, 0, client.calls)
	assert.Contains(t, kv.data, "content_calendar")
}

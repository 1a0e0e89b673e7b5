package service

import (
	"context"
	"database/sql"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/fitcity-offers/internal/domain"
)

type fakeFavoriteRepo struct {
	records []domain.FavoriteRecord

	listCalls   int
	listErr     error
	insertCalls int
	insertErr   error
	deleteCalls []uuid.UUID
	deleteErr   error

	clock time.Time
}

func (f *fakeFavoriteRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.FavoriteRecord, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.FavoriteRecord
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].OwnerID == ownerID {
			out = append(out, f.records[i])
		}
	}
	return out, nil
}

func (f *fakeFavoriteRepo) Insert(ctx context.Context, record domain.FavoriteRecord) (*domain.FavoriteRecord, error) {
	f.insertCalls++
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.clock = f.clock.Add(time.Second)
	record.ID = uuid.New()
	record.CreatedAt = f.clock
	f.records = append(f.records, record)
	return &record, nil
}

func (f *fakeFavoriteRepo) DeleteByPrimaryKey(ctx context.Context, id uuid.UUID) error {
	f.deleteCalls = append(f.deleteCalls, id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeFavoriteRepo) calls() int {
	return f.listCalls + f.insertCalls + len(f.deleteCalls)
}

type fakeOwner struct {
	id *uuid.UUID
}

func (o fakeOwner) CurrentOwnerID() *uuid.UUID { return o.id }
func (o fakeOwner) IsAuthenticated() bool      { return o.id != nil }

type fakeUserRepo struct {
	findByIDInput  uuid.UUID
	findByIDResult *domain.User
	findByIDErr    error
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	f.findByIDInput = id
	return f.findByIDResult, f.findByIDErr
}

type fakeSessionRepo struct {
	findInput  string
	findResult *domain.Session
	findErr    error
}

func (f *fakeSessionRepo) FindActiveSession(ctx context.Context, token string) (*domain.Session, error) {
	f.findInput = token
	return f.findResult, f.findErr
}

type fakeStorage struct {
	objects       map[string][]byte
	downloadCalls int
	downloadErr   error
}

func (f *fakeStorage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[bucket+"/"+objectName] = data
	return "http://minio.local/" + bucket + "/" + objectName, nil
}

func (f *fakeStorage) Download(ctx context.Context, bucket, objectName string) ([]byte, error) {
	f.downloadCalls++
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	data, ok := f.objects[bucket+"/"+objectName]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return data, nil
}

type fakeFeedCache struct {
	entries  map[domain.DisplayMode][]byte
	getErr   error
	setErr   error
	setCalls int
	lastTTL  time.Duration
}

func (f *fakeFeedCache) Get(ctx context.Context, mode domain.DisplayMode) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	payload, ok := f.entries[mode]
	return payload, ok, nil
}

func (f *fakeFeedCache) Set(ctx context.Context, mode domain.DisplayMode, payload []byte, ttl time.Duration) error {
	f.setCalls++
	f.lastTTL = ttl
	if f.setErr != nil {
		return f.setErr
	}
	if f.entries == nil {
		f.entries = map[domain.DisplayMode][]byte{}
	}
	f.entries[mode] = payload
	return nil
}

type fakeClickPublisher struct {
	published []domain.OutboundClick
	err       error
}

func (f *fakeClickPublisher) PublishClick(ctx context.Context, click domain.OutboundClick) error {
	f.published = append(f.published, click)
	return f.err
}

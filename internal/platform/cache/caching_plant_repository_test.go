package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"

	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/feature/garden/usecase"
)

// mockPlantRepository counts reads so tests can tell hits from misses.
type mockPlantRepository struct {
	findByIDFn func(ctx context.Context, id uint) (*entity.Plant, error)
	listFn     func(ctx context.Context, page usecase.Page) ([]entity.Plant, error)
	updateFn   func(ctx context.Context, id uint, mutate func(*entity.Plant) error) (*entity.Plant, error)
	findCalls  int
	listCalls  int
}

func (m *mockPlantRepository) Create(ctx context.Context, p *entity.Plant) error {
	p.ID = 99
	return nil
}

func (m *mockPlantRepository) List(ctx context.Context, page usecase.Page) ([]entity.Plant, error) {
	m.listCalls++
	if m.listFn != nil {
		return m.listFn(ctx, page)
	}
	return []entity.Plant{{ID: 1, NameCommon: "Tomato"}}, nil
}

func (m *mockPlantRepository) FindByID(ctx context.Context, id uint) (*entity.Plant, error) {
	m.findCalls++
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return &entity.Plant{ID: id, NameCommon: "Tomato"}, nil
}

func (m *mockPlantRepository) FindByIDs(ctx context.Context, ids []uint) ([]entity.Plant, error) {
	return nil, nil
}

func (m *mockPlantRepository) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func (m *mockPlantRepository) Update(ctx context.Context, id uint, mutate func(*entity.Plant) error) (*entity.Plant, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, mutate)
	}
	p := &entity.Plant{ID: id, NameCommon: "Tomato"}
	return p, mutate(p)
}

func (m *mockPlantRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

func TestNewCachingPlantRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{"default values when zero/empty", 0, "", 5 * time.Minute, "plants"},
		{"negative ttl uses default", -time.Minute, "", 5 * time.Minute, "plants"},
		{"custom values preserved", 10 * time.Minute, "catalog", 10 * time.Minute, "catalog"},
		{"namespace is escaped", time.Minute, "my cache:v2", time.Minute, "my_cache_v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingPlantRepository(nil, tt.ttl, &mockPlantRepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

func TestCachingPlantRepository_FindByID_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockPlantRepository{}
	repo := NewCachingPlantRepository(nil, time.Minute, inner, "")

	for i := 0; i < 2; i++ {
		if _, err := repo.FindByID(context.Background(), 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if inner.findCalls != 2 {
		t.Errorf("expected every read to reach the inner repository, got %d calls", inner.findCalls)
	}
}

func TestCachingPlantRepository_FindByID_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cachedJSON, _ := json.Marshal(entity.Plant{ID: 7, NameCommon: "Basil"})
	mock.ExpectGet("plants:id:7").SetVal(string(cachedJSON))

	inner := &mockPlantRepository{}
	repo := NewCachingPlantRepository(rdb, 5*time.Minute, inner, "plants")

	p, err := repo.FindByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.findCalls != 0 {
		t.Error("inner repository should not be called on cache hit")
	}
	if p.NameCommon != "Basil" {
		t.Errorf("expected Basil, got %q", p.NameCommon)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingPlantRepository_FindByID_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedJSON, _ := json.Marshal(&entity.Plant{ID: 3, NameCommon: "Tomato"})
	mock.ExpectGet("plants:id:3").RedisNil()
	mock.ExpectSet("plants:id:3", expectedJSON, 5*time.Minute).SetVal("OK")

	repo := NewCachingPlantRepository(rdb, 5*time.Minute, &mockPlantRepository{}, "plants")

	if _, err := repo.FindByID(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingPlantRepository_FindByID_NotFoundIsNotCached(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("plants:id:4").RedisNil()

	inner := &mockPlantRepository{
		findByIDFn: func(ctx context.Context, id uint) (*entity.Plant, error) {
			return nil, usecase.ErrNotFound
		},
	}
	repo := NewCachingPlantRepository(rdb, 5*time.Minute, inner, "plants")

	_, err := repo.FindByID(context.Background(), 4)
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingPlantRepository_List_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedJSON, _ := json.Marshal([]entity.Plant{{ID: 1, NameCommon: "Tomato"}})
	mock.ExpectGet("plants:list:0:100").SetVal("invalid json")
	mock.ExpectDel("plants:list:0:100").SetVal(1)
	mock.ExpectSet("plants:list:0:100", expectedJSON, 5*time.Minute).SetVal("OK")

	repo := NewCachingPlantRepository(rdb, 5*time.Minute, &mockPlantRepository{}, "plants")

	plants, err := repo.List(context.Background(), usecase.NewPage(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plants) != 1 {
		t.Errorf("expected 1 plant, got %d", len(plants))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingPlantRepository_Update_Invalidates(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectScan(0, "plants:*", 200).SetVal([]string{"plants:id:1", "plants:list:0:100"}, 0)
	mock.ExpectDel("plants:id:1", "plants:list:0:100").SetVal(2)

	repo := NewCachingPlantRepository(rdb, 5*time.Minute, &mockPlantRepository{}, "plants")

	_, err := repo.Update(context.Background(), 1, func(p *entity.Plant) error {
		p.Variety = "Roma"
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingPlantRepository_Update_InnerErrorSkipsInvalidation(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("update error")
	inner := &mockPlantRepository{
		updateFn: func(ctx context.Context, id uint, mutate func(*entity.Plant) error) (*entity.Plant, error) {
			return nil, expectedErr
		},
	}
	repo := NewCachingPlantRepository(rdb, 5*time.Minute, inner, "plants")

	_, err := repo.Update(context.Background(), 1, func(*entity.Plant) error { return nil })
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected redis calls: %v", err)
	}
}

func TestCachingPlantRepository_Miniredis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	inner := &mockPlantRepository{}
	repo := NewCachingPlantRepository(rdb, time.Minute, inner, "plants")
	ctx := context.Background()
	page := usecase.NewPage(0, 10)

	for i := 0; i < 3; i++ {
		if _, err := repo.FindByID(ctx, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.List(ctx, page); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if inner.findCalls != 1 || inner.listCalls != 1 {
		t.Fatalf("expected one inner read each, got find=%d list=%d", inner.findCalls, inner.listCalls)
	}
	if !mr.Exists("plants:id:1") || !mr.Exists("plants:list:0:10") {
		t.Fatal("expected both entries to be cached")
	}
	if ttl := mr.TTL("plants:id:1"); ttl != time.Minute {
		t.Errorf("expected ttl 1m, got %v", ttl)
	}

	if err := repo.Create(ctx, &entity.Plant{NameCommon: "Kale"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mr.Keys()) != 0 {
		t.Errorf("expected create to clear the cache, left %v", mr.Keys())
	}

	if _, err := repo.List(ctx, page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.listCalls != 2 {
		t.Errorf("expected list to be re-read after invalidation, got %d", inner.listCalls)
	}

	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mr.Keys()) != 0 {
		t.Errorf("expected delete to clear the cache, left %v", mr.Keys())
	}
}

func TestSafe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"plants", "plants"},
		{"my plants", "my_plants"},
		{"key:value", "key_value"},
		{"", ""},
		{"::", "__"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if result := safe(tt.input); result != tt.expected {
				t.Errorf("safe(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

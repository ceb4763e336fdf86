// Package memstore keeps authors and media items in process memory. It is safe
// for concurrent use and intended for development, demos and HTTP tests.
package memstore

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	authormodel "multimedia-api/internal/domains/author/model"
	authorrepo "multimedia-api/internal/domains/author/repository"
	mediamodel "multimedia-api/internal/domains/media/model"
	mediarepo "multimedia-api/internal/domains/media/repository"
)

type authorRecord struct {
	author authormodel.Author
	seq    uint64
}

type itemRecord struct {
	item mediamodel.Item
	seq  uint64
}

// Store is shared by every repository it hands out so media reads can resolve
// authors under the same lock.
type Store struct {
	mu      sync.RWMutex
	seq     uint64
	authors map[uuid.UUID]authorRecord
	items   map[string]map[uuid.UUID]itemRecord
	now     func() time.Time
}

// New constructs an empty store.
func New() *Store {
	s := &Store{
		authors: make(map[uuid.UUID]authorRecord),
		items:   make(map[string]map[uuid.UUID]itemRecord),
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, k := range mediamodel.Kinds() {
		s.items[k.Resource] = make(map[uuid.UUID]itemRecord)
	}
	return s
}

// Ping always reports success for the in-memory store.
func (s *Store) Ping(context.Context) error {
	return nil
}

// Authors returns the author repository backed by s.
func (s *Store) Authors() authorrepo.Repository {
	return &authorStore{s: s}
}

// Media returns the repository for one media kind backed by s.
func (s *Store) Media(kind mediamodel.Kind) mediarepo.Repository {
	return &mediaStore{s: s, kind: kind}
}

func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// resolve must be called with s.mu held.
func (s *Store) resolve(id uuid.UUID) *mediamodel.AuthorRef {
	rec, ok := s.authors[id]
	if !ok {
		return nil
	}
	return &mediamodel.AuthorRef{
		ID:            rec.author.ID,
		Nome:          rec.author.Nome,
		Bio:           rec.author.Bio,
		Nacionalidade: rec.author.Nacionalidade,
	}
}

// ─── authors ───────────────────────────────────────────────────

type authorStore struct {
	s *Store
}

func (r *authorStore) List(_ context.Context) ([]authormodel.Author, error) {
	r.s.mu.RLock()
	records := make([]authorRecord, 0, len(r.s.authors))
	for _, rec := range r.s.authors {
		records = append(records, rec)
	}
	r.s.mu.RUnlock()

	slices.SortFunc(records, func(a, b authorRecord) int {
		if c := strings.Compare(a.author.Nome, b.author.Nome); c != 0 {
			return c
		}
		return compareSeq(a.seq, b.seq)
	})

	out := make([]authormodel.Author, len(records))
	for i, rec := range records {
		out[i] = rec.author
	}
	return out, nil
}

func (r *authorStore) GetByID(_ context.Context, id uuid.UUID) (*authormodel.Author, error) {
	r.s.mu.RLock()
	rec, ok := r.s.authors[id]
	r.s.mu.RUnlock()
	if !ok {
		return nil, authormodel.ErrAuthorNotFound
	}
	a := rec.author
	return &a, nil
}

func (r *authorStore) Create(_ context.Context, a *authormodel.Author) (*authormodel.Author, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *a
	stored.CreatedAt = r.s.now()
	stored.UpdatedAt = stored.CreatedAt
	r.s.authors[stored.ID] = authorRecord{author: stored, seq: r.s.nextSeq()}
	return &stored, nil
}

func (r *authorStore) Update(_ context.Context, a *authormodel.Author) (*authormodel.Author, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.authors[a.ID]
	if !ok {
		return nil, authormodel.ErrAuthorNotFound
	}
	stored := *a
	stored.CreatedAt = rec.author.CreatedAt
	stored.UpdatedAt = r.s.now()
	r.s.authors[a.ID] = authorRecord{author: stored, seq: rec.seq}
	return &stored, nil
}

func (r *authorStore) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.authors[id]; !ok {
		return authormodel.ErrAuthorNotFound
	}
	delete(r.s.authors, id)
	return nil
}

// ─── media ─────────────────────────────────────────────────────

type mediaStore struct {
	s    *Store
	kind mediamodel.Kind
}

func (r *mediaStore) Kind() mediamodel.Kind {
	return r.kind
}

func (r *mediaStore) table() map[uuid.UUID]itemRecord {
	return r.s.items[r.kind.Resource]
}

func (r *mediaStore) List(_ context.Context) ([]mediamodel.Item, error) {
	r.s.mu.RLock()
	records := make([]itemRecord, 0, len(r.table()))
	for _, rec := range r.table() {
		rec.item.Autor = r.s.resolve(rec.item.AutorID)
		records = append(records, rec)
	}
	r.s.mu.RUnlock()

	slices.SortFunc(records, func(a, b itemRecord) int {
		if c := strings.Compare(a.item.Titulo, b.item.Titulo); c != 0 {
			return c
		}
		return compareSeq(a.seq, b.seq)
	})

	out := make([]mediamodel.Item, len(records))
	for i, rec := range records {
		out[i] = rec.item
	}
	return out, nil
}

func (r *mediaStore) GetByID(_ context.Context, id uuid.UUID) (*mediamodel.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.table()[id]
	if !ok {
		return nil, mediamodel.ErrItemNotFound
	}
	it := rec.item
	it.Autor = r.s.resolve(it.AutorID)
	return &it, nil
}

func (r *mediaStore) Create(_ context.Context, it *mediamodel.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	it.Kind = r.kind
	it.CreatedAt = r.s.now()
	it.UpdatedAt = it.CreatedAt

	stored := *it
	stored.Autor = nil
	r.table()[it.ID] = itemRecord{item: stored, seq: r.s.nextSeq()}
	return nil
}

func (r *mediaStore) Update(_ context.Context, it *mediamodel.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.table()[it.ID]
	if !ok {
		return mediamodel.ErrItemNotFound
	}
	it.CreatedAt = rec.item.CreatedAt
	it.UpdatedAt = r.s.now()

	stored := *it
	stored.Kind = r.kind
	stored.Autor = nil
	r.table()[it.ID] = itemRecord{item: stored, seq: rec.seq}
	return nil
}

func (r *mediaStore) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.table()[id]; !ok {
		return mediamodel.ErrItemNotFound
	}
	delete(r.table(), id)
	return nil
}

func compareSeq(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

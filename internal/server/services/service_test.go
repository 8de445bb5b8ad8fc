package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"photofolio/internal/common"
	"photofolio/internal/dbx"
	"photofolio/internal/server/identity"
	"photofolio/internal/server/models"
	"photofolio/internal/server/repositories/albums"
	"photofolio/internal/server/repositories/images"
	"photofolio/internal/server/repositories/profiles"
	"photofolio/internal/server/storage"
)

// --- in-memory repositories ---

type memStore struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile // by id
	albums   map[string]*models.Album
	images   map[string]*models.Image
}

func newMemStore() *memStore {
	return &memStore{
		profiles: map[string]*models.Profile{},
		albums:   map[string]*models.Album{},
		images:   map[string]*models.Image{},
	}
}

type memProfiles struct{ s *memStore }

func (r memProfiles) Create(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.profiles {
		if e.Username == p.Username {
			return nil, fmt.Errorf("db error: duplicate profiles_username_key")
		}
	}
	cp := *p
	cp.ID = uuid.NewString()
	if cp.Bio == "" {
		cp.Bio = "Welcome to my profile!"
	}
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.s.profiles[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r memProfiles) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.profiles {
		if e.Username == username {
			out := *e
			return &out, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r memProfiles) GetByOwner(ctx context.Context, ownerID string) (*models.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.profiles {
		if e.OwnerID == ownerID {
			out := *e
			return &out, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r memProfiles) Update(ctx context.Context, ownerID string, p *models.Profile) (*models.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.profiles {
		if e.OwnerID == ownerID {
			e.DisplayName = p.DisplayName
			e.Username = p.Username
			e.Bio = p.Bio
			e.ImageURL = p.ImageURL
			e.UpdatedAt = time.Now()
			out := *e
			return &out, nil
		}
	}
	return nil, common.ErrNotFoundOrUnauthorized
}

type memAlbums struct{ s *memStore }

func (r memAlbums) Create(ctx context.Context, a *models.Album) (*models.Album, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *a
	cp.ID = uuid.NewString()
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.s.albums[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r memAlbums) GetByID(ctx context.Context, id string) (*models.Album, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.albums[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *a
	return &out, nil
}

func (r memAlbums) ListByOwner(ctx context.Context, ownerID string) ([]*models.Album, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []*models.Album
	for _, a := range r.s.albums {
		if a.OwnerID == ownerID {
			out := *a
			result = append(result, &out)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		oi, oj := result[i].AlbumOrder, result[j].AlbumOrder
		switch {
		case oi != nil && oj != nil:
			return *oi < *oj
		case oi != nil:
			return true
		case oj != nil:
			return false
		default:
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
	})
	return result, nil
}

func (r memAlbums) Update(ctx context.Context, id, ownerID string, a *models.Album) (*models.Album, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.albums[id]
	if !ok || e.OwnerID != ownerID {
		return nil, common.ErrNotFoundOrUnauthorized
	}
	e.Title = a.Title
	e.Description = a.Description
	e.AlbumOrder = a.AlbumOrder
	e.CoverImageURL = a.CoverImageURL
	e.UpdatedAt = time.Now()
	out := *e
	return &out, nil
}

func (r memAlbums) Delete(ctx context.Context, id, ownerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.albums[id]
	if !ok || e.OwnerID != ownerID {
		return common.ErrNotFoundOrUnauthorized
	}
	delete(r.s.albums, id)
	// Cascade, as the schema's FK would.
	for imgID, img := range r.s.images {
		if img.AlbumID == id {
			delete(r.s.images, imgID)
		}
	}
	return nil
}

type memImages struct{ s *memStore }

func (r memImages) Create(ctx context.Context, img *models.Image) (*models.Image, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.albums[img.AlbumID]; !ok {
		return nil, fmt.Errorf("db error: foreign key violation")
	}
	cp := *img
	cp.ID = uuid.NewString()
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.s.images[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r memImages) ListByAlbum(ctx context.Context, albumID string) ([]*models.Image, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []*models.Image
	for _, img := range r.s.images {
		if img.AlbumID == albumID {
			out := *img
			result = append(result, &out)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		oi, oj := result[i].ImageOrder, result[j].ImageOrder
		switch {
		case oi != nil && oj != nil:
			return *oi < *oj
		case oi != nil:
			return true
		case oj != nil:
			return false
		default:
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
	})
	return result, nil
}

func (r memImages) Update(ctx context.Context, id, ownerID string, img *models.Image) (*models.Image, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.images[id]
	if !ok {
		return nil, common.ErrNotFoundOrUnauthorized
	}
	album, ok := r.s.albums[e.AlbumID]
	if !ok || album.OwnerID != ownerID {
		return nil, common.ErrNotFoundOrUnauthorized
	}
	e.ImageURL = img.ImageURL
	e.AltText = img.AltText
	e.Caption = img.Caption
	e.ImageOrder = img.ImageOrder
	e.UpdatedAt = time.Now()
	out := *e
	return &out, nil
}

func (r memImages) DeleteByURLAndAlbum(ctx context.Context, imageURL, albumID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, img := range r.s.images {
		if img.ImageURL == imageURL && img.AlbumID == albumID {
			delete(r.s.images, id)
			return nil
		}
	}
	return common.ErrNotFoundOrUnauthorized
}

// --- fake repomanager over the in-memory store ---

type memRepoManager struct{ s *memStore }

func (m memRepoManager) RunMigrations(context.Context, *sql.DB) error     { return nil }
func (m memRepoManager) Profiles(dbx.DBTX) profiles.Repository            { return memProfiles{m.s} }
func (m memRepoManager) Albums(dbx.DBTX) albums.Repository                { return memAlbums{m.s} }
func (m memRepoManager) Images(dbx.DBTX) images.Repository                { return memImages{m.s} }

// --- fake identity oracle ---

type fakeOracle struct{ p *identity.Principal }

func (f fakeOracle) CurrentPrincipal(ctx context.Context) (*identity.Principal, error) {
	if f.p == nil {
		return nil, common.ErrUnauthenticated
	}
	return f.p, nil
}

// --- recording invalidator ---

type recordingBroker struct {
	mu    sync.Mutex
	paths []string
}

func (b *recordingBroker) Invalidate(paths ...string) {
	b.mu.Lock()
	b.paths = append(b.paths, paths...)
	b.mu.Unlock()
}

func (b *recordingBroker) seen(path string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, p := range b.paths {
		if p == path {
			return true
		}
	}
	return false
}

// --- recording object store ---

type recordingStore struct {
	mu              sync.Mutex
	grants          []string // album ids granted
	deletedURLs     []string
	deletedAlbums   []string
	grantErr        error
	deleteURLErr    error
	deleteAlbumsErr error
}

func (s *recordingStore) CreateUploadGrant(ctx context.Context, fileBaseName, contentType, albumID string) (*storage.UploadGrant, error) {
	if s.grantErr != nil {
		return nil, s.grantErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grants = append(s.grants, albumID)
	key := storage.ObjectKey(albumID, 1700000000000, fileBaseName)
	return &storage.UploadGrant{
		Key:       key,
		UploadURL: "https://signed.example.com/" + key,
		PublicURL: "https://bucket.s3.us-east-1.amazonaws.com/" + key,
		ExpiresIn: 60 * time.Second,
	}, nil
}

func (s *recordingStore) DeleteObjectByURL(ctx context.Context, publicURL string) error {
	if s.deleteURLErr != nil {
		return s.deleteURLErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletedURLs = append(s.deletedURLs, publicURL)
	return nil
}

func (s *recordingStore) DeleteAlbumObjects(ctx context.Context, albumID string) error {
	if s.deleteAlbumsErr != nil {
		return s.deleteAlbumsErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletedAlbums = append(s.deletedAlbums, albumID)
	return nil
}

// --- harness ---

type env struct {
	store  *memStore
	mgr    memRepoManager
	broker *recordingBroker
	s3     *recordingStore
}

func newEnv() *env {
	ms := newMemStore()
	return &env{
		store:  ms,
		mgr:    memRepoManager{ms},
		broker: &recordingBroker{},
		s3:     &recordingStore{},
	}
}

func (e *env) profileService(p *identity.Principal) *ProfileService {
	return NewProfileService(nil, e.mgr, fakeOracle{p}, e.broker)
}

func (e *env) albumService(p *identity.Principal) *AlbumService {
	return NewAlbumService(nil, e.mgr, fakeOracle{p}, e.broker, e.s3)
}

func (e *env) imageService(p *identity.Principal) *ImageService {
	return NewImageService(nil, e.mgr, fakeOracle{p}, e.broker, e.s3)
}

func (e *env) uploadService(p *identity.Principal) *UploadService {
	return NewUploadService(nil, e.mgr, fakeOracle{p}, e.s3)
}

package httpapi

import (
	"time"

	"photofolio/internal/server/models"
	"photofolio/internal/server/storage"
)

// Response DTOs. Field names follow the frontend's camelCase convention;
// the persistence models stay tag-free.

type profileResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	DisplayName string    `json:"displayName"`
	Username    string    `json:"username"`
	Bio         string    `json:"bio"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProfileResponse(p *models.Profile) profileResponse {
	return profileResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		DisplayName: p.DisplayName,
		Username:    p.Username,
		Bio:         p.Bio,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type albumResponse struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"ownerId"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	AlbumOrder    *int      `json:"albumOrder"`
	CoverImageURL string    `json:"coverImageUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toAlbumResponse(a *models.Album) albumResponse {
	return albumResponse{
		ID:            a.ID,
		OwnerID:       a.OwnerID,
		Title:         a.Title,
		Description:   a.Description,
		AlbumOrder:    a.AlbumOrder,
		CoverImageURL: a.CoverImageURL,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func toAlbumResponses(albums []*models.Album) []albumResponse {
	result := make([]albumResponse, 0, len(albums))
	for _, a := range albums {
		result = append(result, toAlbumResponse(a))
	}
	return result
}

type imageResponse struct {
	ID         string    `json:"id"`
	AlbumID    string    `json:"albumId"`
	ImageURL   string    `json:"imageUrl"`
	AltText    *string   `json:"altText"`
	Caption    *string   `json:"caption"`
	ImageOrder *int      `json:"imageOrder"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toImageResponse(i *models.Image) imageResponse {
	return imageResponse{
		ID:         i.ID,
		AlbumID:    i.AlbumID,
		ImageURL:   i.ImageURL,
		AltText:    i.AltText,
		Caption:    i.Caption,
		ImageOrder: i.ImageOrder,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

func toImageResponses(images []*models.Image) []imageResponse {
	result := make([]imageResponse, 0, len(images))
	for _, i := range images {
		result = append(result, toImageResponse(i))
	}
	return result
}

type uploadGrantResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
}

func toUploadGrantResponse(g *storage.UploadGrant) uploadGrantResponse {
	return uploadGrantResponse{
		Key:       g.Key,
		UploadURL: g.UploadURL,
		PublicURL: g.PublicURL,
		ExpiresIn: int64(g.ExpiresIn.Seconds()),
	}
}

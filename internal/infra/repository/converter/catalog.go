package converter

import (
	"vinyl-record-house/internal/domain/catalog"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"
	"vinyl-record-house/internal/pkg/pgconv"
)

func RecordFromLockedRow(row sqlc.LockRecordsByIDsRow) *catalog.VinylRecord {
	return catalog.ReconstructVinylRecord(catalog.RecordFields{
		ID:    row.ID,
		Title: row.Title,
		Slug:  row.Slug,
		Artist: catalog.Artist{
			ID:   row.ArtistID,
			Name: row.ArtistName,
			Type: catalog.ArtistType(row.ArtistType),
		},
		ReleaseYear:   int(row.ReleaseYear),
		Condition:     catalog.Condition(row.Condition),
		Speed:         row.Speed,
		Size:          row.Size,
		Price:         row.Price,
		StockQuantity: int(row.StockQuantity),
		IsAvailable:   row.IsAvailable,
		Featured:      row.Featured,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func RecordFromView(row sqlc.VinylRecordViews) *catalog.VinylRecord {
	return catalog.ReconstructVinylRecord(catalog.RecordFields{
		ID:    row.ID,
		Title: row.Title,
		Slug:  row.Slug,
		Artist: catalog.Artist{
			ID:   row.ArtistID,
			Name: row.ArtistName,
			Type: catalog.ArtistType(row.ArtistType),
		},
		Genre:         row.GenreName,
		Label:         row.LabelName,
		ReleaseYear:   int(row.ReleaseYear),
		Condition:     catalog.Condition(row.Condition),
		Speed:         row.Speed,
		Size:          row.Size,
		Price:         row.Price,
		StockQuantity: int(row.StockQuantity),
		IsAvailable:   row.IsAvailable,
		Featured:      row.Featured,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

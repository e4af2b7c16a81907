// Package stationrepo provides data transfer objects and mapping functions
// for station persistence.
package stationrepo

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/station"

	"github.com/google/uuid"
)

// StationDTO represents the database structure for persisting stations.
type StationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex"`
	Tags      []string  `gorm:"serializer:json"`
	Active    bool      `gorm:"index"`
	SortOrder int
}

// TableName specifies the database table name for stations.
func (StationDTO) TableName() string {
	return "stations"
}

// fromDomain converts a station aggregate to its database representation.
func fromDomain(aggregate *station.Station) StationDTO {
	return StationDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Tags:      aggregate.Tags(),
		Active:    aggregate.IsActive(),
		SortOrder: aggregate.SortOrder(),
	}
}

// toDomain converts a database row to a station aggregate.
func toDomain(dto StationDTO) (*station.Station, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return station.RestoreStation(id, dto.Name, dto.Tags, dto.Active, dto.SortOrder)
}

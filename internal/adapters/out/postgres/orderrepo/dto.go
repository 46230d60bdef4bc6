// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Item lines and the status history are stored as JSON documents; the tracking
// block is flattened into prefixed columns so queries can read the live
// position without unpacking JSON. Version backs the conditional update.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;index"`
	PharmacyID    *uuid.UUID `gorm:"type:uuid"`
	PharmacyName  string
	PartnerID     *uuid.UUID `gorm:"type:uuid;index"`
	PartnerName   string
	PartnerPhone  string
	Items         []ItemDTO         `gorm:"serializer:json;type:jsonb"`
	Total         decimal.Decimal   `gorm:"type:numeric(12,2)"`
	PaymentMethod string
	PaymentStatus string
	Address       string
	Lat           float64
	Lng           float64
	Status        string            `gorm:"index"`
	History       []StatusChangeDTO `gorm:"serializer:json;type:jsonb"`
	Tracking      TrackingDTO       `gorm:"embedded;embeddedPrefix:tracking_"`
	Delivered     bool
	PickedUp      bool
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
	Version       int64
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the JSON shape of a single order line. The unit price is kept as
// a decimal string to avoid float drift in storage.
type ItemDTO struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// StatusChangeDTO is the JSON shape of one status history entry.
type StatusChangeDTO struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

// TrackingDTO holds the flattened live-tracking columns of the order table.
type TrackingDTO struct {
	Lat           *float64
	Lng           *float64
	LastUpdatedAt *time.Time
	PickedUpAt    *time.Time
	PickedUpBy    *uuid.UUID `gorm:"type:uuid"`
	DeliveredAt   *time.Time
	DeliveredBy   *uuid.UUID `gorm:"type:uuid"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	tracking := aggregate.Tracking()

	dto := OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		PharmacyID:   uuidPtr(aggregate.PharmacyID()),
		PharmacyName: aggregate.PharmacyName(),
		PartnerID:    uuidPtr(aggregate.PartnerID()),
		PartnerName:  aggregate.PartnerName(),
		PartnerPhone: aggregate.PartnerPhone(),
		Items: lo.Map(aggregate.Items(), func(item order.Item, _ int) ItemDTO {
			return ItemDTO{
				Name:      item.Name(),
				Quantity:  item.Quantity(),
				UnitPrice: item.UnitPrice().Amount().String(),
			}
		}),
		Total:         aggregate.Total().Amount(),
		PaymentMethod: aggregate.PaymentMethod(),
		PaymentStatus: string(aggregate.PaymentStatus()),
		Address:       aggregate.Address(),
		Lat:           aggregate.Destination().Lat(),
		Lng:           aggregate.Destination().Lng(),
		Status:        aggregate.Status().String(),
		History: lo.Map(aggregate.History(), func(change order.StatusChange, _ int) StatusChangeDTO {
			return StatusChangeDTO{Status: change.Status.String(), At: change.At}
		}),
		Tracking: TrackingDTO{
			LastUpdatedAt: tracking.LastUpdatedAt(),
			PickedUpAt:    tracking.PickedUpAt(),
			PickedUpBy:    uuidPtr(tracking.PickedUpBy()),
			DeliveredAt:   tracking.DeliveredAt(),
			DeliveredBy:   uuidPtr(tracking.DeliveredBy()),
		},
		Delivered: aggregate.Delivered(),
		PickedUp:  aggregate.PickedUp(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
		Version:   aggregate.Version(),
	}

	if position := tracking.Position(); position != nil {
		lat, lng := position.Lat(), position.Lng()
		dto.Tracking.Lat = &lat
		dto.Tracking.Lng = &lng
	}

	return dto
}

// toDomain converts a database DTO back into an order aggregate using
// RestoreOrder, re-validating the stored record's invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	pharmacyID, err := kernelUUIDPtr(dto.PharmacyID)
	if err != nil {
		return nil, err
	}

	partnerID, err := kernelUUIDPtr(dto.PartnerID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		unitPrice, priceErr := kernel.NewMoneyFromString(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	history := make([]order.StatusChange, 0, len(dto.History))
	for _, changeDTO := range dto.History {
		changeStatus, changeErr := order.StatusFromString(changeDTO.Status)
		if changeErr != nil {
			return nil, changeErr
		}
		history = append(history, order.StatusChange{Status: changeStatus, At: changeDTO.At})
	}

	tracking, err := trackingToDomain(dto.Tracking)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:            id,
		CustomerID:    customerID,
		PharmacyID:    pharmacyID,
		PharmacyName:  dto.PharmacyName,
		PartnerID:     partnerID,
		PartnerName:   dto.PartnerName,
		PartnerPhone:  dto.PartnerPhone,
		Items:         items,
		Total:         total,
		PaymentMethod: dto.PaymentMethod,
		PaymentStatus: order.PaymentStatus(dto.PaymentStatus),
		Address:       dto.Address,
		Destination:   destination,
		Status:        status,
		History:       history,
		Tracking:      tracking,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
		Version:       dto.Version,
	})
}

func trackingToDomain(dto TrackingDTO) (order.Tracking, error) {
	var position *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		point, err := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if err != nil {
			return order.Tracking{}, err
		}
		position = &point
	}

	pickedUpBy, err := kernelUUIDPtr(dto.PickedUpBy)
	if err != nil {
		return order.Tracking{}, err
	}

	deliveredBy, err := kernelUUIDPtr(dto.DeliveredBy)
	if err != nil {
		return order.Tracking{}, err
	}

	return order.RestoreTracking(
		position,
		dto.LastUpdatedAt,
		dto.PickedUpAt,
		pickedUpBy,
		dto.DeliveredAt,
		deliveredBy,
	), nil
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

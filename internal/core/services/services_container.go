package services

import (
	portsrepo "github.com/SscSPs/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hotel_management_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(store portsrepo.RoomStore, exporter portssvc.ReportExporter, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Rooms:   NewRoomService(store, options...),
		Reports: exporter,
	}
}

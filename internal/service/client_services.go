package service

import (
	"github.com/MKhiriev/go-offline-sync/internal/adapter"
	"github.com/MKhiriev/go-offline-sync/internal/clock"
	"github.com/MKhiriev/go-offline-sync/internal/conflict"
	"github.com/MKhiriev/go-offline-sync/internal/crypto"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/store"
)

// ClientServices groups the services of the client process.
type ClientServices struct {
	Crypto  ClientCryptoService
	Auth    ClientAuthService
	Engine  SyncEngine
	Status  StatusReporter
	SyncJob SyncJob
}

// ClientDependencies are the collaborators shared by the client services.
type ClientDependencies struct {
	Entities EntityStore
	Storages *store.ClientStorages
	Queue    SyncQueue
	Backend  adapter.RemoteBackend
	Cipher   crypto.FieldCipher
	Network  NetworkStatus
	Clock    clock.Clock
}

func NewClientServices(deps ClientDependencies, cfg SyncConfig, logger *logger.Logger) *ClientServices {
	cryptoSvc := NewClientCryptoService(deps.Cipher)
	authSvc := NewClientAuthService(deps.Backend, deps.Storages.Sessions, deps.Clock, logger)
	engine := NewSyncEngine(SyncDependencies{
		Entities: deps.Entities,
		Queue:    deps.Queue,
		Backend:  deps.Backend,
		Resolver: conflict.NewLastWriterWins(),
		Crypto:   cryptoSvc,
		States:   deps.Storages.SyncState,
		Network:  deps.Network,
		Clock:    deps.Clock,
	}, cfg, logger)

	return &ClientServices{
		Crypto:  cryptoSvc,
		Auth:    authSvc,
		Engine:  engine,
		Status:  NewStatusReporter(deps.Entities, deps.Storages.SyncState, deps.Queue, deps.Network, engine),
		SyncJob: NewSyncJob(engine, deps.Network),
	}
}

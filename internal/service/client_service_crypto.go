package service

import (
	"fmt"

	"github.com/MKhiriev/go-offline-sync/internal/crypto"
	"github.com/MKhiriev/go-offline-sync/models"
)

type clientCryptoService struct {
	cipher crypto.FieldCipher
}

// NewClientCryptoService wraps cipher for whole records.
func NewClientCryptoService(cipher crypto.FieldCipher) ClientCryptoService {
	return &clientCryptoService{cipher: cipher}
}

func (c *clientCryptoService) EncryptRecord(record models.RemoteRecord) (models.RemoteRecord, error) {
	fields, err := c.cipher.EncryptFields(record.Fields)
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("encrypt %s/%s: %w", record.Type, record.ID, err)
	}
	record.Fields = fields
	return record, nil
}

func (c *clientCryptoService) DecryptRecord(record models.RemoteRecord) (models.RemoteRecord, error) {
	fields, err := c.cipher.DecryptFields(record.Fields)
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("decrypt %s/%s: %w", record.Type, record.ID, err)
	}
	record.Fields = fields
	return record, nil
}

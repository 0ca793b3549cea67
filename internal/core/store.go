package core

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrRecordNotFound maps gorm.ErrRecordNotFound to the transient
// RecordNotFound kind of the error taxonomy.
var ErrRecordNotFound = errors.New("record not found")

// Store is the persistence facade: typed CRUD over the four entities,
// with no PDA re-derivation — every address it reads or writes was
// computed once, by an assembly backend.
type Store interface {
	GetCollection(ctx context.Context, id string) (*Collection, error)
	UpsertCollection(ctx context.Context, c *Collection) error
	DeleteCollection(ctx context.Context, id string) error

	GetCollectionMint(ctx context.Context, id string) (*CollectionMint, error)
	GetCollectionMintByATA(ctx context.Context, ata string) (*CollectionMint, error)
	UpsertCollectionMint(ctx context.Context, m *CollectionMint) error
	UpdateCollectionMintOwner(ctx context.Context, id, owner, ata string) error

	GetCompressionLeaf(ctx context.Context, id string) (*CompressionLeaf, error)
	GetCompressionLeafByAssetID(ctx context.Context, assetID string) (*CompressionLeaf, error)
	UpsertCompressionLeaf(ctx context.Context, leaf *CompressionLeaf) error
	SetCompressionLeafAssetID(ctx context.Context, id, assetID string) error
	UpdateCompressionLeafOwner(ctx context.Context, assetID, owner string) error

	GetUpdateRevision(ctx context.Context, id string) (*UpdateRevision, error)
	UpsertUpdateRevision(ctx context.Context, rev *UpdateRevision) error
}

// GormStore implements Store over gorm.io/gorm with a postgres
// driver. This facade is the one seam the rest of the worker depends
// on for persistence.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetCollection(ctx context.Context, id string) (*Collection, error) {
	var c Collection
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &c, nil
}

func (s *GormStore) UpsertCollection(ctx context.Context, c *Collection) error {
	return s.db.WithContext(ctx).Save(c).Error
}

func (s *GormStore) DeleteCollection(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", id).Delete(&CollectionMint{}).Error; err != nil {
			return err
		}
		if err := tx.Where("collection_id = ?", id).Delete(&CompressionLeaf{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Collection{}, "id = ?", id).Error
	})
}

func (s *GormStore) GetCollectionMint(ctx context.Context, id string) (*CollectionMint, error) {
	var m CollectionMint
	if err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &m, nil
}

func (s *GormStore) GetCollectionMintByATA(ctx context.Context, ata string) (*CollectionMint, error) {
	var m CollectionMint
	if err := s.db.WithContext(ctx).First(&m, "associated_token_account = ?", ata).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &m, nil
}

func (s *GormStore) UpsertCollectionMint(ctx context.Context, m *CollectionMint) error {
	return s.db.WithContext(ctx).Save(m).Error
}

func (s *GormStore) UpdateCollectionMintOwner(ctx context.Context, id, owner, ata string) error {
	return s.db.WithContext(ctx).Model(&CollectionMint{}).Where("id = ?", id).
		Updates(map[string]interface{}{"owner": owner, "associated_token_account": ata}).Error
}

func (s *GormStore) GetCompressionLeaf(ctx context.Context, id string) (*CompressionLeaf, error) {
	var leaf CompressionLeaf
	if err := s.db.WithContext(ctx).First(&leaf, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &leaf, nil
}

func (s *GormStore) GetCompressionLeafByAssetID(ctx context.Context, assetID string) (*CompressionLeaf, error) {
	var leaf CompressionLeaf
	if err := s.db.WithContext(ctx).First(&leaf, "asset_id = ?", assetID).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &leaf, nil
}

func (s *GormStore) UpsertCompressionLeaf(ctx context.Context, leaf *CompressionLeaf) error {
	return s.db.WithContext(ctx).Save(leaf).Error
}

func (s *GormStore) SetCompressionLeafAssetID(ctx context.Context, id, assetID string) error {
	return s.db.WithContext(ctx).Model(&CompressionLeaf{}).Where("id = ?", id).
		Update("asset_id", assetID).Error
}

func (s *GormStore) UpdateCompressionLeafOwner(ctx context.Context, assetID, owner string) error {
	return s.db.WithContext(ctx).Model(&CompressionLeaf{}).Where("asset_id = ?", assetID).
		Update("leaf_owner", owner).Error
}

func (s *GormStore) GetUpdateRevision(ctx context.Context, id string) (*UpdateRevision, error) {
	var rev UpdateRevision
	if err := s.db.WithContext(ctx).First(&rev, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &rev, nil
}

func (s *GormStore) UpsertUpdateRevision(ctx context.Context, rev *UpdateRevision) error {
	return s.db.WithContext(ctx).Save(rev).Error
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return errors.Wrap(err, "query collection store")
}

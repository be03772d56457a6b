package claim

import (
	"fmt"
	"path"
	"strings"

	vo "warrantly/internal/domain/claim/valueobjects"
)

// Media is an evidence attachment reference. The bytes live in object storage;
// the claim only records the URL and enough metadata to enforce limits. A
// media entry may be scoped to one claimed item or apply to the whole claim.
type Media struct {
	id               uint
	claimID          uint
	claimItemID      uint
	mediaType        vo.MediaType
	url              string
	originalFilename string
	sizeBytes        int64
	// itemSKU holds the requested item scope until persistence resolves it
	// to a claimItemID. Not stored.
	itemSKU string
}

func NewMedia(mediaType vo.MediaType, url, originalFilename string, sizeBytes int64) (*Media, error) {
	if url == "" {
		return nil, fmt.Errorf("media url is required")
	}
	if sizeBytes <= 0 {
		return nil, fmt.Errorf("media size must be positive")
	}
	if sizeBytes > mediaType.MaxBytes() {
		return nil, fmt.Errorf("%s exceeds the %d byte limit", mediaType, mediaType.MaxBytes())
	}
	// The original filename is the trustworthy format hint; presigned URLs
	// often carry opaque object keys.
	ext := strings.TrimPrefix(path.Ext(originalFilename), ".")
	if ext == "" {
		ext = strings.TrimPrefix(path.Ext(url), ".")
	}
	if ext != "" && !mediaType.AllowsFormat(ext) {
		return nil, fmt.Errorf("format %s is not allowed for %s media", ext, mediaType)
	}
	return &Media{
		mediaType:        mediaType,
		url:              url,
		originalFilename: originalFilename,
		sizeBytes:        sizeBytes,
	}, nil
}

func ReconstructMedia(id, claimID, claimItemID uint, mediaType vo.MediaType, url, originalFilename string, sizeBytes int64) (*Media, error) {
	if id == 0 {
		return nil, fmt.Errorf("media ID cannot be zero")
	}
	return &Media{
		id:               id,
		claimID:          claimID,
		claimItemID:      claimItemID,
		mediaType:        mediaType,
		url:              url,
		originalFilename: originalFilename,
		sizeBytes:        sizeBytes,
	}, nil
}

func (m *Media) ID() uint { return m.id }

func (m *Media) ClaimID() uint { return m.claimID }

func (m *Media) ClaimItemID() uint { return m.claimItemID }

func (m *Media) Type() vo.MediaType { return m.mediaType }

func (m *Media) URL() string { return m.url }

func (m *Media) OriginalFilename() string { return m.originalFilename }

func (m *Media) SizeBytes() int64 { return m.sizeBytes }

func (m *Media) ItemSKU() string { return m.itemSKU }

// ScopeToSKU marks the attachment as belonging to the claimed item with the
// given SKU. Persistence resolves the SKU to the item row on save.
func (m *Media) ScopeToSKU(sku string) {
	m.itemSKU = sku
}

// AttachToItem binds the attachment to a persisted claim item.
func (m *Media) AttachToItem(itemID uint) {
	m.claimItemID = itemID
}

func (m *Media) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("media ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("media ID cannot be zero")
	}
	m.id = id
	return nil
}

func (m *Media) AttachTo(claimID uint) {
	m.claimID = claimID
}

package model

import "time"

// Document is a raw Firestore document as returned by the database
// collaborator. Data values may contain vendor scalar types (time.Time,
// *latlng.LatLng, Reference, []byte) which are encoded before output.
type Document struct {
	ID         string
	Path       string
	Data       map[string]any
	CreateTime time.Time
	UpdateTime time.Time
}

// DocumentRecord is the exported envelope for one Firestore document.
type DocumentRecord struct {
	ID             string   `json:"_id"`
	Path           string   `json:"_path"`
	Data           any      `json:"_data"`
	CreateTime     string   `json:"_create_time,omitempty"`
	UpdateTime     string   `json:"_update_time,omitempty"`
	Subcollections []string `json:"_subcollections,omitempty"`
}

// User is one exported authentication record.
type User struct {
	UID                 string         `json:"uid"`
	Email               string         `json:"email,omitempty"`
	EmailVerified       bool           `json:"email_verified"`
	DisplayName         string         `json:"display_name,omitempty"`
	PhotoURL            string         `json:"photo_url,omitempty"`
	PhoneNumber         string         `json:"phone_number,omitempty"`
	Disabled            bool           `json:"disabled"`
	CreationTimestamp   int64          `json:"creation_timestamp"`
	LastSignInTimestamp int64          `json:"last_sign_in_timestamp"`
	CustomClaims        map[string]any `json:"custom_claims"`
	ProviderData        []UserProvider `json:"provider_data"`
	MFAEnrolledFactors  []MFAFactor    `json:"mfa_enrolled_factors,omitempty"`
}

// UserProvider is one identity provider entry of a user.
type UserProvider struct {
	ProviderID  string `json:"provider_id"`
	UID         string `json:"uid"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

// MFAFactor is one enrolled multi-factor entry, fetched by best-effort
// per-user enrichment.
type MFAFactor struct {
	UID            string `json:"uid"`
	DisplayName    string `json:"display_name,omitempty"`
	FactorID       string `json:"factor_id"`
	EnrollmentTime string `json:"enrollment_time,omitempty"`
}

// FileInfo is raw object metadata from the storage collaborator.
type FileInfo struct {
	Name               string
	Bucket             string
	Size               int64
	ContentType        string
	Created            time.Time
	Updated            time.Time
	Etag               string
	MD5Hash            string
	CRC32C             uint32
	Metadata           map[string]string
	CacheControl       string
	ContentDisposition string
	ContentEncoding    string
	ContentLanguage    string
}

// FileRecord is the exported envelope for one storage object.
type FileRecord struct {
	Name               string            `json:"name"`
	Bucket             string            `json:"bucket"`
	Size               int64             `json:"size"`
	ContentType        string            `json:"content_type,omitempty"`
	TimeCreated        string            `json:"time_created,omitempty"`
	Updated            string            `json:"updated,omitempty"`
	Etag               string            `json:"etag,omitempty"`
	MD5Hash            string            `json:"md5_hash,omitempty"`
	CRC32C             uint32            `json:"crc32c,omitempty"`
	Metadata           map[string]string `json:"metadata"`
	CacheControl       string            `json:"cache_control,omitempty"`
	ContentDisposition string            `json:"content_disposition,omitempty"`
	ContentEncoding    string            `json:"content_encoding,omitempty"`
	ContentLanguage    string            `json:"content_language,omitempty"`
	DownloadURL        string            `json:"download_url,omitempty"`
	LocalPath          string            `json:"local_path,omitempty"`
	SHA256Checksum     string            `json:"sha256_checksum,omitempty"`
}

// RealtimeDBMetadata describes a realtime database tree export.
type RealtimeDBMetadata struct {
	ExportTime         string `json:"export_time"`
	DatabaseURL        string `json:"database_url"`
	EstimatedSizeBytes int    `json:"estimated_size_bytes"`
}

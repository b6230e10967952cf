package course

import "gorm.io/gorm"

// FontAsset is the metadata row for one embedded-font file in the font
// bucket. The PDF pipeline refuses to run unless every declared font key has
// both a row here and bytes in the bucket.
type FontAsset struct {
	gorm.Model
	FontKey    string `json:"font_key" gorm:"unique;not null"` // e.g. "cert-bold"
	ObjectKey  string `json:"object_key" gorm:"not null"`      // key inside the font bucket
	ByteSize   int    `json:"byte_size"`
	UploadedBy uint   `json:"uploaded_by"`
	IsDeleted  bool   `gorm:"default:false"`
}
